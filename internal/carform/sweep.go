package carform

import (
	"strings"

	"autorent_portal/internal/listings"
)

// Required-field messages for fields without a dedicated validator.
const (
	msgLocationRequired     = "La ubicación es obligatoria"
	msgTransmissionRequired = "La transmisión es obligatoria"
	msgFuelTypeRequired     = "El tipo de combustible es obligatorio"
	msgKilometersRequired   = "El kilometraje es obligatorio"
	msgCarTypeRequired      = "El tipo de auto es obligatorio"
	msgPlateRequired        = "La placa es obligatoria"
	msgPhotoURLs            = "Debes proporcionar al menos 3 URLs de fotos"
)

// Sweep runs every field validator over the whole form before submission.
// photoCount is the number of usable photos, URLs or uploaded files.
// It returns one message per failing field, keyed by the wire field name;
// an empty map means the form may be submitted.
func Sweep(form listings.CarForm, photoCount int) map[string]string {
	errs := make(map[string]string)

	put := func(field, message string) {
		if message != "" {
			errs[field] = message
		}
	}

	put("brand", Brand(form.Brand))
	put("model", Model(form.Model))
	put("year", Year(form.Year))
	put("pricePerDay", PricePerDay(form.PricePerDay))
	put("seats", Seats(form.Seats))
	put("color", Color(form.Color))

	requireNonEmpty := func(field, value, message string) {
		if strings.TrimSpace(value) == "" {
			errs[field] = message
		}
	}

	requireNonEmpty("location", form.Location, msgLocationRequired)
	requireNonEmpty("carType", form.CarType, msgCarTypeRequired)
	requireNonEmpty("transmission", form.Transmission, msgTransmissionRequired)
	requireNonEmpty("fuelType", form.FuelType, msgFuelTypeRequired)
	requireNonEmpty("kilometers", form.Kilometers, msgKilometersRequired)
	requireNonEmpty("licensePlate", form.LicensePlate, msgPlateRequired)

	if photoCount < MinPhotoURLs {
		errs["photoUrls"] = msgPhotoURLs
	}

	return errs
}

// CountPhotoURLs counts the non-blank entries of the URL list.
func CountPhotoURLs(urls []string) int {
	count := 0
	for _, url := range urls {
		if strings.TrimSpace(url) != "" {
			count++
		}
	}
	return count
}
