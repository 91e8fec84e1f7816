// Package carform validates car listing form input field by field, mirroring
// the messages shown in the marketplace UI. Validators only compute error
// strings; none of them touches the network.
package carform

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// MinPhotoURLs is how many photos a new listing must carry.
const MinPhotoURLs = 3

const (
	minYear        = 1900
	minSeats       = 1
	maxSeats       = 20
	maxColorLen    = 10
	maxPriceLen    = 3
	plateBodyLen   = 4
	plateSuffixLen = 3
)

var (
	digitRegex        = regexp.MustCompile(`\d`)
	lettersSpaceRegex = regexp.MustCompile(`^[a-zA-Z\s]*$`)
	alnumSpaceRegex   = regexp.MustCompile(`^[a-zA-Z0-9\s]*$`)
	nonAlnumRegex     = regexp.MustCompile(`[^a-zA-Z0-9]`)
	nonDigitRegex     = regexp.MustCompile(`[^0-9]`)
)

// Brand requires a non-empty value with letters and spaces only.
func Brand(value string) string {
	if strings.TrimSpace(value) == "" {
		return "La marca es obligatoria"
	}
	if digitRegex.MatchString(value) {
		return "La marca no puede contener números"
	}
	if !lettersSpaceRegex.MatchString(value) {
		return "La marca no puede contener caracteres especiales"
	}
	return ""
}

// Model requires a non-empty alphanumeric value.
func Model(value string) string {
	if strings.TrimSpace(value) == "" {
		return "El modelo es obligatorio"
	}
	if !alnumSpaceRegex.MatchString(value) {
		return "El modelo no puede contener caracteres especiales"
	}
	return ""
}

// Year requires exactly four digits between 1900 and the current year.
func Year(value string) string {
	value = strings.TrimSpace(value)
	year, err := strconv.Atoi(value)
	if err != nil {
		return "Ingresa un año válido"
	}
	if len(value) != 4 {
		return "El año debe tener exactamente 4 dígitos"
	}
	currentYear := time.Now().Year()
	if year < minYear {
		return fmt.Sprintf("El año no puede ser menor a %d", minYear)
	}
	if year > currentYear {
		return fmt.Sprintf("El año no puede ser mayor a %d", currentYear)
	}
	return ""
}

// NormalizePriceInput drops non-digit characters and truncates to the
// three-digit cap, matching the keystroke filtering in the form.
func NormalizePriceInput(raw string) string {
	digits := nonDigitRegex.ReplaceAllString(raw, "")
	if len(digits) > maxPriceLen {
		digits = digits[:maxPriceLen]
	}
	return digits
}

// PricePerDay requires a positive integer of at most three digits.
func PricePerDay(value string) string {
	value = strings.TrimSpace(value)
	price, err := strconv.Atoi(value)
	if err != nil || len(value) > maxPriceLen || price <= 0 {
		return "El precio debe ser mayor a 0"
	}
	return ""
}

// Seats requires an integer between 1 and 20.
func Seats(value string) string {
	seats, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || seats < minSeats || seats > maxSeats {
		return fmt.Sprintf("La capacidad debe ser entre %d y %d asientos", minSeats, maxSeats)
	}
	return ""
}

// Color requires a short value with letters and spaces only.
func Color(value string) string {
	if strings.TrimSpace(value) == "" {
		return "El color es obligatorio"
	}
	if digitRegex.MatchString(value) {
		return "El color no puede contener números"
	}
	if !lettersSpaceRegex.MatchString(value) {
		return "El color no puede contener caracteres especiales"
	}
	if len(value) > maxColorLen {
		return fmt.Sprintf("El color no puede tener más de %d caracteres", maxColorLen)
	}
	return ""
}

// FormatLicensePlate shapes raw alphanumeric input as NNNN-AAA: uppercase,
// four characters, a hyphen, then up to three more. Anything beyond the
// eight formatted characters is dropped.
func FormatLicensePlate(raw string) string {
	cleaned := strings.ToUpper(nonAlnumRegex.ReplaceAllString(raw, ""))

	if len(cleaned) <= plateBodyLen {
		return cleaned
	}

	suffix := cleaned[plateBodyLen:]
	if len(suffix) > plateSuffixLen {
		suffix = suffix[:plateSuffixLen]
	}
	return cleaned[:plateBodyLen] + "-" + suffix
}
