// Package mycars is the host-facing surface: a host's own listings plus the
// create, edit, delete and availability operations proxied to the listings
// collaborator.
package mycars

import (
	"autorent_portal/internal/carform"
	"autorent_portal/internal/listings"
)

// ListRequest filters the host's own listings.
type ListRequest struct {
	Brand string `form:"brand"`
	Model string `form:"model"`
	Page  int    `form:"page" binding:"omitempty,gte=1"`
}

// CarFormRequest is the create/edit payload. The same shape binds from JSON
// and from multipart form fields; uploaded photo files arrive separately.
type CarFormRequest struct {
	Location       string   `json:"location" form:"location"`
	Brand          string   `json:"brand" form:"brand"`
	Model          string   `json:"model" form:"model"`
	Year           string   `json:"year" form:"year"`
	CarType        string   `json:"carType" form:"carType"`
	Color          string   `json:"color" form:"color"`
	PricePerDay    string   `json:"pricePerDay" form:"pricePerDay"`
	Kilometers     string   `json:"kilometers" form:"kilometers"`
	LicensePlate   string   `json:"licensePlate" form:"licensePlate"`
	Transmission   string   `json:"transmission" form:"transmission"`
	FuelType       string   `json:"fuelType" form:"fuelType"`
	Seats          string   `json:"seats" form:"seats"`
	Description    string   `json:"description" form:"description"`
	PhotoUrls      []string `json:"photoUrls" form:"photoUrls"`
	ExtraEquipment []string `json:"extraEquipment" form:"extraEquipment"`
}

// toForm converts the request into the collaborator form, applying the
// automatic license plate shaping on the way.
func (r CarFormRequest) toForm() listings.CarForm {
	return listings.CarForm{
		Location:       r.Location,
		Brand:          r.Brand,
		Model:          r.Model,
		Year:           r.Year,
		CarType:        r.CarType,
		Color:          r.Color,
		PricePerDay:    r.PricePerDay,
		Kilometers:     r.Kilometers,
		LicensePlate:   carform.FormatLicensePlate(r.LicensePlate),
		Transmission:   r.Transmission,
		FuelType:       r.FuelType,
		Seats:          r.Seats,
		Description:    r.Description,
		PhotoUrls:      r.PhotoUrls,
		ExtraEquipment: r.ExtraEquipment,
	}
}

// AvailabilityRequest replaces a listing's blocked dates.
type AvailabilityRequest struct {
	UnavailableDates []string `json:"unavailableDates" binding:"required,dive,datetime=2006-01-02"`
}

// ListResponse mirrors the collaborator page shape.
type ListResponse struct {
	Cars        []listings.Car `json:"cars"`
	TotalCars   int            `json:"totalCars"`
	CurrentPage int            `json:"currentPage"`
	TotalPages  int            `json:"totalPages"`
}
