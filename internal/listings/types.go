// Package listings talks to the external listings REST collaborator and
// owns the fetch orchestration for the search and my-cars surfaces.
package listings

// Host is the listing owner as exposed by the collaborator.
type Host struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}

// Car is a rentable car record. The field set mirrors the collaborator's
// wire format; this service never derives or stores its own car data.
type Car struct {
	ID               int      `json:"id"`
	Brand            string   `json:"brand"`
	Model            string   `json:"model"`
	Year             int      `json:"year"`
	Category         string   `json:"category"`
	PricePerDay      int      `json:"pricePerDay"`
	Discount         int      `json:"discount"`
	RentalCount      int      `json:"rentalCount"`
	Rating           float64  `json:"rating"`
	Location         string   `json:"location"`
	ImageURL         string   `json:"imageUrl"`
	Host             Host     `json:"host"`
	UnavailableDates []string `json:"unavailableDates"`
	ExtraEquipment   []string `json:"extraEquipment"`
	Seats            int      `json:"seats"`
	Transmission     string   `json:"transmission"`
	Color            string   `json:"color"`
	IsAvailable      bool     `json:"isAvailable"`
	Kilometers       string   `json:"kilometers"`
	LicensePlate     string   `json:"licensePlate"`
	FuelType         string   `json:"fuelType"`
	Description      string   `json:"description"`
}

// Page is one page of fetch results plus pagination metadata. It is created
// fresh on every successful fetch and replaced wholesale by the next one.
type Page struct {
	Items       []Car `json:"cars"`
	TotalItems  int   `json:"totalCars"`
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
}

// CarForm is the payload for creating or updating a listing. Photo URLs are
// used for the JSON variant; uploaded files go through the multipart path.
type CarForm struct {
	Location       string   `json:"location"`
	Brand          string   `json:"brand"`
	Model          string   `json:"model"`
	Year           string   `json:"year"`
	CarType        string   `json:"carType"`
	Color          string   `json:"color"`
	PricePerDay    string   `json:"pricePerDay"`
	Kilometers     string   `json:"kilometers"`
	LicensePlate   string   `json:"licensePlate"`
	Transmission   string   `json:"transmission"`
	FuelType       string   `json:"fuelType"`
	Seats          string   `json:"seats"`
	Description    string   `json:"description"`
	PhotoUrls      []string `json:"photoUrls"`
	ExtraEquipment []string `json:"extraEquipment"`
}

// PhotoUpload is a photo file streamed through the multipart creation path.
type PhotoUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}
