// Package searchui is the public search surface: listing search with the
// full filter set, plus search suggestions backed by per-user history.
package searchui

import (
	"autorent_portal/internal/filters"
	"autorent_portal/internal/listings"
	"autorent_portal/platform/sanitize"
)

// SearchRequest carries every filter the search page can set, bound from
// query parameters under the collaborator's wire key names. Structural rules
// live in validate tags and run through the injected validator; facet values
// are checked against the catalog with their own messages.
type SearchRequest struct {
	Location     string `form:"location"`
	StartDate    string `form:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate      string `form:"endDate" validate:"omitempty,datetime=2006-01-02"`
	HostID       string `form:"hostId"`
	CarType      string `form:"carType"`
	Transmission string `form:"transmission"`
	FuelType     string `form:"fuelType"`
	MinPrice     *int   `form:"minPrice" validate:"omitempty,gte=0"`
	MaxPrice     *int   `form:"maxPrice" validate:"omitempty,gte=0"`
	Rating       int    `form:"rating" validate:"gte=0,lte=5"`
	Search       string `form:"search"`
	SortBy       string `form:"sortBy"`
	Page         int    `form:"page" validate:"gte=0"`
	Limit        int    `form:"limit" validate:"gte=0,lte=50"`
	Capacity     string `form:"capacidad"`
	Color        string `form:"color"`
	Mileage      string `form:"kilometrajes"`
}

// toPatch converts the request into a filter patch, leaving absent fields
// untouched so defaults survive. Page is handled separately: it must not
// count as a filter change or it would reset itself.
func (r SearchRequest) toPatch() filters.Patch {
	patch := filters.Patch{}

	setString := func(dst **string, value string) {
		if value != "" {
			v := value
			*dst = &v
		}
	}

	setString(&patch.Location, r.Location)
	setString(&patch.StartDate, r.StartDate)
	setString(&patch.EndDate, r.EndDate)
	setString(&patch.HostID, r.HostID)
	setString(&patch.CarType, r.CarType)
	setString(&patch.Transmission, r.Transmission)
	setString(&patch.FuelType, r.FuelType)
	setString(&patch.SortBy, r.SortBy)
	setString(&patch.Capacity, r.Capacity)
	setString(&patch.Color, r.Color)
	setString(&patch.Mileage, r.Mileage)

	if search := sanitize.SearchText(r.Search); search != "" {
		patch.Search = &search
	}
	if r.MinPrice != nil {
		patch.MinPrice = filters.SetInt(*r.MinPrice)
	}
	if r.MaxPrice != nil {
		patch.MaxPrice = filters.SetInt(*r.MaxPrice)
	}
	if r.Rating > 0 {
		rating := r.Rating
		patch.Rating = &rating
	}
	if r.Limit > 0 {
		limit := r.Limit
		patch.Limit = &limit
	}

	return patch
}

// SuggestRequest is the typed-so-far partial for suggestions. The partial is
// sanitized and capped before it reaches the history store.
type SuggestRequest struct {
	Query string `form:"q"`
}

// SearchResponse is the search result envelope: the collaborator page plus
// the advisory flags the UI needs.
type SearchResponse struct {
	Cars        []listings.Car `json:"cars"`
	TotalCars   int            `json:"totalCars"`
	CurrentPage int            `json:"currentPage"`
	TotalPages  int            `json:"totalPages"`

	// NoResults signals "your filters matched nothing" so the UI can raise
	// its blocking modal instead of showing a bare empty list.
	NoResults bool `json:"noResults"`

	// Stale marks a page carried over from the previous successful fetch.
	Stale bool `json:"stale,omitempty"`

	// Error carries the collaborator's message when the fetch failed but a
	// stale page is still being shown.
	Error string `json:"error,omitempty"`
}

// SuggestResponse is the list shown under the search box.
type SuggestResponse struct {
	Suggestions []string `json:"suggestions"`
}
