package filters

import (
	"net/url"
	"strconv"
)

// Query flattens the state into wire-format query parameters for the
// listings collaborator. Unset fields are omitted; everything else is
// stringified under the exact key names the collaborator expects. The
// output is deterministic for a given state.
func Query(s State) url.Values {
	params := url.Values{}

	addString := func(key, value string) {
		if value != "" {
			params.Set(key, value)
		}
	}

	addString("location", s.Location)
	addString("startDate", s.StartDate)
	addString("endDate", s.EndDate)
	addString("hostId", s.HostID)
	addString("carType", s.CarType)
	addString("transmission", s.Transmission)
	addString("fuelType", s.FuelType)
	addString("search", s.Search)
	addString("sortBy", s.SortBy)
	addString("capacidad", s.Capacity)
	addString("color", s.Color)
	addString("kilometrajes", s.Mileage)
	addString("brand", s.Brand)
	addString("model", s.Model)

	if s.MinPrice != nil {
		params.Set("minPrice", strconv.Itoa(*s.MinPrice))
	}
	if s.MaxPrice != nil {
		params.Set("maxPrice", strconv.Itoa(*s.MaxPrice))
	}
	if s.Rating > 0 {
		params.Set("rating", strconv.Itoa(s.Rating))
	}
	if s.Page > 0 {
		params.Set("page", strconv.Itoa(s.Page))
	}
	if s.Limit > 0 {
		params.Set("limit", strconv.Itoa(s.Limit))
	}

	return params
}
