// Package filters holds the canonical search criteria shared by the search
// and my-cars surfaces, and the pure functions that operate on it.
package filters

// SortRelevance is the neutral sort order applied when nothing is selected.
const SortRelevance = "relevance"

// State is the complete record of search and listing criteria. It is always
// fully defined: updates merge a typed patch over the previous complete
// state, never leaving partial output. All optional text fields use "" for
// "not set"; price bounds use nil.
type State struct {
	Location     string
	StartDate    string
	EndDate      string
	HostID       string
	CarType      string
	Transmission string
	FuelType     string
	MinPrice     *int
	MaxPrice     *int
	Rating       int
	Search       string
	SortBy       string
	Page         int
	Limit        int

	// Secondary facets from the "more filters" panel.
	Capacity string
	Color    string
	Mileage  string

	// Host-side listing filters (my-cars surface).
	Brand string
	Model string
}

// Default returns the initial state for a surface with the given page size.
func Default(limit int) State {
	return State{
		SortBy: SortRelevance,
		Page:   1,
		Limit:  limit,
	}
}
