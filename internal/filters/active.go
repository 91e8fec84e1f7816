package filters

// ActiveOptions controls which fields participate in the activity check.
type ActiveOptions struct {
	// IncludeSearch counts the free-text query as an active filter. The
	// default leaves it out: search has its own affordance in the UI and an
	// unmatched phrase should not look like a structured filter miss.
	IncludeSearch bool
}

// IsActive reports whether any filterable field deviates from its empty
// default. It drives the visibility of the "clear filters" action and the
// no-results advisory, nothing else.
func IsActive(s State) bool {
	return IsActiveWith(s, ActiveOptions{})
}

// IsActiveWith is IsActive with explicit options.
func IsActiveWith(s State, opts ActiveOptions) bool {
	if s.Location != "" ||
		s.StartDate != "" ||
		s.EndDate != "" ||
		s.HostID != "" ||
		s.CarType != "" ||
		s.Transmission != "" ||
		s.FuelType != "" ||
		s.Brand != "" ||
		s.Model != "" {
		return true
	}
	if s.MinPrice != nil || s.MaxPrice != nil {
		return true
	}
	if s.Rating > 0 {
		return true
	}
	if s.SortBy != "" && s.SortBy != SortRelevance {
		return true
	}
	if s.Capacity != "" || s.Color != "" || s.Mileage != "" {
		return true
	}
	if opts.IncludeSearch && s.Search != "" {
		return true
	}
	return false
}
