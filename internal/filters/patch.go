package filters

// OptInt distinguishes "leave unchanged" from "set" and "clear" for the
// price bounds, which are nullable in State.
type OptInt struct {
	set   bool
	value *int
}

// SetInt returns an OptInt that sets the bound to v.
func SetInt(v int) OptInt {
	return OptInt{set: true, value: &v}
}

// ClearInt returns an OptInt that clears the bound.
func ClearInt() OptInt {
	return OptInt{set: true}
}

// Patch is a typed partial update over State. Nil fields are left unchanged,
// so unknown keys are impossible by construction. Setting a text field to ""
// clears it.
type Patch struct {
	Location     *string
	StartDate    *string
	EndDate      *string
	HostID       *string
	CarType      *string
	Transmission *string
	FuelType     *string
	MinPrice     OptInt
	MaxPrice     OptInt
	Rating       *int
	Search       *string
	SortBy       *string
	Page         *int
	Limit        *int
	Capacity     *string
	Color        *string
	Mileage      *string
	Brand        *string
	Model        *string
}

// Reduce merges patch over current and returns the next state. Touching any
// field other than Page resets Page to 1: pagination follows filters, never
// the other way around. Reduce performs no validation; invalid values pass
// through unchanged.
func Reduce(current State, patch Patch) State {
	next := current
	touched := false

	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
			touched = true
		}
	}

	apply(&next.Location, patch.Location)
	apply(&next.StartDate, patch.StartDate)
	apply(&next.EndDate, patch.EndDate)
	apply(&next.HostID, patch.HostID)
	apply(&next.CarType, patch.CarType)
	apply(&next.Transmission, patch.Transmission)
	apply(&next.FuelType, patch.FuelType)
	apply(&next.Search, patch.Search)
	apply(&next.SortBy, patch.SortBy)
	apply(&next.Capacity, patch.Capacity)
	apply(&next.Color, patch.Color)
	apply(&next.Mileage, patch.Mileage)
	apply(&next.Brand, patch.Brand)
	apply(&next.Model, patch.Model)

	if patch.MinPrice.set {
		next.MinPrice = copyIntPtr(patch.MinPrice.value)
		touched = true
	}
	if patch.MaxPrice.set {
		next.MaxPrice = copyIntPtr(patch.MaxPrice.value)
		touched = true
	}
	if patch.Rating != nil {
		next.Rating = *patch.Rating
		touched = true
	}
	if patch.Limit != nil {
		next.Limit = *patch.Limit
		touched = true
	}

	if patch.Page != nil {
		next.Page = *patch.Page
	}
	// A patch that touches anything but Page always lands on the first page,
	// even when it carries a Page value of its own.
	if touched {
		next.Page = 1
	}

	return next
}

func copyIntPtr(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
