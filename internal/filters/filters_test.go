package filters

import (
	"testing"
)

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }

func TestReduce_NonPagePatchResetsPage(t *testing.T) {
	state := Default(10)
	state.Page = 7

	next := Reduce(state, Patch{CarType: strPtr("SUV")})

	if next.CarType != "SUV" {
		t.Fatalf("expected carType SUV, got %q", next.CarType)
	}
	if next.Page != 1 {
		t.Fatalf("expected page reset to 1, got %d", next.Page)
	}
}

func TestReduce_PageOnlyPatchChangesOnlyPage(t *testing.T) {
	state := Default(10)
	state.Location = "La Paz"
	state.Rating = 4

	next := Reduce(state, Patch{Page: intPtr(3)})

	if next.Page != 3 {
		t.Fatalf("expected page 3, got %d", next.Page)
	}
	next.Page = state.Page
	if next != state {
		t.Fatalf("page-only patch must not touch other fields: %+v vs %+v", next, state)
	}
}

func TestReduce_MixedPatchStillLandsOnFirstPage(t *testing.T) {
	state := Default(10)
	state.Page = 4

	next := Reduce(state, Patch{Search: strPtr("toyota"), Page: intPtr(9)})

	if next.Page != 1 {
		t.Fatalf("expected page forced to 1, got %d", next.Page)
	}
}

func TestReduce_ClearsPriceBounds(t *testing.T) {
	state := Default(10)
	state.MinPrice = intPtr(15)
	state.MaxPrice = intPtr(80)

	next := Reduce(state, Patch{MinPrice: ClearInt(), MaxPrice: ClearInt()})

	if next.MinPrice != nil || next.MaxPrice != nil {
		t.Fatalf("expected price bounds cleared, got %v / %v", next.MinPrice, next.MaxPrice)
	}
	if next.Page != 1 {
		t.Fatalf("expected page reset, got %d", next.Page)
	}
}

func TestReduce_SetPriceCopiesValue(t *testing.T) {
	state := Default(10)

	next := Reduce(state, Patch{MinPrice: SetInt(20)})

	if next.MinPrice == nil || *next.MinPrice != 20 {
		t.Fatalf("expected minPrice 20, got %v", next.MinPrice)
	}
	if state.MinPrice != nil {
		t.Fatal("reduce must not mutate the input state")
	}
}

func TestIsActive_DefaultStateInactive(t *testing.T) {
	if IsActive(Default(10)) {
		t.Fatal("default state must not count as active")
	}
}

func TestIsActive_SingleFieldTogglesActivity(t *testing.T) {
	cases := map[string]Patch{
		"location":     {Location: strPtr("Santa Cruz")},
		"startDate":    {StartDate: strPtr("2026-09-01")},
		"endDate":      {EndDate: strPtr("2026-09-05")},
		"hostId":       {HostID: strPtr("42")},
		"carType":      {CarType: strPtr("Camioneta")},
		"transmission": {Transmission: strPtr("Manual")},
		"fuelType":     {FuelType: strPtr("Gas")},
		"minPrice":     {MinPrice: SetInt(15)},
		"maxPrice":     {MaxPrice: SetInt(90)},
		"rating":       {Rating: intPtr(3)},
		"sortBy":       {SortBy: strPtr("priceAsc")},
		"capacidad":    {Capacity: strPtr("3 a 5 personas")},
		"color":        {Color: strPtr("rojo")},
		"kilometrajes": {Mileage: strPtr("0 – 10.000 km")},
		"brand":        {Brand: strPtr("Toyota")},
		"model":        {Model: strPtr("Corolla")},
	}

	for name, patch := range cases {
		state := Reduce(Default(10), patch)
		if !IsActive(state) {
			t.Fatalf("%s: expected active after patch", name)
		}
	}
}

func TestIsActive_SearchExcludedByDefault(t *testing.T) {
	state := Reduce(Default(10), Patch{Search: strPtr("corolla")})

	if IsActive(state) {
		t.Fatal("free-text search alone must not count as an active filter")
	}
	if !IsActiveWith(state, ActiveOptions{IncludeSearch: true}) {
		t.Fatal("IncludeSearch option must count the query")
	}
}

func TestIsActive_RevertingFieldDeactivates(t *testing.T) {
	state := Reduce(Default(10), Patch{Transmission: strPtr("Automático")})
	state = Reduce(state, Patch{Transmission: strPtr("")})

	if IsActive(state) {
		t.Fatal("reverted field must deactivate the state")
	}
}

func TestQuery_OmitsEmptyAndStringifiesRest(t *testing.T) {
	state := Default(10)
	state.Location = "Cochabamba"
	state.MinPrice = intPtr(15)
	state.Rating = 4
	state.Page = 2

	params := Query(state)

	if got := params.Get("location"); got != "Cochabamba" {
		t.Fatalf("expected location Cochabamba, got %q", got)
	}
	if got := params.Get("minPrice"); got != "15" {
		t.Fatalf("expected minPrice 15, got %q", got)
	}
	if got := params.Get("rating"); got != "4" {
		t.Fatalf("expected rating 4, got %q", got)
	}
	if got := params.Get("page"); got != "2" {
		t.Fatalf("expected page 2, got %q", got)
	}
	if got := params.Get("sortBy"); got != SortRelevance {
		t.Fatalf("expected sortBy relevance, got %q", got)
	}
	if params.Has("search") || params.Has("maxPrice") || params.Has("carType") {
		t.Fatalf("unset fields must be omitted, got %v", params)
	}
}

func TestQuery_KeysStayWithinStateShape(t *testing.T) {
	known := map[string]bool{
		"location": true, "startDate": true, "endDate": true, "hostId": true,
		"carType": true, "transmission": true, "fuelType": true,
		"minPrice": true, "maxPrice": true, "rating": true, "search": true,
		"sortBy": true, "page": true, "limit": true,
		"capacidad": true, "color": true, "kilometrajes": true,
		"brand": true, "model": true,
	}

	state := Default(10)
	state.Location = "La Paz"
	state.StartDate = "2026-09-01"
	state.EndDate = "2026-09-03"
	state.HostID = "7"
	state.CarType = "SUV"
	state.Transmission = "Manual"
	state.FuelType = "Gasolina"
	state.MinPrice = intPtr(15)
	state.MaxPrice = intPtr(100)
	state.Rating = 5
	state.Search = "corolla"
	state.Capacity = "6 o más"
	state.Color = "negro"
	state.Mileage = "más de 50.000 km"
	state.Brand = "Toyota"
	state.Model = "Corolla"

	for key := range Query(state) {
		if !known[key] {
			t.Fatalf("query produced foreign key %q", key)
		}
	}
}

func TestQuery_Deterministic(t *testing.T) {
	state := Default(10)
	state.Search = "camioneta roja"
	state.CarType = "Camioneta"

	first := Query(state).Encode()
	second := Query(state).Encode()

	if first != second {
		t.Fatalf("query must be deterministic: %q vs %q", first, second)
	}
}
