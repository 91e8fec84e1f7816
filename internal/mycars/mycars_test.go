package mycars

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"autorent_portal/internal/listings"
	"autorent_portal/platform/apperr"
	"autorent_portal/platform/logger"
)

type testConfig struct {
	url string
}

func (c testConfig) GetListingsAPIURL() string      { return c.url }
func (c testConfig) GetFetchTimeout() time.Duration { return 2 * time.Second }
func (c testConfig) GetSearchPageSize() int         { return 10 }
func (c testConfig) GetMyCarsPageSize() int         { return 4 }

func newTestService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := testConfig{url: server.URL}
	log := logger.New("development")
	return NewService(listings.NewClient(cfg, log), cfg, log)
}

func validRequest() CarFormRequest {
	return CarFormRequest{
		Location:     "Cochabamba",
		Brand:        "Toyota",
		Model:        "Corolla",
		Year:         "2020",
		CarType:      "Sedan",
		Color:        "rojo",
		PricePerDay:  "45",
		Kilometers:   "10.000 km",
		LicensePlate: "abc1234",
		Transmission: "Manual",
		FuelType:     "Gasolina",
		Seats:        "5",
		PhotoUrls:    []string{"https://a/1.jpg", "https://a/2.jpg", "https://a/3.jpg"},
	}
}

func TestCreate_InvalidFormNeverReachesCollaborator(t *testing.T) {
	called := false
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := validRequest()
	req.PhotoUrls = []string{"https://a/1.jpg", "https://a/2.jpg"}

	_, err := svc.Create(context.Background(), req, nil, "tok")
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	details := err.(*apperr.Error).Details.(map[string]string)
	if details["photoUrls"] != "Debes proporcionar al menos 3 URLs de fotos" {
		t.Fatalf("expected the photo message, got %v", details)
	}
	if called {
		t.Fatal("failing form must not reach the collaborator")
	}
}

func TestCreate_FormatsLicensePlateOnTheWire(t *testing.T) {
	var sent listings.CarForm
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&sent); err != nil {
			t.Errorf("failed to decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"car":{"id":1}}`))
	})

	if _, err := svc.Create(context.Background(), validRequest(), nil, "tok"); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if sent.LicensePlate != "ABC1-234" {
		t.Fatalf("expected formatted plate, got %q", sent.LicensePlate)
	}
}

func TestCreate_UploadedPhotosSatisfyMinimum(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"car":{"id":1}}`))
	})

	req := validRequest()
	req.PhotoUrls = nil
	photos := []listings.PhotoUpload{
		{Filename: "1.jpg", Data: []byte("a")},
		{Filename: "2.jpg", Data: []byte("b")},
		{Filename: "3.jpg", Data: []byte("c")},
	}

	if _, err := svc.Create(context.Background(), req, photos, "tok"); err != nil {
		t.Fatalf("create with uploaded photos failed: %v", err)
	}
}

func TestUpdate_DoesNotRequirePhotos(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"car":{"id":7}}`))
	})

	req := validRequest()
	req.PhotoUrls = nil

	car, err := svc.Update(context.Background(), 7, req, "tok")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if car.ID != 7 {
		t.Fatalf("unexpected car: %+v", car)
	}
}

func TestList_ForwardsFiltersAndPageSize(t *testing.T) {
	var gotPath, gotQuery string
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"cars":[],"totalCars":0,"currentPage":2,"totalPages":3}`))
	})

	resp, err := svc.List(context.Background(), "host-1", "tok", ListRequest{Brand: "Toyota", Page: 2})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if gotPath != "/cars/my-cars" {
		t.Fatalf("expected my-cars path, got %q", gotPath)
	}
	if gotQuery != "brand=Toyota&limit=4&page=2&sortBy=relevance" {
		t.Fatalf("unexpected query: %q", gotQuery)
	}
	if resp.CurrentPage != 2 || resp.TotalPages != 3 {
		t.Fatalf("pagination metadata must pass through, got %+v", resp)
	}
}

func TestSetAvailability(t *testing.T) {
	var gotMethod, gotPath string
	var payload struct {
		UnavailableDates []string `json:"unavailableDates"`
	}
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&payload)
		w.WriteHeader(http.StatusNoContent)
	})

	err := svc.SetAvailability(context.Background(), 9, []string{"2026-09-01", "2026-09-02"}, "tok")
	if err != nil {
		t.Fatalf("availability failed: %v", err)
	}
	if gotMethod != http.MethodPatch || gotPath != "/cars/9/availability" {
		t.Fatalf("expected PATCH /cars/9/availability, got %s %s", gotMethod, gotPath)
	}
	if len(payload.UnavailableDates) != 2 {
		t.Fatalf("expected dates forwarded, got %v", payload.UnavailableDates)
	}
}

func TestList_HostsDoNotSeeEachOthersListings(t *testing.T) {
	releaseA := make(chan struct{})
	started := make(chan struct{}, 2)
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		started <- struct{}{}
		if r.Header.Get("Authorization") == "Bearer token-host-a" {
			<-releaseA
			_, _ = w.Write([]byte(`{"cars":[{"id":1,"brand":"HostA"}],"totalCars":1,"currentPage":1,"totalPages":1}`))
			return
		}
		_, _ = w.Write([]byte(`{"cars":[{"id":2,"brand":"HostB"}],"totalCars":1,"currentPage":1,"totalPages":1}`))
	})

	type outcome struct {
		resp *ListResponse
		err  error
	}
	slow := make(chan outcome, 1)
	go func() {
		resp, err := svc.List(context.Background(), "host-a", "token-host-a", ListRequest{})
		slow <- outcome{resp, err}
	}()
	<-started

	// Host B lists their own cars while host A's request is still in flight.
	if _, err := svc.List(context.Background(), "host-b", "token-host-b", ListRequest{}); err != nil {
		t.Fatalf("host B's list failed: %v", err)
	}

	close(releaseA)

	got := <-slow
	if got.err != nil {
		t.Fatalf("host A's list failed: %v", got.err)
	}
	if len(got.resp.Cars) != 1 || got.resp.Cars[0].Brand != "HostA" {
		t.Fatalf("host A must receive only their own listings, got %+v", got.resp.Cars)
	}
}

func TestList_SupersededBeforeFirstSuccessReturnsEmptyPage(t *testing.T) {
	releaseA := make(chan struct{})
	releaseB := make(chan struct{})
	started := make(chan struct{}, 2)
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		started <- struct{}{}
		if r.URL.Query().Get("brand") == "Toyota" {
			<-releaseA
		} else {
			<-releaseB
		}
		_, _ = w.Write([]byte(`{"cars":[{"id":1}],"totalCars":1,"currentPage":1,"totalPages":1}`))
	})

	type outcome struct {
		resp *ListResponse
		err  error
	}
	first := make(chan outcome, 1)
	go func() {
		resp, err := svc.List(context.Background(), "host-1", "tok", ListRequest{Brand: "Toyota"})
		first <- outcome{resp, err}
	}()
	<-started

	second := make(chan outcome, 1)
	go func() {
		resp, err := svc.List(context.Background(), "host-1", "tok", ListRequest{Brand: "Honda"})
		second <- outcome{resp, err}
	}()
	<-started

	// Only the superseded request completes; no load has succeeded yet.
	close(releaseA)

	got := <-first
	if got.err != nil {
		t.Fatalf("superseded list must not error: %v", got.err)
	}
	if got.resp == nil || got.resp.Cars == nil || len(got.resp.Cars) != 0 {
		t.Fatalf("superseded list before any success must return an empty page, got %+v", got.resp)
	}

	close(releaseB)
	if got := <-second; got.err != nil {
		t.Fatalf("newest list failed: %v", got.err)
	}
}
