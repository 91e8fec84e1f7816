package mycars

import (
	"context"

	"autorent_portal/internal/carform"
	"autorent_portal/internal/filters"
	"autorent_portal/internal/listings"
	"autorent_portal/platform/apperr"
	"autorent_portal/platform/config"
	"autorent_portal/platform/logger"
)

const msgFormInvalid = "El formulario contiene errores"

// Service proxies the host's listing operations to the collaborator after
// validating the form the way the UI does.
type Service struct {
	client *listings.Client
	loader *listings.Loader
	limit  int
	log    *logger.Logger
}

func NewService(client *listings.Client, cfg config.PaginationConfig, log *logger.Logger) *Service {
	return &Service{
		client: client,
		loader: listings.NewLoader(client, log),
		limit:  cfg.GetMyCarsPageSize(),
		log:    log,
	}
}

// List fetches a page of the host's own listings. The owner keys the
// loader's supersede tracking so hosts never observe each other's fetches.
func (s *Service) List(ctx context.Context, owner, token string, req ListRequest) (*ListResponse, error) {
	state := filters.Default(s.limit)

	patch := filters.Patch{}
	if req.Brand != "" {
		brand := req.Brand
		patch.Brand = &brand
	}
	if req.Model != "" {
		model := req.Model
		patch.Model = &model
	}
	state = filters.Reduce(state, patch)

	if req.Page > 1 {
		page := req.Page
		state = filters.Reduce(state, filters.Patch{Page: &page})
	}

	result := s.loader.LoadMyCars(ctx, owner, state, token)
	if result.Err != nil {
		return nil, result.Err
	}

	page := result.Page
	if page == nil {
		// Superseded before any load for this host succeeded.
		page = &listings.Page{Items: []listings.Car{}}
	}
	return &ListResponse{
		Cars:        page.Items,
		TotalCars:   page.TotalItems,
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
	}, nil
}

// Get fetches one listing.
func (s *Service) Get(ctx context.Context, id int, token string) (*listings.Car, error) {
	return s.client.Get(ctx, id, token)
}

// Create validates the form and creates the listing. When photo files are
// uploaded they take the multipart path; otherwise the photo URLs go as JSON.
// The collaborator is never called with a failing form.
func (s *Service) Create(ctx context.Context, req CarFormRequest, photos []listings.PhotoUpload, token string) (*listings.Car, error) {
	form := req.toForm()

	photoCount := carform.CountPhotoURLs(form.PhotoUrls)
	if len(photos) > 0 {
		photoCount = len(photos)
	}

	if errs := carform.Sweep(form, photoCount); len(errs) > 0 {
		return nil, apperr.Validation(msgFormInvalid).WithDetails(errs)
	}

	if len(photos) > 0 {
		return s.client.CreateMultipart(ctx, form, photos, token)
	}
	return s.client.Create(ctx, form, token)
}

// Update validates the editable fields and replaces the listing. Photos are
// kept as-is on edit, so the photo minimum is not re-checked.
func (s *Service) Update(ctx context.Context, id int, req CarFormRequest, token string) (*listings.Car, error) {
	form := req.toForm()

	if errs := carform.Sweep(form, carform.MinPhotoURLs); len(errs) > 0 {
		return nil, apperr.Validation(msgFormInvalid).WithDetails(errs)
	}

	return s.client.Update(ctx, id, form, token)
}

// Delete removes the listing.
func (s *Service) Delete(ctx context.Context, id int, token string) error {
	return s.client.Delete(ctx, id, token)
}

// SetAvailability replaces the listing's blocked-out dates.
func (s *Service) SetAvailability(ctx context.Context, id int, dates []string, token string) error {
	return s.client.UpdateAvailability(ctx, id, dates, token)
}
