package searchui

import (
	"context"

	"autorent_portal/internal/filters"
	"autorent_portal/internal/filters/catalog"
	"autorent_portal/internal/history"
	"autorent_portal/internal/listings"
	"autorent_portal/platform/apperr"
	"autorent_portal/platform/config"
	"autorent_portal/platform/logger"
	"autorent_portal/platform/validator"
)

// Service executes searches against the listings collaborator and keeps the
// per-user search history alongside.
type Service struct {
	loader  *listings.Loader
	history history.Store
	val     *validator.Validator
	limit   int
	log     *logger.Logger
}

func NewService(loader *listings.Loader, store history.Store, val *validator.Validator, cfg config.PaginationConfig, log *logger.Logger) *Service {
	return &Service{
		loader:  loader,
		history: store,
		val:     val,
		limit:   cfg.GetSearchPageSize(),
		log:     log,
	}
}

// Search validates the request, folds it over the default filter state and
// loads the matching page. A non-empty search term is recorded in the
// caller's history.
func (s *Service) Search(ctx context.Context, owner, token string, req SearchRequest) (*SearchResponse, error) {
	if err := s.val.Struct(req); err != nil {
		return nil, apperr.Validation("parámetros de búsqueda no válidos")
	}
	if err := validateFacets(req); err != nil {
		return nil, err
	}

	state := filters.Reduce(filters.Default(s.limit), req.toPatch())
	if req.Page > 1 {
		page := req.Page
		state = filters.Reduce(state, filters.Patch{Page: &page})
	}

	if state.Search != "" {
		s.history.Record(ctx, owner, state.Search)
	}

	result := s.loader.Load(ctx, owner, state, token)
	if result.Err != nil && result.Page == nil {
		return nil, result.Err
	}

	return buildResponse(result), nil
}

// Suggest returns history entries matching the typed partial.
func (s *Service) Suggest(ctx context.Context, owner string, partial string) []string {
	return s.history.Suggest(ctx, owner, partial)
}

func buildResponse(result listings.Result) *SearchResponse {
	page := result.Page
	if page == nil {
		page = &listings.Page{Items: []listings.Car{}}
	}

	resp := &SearchResponse{
		Cars:        page.Items,
		TotalCars:   page.TotalItems,
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
		NoResults:   result.NoResults,
		Stale:       result.Stale,
	}
	if result.Err != nil {
		resp.Error = result.Err.Error()
	}
	return resp
}

func validateFacets(req SearchRequest) error {
	facets := catalog.Get()

	if !facets.ValidLocation(req.Location) {
		return apperr.Validation("Ubicación no válida")
	}
	if !facets.ValidCarType(req.CarType) {
		return apperr.Validation("Tipo de auto no válido")
	}
	if !facets.ValidTransmission(req.Transmission) {
		return apperr.Validation("Transmisión no válida")
	}
	if !facets.ValidFuelType(req.FuelType) {
		return apperr.Validation("Tipo de combustible no válido")
	}
	if !facets.ValidSortKey(req.SortBy) {
		return apperr.Validation("Orden no válido")
	}
	if !facets.ValidCapacity(req.Capacity) {
		return apperr.Validation("Capacidad no válida")
	}
	if !facets.ValidColor(req.Color) {
		return apperr.Validation("Color no válido")
	}
	if !facets.ValidMileage(req.Mileage) {
		return apperr.Validation("Kilometraje no válido")
	}
	if req.MinPrice != nil && req.MaxPrice != nil && *req.MinPrice > *req.MaxPrice {
		return apperr.Validation("El precio mínimo no puede ser mayor al precio máximo")
	}
	if req.StartDate != "" && req.EndDate != "" && req.StartDate > req.EndDate {
		return apperr.Validation("La fecha de inicio no puede ser posterior a la fecha final")
	}

	return nil
}
