package searchui

import (
	"autorent_portal/internal/history"
	apphttp "autorent_portal/internal/http"
	"autorent_portal/internal/listings"
	"autorent_portal/platform/config"
	"autorent_portal/platform/httpkit"
	"autorent_portal/platform/logger"
	"autorent_portal/platform/validator"
)

// Module wires the public search HTTP routes.
type Module struct {
	handler *Handler
}

func NewModule(client *listings.Client, store history.Store, val *validator.Validator, cfg config.PaginationConfig, log *logger.Logger) *Module {
	loader := listings.NewLoader(client, log)
	svc := NewService(loader, store, val, cfg, log)
	return &Module{handler: NewHandler(svc)}
}

func (m *Module) Name() string {
	return "searchui"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/search")
	group.Use(httpkit.AuthOptional(ctx.Config))
	group.GET("", m.handler.Search)
	group.GET("/suggest", m.handler.Suggest)
	group.GET("/facets", m.handler.Facets)
}

var _ apphttp.Module = (*Module)(nil)
