package mycars

import (
	apphttp "autorent_portal/internal/http"
	"autorent_portal/internal/listings"
	"autorent_portal/platform/config"
	"autorent_portal/platform/httpkit"
	"autorent_portal/platform/logger"
)

// Module wires the host listing management HTTP routes.
type Module struct {
	handler *Handler
}

func NewModule(client *listings.Client, cfg config.PaginationConfig, log *logger.Logger) *Module {
	svc := NewService(client, cfg, log)
	return &Module{handler: NewHandler(svc)}
}

func (m *Module) Name() string {
	return "mycars"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	// Car detail is public: visitors open listings without an account.
	detail := ctx.V1.Group("/cars")
	detail.Use(httpkit.AuthOptional(ctx.Config))
	detail.GET("/:id", m.handler.Get)

	ctx.Host.GET("/my-cars", m.handler.List)

	cars := ctx.Host.Group("/cars")
	cars.POST("", m.handler.Create)
	cars.PUT("/:id", m.handler.Update)
	cars.DELETE("/:id", m.handler.Delete)
	cars.PATCH("/:id/availability", m.handler.SetAvailability)
}

var _ apphttp.Module = (*Module)(nil)
