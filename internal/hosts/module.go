package hosts

import (
	apphttp "autorent_portal/internal/http"
	"autorent_portal/platform/config"
	"autorent_portal/platform/logger"
)

// Module wires the host autocomplete HTTP routes.
type Module struct {
	handler *Handler
}

func NewModule(cfg config.HostsAPIConfig, log *logger.Logger) *Module {
	svc := NewService(cfg, log)
	h := NewHandler(svc)
	return &Module{handler: h}
}

func (m *Module) Name() string {
	return "hosts"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/hosts", m.handler.Search)
}

var _ apphttp.Module = (*Module)(nil)
