package searchui

import (
	"net/http"

	"autorent_portal/internal/filters/catalog"
	"autorent_portal/platform/httpkit"
	"autorent_portal/platform/sanitize"

	"github.com/gin-gonic/gin"
)

// Handler exposes the search endpoints.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Search handles GET /api/v1/search. Anonymous and authenticated callers
// both land here; a token only adds history ownership and personalization.
func (h *Handler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "parámetros de búsqueda no válidos", nil)
		return
	}

	owner, token := callerIdentity(c)

	resp, err := h.svc.Search(c.Request.Context(), owner, token, req)
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}

	httpkit.OK(c, resp)
}

// Suggest handles GET /api/v1/search/suggest?q=...
func (h *Handler) Suggest(c *gin.Context) {
	var req SuggestRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "parámetros de búsqueda no válidos", nil)
		return
	}

	owner, _ := callerIdentity(c)
	partial := sanitize.SearchText(req.Query)

	suggestions := h.svc.Suggest(c.Request.Context(), owner, partial)
	httpkit.OK(c, SuggestResponse{Suggestions: suggestions})
}

// Facets handles GET /api/v1/search/facets: the fixed vocabularies the
// filter controls are built from.
func (h *Handler) Facets(c *gin.Context) {
	httpkit.OK(c, catalog.Get())
}

// callerIdentity resolves the history owner and forwarded token. Anonymous
// visitors get a history scoped to their client IP.
func callerIdentity(c *gin.Context) (owner, token string) {
	identity := httpkit.GetIdentity(c)
	if identity.IsAuthenticated() {
		return identity.UserID(), identity.Token()
	}
	return "anon:" + c.ClientIP(), ""
}
