package hosts

import (
	"errors"
	"net/http"

	"autorent_portal/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler exposes the host autocomplete endpoint.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Search handles GET /api/v1/hosts?search=...
func (h *Handler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "query 'search' is required", nil)
		return
	}

	// Debounce per caller so one fast typist doesn't spam the collaborator.
	callerKey := c.ClientIP()
	if identity := httpkit.GetIdentity(c); identity.IsAuthenticated() {
		callerKey = identity.UserID()
	}

	suggestions, err := h.svc.SearchHosts(c.Request.Context(), callerKey, req.Search)
	if err != nil {
		if errors.Is(err, ErrSuperseded) {
			// A newer keystroke took over; this response would be discarded
			// by the caller anyway.
			httpkit.OK(c, []Suggestion{})
			return
		}
		httpkit.HandleError(c, err)
		return
	}

	httpkit.OK(c, suggestions)
}
