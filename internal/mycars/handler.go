package mycars

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"autorent_portal/internal/listings"
	"autorent_portal/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// maxPhotoBytes caps a single uploaded photo.
const maxPhotoBytes = 10 << 20

// Handler exposes the host's listing management endpoints.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// List handles GET /api/v1/my-cars.
func (h *Handler) List(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	var req ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "parámetros no válidos", nil)
		return
	}

	resp, err := h.svc.List(c.Request.Context(), identity.UserID(), identity.Token(), req)
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}

	httpkit.OK(c, resp)
}

// Get handles GET /api/v1/cars/:id.
func (h *Handler) Get(c *gin.Context) {
	id, ok := carID(c)
	if !ok {
		return
	}

	car, err := h.svc.Get(c.Request.Context(), id, httpkit.GetIdentity(c).Token())
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}

	httpkit.OK(c, car)
}

// Create handles POST /api/v1/cars, accepting either a JSON body with photo
// URLs or a multipart form with uploaded photo files.
func (h *Handler) Create(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	var req CarFormRequest
	var photos []listings.PhotoUpload

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.ShouldBind(&req); err != nil {
			httpkit.Error(c, http.StatusBadRequest, "formulario no válido", nil)
			return
		}
		var err error
		photos, err = readPhotos(c)
		if err != nil {
			httpkit.Error(c, http.StatusBadRequest, "no se pudieron leer las fotos", nil)
			return
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			httpkit.Error(c, http.StatusBadRequest, "formulario no válido", nil)
			return
		}
	}

	car, err := h.svc.Create(c.Request.Context(), req, photos, identity.Token())
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}

	httpkit.JSON(c, http.StatusCreated, car)
}

// Update handles PUT /api/v1/cars/:id.
func (h *Handler) Update(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	id, ok := carID(c)
	if !ok {
		return
	}

	var req CarFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "formulario no válido", nil)
		return
	}

	car, err := h.svc.Update(c.Request.Context(), id, req, identity.Token())
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}

	httpkit.OK(c, car)
}

// Delete handles DELETE /api/v1/cars/:id.
func (h *Handler) Delete(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	id, ok := carID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id, identity.Token()); err != nil {
		httpkit.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SetAvailability handles PATCH /api/v1/cars/:id/availability.
func (h *Handler) SetAvailability(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	id, ok := carID(c)
	if !ok {
		return
	}

	var req AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "fechas no válidas (yyyy-mm-dd)", nil)
		return
	}

	if err := h.svc.SetAvailability(c.Request.Context(), id, req.UnavailableDates, identity.Token()); err != nil {
		httpkit.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func carID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		httpkit.Error(c, http.StatusBadRequest, "id de auto no válido", nil)
		return 0, false
	}
	return id, true
}

func readPhotos(c *gin.Context) ([]listings.PhotoUpload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}

	files := form.File["photos"]
	photos := make([]listings.PhotoUpload, 0, len(files))
	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			return nil, err
		}

		data, err := io.ReadAll(io.LimitReader(file, maxPhotoBytes))
		_ = file.Close()
		if err != nil {
			return nil, err
		}

		photos = append(photos, listings.PhotoUpload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	return photos, nil
}
