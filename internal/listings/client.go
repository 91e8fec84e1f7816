package listings

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"autorent_portal/platform/apperr"
	"autorent_portal/platform/config"
	"autorent_portal/platform/logger"
)

const genericFetchError = "no se pudo contactar al servicio de autos"

// Client is the HTTP client for the listings collaborator.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient creates a listings client with the configured fetch timeout.
func NewClient(cfg config.ListingsAPIConfig, log *logger.Logger) *Client {
	timeout := cfg.GetFetchTimeout()
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL: strings.TrimSuffix(cfg.GetListingsAPIURL(), "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Search fetches a page of public listings. The token is optional; when
// present it is forwarded so the collaborator can personalize results.
func (c *Client) Search(ctx context.Context, query url.Values, token string) (*Page, error) {
	return c.fetchPage(ctx, "/cars", query, token)
}

// MyCars fetches a page of the authenticated host's own listings.
func (c *Client) MyCars(ctx context.Context, query url.Values, token string) (*Page, error) {
	if token == "" {
		return nil, apperr.Unauthorized("debes iniciar sesión para ver tus autos")
	}
	return c.fetchPage(ctx, "/cars/my-cars", query, token)
}

// Get fetches a single listing by ID.
func (c *Client) Get(ctx context.Context, id int, token string) (*Car, error) {
	var car Car
	if err := c.do(ctx, http.MethodGet, "/cars/"+strconv.Itoa(id), nil, token, &car); err != nil {
		return nil, err
	}
	return &car, nil
}

// Create creates a listing with URL-based photos (JSON body).
func (c *Client) Create(ctx context.Context, form CarForm, token string) (*Car, error) {
	body, err := json.Marshal(form)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "no se pudo serializar el auto", err)
	}

	var created createCarResponse
	if err := c.doBody(ctx, http.MethodPost, "/cars", "application/json", bytes.NewReader(body), token, &created); err != nil {
		return nil, err
	}
	return created.car(), nil
}

// CreateMultipart creates a listing with uploaded photo files.
func (c *Client) CreateMultipart(ctx context.Context, form CarForm, photos []PhotoUpload, token string) (*Car, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fields := map[string]string{
		"location":     form.Location,
		"brand":        form.Brand,
		"model":        form.Model,
		"year":         form.Year,
		"carType":      form.CarType,
		"color":        form.Color,
		"pricePerDay":  form.PricePerDay,
		"kilometers":   form.Kilometers,
		"licensePlate": form.LicensePlate,
		"transmission": form.Transmission,
		"fuelType":     form.FuelType,
		"seats":        form.Seats,
		"description":  form.Description,
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "no se pudo armar el formulario", err)
		}
	}
	for _, item := range form.ExtraEquipment {
		if err := writer.WriteField("extraEquipment", item); err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "no se pudo armar el formulario", err)
		}
	}

	for _, photo := range photos {
		part, err := writer.CreateFormFile("photos", photo.Filename)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "no se pudo adjuntar la foto", err)
		}
		if _, err := part.Write(photo.Data); err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "no se pudo adjuntar la foto", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "no se pudo armar el formulario", err)
	}

	var created createCarResponse
	if err := c.doBody(ctx, http.MethodPost, "/cars", writer.FormDataContentType(), &buf, token, &created); err != nil {
		return nil, err
	}
	return created.car(), nil
}

// Update replaces a listing's editable attributes.
func (c *Client) Update(ctx context.Context, id int, form CarForm, token string) (*Car, error) {
	body, err := json.Marshal(form)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "no se pudo serializar el auto", err)
	}

	var updated createCarResponse
	if err := c.doBody(ctx, http.MethodPut, "/cars/"+strconv.Itoa(id), "application/json", bytes.NewReader(body), token, &updated); err != nil {
		return nil, err
	}
	return updated.car(), nil
}

// Delete removes a listing.
func (c *Client) Delete(ctx context.Context, id int, token string) error {
	return c.do(ctx, http.MethodDelete, "/cars/"+strconv.Itoa(id), nil, token, nil)
}

// UpdateAvailability replaces a listing's blocked-out dates (yyyy-mm-dd).
func (c *Client) UpdateAvailability(ctx context.Context, id int, unavailableDates []string, token string) error {
	payload := struct {
		UnavailableDates []string `json:"unavailableDates"`
	}{UnavailableDates: unavailableDates}

	body, err := json.Marshal(payload)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "no se pudo serializar las fechas", err)
	}

	path := fmt.Sprintf("/cars/%d/availability", id)
	return c.doBody(ctx, http.MethodPatch, path, "application/json", bytes.NewReader(body), token, nil)
}

// createCarResponse tolerates both bare car payloads and {car: {...}}
// envelopes; the collaborator uses the envelope on create and update.
type createCarResponse struct {
	Wrapped *Car `json:"car"`
	Car
}

func (r *createCarResponse) car() *Car {
	if r.Wrapped != nil {
		return r.Wrapped
	}
	return &r.Car
}

func (c *Client) fetchPage(ctx context.Context, path string, query url.Values, token string) (*Page, error) {
	endpoint := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, genericFetchError, err)
	}
	setHeaders(req, "", token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.CollaboratorError("fetch listings", endpoint, err)
		return nil, apperr.Wrap(apperr.KindUnavailable, genericFetchError, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, c.decodeError(resp, endpoint)
	}

	var page Page
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		c.log.CollaboratorError("decode listings", endpoint, err)
		return nil, apperr.Wrap(apperr.KindUnavailable, genericFetchError, err)
	}
	if page.Items == nil {
		page.Items = []Car{}
	}

	return &page, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, token string, out interface{}) error {
	return c.doBody(ctx, method, path, "application/json", body, token, out)
}

func (c *Client) doBody(ctx context.Context, method, path, contentType string, body io.Reader, token string, out interface{}) error {
	endpoint := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, genericFetchError, err)
	}
	setHeaders(req, contentType, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.CollaboratorError(method+" "+path, endpoint, err)
		return apperr.Wrap(apperr.KindUnavailable, genericFetchError, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.decodeError(resp, endpoint)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.CollaboratorError("decode "+path, endpoint, err)
		return apperr.Wrap(apperr.KindUnavailable, genericFetchError, err)
	}
	return nil
}

// decodeError turns a collaborator error payload into a typed domain error,
// preferring the collaborator's own message when it sends one.
func (c *Client) decodeError(resp *http.Response, endpoint string) error {
	message := genericFetchError

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err := json.Unmarshal(raw, &payload); err == nil {
		if payload.Error != "" {
			message = payload.Error
		} else if payload.Message != "" {
			message = payload.Message
		}
	}

	c.log.CollaboratorError(fmt.Sprintf("status %d", resp.StatusCode), endpoint, fmt.Errorf("%s", message))

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return apperr.Unauthorized(message)
	case http.StatusForbidden:
		return apperr.Forbidden(message)
	case http.StatusNotFound:
		return apperr.NotFound(message)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return apperr.BadRequest(message)
	default:
		return apperr.Unavailable(message)
	}
}

func setHeaders(req *http.Request, contentType, token string) {
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}
