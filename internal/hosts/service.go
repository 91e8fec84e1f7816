package hosts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"autorent_portal/platform/apperr"
	"autorent_portal/platform/config"
	"autorent_portal/platform/logger"
	"autorent_portal/platform/sanitize"
)

// Service searches hosts by name against the hosts collaborator.
type Service struct {
	baseURL  string
	client   *http.Client
	debounce *Debouncer
	log      *logger.Logger
}

func NewService(cfg config.HostsAPIConfig, log *logger.Logger) *Service {
	return &Service{
		baseURL:  strings.TrimSuffix(cfg.GetHostsAPIURL(), "/"),
		client:   &http.Client{Timeout: cfg.GetFetchTimeout()},
		debounce: NewDebouncer(cfg.GetHostSearchDebounce()),
		log:      log,
	}
}

// SearchHosts returns host suggestions matching the typed name. Calls are
// debounced per caller key; a call superseded by a faster typist returns
// ErrSuperseded and never reaches the collaborator.
func (s *Service) SearchHosts(ctx context.Context, callerKey, search string) ([]Suggestion, error) {
	search = sanitize.SearchText(search)
	if search == "" {
		return []Suggestion{}, nil
	}

	if err := s.debounce.Wait(ctx, callerKey); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("search", search)
	endpoint := s.baseURL + "/hosts?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "no se pudo buscar anfitriones", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.CollaboratorError("search hosts", endpoint, err)
		return nil, apperr.Wrap(apperr.KindUnavailable, "no se pudo buscar anfitriones", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		s.log.CollaboratorError("search hosts", endpoint, fmt.Errorf("upstream api error: %d", resp.StatusCode))
		return nil, apperr.Unavailable("no se pudo buscar anfitriones")
	}

	var suggestions []Suggestion
	if err := json.NewDecoder(resp.Body).Decode(&suggestions); err != nil {
		s.log.CollaboratorError("decode hosts", endpoint, err)
		return nil, apperr.Wrap(apperr.KindUnavailable, "no se pudo buscar anfitriones", err)
	}
	if suggestions == nil {
		suggestions = []Suggestion{}
	}

	return suggestions, nil
}
