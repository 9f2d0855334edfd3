package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/logger"
	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/utils"
)

// Place is one geocoding search hit. Nominatim returns a short name for some
// POI classes and only a long display_name for others.
type Place struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

// Label returns the short name, falling back to the first comma segment of
// the long descriptive name.
func (p Place) Label() string {
	if strings.TrimSpace(p.Name) != "" {
		return p.Name
	}
	segments := strings.SplitN(p.DisplayName, ",", 2)
	return strings.TrimSpace(segments[0])
}

type Searcher interface {
	Search(ctx context.Context, term string, location string) ([]Place, error)
}

type client struct {
	log        *logger.Logger
	baseURL    string
	userAgent  string
	limit      int
	httpClient *http.Client
}

func NewClient(log *logger.Logger) Searcher {
	clientLog := log.With("client", "PlacesClient")
	baseURL := strings.TrimRight(utils.GetEnv("PLACES_BASE_URL", "https://nominatim.openstreetmap.org", log), "/")
	timeoutSec := utils.GetEnvAsInt("PLACES_TIMEOUT_SECONDS", 5, log)
	limit := utils.GetEnvAsInt("PLACES_RESULT_LIMIT", 3, log)
	return &client{
		log:        clientLog,
		baseURL:    baseURL,
		userAgent:  "MentalWellnessApp/2.0",
		limit:      limit,
		httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
	}
}

// Search issues one bounded query scoped to "<term>,<location>". Nominatim
// prefers the comma-joined query form.
func (c *client) Search(ctx context.Context, term string, location string) ([]Place, error) {
	q := url.Values{}
	q.Set("q", term+","+location)
	q.Set("format", "json")
	q.Set("limit", strconv.Itoa(c.limit))

	endpoint := c.baseURL + "/search?" + q.Encode()
	c.log.Debug("Place search", "url", endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build place search request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindTimeoutOrNetwork, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &Error{Kind: KindStatus, Status: resp.StatusCode, Err: fmt.Errorf("%s", strings.TrimSpace(string(snippet)))}
	}

	var results []Place
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, &Error{Kind: KindDecode, Err: err}
	}
	c.log.Debug("Place search results", "count", len(results))
	return results, nil
}
