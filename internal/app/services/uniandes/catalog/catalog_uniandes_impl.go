package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"senehorario-service/internal/app/config"
	"senehorario-service/internal/app/contracts"
	"senehorario-service/internal/pkg/catalog_dto"
	"senehorario-service/internal/pkg/constvars"
	"senehorario-service/internal/pkg/exceptions"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

type uniandesCatalogClient struct {
	BaseUrl    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewUniandesCatalogClient builds a client for the public course-offering
// search endpoint. Outbound calls share one rate limiter so the service
// never hammers the university API, no matter how many callers fan in.
func NewUniandesCatalogClient(internalConfig *config.InternalConfig) contracts.CourseCatalogClient {
	return &uniandesCatalogClient{
		BaseUrl: internalConfig.Catalog.BaseUrl,
		httpClient: &http.Client{
			Timeout: time.Duration(internalConfig.Catalog.RequestTimeoutInSeconds) * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(internalConfig.Catalog.RequestsPerSecond), 1),
	}
}

// SearchOfferings runs a name-only search. The catalog matches course names
// in upper case, and the remaining filter parameters are sent empty on
// purpose; sending them at all is required for the endpoint to answer.
func (c *uniandesCatalogClient) SearchOfferings(ctx context.Context, nameInput string) ([]catalog_dto.CourseOffering, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrCatalogLimiterWait(err)
	}

	searchURL := fmt.Sprintf("%s?term=&ptrm=&prefix=&attr=&nameInput=%s", c.BaseUrl, url.QueryEscape(strings.ToUpper(nameInput)))
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, searchURL, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrCatalogSearchRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, exceptions.ErrCatalogBadStatus(fmt.Errorf("catalog returned %s", resp.Status), resp.StatusCode)
	}

	var offerings []catalog_dto.CourseOffering
	if err := json.NewDecoder(resp.Body).Decode(&offerings); err != nil {
		return nil, exceptions.ErrCatalogDecodeResponse(err)
	}

	return offerings, nil
}
