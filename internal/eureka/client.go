// Package eureka resolves logical service names to running instances through
// a Eureka registry's REST interface.
package eureka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MrSnakeDoc/soccerfront/internal/logger"
	"github.com/MrSnakeDoc/soccerfront/internal/utils"
)

// ErrLookupFailed marks an attempt the registry did not answer with 2xx,
// including transport failures. Only these trigger the original-name fallback.
var ErrLookupFailed = errors.New("registry lookup failed")

// Client talks to one Eureka server. It keeps no state between calls.
type Client struct {
	baseURL string
	http    *http.Client
	logger  logger.Logger
}

// New returns a Client for the registry at baseURL (ex: http://localhost:8761).
// A nil httpClient falls back to http.DefaultClient.
func New(baseURL string, httpClient *http.Client, log logger.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		logger:  log.With(logger.String("component", "eureka")),
	}
}

// BaseURL returns the registry address the client queries.
func (c *Client) BaseURL() string { return c.baseURL }

// Resolve returns one instance of the named application, or false when the
// registry has none. Registry faults are logged and reported as false.
//
// Eureka stores application names uppercased, so the uppercased form is
// tried first; if that lookup fails and the original name differs, the
// original name is tried once.
func (c *Client) Resolve(ctx context.Context, name string) (Instance, bool) {
	if name == "" {
		c.logger.Warn("refusing to resolve an empty service name")
		return Instance{}, false
	}

	upper := strings.ToUpper(name)
	app, err := c.fetchApplication(ctx, upper)
	if err != nil && errors.Is(err, ErrLookupFailed) && upper != name {
		c.logger.Info("uppercase lookup failed, retrying with original name",
			logger.String("service", name),
			logger.Error(err))
		app, err = c.fetchApplication(ctx, name)
	}
	if err != nil {
		c.logger.Error("service lookup failed",
			logger.String("service", name),
			logger.Error(err))
		return Instance{}, false
	}

	if app == nil || len(app.Instances) == 0 {
		c.logger.Warn("no instances registered",
			logger.String("service", name))
		return Instance{}, false
	}

	inst, _ := SelectInstance(app.Instances)
	c.logger.Info("service resolved",
		logger.String("service", name),
		logger.String("instance_id", inst.InstanceID),
		logger.String("address", inst.BaseURL()),
		logger.String("status", string(inst.Status)))
	return inst, true
}

// Applications lists every registered application. Any failure yields an
// empty list.
func (c *Client) Applications(ctx context.Context) []Application {
	var body applicationsResponse
	if err := c.get(ctx, c.baseURL+"/eureka/apps", &body); err != nil {
		c.logger.Error("application listing failed", logger.Error(err))
		return []Application{}
	}

	apps := body.Applications.Application
	if apps == nil {
		apps = Applications{}
	}
	c.logger.Debug("applications listed", logger.Int("count", len(apps)))
	return apps
}

// SelectInstance returns the first UP instance, else the first one.
// It reports false only for an empty list.
func SelectInstance(instances []Instance) (Instance, bool) {
	if len(instances) == 0 {
		return Instance{}, false
	}
	for _, inst := range instances {
		if inst.Up() {
			return inst, true
		}
	}
	return instances[0], true
}

func (c *Client) fetchApplication(ctx context.Context, name string) (*Application, error) {
	endpoint := c.baseURL + "/eureka/apps/" + url.PathEscape(name)
	c.logger.Debug("looking up service", logger.String("url", endpoint))

	var body applicationResponse
	if err := c.get(ctx, endpoint, &body); err != nil {
		return nil, err
	}
	return body.Application, nil
}

// get issues a JSON GET and decodes the body into out.
func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}
	defer utils.DrainClose(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s returned %d", ErrLookupFailed, endpoint, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", endpoint, err)
	}
	return nil
}
