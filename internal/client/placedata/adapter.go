package placedataclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Config parameterizes one external data source keyed by a place name.
type Config struct {
	Name        string
	Description string
	BaseURL     string
	PlaceParam  string
	KeyParam    string
	// KeyHeader, when set, carries the API key instead of KeyParam.
	KeyHeader string
	APIKey    string
	Params    map[string]string
}

type Adapter struct {
	cfg    Config
	client *http.Client
}

func NewAdapter(cfg Config, client *http.Client) *Adapter {
	if client == nil {
		client = http.DefaultClient
	}
	return &Adapter{cfg: cfg, client: client}
}

func (a *Adapter) Name() string        { return a.cfg.Name }
func (a *Adapter) Description() string { return a.cfg.Description }

// Fetch issues exactly one GET for place and returns the body unparsed.
// A non-2xx status is not an error; the body is returned as received.
func (a *Adapter) Fetch(ctx context.Context, place string) ([]byte, error) {
	req, err := a.newRequest(ctx, place)
	if err != nil {
		return nil, err
	}

	resp, err := a.client.Do(req)
	if err != nil {
		// *url.Error repeats the request URL, key included.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			return nil, uerr.Err
		}
		return nil, err
	}
	defer resp.Body.Close()

	return io.ReadAll(resp.Body)
}

func (a *Adapter) newRequest(ctx context.Context, place string) (*http.Request, error) {
	u, err := url.Parse(a.cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid base url: %w", a.cfg.Name, err)
	}

	q := u.Query()
	for k, v := range a.cfg.Params {
		q.Set(k, v)
	}
	q.Set(a.cfg.PlaceParam, place)
	if a.cfg.KeyHeader == "" && a.cfg.KeyParam != "" {
		q.Set(a.cfg.KeyParam, a.cfg.APIKey)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", a.cfg.Name, err)
	}
	req.Header.Set("Accept", "application/json")
	if a.cfg.KeyHeader != "" {
		req.Header.Set(a.cfg.KeyHeader, a.cfg.APIKey)
	}
	return req, nil
}
