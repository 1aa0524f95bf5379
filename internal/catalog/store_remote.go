package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"TTGear/internal/equipment"
)

var ErrUnexpectedStatus = errors.New("catalog unexpected status")

// RemoteStore reads from another catalog service over HTTP.
type RemoteStore struct {
	BaseURL string
	Client  *http.Client
}

func NewRemoteStore(baseURL string) *RemoteStore {
	if u, err := url.Parse(baseURL); err == nil && u.Scheme != "" && u.Host != "" {
		baseURL = strings.TrimRight(baseURL, "/")
	}
	return &RemoteStore{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: queryTimeout},
	}
}

func (c *RemoteStore) Ping(ctx context.Context) error {
	err := withTimeout(ctx, pingTimeout, func(ctx context.Context) error {
		return c.get(ctx, "/readyz", nil)
	})
	switch {
	case err == nil, errors.Is(err, equipment.ErrDataUnavailable):
		return err
	default:
		return unavailable(ctx, err)
	}
}

func (c *RemoteStore) ListRubbers(ctx context.Context) ([]equipment.Rubber, error) {
	var out []equipment.Rubber
	if err := c.get(ctx, "/rubbers", &out); err != nil {
		return nil, listErr(err)
	}
	if out == nil {
		return nil, fmt.Errorf("%w: /rubbers returned null", equipment.ErrInvalidRecord)
	}
	if err := (equipment.Dataset{Rubbers: out}).Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RemoteStore) ListBlades(ctx context.Context) ([]equipment.Blade, error) {
	var out []equipment.Blade
	if err := c.get(ctx, "/blades", &out); err != nil {
		return nil, listErr(err)
	}
	if out == nil {
		return nil, fmt.Errorf("%w: /blades returned null", equipment.ErrInvalidRecord)
	}
	if err := (equipment.Dataset{Blades: out}).Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RemoteStore) GetRubber(ctx context.Context, id string) (equipment.Rubber, error) {
	var r equipment.Rubber
	if err := c.get(ctx, "/rubbers/"+url.PathEscape(id), &r); err != nil {
		return equipment.Rubber{}, err
	}
	if err := r.Validate(); err != nil {
		return equipment.Rubber{}, err
	}
	return r, nil
}

func (c *RemoteStore) GetBlade(ctx context.Context, id string) (equipment.Blade, error) {
	var b equipment.Blade
	if err := c.get(ctx, "/blades/"+url.PathEscape(id), &b); err != nil {
		return equipment.Blade{}, err
	}
	if err := b.Validate(); err != nil {
		return equipment.Blade{}, err
	}
	return b, nil
}

func (c *RemoteStore) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", equipment.ErrDataUnavailable, err)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return unavailable(ctx, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		_, _ = io.Copy(io.Discard, resp.Body)
		return equipment.ErrNotFound
	case resp.StatusCode >= http.StatusInternalServerError:
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: status=%d", equipment.ErrDataUnavailable, resp.StatusCode)
	default:
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: status=%d", ErrUnexpectedStatus, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", equipment.ErrInvalidRecord, path, err)
	}
	return nil
}

// A list endpoint that is not there means the source is misconfigured,
// not that the collection is empty.
func listErr(err error) error {
	if errors.Is(err, equipment.ErrNotFound) {
		return fmt.Errorf("%w: list endpoint not found", equipment.ErrDataUnavailable)
	}
	return err
}
