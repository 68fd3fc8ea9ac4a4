// Package supabase reaches the hosted "messages" table through its PostgREST endpoint.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Wyydra/board/internal/core/domain"
	"github.com/samber/lo"
)

const restPath = "/rest/v1/"

// APIError is a non-2xx answer from PostgREST.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%d %s", e.Status, http.StatusText(e.Status))
	}
	return e.Message
}

// implements port.MessageCollection
type Collection struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewCollection(projectURL, apiKey, table string, client *http.Client) (*Collection, error) {
	if projectURL == "" || apiKey == "" {
		return nil, domain.ErrNotConfigured
	}
	u, err := url.Parse(strings.TrimRight(projectURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid project url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid project url %q", projectURL)
	}
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Collection{
		endpoint: u.String() + restPath + url.PathEscape(table),
		apiKey:   apiKey,
		client:   client,
	}, nil
}

// rowID accepts both numeric and string primary keys. null maps to the zero id.
type rowID string

func (id *rowID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = rowID(s)
		return nil
	}
	*id = rowID(b)
	return nil
}

type row struct {
	ID        rowID     `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func (r row) toDomain() domain.Message {
	return domain.Message{
		ID:        domain.MessageID(r.ID),
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
	}
}

func (c *Collection) List(ctx context.Context) ([]domain.Message, error) {
	q := url.Values{}
	q.Set("select", "id,content,created_at")
	q.Set("order", "created_at.desc")

	var rows []row
	if err := c.do(ctx, http.MethodGet, q, nil, "", &rows); err != nil {
		return nil, err
	}
	return lo.Map(rows, func(r row, _ int) domain.Message {
		return r.toDomain()
	}), nil
}

func (c *Collection) Create(ctx context.Context, content string) (domain.Message, error) {
	body, err := json.Marshal(map[string]string{"content": content})
	if err != nil {
		return domain.Message{}, err
	}

	var rows []row
	if err := c.do(ctx, http.MethodPost, nil, body, "return=representation", &rows); err != nil {
		return domain.Message{}, err
	}
	if len(rows) == 0 {
		return domain.Message{}, errors.New("insert returned no row")
	}
	if rows[0].ID == "" {
		return domain.Message{}, errors.New("insert returned a row without id")
	}
	return rows[0].toDomain(), nil
}

func (c *Collection) Delete(ctx context.Context, id domain.MessageID) error {
	q := url.Values{}
	q.Set("id", "eq."+id.String())
	return c.do(ctx, http.MethodDelete, q, nil, "return=minimal", nil)
}

func (c *Collection) do(ctx context.Context, method string, query url.Values, body []byte, prefer string, out any) error {
	target := c.endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		_ = json.Unmarshal(raw, apiErr)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
