// Package apiclient is a thin client for the resume CRUD service. Failures
// split two ways: a *TransportError means the service was unreachable, a
// *APIError means it answered and rejected the request. Callers keep editing
// on local state either way.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"resumely/internal/domain"
	"resumely/internal/model"
)

const defaultTimeout = 15 * time.Second

// APIError is a server-side rejection carrying the envelope's code.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.Status, e.Code, e.Message)
}

// TransportError wraps a failure to reach the service at all.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("transport error: %v", e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// SetToken installs the bearer token used on subsequent calls.
func (c *Client) SetToken(token string) { c.token = token }

type envelope struct {
	Success bool            `json:"success"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return &TransportError{Err: fmt.Errorf("decode response: %w", err)}
	}
	if !env.Success {
		return &APIError{Status: resp.StatusCode, Code: env.Code, Message: env.Error}
	}
	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &TransportError{Err: fmt.Errorf("decode data: %w", err)}
		}
	}
	return nil
}

type userPayload struct {
	User struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"user"`
	Token string `json:"token"`
}

// Register creates an account and installs the returned token.
func (c *Client) Register(ctx context.Context, email, password, name string) error {
	var out userPayload
	err := c.do(ctx, http.MethodPost, "/api/auth/register",
		map[string]string{"email": email, "password": password, "name": name}, &out)
	if err != nil {
		return err
	}
	c.token = out.Token
	return nil
}

// Login authenticates and installs the returned token.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var out userPayload
	err := c.do(ctx, http.MethodPost, "/api/auth/login",
		map[string]string{"email": email, "password": password}, &out)
	if err != nil {
		return err
	}
	c.token = out.Token
	return nil
}

func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
	c.token = ""
	return err
}

func (c *Client) Me(ctx context.Context) (id, email, name string, err error) {
	var out userPayload
	if err = c.do(ctx, http.MethodGet, "/api/auth/me", nil, &out); err != nil {
		return "", "", "", err
	}
	return out.User.ID, out.User.Email, out.User.Name, nil
}

type resumeRecord struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	Data *model.Document `json:"data"`
}

// List returns the caller's resume summaries.
func (c *Client) List(ctx context.Context) ([]domain.ResumeSummary, error) {
	var out struct {
		Resumes []domain.ResumeSummary `json:"resumes"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/resumes", nil, &out); err != nil {
		return nil, err
	}
	return out.Resumes, nil
}

// Load fetches one resume document by id.
func (c *Client) Load(ctx context.Context, id string) (*model.Document, error) {
	var out struct {
		Resume resumeRecord `json:"resume"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/resumes/"+id, nil, &out); err != nil {
		return nil, err
	}
	if out.Resume.Data == nil {
		return model.DefaultDocument(), nil
	}
	return out.Resume.Data, nil
}

// Save creates a named resume and returns its id.
func (c *Client) Save(ctx context.Context, name string, doc *model.Document) (string, error) {
	var out struct {
		Resume resumeRecord `json:"resume"`
	}
	body := map[string]interface{}{"name": name, "data": doc, "template": doc.Settings.Template}
	if err := c.do(ctx, http.MethodPost, "/api/resumes", body, &out); err != nil {
		return "", err
	}
	return out.Resume.ID, nil
}

// Update replaces the document stored under id.
func (c *Client) Update(ctx context.Context, id, name string, doc *model.Document) error {
	body := map[string]interface{}{"name": name, "data": doc, "template": doc.Settings.Template}
	return c.do(ctx, http.MethodPut, "/api/resumes/"+id, body, nil)
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/resumes/"+id, nil, nil)
}

func (c *Client) SetDefault(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/api/resumes/"+id+"/default", nil, nil)
}

// Duplicate copies a resume server-side and returns the new id.
func (c *Client) Duplicate(ctx context.Context, id string) (string, error) {
	var out struct {
		Resume resumeRecord `json:"resume"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/resumes/"+id+"/duplicate", nil, &out); err != nil {
		return "", err
	}
	return out.Resume.ID, nil
}
