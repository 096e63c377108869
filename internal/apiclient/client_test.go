package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"resumely/internal/model"
)

func TestLoginInstallsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"user":  map[string]string{"id": "u1", "email": "ada@example.com"},
				"token": "tok-123",
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	if err := c.Login(context.Background(), "ada@example.com", "Password1"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if c.token != "tok-123" {
		t.Errorf("token = %q", c.token)
	}
}

func TestServerRejectionIsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "Invalid email or password",
			"code":    "INVALID_CREDENTIALS",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Login(context.Background(), "ada@example.com", "wrong")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T", err)
	}
	if apiErr.Status != http.StatusUnauthorized || apiErr.Code != "INVALID_CREDENTIALS" {
		t.Errorf("apiErr = %+v", apiErr)
	}
}

func TestUnreachableServiceIsTransportError(t *testing.T) {
	c := New("http://127.0.0.1:1") // nothing listens here
	_, err := c.List(context.Background())

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("error type = %T (%v)", err, err)
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Error("transport failure also matched APIError")
	}
}

func TestSaveAndLoadCarryBearerToken(t *testing.T) {
	doc := model.DefaultDocument()
	doc.Personal.FirstName = "Ada"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("Authorization = %q", got)
		}
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/resumes":
			var body struct {
				Name string          `json:"name"`
				Data *model.Document `json:"data"`
			}
			json.NewDecoder(r.Body).Decode(&body)
			if body.Name != "Main" || body.Data.Personal.FirstName != "Ada" {
				t.Errorf("create body = %+v", body)
			}
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"data":    map[string]interface{}{"resume": map[string]interface{}{"id": "r1"}},
			})
		case r.Method == http.MethodGet && r.URL.Path == "/api/resumes/r1":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"data":    map[string]interface{}{"resume": map[string]interface{}{"id": "r1", "data": doc}},
			})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetToken("tok-123")

	id, err := c.Save(context.Background(), "Main", doc)
	if err != nil || id != "r1" {
		t.Fatalf("save: id=%q err=%v", id, err)
	}

	loaded, err := c.Load(context.Background(), id)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Personal.FirstName != "Ada" {
		t.Errorf("loaded firstName = %q", loaded.Personal.FirstName)
	}
}
