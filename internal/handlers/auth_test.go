package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"glassjoke/internal/service"
)

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_IssueToken(t *testing.T) {
	auth := &mockAuth{enabled: true, issueToken: "tok123"}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := postJSON(r, "/auth/token", `{"operator":"ops","secret":"s3cr3t"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("token status=%d, body=%s", w.Code, w.Body.String())
	}
	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["token"] != "tok123" {
		t.Fatalf("expected token tok123, got %v", m["token"])
	}
	if auth.lastOperator != "ops" || auth.lastSecret != "s3cr3t" {
		t.Fatalf("service got operator=%q secret=%q", auth.lastOperator, auth.lastSecret)
	}
}

func TestAuthHandler_IssueToken_Errors(t *testing.T) {
	cases := []struct {
		name string
		auth *mockAuth
		body string
		want int
	}{
		{"invalid body", &mockAuth{enabled: true}, `{"operator":1}`, http.StatusBadRequest},
		{"missing secret", &mockAuth{enabled: true}, `{"operator":"ops"}`, http.StatusBadRequest},
		{"wrong secret", &mockAuth{enabled: true, issueErr: service.ErrInvalidSecret}, `{"operator":"ops","secret":"x"}`, http.StatusUnauthorized},
		{"auth disabled", &mockAuth{issueErr: service.ErrAuthDisabled}, `{"operator":"ops","secret":"x"}`, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&service.Service{Authorization: tc.auth})
			w := postJSON(r, "/auth/token", tc.body)
			if w.Code != tc.want {
				t.Fatalf("status=%d, want %d, body=%s", w.Code, tc.want, w.Body.String())
			}
		})
	}
}

func TestAuthHandler_RealService(t *testing.T) {
	hash, err := service.HashSecret("letmein")
	if err != nil {
		t.Fatalf("HashSecret: %v", err)
	}
	auth := service.NewAuthService(configAuth(hash))
	r := newTestRouter(&service.Service{Authorization: auth, History: &mockHistory{}})

	w := postJSON(r, "/auth/token", `{"operator":"ops","secret":"letmein"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("token status=%d, body=%s", w.Code, w.Body.String())
	}
	var out struct {
		Token string `json:"token"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/days", nil)
	req.Header = authHeader(out.Token)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("protected status=%d, body=%s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/days", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
}
