package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewAuthorizer(t *testing.T) {
	if _, ok := NewAuthorizer("").(AllowAll); !ok {
		t.Error("empty key should yield AllowAll")
	}
	if _, ok := NewAuthorizer("secret").(*StaticKeyAuthorizer); !ok {
		t.Error("non-empty key should yield StaticKeyAuthorizer")
	}
}

func TestStaticKeyAuthorizer_Authorize(t *testing.T) {
	a := NewStaticKeyAuthorizer("s3cret-Key")

	tests := []struct {
		name       string
		header     []string
		wantReason string
	}{
		{name: "matching key", header: []string{"s3cret-Key"}},
		{name: "missing header", wantReason: ReasonMissingKey},
		{name: "wrong key", header: []string{"nope"}, wantReason: ReasonInvalidKey},
		{name: "case differs", header: []string{"S3CRET-KEY"}, wantReason: ReasonInvalidKey},
		{name: "prefix of key", header: []string{"s3cret"}, wantReason: ReasonInvalidKey},
		{name: "empty value", header: []string{""}, wantReason: ReasonInvalidKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/compose/product-price", nil)
			for _, v := range tt.header {
				r.Header.Add("X-Api-Key", v)
			}

			err := a.Authorize(r)
			if tt.wantReason == "" {
				if err != nil {
					t.Fatalf("expected request to be admitted, got %v", err)
				}
				return
			}

			if !errors.Is(err, ErrUnauthorized) {
				t.Fatalf("expected ErrUnauthorized, got %v", err)
			}
			var ue *UnauthorizedError
			if !errors.As(err, &ue) || ue.Reason != tt.wantReason {
				t.Errorf("expected reason %q, got %v", tt.wantReason, err)
			}
		})
	}
}

func TestAllowAll_Authorize(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if err := (AllowAll{}).Authorize(r); err != nil {
		t.Errorf("AllowAll denied request: %v", err)
	}
}

func TestMiddleware_Handle(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		header     string
		wantStatus int
		wantCalled bool
	}{
		{name: "no key configured", key: "", wantStatus: http.StatusOK, wantCalled: true},
		{name: "valid key", key: "k", header: "k", wantStatus: http.StatusOK, wantCalled: true},
		{name: "missing key", key: "k", wantStatus: http.StatusUnauthorized},
		{name: "invalid key", key: "k", header: "x", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			var deniedErr error
			mw := NewMiddleware(NewAuthorizer(tt.key), func(w http.ResponseWriter, r *http.Request, err error) {
				deniedErr = err
				w.WriteHeader(http.StatusUnauthorized)
			})

			r := httptest.NewRequest(http.MethodPost, "/proxy/notifications/send", nil)
			if tt.header != "" {
				r.Header.Set(HeaderAPIKey, tt.header)
			}
			w := httptest.NewRecorder()
			mw.Handle(next).ServeHTTP(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if called != tt.wantCalled {
				t.Errorf("handler called = %v, want %v", called, tt.wantCalled)
			}
			if !tt.wantCalled && !errors.Is(deniedErr, ErrUnauthorized) {
				t.Errorf("expected denial callback with ErrUnauthorized, got %v", deniedErr)
			}
		})
	}
}

func TestMiddleware_DefaultDenied(t *testing.T) {
	mw := NewMiddleware(NewAuthorizer("k"), nil)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run")
	})

	w := httptest.NewRecorder()
	mw.Handle(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}
