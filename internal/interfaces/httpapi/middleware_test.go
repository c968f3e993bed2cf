package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name            string
		allowed         []string
		method          string
		origin          string
		wantCode        int
		wantAllowOrigin string
	}{
		{
			name:            "configured origin allowed",
			allowed:         []string{"http://localhost:3000"},
			method:          http.MethodGet,
			origin:          "http://localhost:3000",
			wantCode:        http.StatusOK,
			wantAllowOrigin: "http://localhost:3000",
		},
		{
			name:            "wildcard preflight short-circuits",
			allowed:         []string{"*"},
			method:          http.MethodOptions,
			origin:          "http://localhost:3000",
			wantCode:        http.StatusNoContent,
			wantAllowOrigin: "*",
		},
		{
			name:            "unknown origin gets no allow header",
			allowed:         []string{"https://allowed.example.com"},
			method:          http.MethodGet,
			origin:          "https://not-allowed.example.com",
			wantCode:        http.StatusOK,
			wantAllowOrigin: "",
		},
		{
			name:            "no origin header passes through untouched",
			allowed:         []string{"http://localhost:3000"},
			method:          http.MethodGet,
			origin:          "",
			wantCode:        http.StatusOK,
			wantAllowOrigin: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/players", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()

			CORS(tt.allowed, next).ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantAllowOrigin {
				t.Fatalf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantAllowOrigin)
			}
		})
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "case-insensitive scheme", header: "bearer tok", want: "tok"},
		{name: "missing header", header: "", wantErr: true},
		{name: "wrong scheme", header: "Basic dXNlcg==", wantErr: true},
		{name: "scheme only", header: "Bearer ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/matches", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			got, err := bearerToken(req)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for header %q", tt.header)
				}
				return
			}
			if err != nil {
				t.Fatalf("bearerToken error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("token = %q, want %q", got, tt.want)
			}
		})
	}
}
