package security

import (
	"net/http"
	"testing"
)

func TestAddSecurityHeader(t *testing.T) {
	tests := []struct {
		name  string
		base  http.Header
		token string
		want  string
	}{
		{
			name:  "sets bearer token",
			base:  http.Header{"Content-Type": {"application/json"}},
			token: "secret",
			want:  "Bearer secret",
		},
		{
			name:  "empty token forwarded as-is",
			base:  http.Header{},
			token: "",
			want:  "Bearer ",
		},
		{
			name:  "nil base headers",
			base:  nil,
			token: "abc",
			want:  "Bearer abc",
		},
		{
			name:  "replaces existing authorization",
			base:  http.Header{"Authorization": {"Basic xyz"}},
			token: "new",
			want:  "Bearer new",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddSecurityHeader(RequestConfig{Headers: tt.base}, tt.token)
			if v := got.Headers.Get(AuthorizationHeader); v != tt.want {
				t.Errorf("Authorization = %q, want %q", v, tt.want)
			}
			if values := got.Headers.Values(AuthorizationHeader); len(values) != 1 {
				t.Errorf("Authorization values = %v, want exactly one", values)
			}
		})
	}
}

func TestAddSecurityHeader_DoesNotMutateBase(t *testing.T) {
	base := RequestConfig{Headers: http.Header{}}
	base.Headers.Set("Content-Type", "application/json")

	got := AddSecurityHeader(base, "secret")

	if base.Headers.Get(AuthorizationHeader) != "" {
		t.Errorf("base headers were modified: %v", base.Headers)
	}
	if got.Headers.Get("Content-Type") != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", got.Headers.Get("Content-Type"))
	}
}

func TestApply(t *testing.T) {
	req, err := http.NewRequest(http.MethodPost, "http://localhost", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Authorization", "stale")
	req.Header.Set("X-Keep", "1")

	cfg := AddSecurityHeader(RequestConfig{Headers: http.Header{"Content-Type": {"application/json"}}}, "tok")
	Apply(req, cfg)

	if got := req.Header.Get("Authorization"); got != "Bearer tok" {
		t.Errorf("Authorization = %q, want Bearer tok", got)
	}
	if got := req.Header.Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", got)
	}
	if got := req.Header.Get("X-Keep"); got != "1" {
		t.Errorf("X-Keep = %q, want 1", got)
	}
}
