package clientip_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/contactform/pkg/clientip"
)

func TestGetIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{
			name:       "cloudflare header takes priority",
			headers:    map[string]string{"CF-Connecting-IP": "203.0.113.7", "X-Forwarded-For": "198.51.100.1"},
			remoteAddr: "192.0.2.1:1234",
			expected:   "203.0.113.7",
		},
		{
			name:       "first valid address in x-forwarded-for",
			headers:    map[string]string{"X-Forwarded-For": "invalid, 198.51.100.1, 10.0.0.1"},
			remoteAddr: "192.0.2.1:1234",
			expected:   "198.51.100.1",
		},
		{
			name:       "x-real-ip fallback",
			headers:    map[string]string{"X-Real-IP": "198.51.100.2"},
			remoteAddr: "192.0.2.1:1234",
			expected:   "198.51.100.2",
		},
		{
			name:       "remote addr with port",
			remoteAddr: "192.0.2.1:1234",
			expected:   "192.0.2.1",
		},
		{
			name:       "remote addr without port",
			remoteAddr: "192.0.2.1",
			expected:   "192.0.2.1",
		},
		{
			name:       "ipv6 remote addr",
			remoteAddr: "[2001:db8::1]:443",
			expected:   "2001:db8::1",
		},
		{
			name:       "invalid header values ignored",
			headers:    map[string]string{"CF-Connecting-IP": "not-an-ip"},
			remoteAddr: "192.0.2.1:1234",
			expected:   "192.0.2.1",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodPost, "/", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}

			assert.Equal(t, tt.expected, clientip.GetIP(r))
		})
	}
}

func TestContext(t *testing.T) {
	t.Parallel()

	ctx := clientip.WithContext(context.Background(), "203.0.113.7")
	assert.Equal(t, "203.0.113.7", clientip.FromContext(ctx))
	assert.Empty(t, clientip.FromContext(context.Background()))
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var captured string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = clientip.FromContext(r.Context())
	})

	r := httptest.NewRequest(http.MethodPost, "/", nil)
	r.RemoteAddr = "192.0.2.1:1234"
	clientip.Middleware(next).ServeHTTP(httptest.NewRecorder(), r)

	assert.Equal(t, "192.0.2.1", captured)
}
