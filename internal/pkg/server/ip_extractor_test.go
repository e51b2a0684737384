package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIPExtractor(t *testing.T) {
	testCases := []struct {
		name       string
		trusted    []string
		remoteAddr string
		xff        string
		want       string
	}{
		{
			name:       "No proxies ignores forwarded header",
			remoteAddr: "203.0.113.7:40000",
			xff:        "10.0.0.1",
			want:       "203.0.113.7",
		},
		{
			name:       "Loopback peer is not trusted by default",
			trusted:    []string{"192.0.2.0/24"},
			remoteAddr: "127.0.0.1:40000",
			xff:        "198.51.100.9",
			want:       "127.0.0.1",
		},
		{
			name:       "Trusted range honors forwarded header",
			trusted:    []string{"192.0.2.0/24"},
			remoteAddr: "192.0.2.10:40000",
			xff:        "198.51.100.9",
			want:       "198.51.100.9",
		},
		{
			name:       "Bare trusted IP",
			trusted:    []string{"192.0.2.10"},
			remoteAddr: "192.0.2.10:40000",
			xff:        "198.51.100.9",
			want:       "198.51.100.9",
		},
		{
			name:       "Spoofed hops before the proxy are skipped",
			trusted:    []string{"192.0.2.0/24"},
			remoteAddr: "192.0.2.10:40000",
			xff:        "10.0.0.1, 198.51.100.9",
			want:       "198.51.100.9",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			extractor, err := NewIPExtractor(tc.trusted)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tc.remoteAddr
			req.Header.Set(echo.HeaderXForwardedFor, tc.xff)

			assert.Equal(t, tc.want, extractor(req))
		})
	}
}

func TestNewIPExtractor_InvalidProxy(t *testing.T) {
	_, err := NewIPExtractor([]string{"not-an-ip"})
	assert.Error(t, err)

	_, err = NewIPExtractor([]string{"10.0.0.0/99"})
	assert.Error(t, err)
}
