package server

import (
	"fmt"
	"net"
	"strings"

	"github.com/labstack/echo/v4"
)

// NewIPExtractor decides how c.RealIP() finds the client address.
// With no trusted proxies the peer address is used and forwarding headers are ignored.
// Otherwise X-Forwarded-For is honored only for hops inside the given ranges.
// Entries are CIDRs or bare IPs.
func NewIPExtractor(trustedProxies []string) (echo.IPExtractor, error) {
	if len(trustedProxies) == 0 {
		return echo.ExtractIPDirect(), nil
	}

	options := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, proxy := range trustedProxies {
		ipRange, err := parseProxyRange(proxy)
		if err != nil {
			return nil, err
		}
		options = append(options, echo.TrustIPRange(ipRange))
	}
	return echo.ExtractIPFromXFFHeader(options...), nil
}

func parseProxyRange(value string) (*net.IPNet, error) {
	if !strings.Contains(value, "/") {
		ip := net.ParseIP(value)
		if ip == nil {
			return nil, fmt.Errorf("invalid trusted proxy %q", value)
		}
		bits := 128
		if ip.To4() != nil {
			ip = ip.To4()
			bits = 32
		}
		return &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)}, nil
	}

	_, ipRange, err := net.ParseCIDR(value)
	if err != nil {
		return nil, fmt.Errorf("invalid trusted proxy %q: %w", value, err)
	}
	return ipRange, nil
}
