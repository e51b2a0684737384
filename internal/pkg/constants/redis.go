package constants

// Redis key formats
const (
	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{route}:{client_ip}
)

// Rate limit response headers
const (
	HeaderRateLimitLimit     = "X-RateLimit-Limit"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
	HeaderRateLimitReset     = "X-RateLimit-Reset"
	HeaderRetryAfter         = "Retry-After"
)
