package models

import (
	"fmt"
	"time"
)

// SMS providers understood by the gateway factory
const (
	SMSProviderConsole = "console"
	SMSProviderSMSRu   = "smsru"
	SMSProviderSMSC    = "smsc"
)

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	SMS       SMSConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Logger    LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
	TrustedProxies  []string
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// DSN builds the postgres connection URL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Username,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
		c.SSLMode,
	)
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// JWTConfig contains credential signing configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// TTL returns the credential lifetime
func (c JWTConfig) TTL() time.Duration {
	return time.Duration(c.Expiration) * time.Minute
}

// SMSConfig selects and configures the verification code channel
type SMSConfig struct {
	Provider      string
	TestMode      bool
	SMSRuAPIID    string
	SMSRuURL      string
	SMSCLogin     string
	SMSCPassword  string
	SMSCURL       string
	TimeoutSecond int
}

// RateLimitConfig bounds how often a client may request codes
type RateLimitConfig struct {
	SendCodeLimit int
	WindowSecond  int
}

// CORSConfig lists origins allowed to call the API from a browser
type CORSConfig struct {
	AllowOrigins []string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// Validate reports configuration that would make the service unsafe or unable to start
func (c *Config) Validate() error {
	local := c.App.Environment == "local" || c.App.Environment == "test"
	if c.JWT.Secret == "" && !local {
		return fmt.Errorf("JWT_SECRET is required in %q environment", c.App.Environment)
	}
	if c.JWT.Expiration <= 0 {
		return fmt.Errorf("JWT_EXPIRATION must be positive, got %d", c.JWT.Expiration)
	}

	if c.SMS.TestMode {
		return nil
	}
	switch c.SMS.Provider {
	case SMSProviderConsole:
	case SMSProviderSMSRu:
		if c.SMS.SMSRuAPIID == "" {
			return fmt.Errorf("SMSRU_API_ID is required for sms provider %q", c.SMS.Provider)
		}
	case SMSProviderSMSC:
		if c.SMS.SMSCLogin == "" || c.SMS.SMSCPassword == "" {
			return fmt.Errorf("SMSC_LOGIN and SMSC_PASSWORD are required for sms provider %q", c.SMS.Provider)
		}
	default:
		return fmt.Errorf("unknown sms provider %q", c.SMS.Provider)
	}
	return nil
}
