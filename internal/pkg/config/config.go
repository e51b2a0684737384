package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/forestbar/api/internal/pkg/models"
)

// InitConfig loads the dotenv file at configPath when running locally and reads the
// configuration from the environment.
func InitConfig(configPath string) *models.Config {
	v := newViper()

	if v.GetString("APP_ENV") == "local" {
		// Load config from file
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	return loadConfig(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "forestbar-auth")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", false)
	v.SetDefault("APP_VERSION", "1.0.0")

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8000)
	v.SetDefault("SERVER_READ_TIMEOUT", 15)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 10)
	v.SetDefault("SERVER_TRUSTED_PROXIES", "")

	v.SetDefault("DB_DRIVER", "pgx")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USERNAME", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_DATABASE", "forestbar")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRATION", 7*24*60)
	v.SetDefault("JWT_ISSUER", "forestbar")

	v.SetDefault("SMS_PROVIDER", models.SMSProviderConsole)
	v.SetDefault("SMS_TEST_MODE", true)
	v.SetDefault("SMSRU_API_ID", "")
	v.SetDefault("SMSRU_URL", "https://sms.ru/sms/send")
	v.SetDefault("SMSC_LOGIN", "")
	v.SetDefault("SMSC_PASSWORD", "")
	v.SetDefault("SMSC_URL", "https://smsc.ru/sys/send.php")
	v.SetDefault("SMS_TIMEOUT", 10)

	v.SetDefault("RATE_LIMIT_SEND_CODE", 5)
	v.SetDefault("RATE_LIMIT_WINDOW", 600)

	v.SetDefault("CORS_ALLOW_ORIGINS", "*")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE_PATH", "")
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")
	configs.Server.TrustedProxies = splitList(v.GetString("SERVER_TRUSTED_PROXIES"))

	// Database config
	configs.Database.Driver = v.GetString("DB_DRIVER")
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// JWT config
	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Expiration = v.GetInt("JWT_EXPIRATION")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	// SMS config
	configs.SMS.Provider = strings.ToLower(v.GetString("SMS_PROVIDER"))
	configs.SMS.TestMode = v.GetBool("SMS_TEST_MODE")
	configs.SMS.SMSRuAPIID = v.GetString("SMSRU_API_ID")
	configs.SMS.SMSRuURL = v.GetString("SMSRU_URL")
	configs.SMS.SMSCLogin = v.GetString("SMSC_LOGIN")
	configs.SMS.SMSCPassword = v.GetString("SMSC_PASSWORD")
	configs.SMS.SMSCURL = v.GetString("SMSC_URL")
	configs.SMS.TimeoutSecond = v.GetInt("SMS_TIMEOUT")

	// Rate limit config
	configs.RateLimit.SendCodeLimit = v.GetInt("RATE_LIMIT_SEND_CODE")
	configs.RateLimit.WindowSecond = v.GetInt("RATE_LIMIT_WINDOW")

	// CORS config
	configs.CORS.AllowOrigins = splitList(v.GetString("CORS_ALLOW_ORIGINS"))

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	return configs
}

// splitList turns "a, b,,c" into [a b c]
func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
