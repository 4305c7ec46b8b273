package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/spf13/viper"

	httpapi "github.com/jekabolt/waitlister/internal/api/http"
	"github.com/jekabolt/waitlister/internal/apisrv/auth"
	"github.com/jekabolt/waitlister/internal/bucket"
	"github.com/jekabolt/waitlister/internal/mail"
	"github.com/jekabolt/waitlister/internal/payment/creem"
	"github.com/jekabolt/waitlister/internal/store"
	"github.com/jekabolt/waitlister/log"
)

// Config represents the global configuration for the service.
type Config struct {
	DB     store.Config   `mapstructure:"mysql"`
	Logger log.Config     `mapstructure:"logger"`
	HTTP   httpapi.Config `mapstructure:"http"`
	Auth   auth.Config    `mapstructure:"auth"`
	Bucket bucket.Config  `mapstructure:"bucket"`
	Mailer mail.Config    `mapstructure:"mailer"`
	Creem  creem.Config   `mapstructure:"creem"`
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values.
// Nested config keys use double underscore, e.g., MYSQL__DSN for mysql.dsn
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))
	bindEnvVars(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/config/waitlister")
		v.AddConfigPath("/etc/waitlister")
		// env vars alone are enough
		_ = v.ReadInConfig()
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	if config.DB.DSN == "" {
		config.DB.DSN = dsnFromEnv()
	}

	return &config, nil
}

// dsnFromEnv builds a DSN from MYSQL_HOST and friends.
func dsnFromEnv() string {
	host := os.Getenv("MYSQL_HOST")
	if host == "" {
		return ""
	}
	port := os.Getenv("MYSQL_PORT")
	if port == "" {
		port = "3306"
	}
	user, password, database := os.Getenv("MYSQL_USER"), os.Getenv("MYSQL_PASSWORD"), os.Getenv("MYSQL_DATABASE")
	if user == "" || password == "" || database == "" {
		return ""
	}
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true", user, password, host, port, database)
	if os.Getenv("MYSQL_TLS_CA_PATH") != "" {
		dsn += "&tls=custom"
	}
	return dsn
}

// Validate checks the settings the service cannot start without.
func (c *Config) Validate() error {
	var errs []error
	if c.DB.DSN == "" {
		errs = append(errs, errors.New("mysql.dsn is required"))
	}
	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("auth.jwt_secret is required"))
	}
	if c.HTTP.Port != "" && !govalidator.IsPort(c.HTTP.Port) {
		errs = append(errs, fmt.Errorf("http.port %q is not a valid port", c.HTTP.Port))
	}
	for _, o := range c.HTTP.AllowedOrigins {
		if strings.Contains(o, "*") {
			errs = append(errs, fmt.Errorf("http.allowed_origins: wildcard %q is not allowed, session cookies are sent cross-origin", o))
			continue
		}
		if !govalidator.IsURL(o) {
			errs = append(errs, fmt.Errorf("http.allowed_origins: %q is not a valid origin", o))
		}
	}
	if c.Bucket.PublicBaseURL != "" && !govalidator.IsURL(c.Bucket.PublicBaseURL) {
		errs = append(errs, fmt.Errorf("bucket.public_base_url %q is not a valid url", c.Bucket.PublicBaseURL))
	}
	if c.Mailer.APIKey != "" {
		if !govalidator.IsEmail(c.Mailer.FromEmail) {
			errs = append(errs, fmt.Errorf("mailer.from_email %q is not a valid email", c.Mailer.FromEmail))
		}
		if c.Mailer.ReplyTo != "" && !govalidator.IsEmail(c.Mailer.ReplyTo) {
			errs = append(errs, fmt.Errorf("mailer.reply_to %q is not a valid email", c.Mailer.ReplyTo))
		}
	}
	return errors.Join(errs...)
}

// BucketEnabled reports whether object storage credentials are present.
func (c *Config) BucketEnabled() bool {
	return c.Bucket.S3Endpoint != "" && c.Bucket.S3AccessKey != "" && c.Bucket.S3BucketName != ""
}

// bindEnvVars binds environment variables to config keys
// This allows using both nested keys (MYSQL__DSN) and flat keys (MYSQL_DSN)
func bindEnvVars(v *viper.Viper) {
	// MySQL
	v.BindEnv("mysql.dsn", "MYSQL_DSN")
	v.BindEnv("mysql.automigrate", "MYSQL_AUTOMIGRATE")
	v.BindEnv("mysql.max_open_connections", "MYSQL_MAX_OPEN_CONNECTIONS")
	v.BindEnv("mysql.max_idle_connections", "MYSQL_MAX_IDLE_CONNECTIONS")
	v.BindEnv("mysql.tls_ca_path", "MYSQL_TLS_CA_PATH")

	// Logger
	v.BindEnv("logger.level", "LOG_LEVEL")
	v.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// HTTP
	v.BindEnv("http.port", "HTTP_PORT")
	v.BindEnv("http.address", "HTTP_ADDRESS")
	v.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")
	v.BindEnv("http.join_rate_limit", "HTTP_JOIN_RATE_LIMIT")

	// Auth
	v.BindEnv("auth.jwt_secret", "AUTH_JWT_SECRET")

	// Bucket
	v.BindEnv("bucket.s3_access_key", "BUCKET_S3_ACCESS_KEY")
	v.BindEnv("bucket.s3_secret_access_key", "BUCKET_S3_SECRET_ACCESS_KEY")
	v.BindEnv("bucket.s3_endpoint", "BUCKET_S3_ENDPOINT")
	v.BindEnv("bucket.s3_bucket_name", "BUCKET_S3_BUCKET_NAME")
	v.BindEnv("bucket.s3_bucket_location", "BUCKET_S3_BUCKET_LOCATION")
	v.BindEnv("bucket.base_folder", "BUCKET_BASE_FOLDER")
	v.BindEnv("bucket.public_base_url", "BUCKET_PUBLIC_BASE_URL")

	// Mailer
	v.BindEnv("mailer.sendgrid_api_key", "MAILER_SENDGRID_API_KEY")
	v.BindEnv("mailer.from_email", "MAILER_FROM_EMAIL")
	v.BindEnv("mailer.from_email_name", "MAILER_FROM_EMAIL_NAME")
	v.BindEnv("mailer.reply_to", "MAILER_REPLY_TO")

	// Creem
	v.BindEnv("creem.webhook_secret", "CREEM_WEBHOOK_SECRET")
}
