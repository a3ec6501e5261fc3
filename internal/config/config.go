package config

import (
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Values are read by Viper from an optional config file or environment
// variables (SERVER_ADDRESS, DATABASE_URI, ADMIN_PASSWORD_HASH, ...).
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Admin    AdminConfig    `mapstructure:"admin"`
	Session  SessionConfig  `mapstructure:"session"`
	Media    MediaConfig    `mapstructure:"media"`
	S3       S3Config       `mapstructure:"s3"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"` // overrides the database embedded in the URI
}

// AdminConfig is the single hardcoded admin identity. When PasswordHash is
// set it takes precedence over the plain Password.
type AdminConfig struct {
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	PasswordHash string `mapstructure:"password_hash"` // bcrypt
}

type SessionConfig struct {
	Secret       string        `mapstructure:"secret"`
	TTL          time.Duration `mapstructure:"ttl"`
	SecureCookie bool          `mapstructure:"secure_cookie"`
}

// MediaConfig controls where uploaded images land and under which URL prefix
// they are served back.
type MediaConfig struct {
	Backend   string `mapstructure:"backend"` // local | s3
	Root      string `mapstructure:"root"`    // filesystem root for the local backend
	URLPrefix string `mapstructure:"url_prefix"`
}

// S3Config configures the optional S3-compatible media backend.
type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	PublicBaseURL   string `mapstructure:"public_base_url"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()
	// Nested keys map to env vars, e.g. session.secret -> SESSION_SECRET.
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("database.uri", "mongodb://localhost:27017")
	viper.SetDefault("database.name", "")
	viper.SetDefault("admin.username", "admin")
	viper.SetDefault("admin.password", "changeme")
	viper.SetDefault("admin.password_hash", "")
	viper.SetDefault("session.secret", "")
	viper.SetDefault("session.ttl", "24h")
	viper.SetDefault("session.secure_cookie", false)
	viper.SetDefault("media.backend", "local")
	viper.SetDefault("media.root", "static/uploads")
	viper.SetDefault("media.url_prefix", "/static/uploads")
	viper.SetDefault("s3.endpoint", "")
	viper.SetDefault("s3.region", "")
	viper.SetDefault("s3.access_key_id", "")
	viper.SetDefault("s3.secret_access_key", "")
	viper.SetDefault("s3.bucket_name", "")
	viper.SetDefault("s3.public_base_url", "")

	err = viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		// No config file is fine; env vars and defaults carry the load.
		err = nil
	} else if err != nil {
		return
	}

	if err = viper.Unmarshal(&config); err != nil {
		return
	}

	// An explicit database.name wins; otherwise the database embedded in the
	// URI path is used, and "NFG" as the last resort.
	if config.Database.Name == "" {
		config.Database.Name = databaseNameFromURI(config.Database.URI)
	}
	if config.Database.Name == "" {
		config.Database.Name = "NFG"
	}
	return
}

// databaseNameFromURI extracts the database from a MongoDB connection string
// path, e.g. mongodb://host:27017/NFG?retryWrites=true -> "NFG".
func databaseNameFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return ""
	}
	return strings.Trim(u.Path, "/")
}
