package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/contenthub/contenthub-server/pkg/logger"
)

// Config holds application configuration
type Config struct {
	Server  ServerConfig
	MongoDB MongoDBConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Cookie  CookieConfig
	Cache   CacheConfig
}

type ServerConfig struct {
	Port           string
	Host           string
	Environment    string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	AllowedOrigins []string
}

type MongoDBConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret   string
	TokenTTL time.Duration
}

// CookieConfig controls the flags of the session cookie carrying the token.
type CookieConfig struct {
	Name     string
	Secure   bool
	SameSite http.SameSite
}

type CacheConfig struct {
	TTL time.Duration
}

// IsProduction reports whether the server runs with SERVER_ENVIRONMENT=production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Environment, "production")
}

// LoadConfig loads configuration from environment variables and .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8000")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_ENVIRONMENT", "development")
	viper.SetDefault("CORS_ORIGINS", "http://localhost:5173")
	viper.SetDefault("MONGODB_DATABASE", "Content-hub")
	viper.SetDefault("MONGODB_TIMEOUT", 10)
	viper.SetDefault("DB_HOST", "cluster0.8c67l.mongodb.net")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("JWT_TOKEN_TTL_HOURS", 10)
	viper.SetDefault("COOKIE_NAME", "token")
	viper.SetDefault("CACHE_TTL_SECONDS", 60)

	cfg := &Config{
		Server: ServerConfig{
			Port:           viper.GetString("PORT"),
			Host:           viper.GetString("SERVER_HOST"),
			Environment:    viper.GetString("SERVER_ENVIRONMENT"),
			ReadTimeout:    30 * time.Second,
			WriteTimeout:   30 * time.Second,
			AllowedOrigins: splitList(viper.GetString("CORS_ORIGINS")),
		},
		MongoDB: MongoDBConfig{
			URI:      mongoURI(),
			Database: viper.GetString("MONGODB_DATABASE"),
			Timeout:  time.Duration(viper.GetInt("MONGODB_TIMEOUT")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:   firstNonEmpty(os.Getenv("SECRET_KEY"), os.Getenv("JWT_SECRET")),
			TokenTTL: time.Duration(viper.GetInt("JWT_TOKEN_TTL_HOURS")) * time.Hour,
		},
		Cache: CacheConfig{
			TTL: time.Duration(viper.GetInt("CACHE_TTL_SECONDS")) * time.Second,
		},
	}
	cfg.Cookie = cookieConfig(cfg)

	if cfg.JWT.Secret == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("SECRET_KEY is required when SERVER_ENVIRONMENT=production")
		}
		b := make([]byte, 32)
		if _, err := rand.Read(b); err != nil {
			return nil, fmt.Errorf("generate ephemeral secret: %w", err)
		}
		cfg.JWT.Secret = hex.EncodeToString(b)
		logger.Warn("SECRET_KEY is not set; using an ephemeral secret, issued tokens will not survive a restart")
	}

	return cfg, nil
}

// cookieConfig secures the cookie in production only; COOKIE_SECURE overrides the default.
func cookieConfig(cfg *Config) CookieConfig {
	cc := CookieConfig{Name: viper.GetString("COOKIE_NAME"), Secure: false, SameSite: http.SameSiteStrictMode}
	if cfg.IsProduction() {
		cc.Secure = true
		cc.SameSite = http.SameSiteNoneMode
	}
	if viper.IsSet("COOKIE_SECURE") {
		cc.Secure = viper.GetBool("COOKIE_SECURE")
	}
	return cc
}

// mongoURI prefers MONGODB_URI and otherwise assembles an Atlas URI from DB_USER/DB_PASS.
func mongoURI() string {
	if v := viper.GetString("MONGODB_URI"); v != "" {
		return v
	}
	user := viper.GetString("DB_USER")
	if user == "" {
		return ""
	}
	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(user, viper.GetString("DB_PASS")),
		Host:     viper.GetString("DB_HOST"),
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority&appName=Cluster0",
	}
	return u.String()
}

func splitList(s string) []string {
	out := []string{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
