package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	SiteURL           string `mapstructure:"SITE_URL"`
	AllowedOrigins    string `mapstructure:"ALLOWED_ORIGINS"`
	// TrustedProxies lists proxy IPs/CIDRs whose forwarding headers name the client.
	TrustedProxies    string `mapstructure:"TRUSTED_PROXIES"`

	// MongoDB content store.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`
	SeedContent  bool   `mapstructure:"SEED_CONTENT"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisCacheDB   int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`

	SessionTTLMinutes      int `mapstructure:"SESSION_TTL_MINUTES"`
	ContentCacheTTLMinutes int `mapstructure:"CONTENT_CACHE_TTL_MINUTES"`

	// BookingSink selects where finalized booking requests go: "log" or "queue".
	BookingSink    string `mapstructure:"BOOKING_SINK"`
	CurrencySymbol string `mapstructure:"CURRENCY_SYMBOL"`

	// Cloudinary hosts the portfolio gallery.
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`

	// Hand scene.
	HandModelPath  string `mapstructure:"HAND_MODEL_PATH"`
	SceneFrameRate int    `mapstructure:"SCENE_FRAME_RATE"`
}

var AppConfig Config

func LoadConfig() {
	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	setDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 120)
	v.SetDefault("SITE_URL", "https://crownnails.co.nz")
	v.SetDefault("ALLOWED_ORIGINS", "*")
	v.SetDefault("TRUSTED_PROXIES", "")
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "crownbeauty")
	v.SetDefault("SEED_CONTENT", false)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_SESSION_DB", 0)
	v.SetDefault("REDIS_CACHE_DB", 1)
	v.SetDefault("REDIS_QUEUE_DB", 2)
	v.SetDefault("SESSION_TTL_MINUTES", 30)
	v.SetDefault("CONTENT_CACHE_TTL_MINUTES", 10)
	v.SetDefault("BOOKING_SINK", "log")
	v.SetDefault("CURRENCY_SYMBOL", "$")
	v.SetDefault("CLOUDINARY_CLOUD_NAME", "")
	v.SetDefault("CLOUDINARY_API_KEY", "")
	v.SetDefault("CLOUDINARY_API_SECRET", "")
	v.SetDefault("HAND_MODEL_PATH", "public/models/Hand-model-draco.glb")
	v.SetDefault("SCENE_FRAME_RATE", 30)
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// SessionTTL is how long an idle booking session survives.
func (c Config) SessionTTL() time.Duration {
	if c.SessionTTLMinutes <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

func (c Config) ContentCacheTTL() time.Duration {
	if c.ContentCacheTTLMinutes <= 0 {
		return 10 * time.Minute
	}
	return time.Duration(c.ContentCacheTTLMinutes) * time.Minute
}

// Origins splits ALLOWED_ORIGINS on commas.
func (c Config) Origins() []string {
	out := splitList(c.AllowedOrigins)
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// TrustedProxyList splits TRUSTED_PROXIES on commas. Empty means no proxy is
// trusted and clients are identified by their socket address.
func (c Config) TrustedProxyList() []string {
	return splitList(c.TrustedProxies)
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
