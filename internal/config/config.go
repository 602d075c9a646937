// internal/config/config.go
package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	App       AppConfig
	Cache     CacheConfig
	Analytics AnalyticsConfig
}

type ServerConfig struct {
	Port           string
	Mode           string
	ReadTimeout    int
	WriteTimeout   int
	AllowedOrigins []string
}

type AppConfig struct {
	DataDir string
}

type CacheConfig struct {
	Enabled             bool
	RedisURL            string
	RedisHost           string
	RedisPort           string
	RedisPassword       string
	RedisDB             int
	DashboardTTLSeconds int
}

// AnalyticsConfig carries the policy thresholds for the analytics
// kernel. Defaults match the historical dashboard behavior; they are
// env-overridable because the values are business policy, not math.
type AnalyticsConfig struct {
	ABCAShare         float64
	ABCBShare         float64
	WarningMultiplier float64
	InactivityDays    int
	SLAImminentDays   int
	BacklogAlertMin   int
	BacklogHighMin    int
}

var (
	once     sync.Once
	instance *Config
)

func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		// Set default values
		viper.SetDefault("SERVER_PORT", "8080")
		viper.SetDefault("SERVER_MODE", "debug")
		viper.SetDefault("SERVER_READ_TIMEOUT", 15)
		viper.SetDefault("SERVER_WRITE_TIMEOUT", 30)
		viper.SetDefault("SERVER_ALLOWED_ORIGINS", []string{"*"})
		viper.SetDefault("APP_DATA_DIR", "./data/snapshots")
		viper.SetDefault("CACHE_ENABLED", false)
		viper.SetDefault("REDIS_URL", "")
		viper.SetDefault("REDIS_HOST", "127.0.0.1")
		viper.SetDefault("REDIS_PORT", "6379")
		viper.SetDefault("REDIS_PASSWORD", "")
		viper.SetDefault("REDIS_DB", 0)
		viper.SetDefault("CACHE_DASHBOARD_TTL_SECONDS", 60)
		viper.SetDefault("ANALYTICS_ABC_A_SHARE", 0.80)
		viper.SetDefault("ANALYTICS_ABC_B_SHARE", 0.95)
		viper.SetDefault("ANALYTICS_WARNING_MULTIPLIER", 1.2)
		viper.SetDefault("ANALYTICS_INACTIVITY_DAYS", 90)
		viper.SetDefault("ANALYTICS_SLA_IMMINENT_DAYS", 3)
		viper.SetDefault("ANALYTICS_BACKLOG_ALERT_MIN", 10)
		viper.SetDefault("ANALYTICS_BACKLOG_HIGH_MIN", 20)

		// Read from environment variables
		viper.AutomaticEnv()

		// Ensure the snapshot data directory exists
		ensureDir(viper.GetString("APP_DATA_DIR"))

		instance = &Config{
			Server: ServerConfig{
				Port:           viper.GetString("SERVER_PORT"),
				Mode:           viper.GetString("SERVER_MODE"),
				ReadTimeout:    viper.GetInt("SERVER_READ_TIMEOUT"),
				WriteTimeout:   viper.GetInt("SERVER_WRITE_TIMEOUT"),
				AllowedOrigins: viper.GetStringSlice("SERVER_ALLOWED_ORIGINS"),
			},
			App: AppConfig{
				DataDir: viper.GetString("APP_DATA_DIR"),
			},
			Cache: CacheConfig{
				Enabled:             viper.GetBool("CACHE_ENABLED"),
				RedisURL:            viper.GetString("REDIS_URL"),
				RedisHost:           viper.GetString("REDIS_HOST"),
				RedisPort:           viper.GetString("REDIS_PORT"),
				RedisPassword:       viper.GetString("REDIS_PASSWORD"),
				RedisDB:             viper.GetInt("REDIS_DB"),
				DashboardTTLSeconds: viper.GetInt("CACHE_DASHBOARD_TTL_SECONDS"),
			},
			Analytics: AnalyticsConfig{
				ABCAShare:         viper.GetFloat64("ANALYTICS_ABC_A_SHARE"),
				ABCBShare:         viper.GetFloat64("ANALYTICS_ABC_B_SHARE"),
				WarningMultiplier: viper.GetFloat64("ANALYTICS_WARNING_MULTIPLIER"),
				InactivityDays:    viper.GetInt("ANALYTICS_INACTIVITY_DAYS"),
				SLAImminentDays:   viper.GetInt("ANALYTICS_SLA_IMMINENT_DAYS"),
				BacklogAlertMin:   viper.GetInt("ANALYTICS_BACKLOG_ALERT_MIN"),
				BacklogHighMin:    viper.GetInt("ANALYTICS_BACKLOG_HIGH_MIN"),
			},
		}
	})

	return instance
}

func ensureDir(dir string) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}
}
