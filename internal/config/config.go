package config

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Catalog  CatalogConfig
	Route    RouteConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	HeatmapCacheTTL time.Duration
	StatsCacheTTL   time.Duration
}

type LogConfig struct {
	Level string
}

// CatalogConfig controls how the incident catalog is populated at startup.
// Source "synthetic" draws incidents uniformly inside a box around the city
// center; "postgres" loads recorded incidents from the crime store.
type CatalogConfig struct {
	Source    string
	Size      int
	CenterLat float64
	CenterLon float64
	SpreadDeg float64
	Seed      int64
}

// RouteConfig holds the engine tuning and the route option menu. The menu is
// configuration data so new candidates can be added without touching the
// selector.
type RouteConfig struct {
	InteriorPoints int
	Options        []RouteOptionConfig
}

// RouteOptionConfig is one entry of the route option menu.
type RouteOptionConfig struct {
	Name    string  `json:"name"`
	EndLat  float64 `json:"end_lat"`
	EndLon  float64 `json:"end_lon"`
	EtaMin  int     `json:"eta_min"`
	EtaMax  int     `json:"eta_max"`
	Details string  `json:"details"`
}

type WorkerConfig struct {
	Enabled       bool
	ConsumerGroup string
	MaxRetries    int
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			HeatmapCacheTTL: time.Duration(viper.GetInt("HEATMAP_CACHE_TTL")) * time.Second,
			StatsCacheTTL:   time.Duration(viper.GetInt("STATS_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Catalog: CatalogConfig{
			Source:    viper.GetString("CATALOG_SOURCE"),
			Size:      viper.GetInt("CATALOG_SIZE"),
			CenterLat: viper.GetFloat64("CATALOG_CENTER_LAT"),
			CenterLon: viper.GetFloat64("CATALOG_CENTER_LON"),
			SpreadDeg: viper.GetFloat64("CATALOG_SPREAD_DEG"),
			Seed:      viper.GetInt64("CATALOG_SEED"),
		},
		Route: RouteConfig{
			InteriorPoints: viper.GetInt("ROUTE_INTERIOR_POINTS"),
			Options:        parseRouteOptions(viper.GetString("ROUTE_OPTIONS")),
		},
		Worker: WorkerConfig{
			Enabled:       viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup: viper.GetString("WORKER_CONSUMER_GROUP"),
			MaxRetries:    viper.GetInt("WORKER_MAX_RETRIES"),
		},
	}

	// Set default values if not provided
	if cfg.Catalog.Source == "" {
		cfg.Catalog.Source = "synthetic"
	}
	if cfg.Catalog.Size == 0 {
		cfg.Catalog.Size = 300
	}
	if cfg.Catalog.CenterLat == 0 {
		cfg.Catalog.CenterLat = 23.8103
	}
	if cfg.Catalog.CenterLon == 0 {
		cfg.Catalog.CenterLon = 90.4125
	}
	if cfg.Catalog.SpreadDeg == 0 {
		cfg.Catalog.SpreadDeg = 0.2
	}
	if cfg.Route.InteriorPoints == 0 {
		cfg.Route.InteriorPoints = 15
	}
	if len(cfg.Route.Options) == 0 {
		cfg.Route.Options = DefaultRouteOptions()
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "alert-notify-workers"
	}
	if cfg.Worker.MaxRetries == 0 {
		cfg.Worker.MaxRetries = 3
	}

	return cfg, nil
}

// parseRouteOptions decodes the ROUTE_OPTIONS JSON array. Invalid JSON is
// treated as absent so the defaults apply.
func parseRouteOptions(s string) []RouteOptionConfig {
	if s == "" {
		return nil
	}
	var options []RouteOptionConfig
	if err := json.Unmarshal([]byte(s), &options); err != nil {
		return nil
	}
	return options
}

// DefaultRouteOptions returns the built-in Dhaka route menu.
func DefaultRouteOptions() []RouteOptionConfig {
	return []RouteOptionConfig{
		{
			Name:    "Direct Route via Mohakhali",
			EndLat:  23.785,
			EndLon:  90.408,
			EtaMin:  15,
			EtaMax:  25,
			Details: "Most direct path, may pass through congested or high-risk areas.",
		},
		{
			Name:    "Alternative via Hatirjheel",
			EndLat:  23.753,
			EndLon:  90.392,
			EtaMin:  25,
			EtaMax:  35,
			Details: "Longer route that uses major, well-lit roads, avoiding some risk zones.",
		},
	}
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
