package config

import (
	"strings"
	"time"

	"go.uber.org/fx"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var Module = fx.Provide(NewConfig)

type IConfig interface {
	Get(key string) interface{}
	GetBool(key string) bool
	GetFloat64(key string) float64
	GetInt(key string) int
	GetInt64(key string) int64
	GetString(key string) string
	GetStringSlice(key string) []string
	GetStringMap(key string) map[string]interface{}
	UnmarshalKey(key string, val interface{}) error
	GetDuration(key string) time.Duration
}

type config struct {
	cfg *viper.Viper
}

func NewConfig() IConfig {
	_ = godotenv.Load()

	cfg := viper.New()
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	_ = cfg.BindEnv("server.host", "SERVICE_HOST")
	_ = cfg.BindEnv("server.port", "SERVICE_HTTP_PORT")
	_ = cfg.BindEnv("redis.password", "REDIS_PASSWORD")
	_ = cfg.BindEnv("redis.addrs", "REDIS_ADDRS")
	_ = cfg.BindEnv("redis.prefix", "REDIS_PREFIX")
	_ = cfg.BindEnv("auth.secret", "SECRET_KEY")
	_ = cfg.BindEnv("auth.email", "AUTH_MEMBER_EMAIL")
	_ = cfg.BindEnv("auth.password", "AUTH_MEMBER_PASSWORD")
	_ = cfg.BindEnv("session.ttl", "SESSION_TTL")
	_ = cfg.BindEnv("geocoder.base_url", "GEOCODER_BASE_URL")
	_ = cfg.BindEnv("geocoder.country_hint", "GEOCODER_COUNTRY_HINT")
	_ = cfg.BindEnv("router.base_url", "ROUTER_BASE_URL")
	_ = cfg.BindEnv("store.primary_id", "STORE_PRIMARY_ID")
	_ = cfg.BindEnv("gin.trusted_proxies", "GIN_TRUSTED_PROXIES")

	cfg.SetDefault("server.port", ":8080")
	cfg.SetDefault("redis.prefix", "webiecellar")
	cfg.SetDefault("session.ttl", "24h")
	cfg.SetDefault("auth.secret", "webiecellar-dev-secret")
	cfg.SetDefault("auth.email", "webie_user@gmail.com")
	cfg.SetDefault("auth.password", "123123123")
	cfg.SetDefault("geocoder.base_url", "https://nominatim.openstreetmap.org")
	cfg.SetDefault("geocoder.country_hint", "Vietnam")
	cfg.SetDefault("router.base_url", "https://router.project-osrm.org")
	cfg.SetDefault("store.primary_id", "webie-cellar-district1")

	if addrs := cfg.GetString("redis.addrs"); addrs != "" && !strings.Contains(addrs, " ") {
		cfg.Set("redis.addrs", strings.Split(addrs, ","))
	}
	if len(cfg.GetStringSlice("redis.addrs")) == 0 {
		cfg.Set("redis.addrs", []string{"localhost:6379"})
	}

	return &config{cfg: cfg}
}

func (c *config) Get(key string) interface{} {
	return c.cfg.Get(key)
}

func (c *config) GetBool(key string) bool {
	return c.cfg.GetBool(key)
}

func (c *config) GetFloat64(key string) float64 {
	return c.cfg.GetFloat64(key)
}

func (c *config) GetInt(key string) int {
	return c.cfg.GetInt(key)
}

func (c *config) GetInt64(key string) int64 {
	return c.cfg.GetInt64(key)
}

func (c *config) GetString(key string) string {
	return c.cfg.GetString(key)
}

func (c *config) GetStringSlice(key string) []string {
	return c.cfg.GetStringSlice(key)
}

func (c *config) GetStringMap(key string) map[string]interface{} {
	return c.cfg.GetStringMap(key)
}

func (c *config) UnmarshalKey(key string, val interface{}) error {
	return c.cfg.UnmarshalKey(key, &val)
}

func (c *config) GetDuration(key string) time.Duration {
	return c.cfg.GetDuration(key)
}
