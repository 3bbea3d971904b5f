package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	HTTP      HTTP          `yaml:"http" validate:"required"`
	JwtTTL    time.Duration `yaml:"jwt_ttl" validate:"required"`
	Log       Log           `yaml:"log"`
	CORS      CORS          `yaml:"cors"`
	RateLimit RateLimit     `yaml:"rate_limit"`
	// Sets HSTS and Secure cookies when the api is served over https
	SecureCookies bool `yaml:"secure_cookies"`
}

type HTTP struct {
	Addr            string        `yaml:"addr" validate:"required"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type Log struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// RateLimit configures the per-user token bucket on write endpoints.
// Zero rate disables limiting.
type RateLimit struct {
	WritesPerSecond float64       `yaml:"writes_per_second" validate:"gte=0"`
	Burst           float64       `yaml:"burst" validate:"gte=0"`
	Expiration      time.Duration `yaml:"expiration"`
}

type Pg struct {
	Host     string `yaml:"host" env:"FORUM_PG_HOST" validate:"required"`
	Port     int    `yaml:"port" env:"FORUM_PG_PORT" validate:"required"`
	User     string `yaml:"user" env:"FORUM_PG_USER" validate:"required"`
	Password string `yaml:"password" env:"FORUM_PG_PASSWORD"`
	Dbname   string `yaml:"dbname" env:"FORUM_PG_DBNAME" validate:"required"`
}

type Private struct {
	Pg     Pg     `yaml:"pg" validate:"required"`
	JwtKey string `yaml:"jwt_key" env:"FORUM_JWT_KEY" validate:"required"`
}

func (c *Config) JwtKey() string {
	return c.Private.JwtKey
}

func (c *Config) JwtTTL() time.Duration {
	return c.Public.JwtTTL
}

func loadPath(configPath string, output any) error {
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("can't read config file %s: %w", configPath, err)
	}
	if err := yaml.Unmarshal(configFile, output); err != nil {
		return fmt.Errorf("can't unmarshal config file %s: %w", configPath, err)
	}
	return nil
}

// Load reads public.yaml and private.yaml from configFolder.
// private.yaml may be absent when secrets come from the environment;
// FORUM_* variables override whatever the file says.
func Load(configFolder string) (*Config, error) {
	var public Public
	if err := loadPath(path.Join(configFolder, "public.yaml"), &public); err != nil {
		return nil, err
	}

	var private Private
	privatePath := path.Join(configFolder, "private.yaml")
	if _, err := os.Stat(privatePath); err == nil {
		if err := loadPath(privatePath, &private); err != nil {
			return nil, err
		}
	}
	if err := cleanenv.ReadEnv(&private); err != nil {
		return nil, fmt.Errorf("can't read config from environment: %w", err)
	}

	cfg := &Config{Public: public, Private: private}
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func MustLoad(configFolder string) *Config {
	cfg, err := Load(configFolder)
	if err != nil {
		panic(err)
	}
	return cfg
}
