package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// Config holds all runtime settings for the backend and the browse client
type Config struct {
	Env       string          `yaml:"env"`
	Port      string          `yaml:"port"`
	LogLevel  string          `yaml:"logLevel"`
	Database  DatabaseConfig  `yaml:"database"`
	CORS      CORSConfig      `yaml:"cors"`
	Firebase  FirebaseConfig  `yaml:"firebase"`
	Generator GeneratorConfig `yaml:"generator"`
	CatAPI    CatAPIConfig    `yaml:"catApi"`
}

type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	// Path is the sqlite file, ":memory:" for tests
	Path string `yaml:"path"`
	// URL is a postgres connection string; when empty it is built from the fields below
	URL      string `yaml:"url"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslMode"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

type FirebaseConfig struct {
	ProjectID       string `yaml:"projectId"`
	CredentialsJSON string `yaml:"credentialsJson"`
	// DevUserID is injected into requests when no credentials are configured
	DevUserID string `yaml:"devUserId"`
}

type GeneratorConfig struct {
	Interval time.Duration `yaml:"interval"`
}

type CatAPIConfig struct {
	URL          string        `yaml:"url"`
	APIKey       string        `yaml:"apiKey"`
	DefaultImage string        `yaml:"defaultImage"`
	Timeout      time.Duration `yaml:"timeout"`
}

// Default returns the configuration used when no file and no environment are present
func Default() Config {
	return Config{
		Env:      "development",
		Port:     "8080",
		LogLevel: "info",
		Database: DatabaseConfig{
			Driver:  DriverSQLite,
			Path:    "./cats.db",
			Host:    "localhost",
			Port:    "5432",
			User:    "postgres",
			Name:    "catdistribution",
			SSLMode: "disable",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:5173", // Vite development server
				"http://localhost:3000",
				"http://localhost:8080",
			},
		},
		Firebase: FirebaseConfig{
			DevUserID: "admin",
		},
		Generator: GeneratorConfig{Interval: time.Second},
		CatAPI: CatAPIConfig{
			URL:          "https://api.thecatapi.com/v1/images/search",
			DefaultImage: "https://mymodernmet.com/wp/wp-content/uploads/archive/3SVSdXInLL8ORNm6uCsk_1065304886.jpeg",
			Timeout:      5 * time.Second,
		},
	}
}

// Load reads the YAML file at path (if any) on top of the defaults and then
// applies environment overrides
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("APP_ENV"); v != "" {
		c.Env = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}

	if v := os.Getenv("DATABASE_DRIVER"); v != "" {
		c.Database.Driver = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Database.URL = v
	}
	if v := os.Getenv("DATABASE_PATH"); v != "" {
		c.Database.Path = v
	} else if os.Getenv("FLY_APP_NAME") != "" {
		// We're running on Fly.io, use the mounted volume
		c.Database.Path = filepath.Join("/data", "cats.db")
	}

	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		c.CORS.AllowedOrigins = strings.Split(v, ",")
	}

	if v := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); v != "" {
		c.Firebase.CredentialsJSON = v
	} else if v := os.Getenv("FIREBASE_SERVICE_ACCOUNT_BASE64"); v != "" {
		decoded, err := base64.StdEncoding.DecodeString(v)
		if err != nil {
			return fmt.Errorf("failed to decode FIREBASE_SERVICE_ACCOUNT_BASE64: %w", err)
		}
		c.Firebase.CredentialsJSON = string(decoded)
	}
	if v := os.Getenv("FIREBASE_PROJECT_ID"); v != "" {
		c.Firebase.ProjectID = v
	}

	if v := os.Getenv("CAT_API_KEY"); v != "" {
		c.CatAPI.APIKey = v
	}
	if v := os.Getenv("GENERATION_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid GENERATION_INTERVAL %q: %w", v, err)
		}
		c.Generator.Interval = d
	}

	return nil
}

// Validate checks the settings that would otherwise fail late at runtime
func (c Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Path == "" {
			return errors.New("database path is required for sqlite3")
		}
	case DriverPostgres:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	if c.Generator.Interval <= 0 {
		return fmt.Errorf("generator interval must be positive, got %s", c.Generator.Interval)
	}
	if c.Port == "" {
		return errors.New("port is required")
	}
	return nil
}

// IsProduction reports whether the backend runs with production settings
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// PostgresDSN builds a PostgreSQL connection string
func (d DatabaseConfig) PostgresDSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}
