package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type (
	Container struct {
		App     *App
		Token   *Token
		DB      *DB
		HTTP    *HTTP
		Redis   *Redis
		Storage *Storage
	}

	App struct {
		Name string `validate:"required"`
		Env  string `validate:"oneof=development production test"`
	}

	Token struct {
		Secret   string `validate:"required"`
		Duration string
	}

	DB struct {
		Host          string
		Port          string
		User          string
		Password      string
		Name          string
		MigrationsDir string
	}

	HTTP struct {
		Env            string
		Port           string `validate:"required,numeric"`
		AllowedOrigins string
		URL            string
	}

	Redis struct {
		Address  string
		Password string
	}

	Storage struct {
		Driver string `validate:"oneof=postgres memory"`
	}
)

var defaults = map[string]string{
	"app_name":       "motorcare",
	"app_env":        "development",
	"token_duration": "24h",
	"http_port":      "8080",
	"storage_driver": StorageDriverPostgres,
	"migrations_dir": "./internal/adapter/postgres/migrations",
	"db_port":        "5432",
}

func New() (*Container, error) {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	get := func(key string) string {
		if value := strings.TrimSpace(k.String(key)); value != "" {
			return value
		}
		return defaults[key]
	}

	cfg := &Container{
		App: &App{
			Name: get("app_name"),
			Env:  get("app_env"),
		},
		Token: &Token{
			Secret:   get("token_secret"),
			Duration: get("token_duration"),
		},
		DB: &DB{
			Host:          get("db_host"),
			Port:          get("db_port"),
			User:          get("db_user"),
			Password:      get("db_password"),
			Name:          get("db_name"),
			MigrationsDir: get("migrations_dir"),
		},
		HTTP: &HTTP{
			Port:           get("http_port"),
			AllowedOrigins: get("allowed_origins"),
			URL:            get("http_url"),
			Env:            get("app_env"),
		},
		Redis: &Redis{
			Address:  get("redis_address"),
			Password: get("redis_password"),
		},
		Storage: &Storage{
			Driver: strings.ToLower(get("storage_driver")),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Container) validate() error {
	validate := validator.New()
	for _, section := range []interface{}{c.App, c.Token, c.HTTP, c.Storage} {
		if err := validate.Struct(section); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}

	if c.Storage.Driver == StorageDriverPostgres {
		if c.DB.Host == "" || c.DB.User == "" || c.DB.Name == "" {
			return errors.New("invalid config: DB_HOST, DB_USER and DB_NAME are required for the postgres storage driver")
		}
	}
	return nil
}

// DSN is the lib/pq connection string.
func (d *DB) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Password, d.Name)
}
