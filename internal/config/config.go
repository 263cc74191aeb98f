package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	StoreDriverDynamoDB = "dynamodb"
	StoreDriverMemory   = "memory"
)

// Config is the runtime configuration of the API.
//
// Values come from, in order of precedence: environment variables, the YAML
// file named by CONFIG_FILE, and the defaults in Default.
type Config struct {
	HTTP       HTTPConfig       `yaml:"http"`
	Store      StoreConfig      `yaml:"store"`
	Redis      RedisConfig      `yaml:"redis"`
	Blob       BlobConfig       `yaml:"blob"`
	Suggestion SuggestionConfig `yaml:"suggestion"`
	MQTT       MQTTConfig       `yaml:"mqtt"`
	Auth       AuthConfig       `yaml:"auth"`
	Log        LogConfig        `yaml:"log"`
}

type HTTPConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type StoreConfig struct {
	Driver         string `yaml:"driver"`
	Region         string `yaml:"region"`
	Endpoint       string `yaml:"endpoint"`
	OrdersTable    string `yaml:"orders_table"`
	EmployeesTable string `yaml:"employees_table"`
	UsersTable     string `yaml:"users_table"`
	// CreateTables provisions missing tables at startup (local DynamoDB).
	CreateTables bool `yaml:"create_tables"`
}

// RedisConfig holds the session store connection. An empty Addr keeps
// sessions in memory.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type BlobConfig struct {
	Bucket        string        `yaml:"bucket"`
	Region        string        `yaml:"region"`
	Endpoint      string        `yaml:"endpoint"`
	PublicBaseURL string        `yaml:"public_base_url"`
	UsePathStyle  bool          `yaml:"use_path_style"`
	MaxSize       int64         `yaml:"max_size"`
	Timeout       time.Duration `yaml:"timeout"`
}

type SuggestionConfig struct {
	URL     string        `yaml:"url"`
	APIKey  string        `yaml:"api_key"`
	Timeout time.Duration `yaml:"timeout"`
}

type MQTTConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Broker   string `yaml:"broker"`
	ClientID string `yaml:"client_id"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Topic    string `yaml:"topic"`
	QoS      byte   `yaml:"qos"`
}

type AuthConfig struct {
	SessionTTL time.Duration `yaml:"session_ttl"`
	ResetTTL   time.Duration `yaml:"reset_ttl"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	Service string `yaml:"service"`
}

func Default() Config {
	return Config{
		HTTP: HTTPConfig{Addr: ":8080", ShutdownTimeout: 15 * time.Second},
		Store: StoreConfig{
			Driver:         StoreDriverDynamoDB,
			Region:         "us-east-1",
			OrdersTable:    "orders",
			EmployeesTable: "employees",
			UsersTable:     "users",
		},
		Blob: BlobConfig{
			Bucket:  "osmaster-attachments",
			MaxSize: 10 << 20,
			Timeout: 2 * time.Minute,
		},
		Suggestion: SuggestionConfig{Timeout: 10 * time.Second},
		MQTT: MQTTConfig{
			ClientID: "osmaster-api",
			Topic:    "osmaster/orders/created",
			QoS:      1,
		},
		Auth: AuthConfig{SessionTTL: 24 * time.Hour, ResetTTL: time.Hour},
		Log:  LogConfig{Level: "info", Format: "json", Service: "osmaster-api"},
	}
}

// Load builds the configuration from CONFIG_FILE (optional) and the
// environment.
func Load() (Config, error) {
	cfg := Default()
	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return Config{}, err
		}
	}
	cfg.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: decode %s: %w", path, err)
	}
	return nil
}

func (c *Config) LoadFromEnv() {
	c.HTTP.Addr = getEnv("HTTP_ADDR", c.HTTP.Addr)
	if port := os.Getenv("PORT"); port != "" {
		c.HTTP.Addr = ":" + port
	}
	c.HTTP.ShutdownTimeout = getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", c.HTTP.ShutdownTimeout)

	c.Store.Driver = strings.ToLower(getEnv("STORE_DRIVER", c.Store.Driver))
	c.Store.Region = getEnv("AWS_REGION", c.Store.Region)
	c.Store.Endpoint = getEnv("DYNAMODB_ENDPOINT", c.Store.Endpoint)
	c.Store.OrdersTable = getEnv("ORDERS_TABLE", c.Store.OrdersTable)
	c.Store.EmployeesTable = getEnv("EMPLOYEES_TABLE", c.Store.EmployeesTable)
	c.Store.UsersTable = getEnv("USERS_TABLE", c.Store.UsersTable)
	c.Store.CreateTables = getEnvBool("DYNAMODB_CREATE_TABLES", c.Store.CreateTables)

	c.Redis.Addr = getEnv("REDIS_ADDR", c.Redis.Addr)
	c.Redis.Password = getEnv("REDIS_PASSWORD", c.Redis.Password)
	c.Redis.DB = getEnvInt("REDIS_DB", c.Redis.DB)

	c.Blob.Bucket = getEnv("S3_BUCKET", c.Blob.Bucket)
	c.Blob.Region = getEnv("S3_REGION", c.Blob.Region)
	c.Blob.Endpoint = getEnv("S3_ENDPOINT", c.Blob.Endpoint)
	c.Blob.PublicBaseURL = getEnv("S3_PUBLIC_BASE_URL", c.Blob.PublicBaseURL)
	c.Blob.UsePathStyle = getEnvBool("S3_USE_PATH_STYLE", c.Blob.UsePathStyle)
	c.Blob.MaxSize = int64(getEnvInt("ATTACHMENT_MAX_SIZE", int(c.Blob.MaxSize)))
	c.Blob.Timeout = getEnvDuration("ATTACHMENT_UPLOAD_TIMEOUT", c.Blob.Timeout)

	c.Suggestion.URL = getEnv("SUGGESTION_URL", c.Suggestion.URL)
	c.Suggestion.APIKey = getEnv("SUGGESTION_API_KEY", c.Suggestion.APIKey)
	c.Suggestion.Timeout = getEnvDuration("SUGGESTION_TIMEOUT", c.Suggestion.Timeout)

	c.MQTT.Enabled = getEnvBool("MQTT_ENABLED", c.MQTT.Enabled)
	c.MQTT.Broker = getEnv("MQTT_BROKER", c.MQTT.Broker)
	c.MQTT.ClientID = getEnv("MQTT_CLIENT_ID", c.MQTT.ClientID)
	c.MQTT.Username = getEnv("MQTT_USERNAME", c.MQTT.Username)
	c.MQTT.Password = getEnv("MQTT_PASSWORD", c.MQTT.Password)
	c.MQTT.Topic = getEnv("MQTT_TOPIC", c.MQTT.Topic)

	c.Auth.SessionTTL = getEnvDuration("SESSION_TTL", c.Auth.SessionTTL)
	c.Auth.ResetTTL = getEnvDuration("PASSWORD_RESET_TTL", c.Auth.ResetTTL)

	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnv("LOG_FORMAT", c.Log.Format)
	c.Log.Service = getEnv("SERVICE_NAME", c.Log.Service)
}

func (c Config) Validate() error {
	var errs []error
	switch c.Store.Driver {
	case StoreDriverDynamoDB, StoreDriverMemory:
	default:
		errs = append(errs, fmt.Errorf("config: unknown store driver %q", c.Store.Driver))
	}
	if c.MQTT.Enabled && c.MQTT.Broker == "" {
		errs = append(errs, errors.New("config: mqtt enabled without broker"))
	}
	if c.Blob.MaxSize <= 0 {
		errs = append(errs, errors.New("config: attachment max size must be positive"))
	}
	if c.Auth.SessionTTL <= 0 || c.Auth.ResetTTL <= 0 {
		errs = append(errs, errors.New("config: auth ttl must be positive"))
	}
	return errors.Join(errs...)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
