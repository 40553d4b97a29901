package config

import (
	"errors"
	"io"
	"os"
	"time"
	_ "time/tzdata"
	"warehouse/packages/common/logger"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var configLogger = logger.NewSource("CONFIG", logger.Default)

const DefaultPath = "warehouse.config.yaml"

// Wrapper for time.ParseDuration. Panics on error.
func parseDuration(raw string) time.Duration {
	v, e := time.ParseDuration(raw)

	if e != nil {
		panic(e)
	}

	return v
}

type dbConfig struct {
	Name                   string `yaml:"db-name" validate:"required"`
	EmployeeCollectionName string `yaml:"db-employee-collection" validate:"required"`
	OrderCollectionName    string `yaml:"db-order-collection" validate:"required"`
	ProductCollectionName  string `yaml:"db-product-collection" validate:"required"`
	RawQueryTimeout        string `yaml:"db-query-timeout" validate:"required,duration"`
}

func (c *dbConfig) QueryTimeout() time.Duration {
	return parseDuration(c.RawQueryTimeout)
}

type httpServerConfig struct {
	Port           string   `yaml:"http-port" validate:"required"`
	AllowedOrigins []string `yaml:"http-allowed-origins" validate:"required,min=1"`
	BodyLimit      string   `yaml:"http-body-limit" validate:"required"`
	// Requests per second from a single IP to the search endpoints
	SearchRateLimit float64 `yaml:"http-search-rate-limit" validate:"gt=0"`
	SearchRateBurst int     `yaml:"http-search-rate-burst" validate:"gt=0"`
}

type cacheConfig struct {
	RawSocketTimeout    string `yaml:"cache-socket-timeout" validate:"required,duration"`
	RawOperationTimeout string `yaml:"cache-operation-timeout" validate:"required,duration"`
	RawTTL              string `yaml:"cache-ttl" validate:"required,duration"`
}

func (c *cacheConfig) SocketTimeout() time.Duration {
	return parseDuration(c.RawSocketTimeout)
}

func (c *cacheConfig) OperationTimeout() time.Duration {
	return parseDuration(c.RawOperationTimeout)
}

func (c *cacheConfig) TTL() time.Duration {
	return parseDuration(c.RawTTL)
}

type queryConfig struct {
	// IANA time zone name, date buckets (same date/month/year) are computed in it
	TimeZone string `yaml:"query-time-zone" validate:"required,timezone"`
}

// Never fails, time zone is validated on load.
func (c *queryConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		panic(err)
	}
	return loc
}

type sentryConfig struct {
	TraceSampleRate float64 `yaml:"sentry-trace-sample-rate" validate:"gte=0,lte=1"`
}

type debugConfig struct {
	Enabled bool `yaml:"debug-mode" validate:"exists"`
}

type appConfig struct {
	ShowLogs         bool   `yaml:"show-logs" validate:"exists"`
	TraceLogsEnabled bool   `yaml:"trace-logs" validate:"exists"`
	LogsDir          string `yaml:"logs-dir" validate:"required"`
}

type configs struct {
	dbConfig         `yaml:",inline"`
	httpServerConfig `yaml:",inline"`
	cacheConfig      `yaml:",inline"`
	queryConfig      `yaml:",inline"`
	sentryConfig     `yaml:",inline"`
	debugConfig      `yaml:",inline"`
	appConfig        `yaml:",inline"`
}

var DB *dbConfig
var HTTP *httpServerConfig
var Cache *cacheConfig
var Query *queryConfig
var Sentry *sentryConfig
var Debug *debugConfig
var App *appConfig

var isInit bool = false

func newValidator() *validator.Validate {
	validate := validator.New()

	validate.RegisterValidation("exists", func(fl validator.FieldLevel) bool {
		return true // Always pass (just ensure that the field exists)
	})

	validate.RegisterValidation("duration", func(fl validator.FieldLevel) bool {
		_, err := time.ParseDuration(fl.Field().String())
		return err == nil
	})

	return validate
}

func parse(rawConfig []byte) (*configs, error) {
	dest := new(configs)

	if err := yaml.Unmarshal(rawConfig, dest); err != nil {
		return nil, err
	}

	if err := newValidator().Struct(dest); err != nil {
		return nil, err
	}

	return dest, nil
}

func loadConfig(path string) *configs {
	configLogger.Info("Reading config file...", nil)

	file, err := os.Open(path)
	if err != nil {
		configLogger.Fatal("Failed to open config file", err.Error(), nil)
	}
	defer file.Close()

	rawConfig, err := io.ReadAll(file)
	if err != nil {
		configLogger.Fatal("Failed to read config file", err.Error(), nil)
	}

	configLogger.Info("Reading config file: OK", nil)

	configLogger.Info("Parsing config file...", nil)

	dest, err := parse(rawConfig)
	if err != nil {
		configLogger.Fatal("Failed to parse config file", err.Error(), nil)
	}

	configLogger.Info("Parsing config file: OK", nil)

	return dest
}

func apply(c *configs) {
	DB = &c.dbConfig
	HTTP = &c.httpServerConfig
	Cache = &c.cacheConfig
	Query = &c.queryConfig
	Sentry = &c.sentryConfig
	Debug = &c.debugConfig
	App = &c.appConfig
}

// Reads config from the file at path and loads secrets from environment.
func Init(path string) {
	if isInit {
		configLogger.Fatal("Failed to initialize config", "Config already initialized", nil)
	}

	configLogger.Info("Initializing...", nil)

	apply(loadConfig(path))
	loadSecrets()

	configLogger.Info("Initializing: OK", nil)

	isInit = true
}

// Same as Init, but reads config from raw YAML and doesn't load secrets.
// Returns error instead of terminating the program.
func InitFromBytes(rawConfig []byte) error {
	if isInit {
		return errors.New("config already initialized")
	}

	c, err := parse(rawConfig)
	if err != nil {
		return err
	}

	apply(c)

	isInit = true

	return nil
}
