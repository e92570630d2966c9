package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/go-viper/mapstructure/v2"
	"github.com/niksmo/inventory-pos/internal/core/domain"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configFileEnvName = "INVENTORY_CONFIG_FILE"
	envPrefix         = "INVENTORY"
)

const (
	NotifyLog   = "log"
	NotifyKafka = "kafka"
	NotifyNone  = "none"
)

type topics struct {
	Sales    string `mapstructure:"sales"`
	LowStock string `mapstructure:"low_stock"`
}

type brokerTLS struct {
	CA   string `mapstructure:"ca"`
	Cert string `mapstructure:"cert"`
	Key  string `mapstructure:"key"`
}

// Enabled reports whether all the certificate paths are set.
func (t brokerTLS) Enabled() bool {
	return t.CA != "" && t.Cert != "" && t.Key != ""
}

type Broker struct {
	SeedBrokers        []string  `mapstructure:"seed_brokers"`
	SchemaRegistryURLs []string  `mapstructure:"schema_registry_urls"`
	Topics             topics    `mapstructure:"topics"`
	TLS                brokerTLS `mapstructure:"tls"`
}

type cart struct {
	StockPolicy string `mapstructure:"stock_policy"`
}

type checkout struct {
	DecrementStock bool `mapstructure:"decrement_stock"`
}

type httpServer struct {
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type notify struct {
	Kind    string        `mapstructure:"kind"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type telemetry struct {
	Enabled     bool   `mapstructure:"enabled"`
	Exporter    string `mapstructure:"exporter"`
	Endpoint    string `mapstructure:"endpoint"`
	ServiceName string `mapstructure:"service_name"`
}

type Config struct {
	LogLevel       slog.Level `mapstructure:"log_level"`
	HTTPServerAddr string     `mapstructure:"http_server_addr"`
	Timezone       string     `mapstructure:"timezone"`
	SeedFile       string     `mapstructure:"seed_file"`
	Cart           cart       `mapstructure:"cart"`
	Checkout       checkout   `mapstructure:"checkout"`
	HTTP           httpServer `mapstructure:"http"`
	Notify         notify     `mapstructure:"notify"`
	Broker         Broker     `mapstructure:"broker"`
	Telemetry      telemetry  `mapstructure:"telemetry"`
}

var defaults = map[string]any{
	"log_level":                   "info",
	"http_server_addr":            ":8080",
	"timezone":                    "UTC",
	"seed_file":                   "",
	"cart.stock_policy":           string(domain.StockPolicyClamp),
	"checkout.decrement_stock":    true,
	"http.request_timeout":        "5s",
	"http.shutdown_timeout":       "5s",
	"notify.kind":                 NotifyLog,
	"notify.timeout":              "5s",
	"broker.seed_brokers":         []string{},
	"broker.schema_registry_urls": []string{},
	"broker.topics.sales":         "sales",
	"broker.topics.low_stock":     "low-stock",
	"broker.tls.ca":               "",
	"broker.tls.cert":             "",
	"broker.tls.key":              "",
	"telemetry.enabled":           false,
	"telemetry.exporter":          "stdout",
	"telemetry.endpoint":          "",
	"telemetry.service_name":      "inventory-pos",
}

// Load reads the config file named by the --config flag or
// INVENTORY_CONFIG_FILE and exits the process on failure.
func Load() Config {
	cfg, err := LoadFile(getConfigFilepath())
	if err != nil {
		die(err)
	}
	return cfg
}

// LoadFile merges defaults, the YAML file at path and INVENTORY_*
// environment variables. An empty path skips the file.
func LoadFile(path string) (Config, error) {
	const op = "config.LoadFile"

	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	var cfg Config
	err := v.UnmarshalExact(&cfg, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", op, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error

	if _, err := domain.ParseStockPolicy(c.Cart.StockPolicy); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Location(); err != nil {
		errs = append(errs, err)
	}

	switch c.Notify.Kind {
	case NotifyLog, NotifyNone:
	case NotifyKafka:
		if len(c.Broker.SeedBrokers) == 0 {
			errs = append(errs, errors.New("broker.seed_brokers is empty"))
		}
		if len(c.Broker.SchemaRegistryURLs) == 0 {
			errs = append(errs, errors.New("broker.schema_registry_urls is empty"))
		}
		if c.Broker.Topics.Sales == "" || c.Broker.Topics.LowStock == "" {
			errs = append(errs, errors.New("broker.topics must be set"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown notify.kind %q", c.Notify.Kind))
	}

	if c.HTTP.RequestTimeout <= 0 || c.HTTP.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("http timeouts must be positive"))
	}
	if c.Notify.Timeout <= 0 {
		errs = append(errs, errors.New("notify.timeout must be positive"))
	}

	return errors.Join(errs...)
}

// Location returns the time zone used for day boundaries and labels.
func (c Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

func (c Config) StockPolicy() domain.StockPolicy {
	p, _ := domain.ParseStockPolicy(c.Cart.StockPolicy)
	return p
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	tamplate := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q
	Timezone=%q
	SeedFile=%q
	StockPolicy=%q
	DecrementStock=%t
	RequestTimeout=%s
	ShutdownTimeout=%s
	Notify=%q
	NotifyTimeout=%s

	BrokerConfig:
	SeedBrokers=%q
	SchemaRegistryURLs=%q
	TLS=%t
	Topics:
		Sales=%q
		LowStock=%q

	Telemetry:
	Enabled=%t
	Exporter=%q
	Endpoint=%q
	ServiceName=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.Timezone,
		c.SeedFile,
		c.Cart.StockPolicy,
		c.Checkout.DecrementStock,
		c.HTTP.RequestTimeout,
		c.HTTP.ShutdownTimeout,
		c.Notify.Kind,
		c.Notify.Timeout,
		c.Broker.SeedBrokers,
		c.Broker.SchemaRegistryURLs,
		c.Broker.TLS.Enabled(),
		c.Broker.Topics.Sales,
		c.Broker.Topics.LowStock,
		c.Telemetry.Enabled,
		c.Telemetry.Exporter,
		c.Telemetry.Endpoint,
		c.Telemetry.ServiceName,
	)
}
