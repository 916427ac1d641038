package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// AppConfig holds the ambient defaults the CLI falls back to when a flag
// isn't given: log verbosity, transport timeouts/buffer size, default
// transport preference, default color policy, and an optional override for
// the nameservers OS resolver discovery would otherwise supply.
type AppConfig struct {
	Env string `koanf:"env" validate:"required,oneof=dev prod"`

	Log LoggingConfig `koanf:"log"`

	Transport TransportConfig `koanf:"transport"`

	Output OutputConfig `koanf:"output"`

	// Nameservers, if non-empty, is used instead of OS resolver discovery
	// when the command line gives no -n/--nameserver.
	Nameservers []string `koanf:"nameservers" validate:"omitempty,dive,ip_port"`

	// IDNA enables the optional capability hook from §4.3: non-ASCII query
	// name labels are transformed to their A-label form before encoding.
	// Off by default, matching the distilled spec's "optional" wording.
	IDNA bool `koanf:"idna"`
}

// LoggingConfig holds the log level setting. Level is validated on load,
// but cmd/dog does not read it: the logger's level comes from DOG_DEBUG
// alone (warn when DOG_DEBUG is unset).
type LoggingConfig struct {
	Level string `koanf:"level" validate:"required,oneof=debug info warn error"`
}

// TransportConfig holds the defaults for outgoing queries.
type TransportConfig struct {
	// TimeoutSeconds bounds every transport's connect/read deadline.
	TimeoutSeconds uint `koanf:"timeout_seconds" validate:"required,gte=1"`

	// DefaultBufSize is the OPT record's advertised UDP payload size when
	// no -Z bufsize=N tweak overrides it.
	DefaultBufSize uint16 `koanf:"default_bufsize" validate:"required,gte=512,lte=65527"`

	// DefaultPreference is the transport used when no -U/-T/-S/-H flag is
	// given: one of "udp", "tcp", "tls", "https", "auto".
	DefaultPreference string `koanf:"default_preference" validate:"required,oneof=udp tcp tls https auto"`
}

// OutputConfig holds rendering defaults.
type OutputConfig struct {
	// Color is one of "always", "automatic", "never".
	Color string `koanf:"color" validate:"required,oneof=always automatic never"`
}

// DEFAULT_APP_CONFIG defines the application's built-in defaults, applied
// before any DOG_-prefixed environment override.
var DEFAULT_APP_CONFIG = AppConfig{
	Env: "prod",
	Log: LoggingConfig{
		Level: "warn",
	},
	Transport: TransportConfig{
		TimeoutSeconds:    5,
		DefaultBufSize:    512,
		DefaultPreference: "auto",
	},
	Output: OutputConfig{
		Color: "automatic",
	},
	Nameservers: nil,
	IDNA:        false,
}

// validIPPort validates whether the provided field value is a valid
// "ip:port" combination, accepting bracketed IPv6.
func validIPPort(fl validator.FieldLevel) bool {
	addr := fl.Field().String()
	ip, port, err := net.SplitHostPort(addr)
	if err != nil || ip == "" || port == "" {
		return false
	}
	if net.ParseIP(ip) == nil {
		return false
	}
	portNum, err := strconv.ParseUint(port, 10, 16)
	return err == nil && portNum > 0 && portNum < 65536
}

// envLoader loads environment variables prefixed "DOG_", lowercasing and
// stripping the prefix to map onto the koanf tag names above. Values
// containing a space or comma are split into a slice, which is how
// Nameservers accepts multiple servers from one environment variable.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: "DOG_",
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, "DOG_"))
			key = strings.Replace(key, "_", ".", 1)
			value = strings.TrimSpace(value)

			if value == "" {
				return key, value
			}

			if strings.Contains(value, " ") || strings.Contains(value, ",") {
				parts := strings.FieldsFunc(value, func(r rune) bool {
					return r == ' ' || r == ','
				})
				return key, parts
			}

			return key, value
		},
	}), nil)
}

// defaultLoader seeds a Koanf instance with DEFAULT_APP_CONFIG before any
// environment override is applied.
var defaultLoader = func(k *koanf.Koanf) error {
	return k.Load(structs.Provider(DEFAULT_APP_CONFIG, "koanf"), nil)
}

// registerValidation wires the custom "ip_port" tag into a validator
// instance.
var registerValidation = func(v *validator.Validate) error {
	return v.RegisterValidation("ip_port", validIPPort)
}

// Load parses DOG_-prefixed environment variables over the built-in
// defaults and returns a validated AppConfig.
func Load() (*AppConfig, error) {
	k := koanf.New(".")

	if err := defaultLoader(k); err != nil {
		return nil, fmt.Errorf("error loading default config: %w", err)
	}

	if err := envLoader(k); err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	var cfg AppConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := registerValidation(validate); err != nil {
		return nil, fmt.Errorf("error registering validation: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}
