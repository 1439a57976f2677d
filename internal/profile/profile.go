// Package profile loads Cloud Office Print server settings from YAML, INI or
// dotenv files, or from the process environment.
package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// DefaultEnvPrefix is used by dotenv files and FromEnv when no prefix is given.
const DefaultEnvPrefix = "COP_"

// Profile holds the settings needed to talk to one server.
type Profile struct {
	URL         string  `yaml:"url" ini:"url" validate:"required,url"`
	APIKey      string  `yaml:"api_key" ini:"api_key"`
	Timeout     string  `yaml:"timeout" ini:"timeout"`
	RateLimit   float64 `yaml:"rate_limit" ini:"rate_limit" validate:"gte=0"`
	RateBurst   int     `yaml:"rate_burst" ini:"rate_burst" validate:"gte=0"`
	HTTPProxy   string  `yaml:"http_proxy" ini:"http_proxy" validate:"omitempty,url"`
	HTTPSProxy  string  `yaml:"https_proxy" ini:"https_proxy" validate:"omitempty,url"`
	RemoteDebug bool    `yaml:"remote_debug" ini:"remote_debug"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// TimeoutDuration parses Timeout. Zero means no explicit timeout.
func (p *Profile) TimeoutDuration() (time.Duration, error) {
	if strings.TrimSpace(p.Timeout) == "" {
		return 0, nil
	}
	return ParseDuration(p.Timeout)
}

// Proxies returns the proxy map in the form ServerConfig expects.
func (p *Profile) Proxies() map[string]string {
	proxies := map[string]string{}
	if p.HTTPProxy != "" {
		proxies["http"] = p.HTTPProxy
	}
	if p.HTTPSProxy != "" {
		proxies["https"] = p.HTTPSProxy
	}
	return proxies
}

// Validate checks the profile fields
func (p *Profile) Validate() error {
	if err := validate.Struct(p); err != nil {
		return errors.New(validationErrorMessage(err))
	}
	if _, err := p.TimeoutDuration(); err != nil {
		return fmt.Errorf("invalid timeout %q: %w", p.Timeout, err)
	}
	return nil
}

// validationErrorMessage returns a readable validation error message.
func validationErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, ve := range verrs {
			switch ve.Tag() {
			case "required":
				return fmt.Sprintf("profile: %s is required", ve.Field())
			case "url":
				return fmt.Sprintf("profile: %s must be a valid URL", ve.Field())
			case "gte":
				return fmt.Sprintf("profile: %s must not be negative", ve.Field())
			}
		}
	}
	return "profile: invalid settings"
}

// Load reads a profile file. The format is chosen by extension: .yaml/.yml,
// .ini/.conf, or .env (keys carry DefaultEnvPrefix).
func Load(path string) (*Profile, error) {
	var (
		p   *Profile
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); {
	case ext == ".yaml" || ext == ".yml":
		p, err = loadYAML(path)
	case ext == ".ini" || ext == ".conf":
		p, err = loadINI(path)
	case ext == ".env" || filepath.Base(path) == ".env":
		p, err = loadDotenv(path)
	default:
		return nil, fmt.Errorf("profile: unsupported file type %q", ext)
	}
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func loadYAML(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("profile: reading %s: %w", path, err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("profile: parsing %s: %w", path, err)
	}
	return &p, nil
}

// loadINI maps the [server] section, or the default section when absent.
func loadINI(path string) (*Profile, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("profile: reading %s: %w", path, err)
	}
	section := cfg.Section("")
	if cfg.HasSection("server") {
		section = cfg.Section("server")
	}
	var p Profile
	if err := section.MapTo(&p); err != nil {
		return nil, fmt.Errorf("profile: parsing %s: %w", path, err)
	}
	return &p, nil
}

func loadDotenv(path string) (*Profile, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("profile: reading %s: %w", path, err)
	}
	return fromLookup(DefaultEnvPrefix, func(key string) string { return values[key] })
}

// FromEnv builds a profile from <prefix>URL, <prefix>API_KEY, <prefix>TIMEOUT,
// <prefix>RATE_LIMIT, <prefix>RATE_BURST, <prefix>HTTP_PROXY,
// <prefix>HTTPS_PROXY and <prefix>REMOTE_DEBUG, honouring the _FILE variants.
func FromEnv(prefix string) (*Profile, error) {
	if prefix == "" {
		prefix = DefaultEnvPrefix
	}
	p, err := fromLookup(prefix, func(key string) string { return Get(key, "") })
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func fromLookup(prefix string, lookup func(string) string) (*Profile, error) {
	p := &Profile{
		URL:        lookup(prefix + "URL"),
		APIKey:     lookup(prefix + "API_KEY"),
		Timeout:    lookup(prefix + "TIMEOUT"),
		HTTPProxy:  lookup(prefix + "HTTP_PROXY"),
		HTTPSProxy: lookup(prefix + "HTTPS_PROXY"),
	}
	if v := lookup(prefix + "RATE_LIMIT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("profile: %sRATE_LIMIT: %w", prefix, err)
		}
		p.RateLimit = f
	}
	if v := lookup(prefix + "RATE_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("profile: %sRATE_BURST: %w", prefix, err)
		}
		p.RateBurst = n
	}
	p.RemoteDebug = parseBool(lookup(prefix+"REMOTE_DEBUG"), false)
	return p, nil
}
