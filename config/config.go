package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath       = "."
	defaultAPITimeout = 15 * time.Second
	defaultSessionKey = "authToken"
	defaultQRSize     = 256
)

// Session storage backends.
const (
	SessionBackendFile  = "file"
	SessionBackendMem   = "mem"
	SessionBackendRedis = "redis"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	API APIConfig `json:"api" yaml:"api"`

	Session SessionConfig `json:"session" yaml:"session"`

	// Storefront holds settings for links shared outside the client
	Storefront StorefrontConfig `json:"storefront" yaml:"storefront"`
}

// APIConfig defines how the remote storefront API is reached
type APIConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// SessionConfig defines where the session token is persisted between runs
type SessionConfig struct {
	// Backend type: "file", "mem" or "redis"
	Backend string `json:"backend" yaml:"backend"`

	// Bucket URL for blob backends, e.g. file:///home/me/.storefront or mem://
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// Key under which the token is stored
	Key string `json:"key" yaml:"key"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`
}

// RedisConfig defines the redis connection used by the redis session backend
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// StorefrontConfig defines public-facing link settings
type StorefrontConfig struct {
	PublicURL string `json:"publicUrl" yaml:"publicUrl"`
	QRSize    int    `json:"qrSize" yaml:"qrSize"`

	// QR error correction level: L, M, Q or H
	QRRecovery string `json:"qrRecovery" yaml:"qrRecovery"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Example: SESSION_BUCKETURL -> session.bucketUrl
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		Prefix: "STOREFRONT_",
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(strings.TrimPrefix(k, "STOREFRONT_"), existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() error {
	if strings.TrimSpace(cfg.API.BaseURL) == "" {
		return errors.New("api.baseUrl is required")
	}
	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")

	if cfg.API.Timeout <= 0 {
		cfg.API.Timeout = defaultAPITimeout
	}
	if cfg.Session.Backend == "" {
		cfg.Session.Backend = SessionBackendFile
	}
	if cfg.Session.Key == "" {
		cfg.Session.Key = defaultSessionKey
	}
	if cfg.Session.Backend == SessionBackendFile && cfg.Session.BucketURL == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return errors.Wrap(err, "resolve home dir for session storage")
		}
		cfg.Session.BucketURL = "file://" + filepath.ToSlash(filepath.Join(home, ".storefront"))
	}
	if cfg.Storefront.QRSize <= 0 {
		cfg.Storefront.QRSize = defaultQRSize
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
