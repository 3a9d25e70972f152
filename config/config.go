package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultUserLoadTimeout      = 5 * time.Second
	defaultUserLoadInterval     = 250 * time.Millisecond
	defaultVerificationTimeout  = 30 * time.Second
	defaultVerificationInterval = time.Second
	defaultTokenTTL             = 24 * time.Hour
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Store selects the document store backend and its consistency mode
	Store StoreConfig `json:"store" yaml:"store"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access       string `json:"access" yaml:"access"`
		Verification string `json:"verification" yaml:"verification"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Account *AccountConfig `json:"account" yaml:"account"`

	// TestRoutes configuration for testing endpoints
	TestRoutes *TestRoutesConfig `json:"testRoutes" yaml:"testRoutes"`

	// Firebase configuration for Firestore and Firebase Auth
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// GoogleBooks configuration for ISBN metadata lookup
	GoogleBooks *GoogleBooksConfig `json:"googleBooks" yaml:"googleBooks"`

	Listing *ListingConfig `json:"listing" yaml:"listing"`

	Search *SearchConfig `json:"search" yaml:"search"`

	// QRCode configuration for listing share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Mail configuration for outbound SMTP
	Mail *MailConfig `json:"mail" yaml:"mail"`
}

// StoreConfig defines the document store backend
type StoreConfig struct {
	// Provider: "firestore", "postgres" or "memory"
	Provider string `json:"provider" yaml:"provider"`

	// Consistency: "transactional" or "independent"
	Consistency string `json:"consistency" yaml:"consistency"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	// Provider: "firebase" or "local"
	Provider           string        `json:"provider" yaml:"provider"`
	BcryptCost         int           `json:"bcryptCost" yaml:"bcryptCost"`
	TokenTTL           time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
	AllowedEmailDomain string        `json:"allowedEmailDomain" yaml:"allowedEmailDomain"`
}

// AccountConfig defines the registration flow
type AccountConfig struct {
	VerificationTimeout  time.Duration `json:"verificationTimeout" yaml:"verificationTimeout"`
	VerificationInterval time.Duration `json:"verificationInterval" yaml:"verificationInterval"`
	// VerifyBaseURL is the public URL of GET /auth/verify for the local provider
	VerifyBaseURL string `json:"verifyBaseUrl" yaml:"verifyBaseUrl"`
	// DeleteUnverified removes the auth identity when verification times out
	DeleteUnverified bool `json:"deleteUnverified" yaml:"deleteUnverified"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// TestRoutesConfig defines configuration for testing endpoints
type TestRoutesConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// FirebaseConfig defines Firebase project access
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	// WebAPIKey is required for password sign-in through the Identity Toolkit API
	WebAPIKey string `json:"webApiKey" yaml:"webApiKey"`
}

// GoogleBooksConfig defines the Google Books API client
type GoogleBooksConfig struct {
	APIKey            string        `json:"apiKey" yaml:"apiKey"`
	Endpoint          string        `json:"endpoint" yaml:"endpoint"`
	RequestsPerSecond float64       `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	MaxRetries        int           `json:"maxRetries" yaml:"maxRetries"`
	Timeout           time.Duration `json:"timeout" yaml:"timeout"`
}

// ListingConfig defines listing rules
type ListingConfig struct {
	// StrictISBN additionally requires a valid ISBN-10/13 checksum
	StrictISBN   bool   `json:"strictIsbn" yaml:"strictIsbn"`
	SupportEmail string `json:"supportEmail" yaml:"supportEmail"`
	ShareBaseURL string `json:"shareBaseUrl" yaml:"shareBaseUrl"`
}

// SearchConfig bounds the wait for the requesting user's profile
type SearchConfig struct {
	UserLoadTimeout  time.Duration `json:"userLoadTimeout" yaml:"userLoadTimeout"`
	UserLoadInterval time.Duration `json:"userLoadInterval" yaml:"userLoadInterval"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// MailConfig defines the outbound SMTP relay
type MailConfig struct {
	Host              string `json:"host" yaml:"host"`
	Port              int    `json:"port" yaml:"port"`
	Username          string `json:"username" yaml:"username"`
	Password          string `json:"password" yaml:"password"`
	From              string `json:"from" yaml:"from"`
	MessagesPerSecond int    `json:"messagesPerSecond" yaml:"messagesPerSecond"`
}

// LoadWithEnv loads .yaml files through koanf and overlays environment variables.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

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

	configFile, found := findConfigFile(searchPaths, currEnv+".yaml")
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// A .env next to the working directory or the config file is optional
	loadDotEnv(filepath.Join(defaultPath, ".env"), filepath.Join(filepath.Dir(configFile), ".env"))

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// GOOGLEBOOKS_APIKEY -> googleBooks.apiKey
			key := canonicalizeEnvKey(k, existingConfigMap)
			if isSection(existingConfigMap, key) {
				// ENV=... must not replace the whole env section
				return "", nil
			}

			return key, v
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

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Store.Provider == "" {
		cfg.Store.Provider = "memory"
	}
	if cfg.Store.Consistency == "" {
		cfg.Store.Consistency = "transactional"
	}
	if cfg.Search == nil {
		cfg.Search = &SearchConfig{}
	}
	if cfg.Search.UserLoadTimeout <= 0 {
		cfg.Search.UserLoadTimeout = defaultUserLoadTimeout
	}
	if cfg.Search.UserLoadInterval <= 0 {
		cfg.Search.UserLoadInterval = defaultUserLoadInterval
	}
	if cfg.Account == nil {
		cfg.Account = &AccountConfig{}
	}
	if cfg.Account.VerificationTimeout <= 0 {
		cfg.Account.VerificationTimeout = defaultVerificationTimeout
	}
	if cfg.Account.VerificationInterval <= 0 {
		cfg.Account.VerificationInterval = defaultVerificationInterval
	}
	if cfg.Listing == nil {
		cfg.Listing = &ListingConfig{}
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.Provider == "" {
		cfg.Auth.Provider = "local"
	}
	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = defaultTokenTTL
	}
}

func findConfigFile(searchPaths []string, name string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func loadDotEnv(candidates ...string) {
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		// Variables already present in the environment win over the file
		_ = godotenv.Load(candidate)
	}
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

func isSection(existing map[string]any, key string) bool {
	current := existing
	segments := strings.Split(key, ".")
	for idx, segment := range segments {
		value, ok := current[segment]
		if !ok {
			return false
		}
		child, isMap := value.(map[string]any)
		if !isMap {
			return false
		}
		if idx == len(segments)-1 {
			return true
		}
		current = child
	}

	return false
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

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
