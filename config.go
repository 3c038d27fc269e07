package cognauth

import (
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
)

// ProviderConfig defines a public type used by cognauth APIs.
//
// ProviderConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type ProviderConfig struct {
	Region       string `env:"COGNITO_REGION,default=ap-northeast-2"`
	UserPoolID   string `env:"COGNITO_USER_POOL_ID"`
	ClientID     string `env:"COGNITO_CLIENT_ID"`
	ClientSecret string `env:"COGNITO_CLIENT_SECRET"`

	// DomainPrefix names the hosted-UI domain
	// https://{DomainPrefix}.auth.{Region}.amazoncognito.com. Only the
	// federated flows need it.
	DomainPrefix string `env:"COGNITO_DOMAIN_PREFIX"`

	// RedirectOrigin is the scheme+host this application is served from;
	// the oauth callback path is appended to it.
	RedirectOrigin string `env:"COGNITO_REDIRECT_ORIGIN"`

	// APIEndpoint is the downstream resource server tokens are presented
	// to. Informational for the engine; carried for callers.
	APIEndpoint string `env:"API_ENDPOINT"`
}

// OAuthConfig defines a public type used by cognauth APIs.
//
// OAuthConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type OAuthConfig struct {
	Scopes           []string
	CallbackPath     string
	IdentityProvider string

	// HostedBaseOverride replaces the derived hosted-UI base URL. Meant
	// for private deployments and tests.
	HostedBaseOverride string
}

// SessionConfig defines a public type used by cognauth APIs.
//
// SessionConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type SessionConfig struct {
	RedisPrefix string
	TTL         time.Duration
}

// AuditConfig defines a public type used by cognauth APIs.
//
// AuditConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// MetricsConfig defines a public type used by cognauth APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

// Config defines a public type used by cognauth APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Provider ProviderConfig
	OAuth    OAuthConfig
	Session  SessionConfig
	Audit    AuditConfig
	Metrics  MetricsConfig
}

// DefaultConfig describes the defaultconfig operation and its observable behavior.
//
// DefaultConfig may return an error when input validation, dependency calls, or security checks fail.
// DefaultConfig does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func DefaultConfig() Config {
	return Config{
		Provider: ProviderConfig{
			Region: "ap-northeast-2",
		},
		OAuth: OAuthConfig{
			Scopes:           []string{"email", "openid", "profile"},
			CallbackPath:     "/oauth-callback",
			IdentityProvider: "Google",
		},
		Session: SessionConfig{
			RedisPrefix: "cognauth",
		},
		Audit: AuditConfig{
			Enabled:    true,
			BufferSize: 256,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// ConfigFromEnv describes the configfromenv operation and its observable behavior.
//
// ConfigFromEnv may return an error when input validation, dependency calls, or security checks fail.
// ConfigFromEnv does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := envdecode.Decode(&cfg.Provider); err != nil {
		return Config{}, fmt.Errorf("decode provider config from environment: %w", err)
	}
	return cfg, nil
}

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation, dependency calls, or security checks fail.
// Validate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// DomainPrefix and RedirectOrigin are deliberately not checked here; they
// only matter once a federated flow starts and are validated there.
func (c Config) Validate() error {
	if c.Provider.Region == "" {
		return fmt.Errorf("provider: region required")
	}
	if c.Provider.ClientID == "" {
		return ErrMissingClientID
	}
	if c.Audit.Enabled && c.Audit.BufferSize < 0 {
		return fmt.Errorf("audit: buffer size must not be negative")
	}
	if c.Session.TTL < 0 {
		return fmt.Errorf("session: ttl must not be negative")
	}
	return nil
}

func cloneConfig(c Config) Config {
	out := c
	out.OAuth.Scopes = append([]string(nil), c.OAuth.Scopes...)
	return out
}

func (c Config) hostedBase() string {
	if c.OAuth.HostedBaseOverride != "" {
		return c.OAuth.HostedBaseOverride
	}
	return "https://" + c.Provider.DomainPrefix + ".auth." + c.Provider.Region + ".amazoncognito.com"
}

func (c Config) redirectURI() string {
	path := c.OAuth.CallbackPath
	if path == "" {
		path = "/oauth-callback"
	}
	return c.Provider.RedirectOrigin + path
}
