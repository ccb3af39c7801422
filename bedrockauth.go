// Package bedrockauth resolves which credential mechanism a client should
// use to call the Amazon Bedrock inference API: a static API key, or the
// ambient role-based identity supplied by the hosting environment.
//
// Resolution happens once, at process startup, from explicit options and an
// ambient key/value mapping (conventionally the process environment). It is
// a pure, single-pass computation with no I/O: the same inputs always
// produce the same Config, and it works identically on a developer machine,
// a long-running server, or inside a Lambda function.
//
//	cfg, err := bedrockauth.New()
//	if err != nil {
//	    log.Fatal().Err(err).Msg("credential resolution failed")
//	}
//	switch cfg.Mode() {
//	case bedrockauth.ModeAPIKey:
//	    // sign requests with cfg.APIKey()
//	case bedrockauth.ModeIAMRole:
//	    // defer to the default AWS credential chain in cfg.Region()
//	}
package bedrockauth

import (
	"fmt"

	"github.com/agentstation/bedrockauth/internal/runtimeenv"
	"github.com/agentstation/bedrockauth/pkg/constants"
	"github.com/agentstation/bedrockauth/pkg/envmap"
	"github.com/agentstation/bedrockauth/pkg/errors"
)

// Recognized ambient variable names. Exact spelling is the wire contract
// shared with the deployment tooling that populates the environment.
const (
	// APIKeyVar holds the static Bedrock API key.
	APIKeyVar = "AWS_BEDROCK_API_KEY"

	// UseIAMRoleVar selects IAM role mode when set to a truthy value.
	UseIAMRoleVar = "USE_IAM_ROLE"

	// RegionVar holds the AWS region identifier.
	RegionVar = "AWS_REGION"

	// FallbackRegionVar is consulted when RegionVar is unset.
	FallbackRegionVar = "AWS_DEFAULT_REGION"

	// ModelIDVar holds the target inference model identifier.
	ModelIDVar = "AWS_BEDROCK_MODEL_ID"
)

// DefaultModelID is the model used when no explicit or ambient model id is
// provided.
const DefaultModelID = constants.DefaultModelID

// Mode is the resolved choice between credential strategies.
type Mode int

const (
	// ModeUnknown is the zero value; a resolved Config never carries it.
	ModeUnknown Mode = iota

	// ModeAPIKey signs requests with a static API key.
	ModeAPIKey

	// ModeIAMRole defers to the ambient role-based identity supplied by
	// the hosting environment (instance profile, Lambda execution role).
	ModeIAMRole
)

// String returns the mode's wire representation.
func (m Mode) String() string {
	switch m {
	case ModeAPIKey:
		return "api_key"
	case ModeIAMRole:
		return "iam_role"
	default:
		return "unknown"
	}
}

// Config is an immutable, validated credential configuration. Construct one
// with New; all fields are fixed at resolution time and safe to share
// across goroutines.
type Config struct {
	apiKey     string
	useIAMRole bool
	mode       Mode
	region     string
	modelID    string
}

// New resolves a Config from the given options and the ambient mapping
// (the real process environment unless WithEnviron overrides it).
//
// Precedence, first matching rule wins:
//  1. An API key is supplied - explicitly or via AWS_BEDROCK_API_KEY - and
//     IAM role mode is not requested: API key mode.
//  2. IAM role mode is requested, explicitly or via USE_IAM_ROLE: IAM role
//     mode, even when a key coexists.
//  3. No key and no request, but a managed serverless runtime is detected:
//     IAM role mode.
//  4. Otherwise resolution fails with errors.ErrNoAuthSignal.
func New(opts ...Option) (*Config, error) {
	s := newSettings()
	for _, opt := range opts {
		opt(s)
	}

	cfg, err := resolve(s)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("mode", cfg.mode.String()).
		Str("region", cfg.region).
		Str("model_id", cfg.modelID).
		Msg("resolved authentication mode")

	return cfg, nil
}

// resolve applies the precedence rules, assembles the remaining fields, and
// validates the result.
func resolve(s *settings) (*Config, error) {
	env := s.env

	// An explicitly supplied key is an authentication signal even when its
	// value is empty; validation rejects the empty value afterwards.
	keyValue := env.Get(APIKeyVar)
	keySupplied := keyValue != ""
	if s.apiKey != nil {
		keyValue = *s.apiKey
		keySupplied = true
	}

	// Explicit flag overrides the ambient variable in both directions.
	iamRequested := env.GetBool(UseIAMRoleVar)
	if s.useIAMRole != nil {
		iamRequested = *s.useIAMRole
	}

	var mode Mode
	switch {
	case keySupplied && !iamRequested:
		mode = ModeAPIKey
	case iamRequested:
		mode = ModeIAMRole
	case runtimeenv.IsManagedRuntime(env):
		// Managed-runtime fallback: ambient identity is available without
		// any key being configured.
		mode = ModeIAMRole
	default:
		return nil, errors.NewConfigError("resolver",
			"no API key, no IAM role request, and no managed runtime detected",
			errors.ErrNoAuthSignal)
	}

	cfg := &Config{
		mode:       mode,
		useIAMRole: mode == ModeIAMRole,
		region:     resolveRegion(s, env),
		modelID:    resolveModelID(s, env),
	}

	// The key field is populated only in API key mode so a role-based
	// Config never carries stale key material.
	if mode == ModeAPIKey {
		cfg.apiKey = keyValue
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveRegion picks the region: explicit option, then AWS_REGION, then
// AWS_DEFAULT_REGION, else unset.
func resolveRegion(s *settings, env envmap.Environ) string {
	if s.region != nil && *s.region != "" {
		return *s.region
	}
	if region := env.Get(RegionVar); region != "" {
		return region
	}
	return env.Get(FallbackRegionVar)
}

// resolveModelID picks the model id: explicit option, then
// AWS_BEDROCK_MODEL_ID, else the built-in default.
func resolveModelID(s *settings, env envmap.Environ) string {
	if s.modelID != nil && *s.modelID != "" {
		return *s.modelID
	}
	if modelID := env.Get(ModelIDVar); modelID != "" {
		return modelID
	}
	return constants.DefaultModelID
}

// Validate checks that the mode's required fields are present. New calls it
// before returning, so a Config obtained from New is always valid.
func (c *Config) Validate() error {
	switch c.mode {
	case ModeAPIKey:
		if c.apiKey == "" {
			return errors.NewConfigError("resolver",
				fmt.Sprintf("API key mode selected but no key is set; set %s or use IAM role mode", APIKeyVar),
				errors.ErrMissingAPIKey)
		}
	case ModeIAMRole:
		if c.region == "" {
			return errors.NewConfigError("resolver",
				fmt.Sprintf("IAM role mode selected but no region is set; set %s (e.g. %s)", RegionVar, constants.DefaultRegion),
				errors.ErrMissingRegion)
		}
	default:
		return errors.NewConfigError("resolver", "authentication mode not resolved", errors.ErrNoAuthSignal)
	}
	return nil
}

// Mode returns the resolved authentication mode.
func (c *Config) Mode() Mode { return c.mode }

// APIKey returns the static API key. Empty unless Mode is ModeAPIKey.
func (c *Config) APIKey() string { return c.apiKey }

// UseIAMRole reports whether the ambient role-based identity is used.
func (c *Config) UseIAMRole() bool { return c.useIAMRole }

// Region returns the AWS region, or the empty string when unset.
func (c *Config) Region() string { return c.region }

// ModelID returns the target inference model identifier.
func (c *Config) ModelID() string { return c.modelID }

// IsConfigured reports whether the mode's required fields are present.
// Useful as a cheap health check without attempting a network call.
func (c *Config) IsConfigured() bool {
	return c.Validate() == nil
}

// Equal reports field equality with another Config.
func (c *Config) Equal(other *Config) bool {
	if c == nil || other == nil {
		return c == other
	}
	return *c == *other
}

// MaskedAPIKey returns a log-safe form of the API key, keeping only the
// last four characters.
func (c *Config) MaskedAPIKey() string {
	if c.apiKey == "" {
		return ""
	}
	if len(c.apiKey) <= 4 {
		return "****"
	}
	return "****" + c.apiKey[len(c.apiKey)-4:]
}

// String returns a log-safe summary of the configuration.
func (c *Config) String() string {
	return fmt.Sprintf("bedrockauth.Config{mode: %s, region: %q, model_id: %q, api_key: %q}",
		c.mode, c.region, c.modelID, c.MaskedAPIKey())
}
