package bedrockauth

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/bedrockauth/pkg/envmap"
	"github.com/agentstation/bedrockauth/pkg/logging"
)

// Option is a function that configures resolution inputs.
type Option func(*settings)

// settings collects the raw resolution inputs. Pointer fields distinguish
// "not supplied" from an explicit zero value.
type settings struct {
	apiKey     *string
	useIAMRole *bool
	region     *string
	modelID    *string
	env        envmap.Environ
	logger     *zerolog.Logger
}

// newSettings returns settings with the ambient mapping defaulting to a
// snapshot of the real process environment.
func newSettings() *settings {
	return &settings{
		env:    envmap.System(),
		logger: logging.Default(),
	}
}

// WithAPIKey supplies the API key explicitly. Supplying it - even as an
// empty string - is an explicit request for API key mode; an empty value
// then fails validation rather than falling through to another mode.
func WithAPIKey(key string) Option {
	return func(s *settings) {
		s.apiKey = &key
	}
}

// WithIAMRole explicitly requests (or, with false, refuses) IAM role mode.
// An explicit value overrides the ambient USE_IAM_ROLE variable.
func WithIAMRole(use bool) Option {
	return func(s *settings) {
		s.useIAMRole = &use
	}
}

// WithRegion supplies the AWS region explicitly, taking precedence over
// AWS_REGION and AWS_DEFAULT_REGION.
func WithRegion(region string) Option {
	return func(s *settings) {
		s.region = &region
	}
}

// WithModelID supplies the inference model id explicitly, taking precedence
// over AWS_BEDROCK_MODEL_ID and the built-in default.
func WithModelID(modelID string) Option {
	return func(s *settings) {
		s.modelID = &modelID
	}
}

// WithEnviron overrides the ambient mapping read during resolution.
// The mapping is read-only input; resolution never mutates it.
func WithEnviron(env envmap.Environ) Option {
	return func(s *settings) {
		if env == nil {
			env = envmap.Environ{}
		}
		s.env = env
	}
}

// WithLogger sets the logger used for resolution diagnostics.
func WithLogger(logger *zerolog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}
