// Package awsbridge assembles AWS SDK client configuration from a resolved
// bedrockauth.Config. It only builds configuration values: no network call
// is made here, and in IAM role mode credential lookup is deferred to the
// SDK's default chain at first use.
package awsbridge

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/smithy-go/auth/bearer"

	"github.com/agentstation/bedrockauth"
	"github.com/agentstation/bedrockauth/pkg/errors"
)

// AWSConfig builds an aws.Config for the resolved authentication mode.
//
// API key mode produces a static bearer-token configuration, the scheme the
// Bedrock API accepts for key-based access. IAM role mode loads the SDK's
// default configuration so the ambient identity (instance profile, Lambda
// execution role) is used.
func AWSConfig(ctx context.Context, cfg *bedrockauth.Config) (aws.Config, error) {
	if cfg == nil {
		return aws.Config{}, errors.NewValidationError("config", nil, "configuration must not be nil")
	}

	switch cfg.Mode() {
	case bedrockauth.ModeAPIKey:
		return bearerConfig(cfg), nil
	case bedrockauth.ModeIAMRole:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, LoadOptions(cfg)...)
		if err != nil {
			return aws.Config{}, errors.WrapConfig("awsbridge", err)
		}
		return awsCfg, nil
	default:
		return aws.Config{}, errors.NewConfigError("awsbridge", "authentication mode not resolved", errors.ErrNoAuthSignal)
	}
}

// bearerConfig builds a static bearer-token aws.Config for API key mode.
func bearerConfig(cfg *bedrockauth.Config) aws.Config {
	return aws.Config{
		Region:                  cfg.Region(),
		BearerAuthTokenProvider: bearer.StaticTokenProvider{Token: bearer.Token{Value: cfg.APIKey()}},
	}
}

// LoadOptions returns the default-chain load options for IAM role mode.
// Only the region is pinned; everything else follows the SDK's defaults
// (environment, shared config files, instance metadata).
func LoadOptions(cfg *bedrockauth.Config) []func(*awsconfig.LoadOptions) error {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region() != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region()))
	}
	return opts
}
