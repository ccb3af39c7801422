package awsbridge_test

import (
	"context"
	"testing"

	"github.com/aws/smithy-go/auth/bearer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bedrockauth"
	"github.com/agentstation/bedrockauth/pkg/awsbridge"
	"github.com/agentstation/bedrockauth/pkg/envmap"
	"github.com/agentstation/bedrockauth/pkg/errors"
)

func TestAWSConfigAPIKeyMode(t *testing.T) {
	cfg, err := bedrockauth.New(
		bedrockauth.WithAPIKey("k1"),
		bedrockauth.WithRegion("us-east-1"),
		bedrockauth.WithEnviron(envmap.Environ{}),
	)
	require.NoError(t, err)

	awsCfg, err := awsbridge.AWSConfig(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, "us-east-1", awsCfg.Region)
	require.NotNil(t, awsCfg.BearerAuthTokenProvider)

	token, err := awsCfg.BearerAuthTokenProvider.RetrieveBearerToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "k1", token.Value)

	// The static provider must be exactly that: static.
	_, ok := awsCfg.BearerAuthTokenProvider.(bearer.StaticTokenProvider)
	assert.True(t, ok)
}

func TestAWSConfigIAMRoleMode(t *testing.T) {
	cfg, err := bedrockauth.New(
		bedrockauth.WithIAMRole(true),
		bedrockauth.WithRegion("us-west-2"),
		bedrockauth.WithEnviron(envmap.Environ{}),
	)
	require.NoError(t, err)

	awsCfg, err := awsbridge.AWSConfig(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, "us-west-2", awsCfg.Region)
	// Credentials come from the default chain, not a static token.
	assert.Nil(t, awsCfg.BearerAuthTokenProvider)
}

func TestAWSConfigNilConfig(t *testing.T) {
	_, err := awsbridge.AWSConfig(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	var validationErr *errors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "config", validationErr.Field)
}

func TestLoadOptions(t *testing.T) {
	t.Run("region pinned when set", func(t *testing.T) {
		cfg, err := bedrockauth.New(
			bedrockauth.WithIAMRole(true),
			bedrockauth.WithRegion("eu-west-1"),
			bedrockauth.WithEnviron(envmap.Environ{}),
		)
		require.NoError(t, err)
		assert.Len(t, awsbridge.LoadOptions(cfg), 1)
	})

	t.Run("no options without region", func(t *testing.T) {
		cfg, err := bedrockauth.New(
			bedrockauth.WithAPIKey("k1"),
			bedrockauth.WithEnviron(envmap.Environ{}),
		)
		require.NoError(t, err)
		assert.Empty(t, awsbridge.LoadOptions(cfg))
	})
}
