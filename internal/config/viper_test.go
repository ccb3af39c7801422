package config_test

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bedrockauth"
	"github.com/agentstation/bedrockauth/internal/config"
)

func TestGetString(t *testing.T) {
	t.Cleanup(viper.Reset)

	t.Run("viper value wins", func(t *testing.T) {
		viper.Set("CONFIG_TEST_KEY", "from-viper")
		t.Setenv("CONFIG_TEST_KEY", "from-os")
		assert.Equal(t, "from-viper", config.GetString("CONFIG_TEST_KEY"))
	})

	t.Run("os fallback when viper is empty", func(t *testing.T) {
		viper.Reset()
		t.Setenv("CONFIG_TEST_KEY", "from-os")
		assert.Equal(t, "from-os", config.GetString("CONFIG_TEST_KEY"))
	})

	t.Run("unset everywhere", func(t *testing.T) {
		viper.Reset()
		assert.Empty(t, config.GetString("CONFIG_TEST_UNSET"))
	})
}

func TestAmbient(t *testing.T) {
	t.Cleanup(viper.Reset)

	t.Run("viper-bound values feed resolution", func(t *testing.T) {
		viper.Reset()
		viper.Set(bedrockauth.APIKeyVar, "viper-key")
		viper.Set(bedrockauth.RegionVar, "us-east-1")

		env := config.Ambient()
		assert.Equal(t, "viper-key", env.Get(bedrockauth.APIKeyVar))

		cfg, err := bedrockauth.New(bedrockauth.WithEnviron(env))
		require.NoError(t, err)
		assert.Equal(t, bedrockauth.ModeAPIKey, cfg.Mode())
		assert.Equal(t, "viper-key", cfg.APIKey())
	})

	t.Run("runtime markers are carried", func(t *testing.T) {
		viper.Reset()
		t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "fn1")

		env := config.Ambient()
		assert.Equal(t, "fn1", env.Get("AWS_LAMBDA_FUNCTION_NAME"))
	})

	t.Run("blank values are omitted", func(t *testing.T) {
		viper.Reset()
		t.Setenv(bedrockauth.APIKeyVar, "")

		env := config.Ambient()
		assert.False(t, env.IsSet(bedrockauth.APIKeyVar))
	})
}

func TestRecognizedVars(t *testing.T) {
	// The mapping handed to the resolver must cover every variable the
	// precedence rules and the detector consult.
	expected := []string{
		"AWS_BEDROCK_API_KEY",
		"USE_IAM_ROLE",
		"AWS_REGION",
		"AWS_DEFAULT_REGION",
		"AWS_BEDROCK_MODEL_ID",
		"AWS_EXECUTION_ENV",
		"AWS_LAMBDA_FUNCTION_NAME",
	}
	assert.ElementsMatch(t, expected, config.RecognizedVars)
}
