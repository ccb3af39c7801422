// Package config bridges Viper-bound configuration into the ambient
// mapping the resolver consumes. It is CLI-side plumbing: the library core
// stays viper-free and reads only the envmap.Environ handed to it.
package config

import (
	"os"

	"github.com/spf13/viper"

	"github.com/agentstation/bedrockauth"
	"github.com/agentstation/bedrockauth/internal/runtimeenv"
	"github.com/agentstation/bedrockauth/pkg/envmap"
)

// RecognizedVars lists every ambient variable resolution consults,
// including the managed-runtime markers.
var RecognizedVars = []string{
	bedrockauth.APIKeyVar,
	bedrockauth.UseIAMRoleVar,
	bedrockauth.RegionVar,
	bedrockauth.FallbackRegionVar,
	bedrockauth.ModelIDVar,
	runtimeenv.ExecutionEnvVar,
	runtimeenv.LambdaFunctionNameVar,
}

// GetString is a helper to get string values from Viper.
// It checks both OS environment variables and Viper configuration.
func GetString(key string) string {
	// Check OS env directly first
	osValue := os.Getenv(key)
	viperValue := viper.GetString(key)

	// If Viper doesn't have it but OS does, return OS value
	if viperValue == "" && osValue != "" {
		return osValue
	}
	return viperValue
}

// Ambient builds the ambient mapping for resolution from the recognized
// variables, reading each through Viper so values from bound sources and
// loaded .env files feed the precedence rules.
func Ambient() envmap.Environ {
	env := make(envmap.Environ, len(RecognizedVars))
	for _, key := range RecognizedVars {
		if value := GetString(key); value != "" {
			env[key] = value
		}
	}
	return env
}
