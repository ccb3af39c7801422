// Package runtimeenv detects whether the process is executing inside a
// managed serverless runtime. Detection performs local inspection of the
// ambient mapping only - no network calls are made.
package runtimeenv

import "github.com/agentstation/bedrockauth/pkg/envmap"

// Marker variables set by the AWS serverless platform. AWS_EXECUTION_ENV
// is the generic execution-environment marker; AWS_LAMBDA_FUNCTION_NAME
// is set only inside a Lambda function.
const (
	ExecutionEnvVar       = "AWS_EXECUTION_ENV"
	LambdaFunctionNameVar = "AWS_LAMBDA_FUNCTION_NAME"
)

// IsManagedRuntime reports whether env carries a managed-runtime marker.
// A marker present with a blank value counts as absent.
func IsManagedRuntime(env envmap.Environ) bool {
	return env.IsSet(ExecutionEnvVar) || env.IsSet(LambdaFunctionNameVar)
}

// Describe returns the marker that identified the managed runtime, for
// status output and logging. Returns empty strings when no marker is set.
func Describe(env envmap.Environ) (marker, value string) {
	if v, ok := env.Lookup(ExecutionEnvVar); ok {
		return ExecutionEnvVar, v
	}
	if v, ok := env.Lookup(LambdaFunctionNameVar); ok {
		return LambdaFunctionNameVar, v
	}
	return "", ""
}
