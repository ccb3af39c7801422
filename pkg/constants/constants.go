// Package constants provides shared constants used throughout the
// bedrockauth codebase.
package constants

// DefaultModelID is the inference model used when neither an explicit
// model id nor AWS_BEDROCK_MODEL_ID is provided.
const DefaultModelID = "us.anthropic.claude-sonnet-4-20250514-v1:0"

// DefaultRegion is the region suggested in error messages and examples.
// Resolution never assumes it: IAM role mode requires an explicit or
// ambient region.
const DefaultRegion = "us-east-1"

// FilePermissions is the default permission for created files (rw-r--r--)
const FilePermissions = 0644
