package bedrockauth

// ExportEnviron returns the environment variables a downstream SDK process
// expects for this configuration, plus the variables that must be unset so
// stale values cannot leak into it. The receiver never writes the process
// environment itself; callers decide where the pairs go.
//
// API key mode exports the key; IAM role mode instead marks
// AWS_BEDROCK_API_KEY for removal so the SDK falls through to the default
// credential chain.
func (c *Config) ExportEnviron() (set map[string]string, unset []string) {
	set = map[string]string{
		ModelIDVar: c.modelID,
	}

	if c.region != "" {
		set[RegionVar] = c.region
		set[FallbackRegionVar] = c.region
	}

	switch c.mode {
	case ModeAPIKey:
		set[APIKeyVar] = c.apiKey
	case ModeIAMRole:
		unset = append(unset, APIKeyVar)
	}

	return set, unset
}
