package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/agentstation/bedrockauth"
	"github.com/agentstation/bedrockauth/internal/config"
	"github.com/agentstation/bedrockauth/internal/runtimeenv"
)

// checkStatus is the serializable resolution report printed by check.
type checkStatus struct {
	Mode           string `json:"mode" yaml:"mode"`
	Region         string `json:"region,omitempty" yaml:"region,omitempty"`
	ModelID        string `json:"model_id" yaml:"model_id"`
	APIKey         string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
	ManagedRuntime string `json:"managed_runtime,omitempty" yaml:"managed_runtime,omitempty"`
	Configured     bool   `json:"configured" yaml:"configured"`
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Resolve and report the authentication configuration",
	Long: `Check resolves the authentication mode from flags, environment
variables, and .env files, then reports the result. No network calls
are made; this is a local configuration check only.

Exits non-zero when no valid configuration can be resolved.

Examples:
  bedrockauth check
  bedrockauth check --api-key "$AWS_BEDROCK_API_KEY" --region us-east-1
  bedrockauth check --iam-role --region us-west-2 -o json`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("api-key", "", "static API key (overrides "+bedrockauth.APIKeyVar+")")
	checkCmd.Flags().Bool("iam-role", false, "use the ambient role-based identity")
	checkCmd.Flags().String("region", "", "AWS region (overrides "+bedrockauth.RegionVar+")")
	checkCmd.Flags().String("model-id", "", "inference model id (overrides "+bedrockauth.ModelIDVar+")")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	// The ambient mapping comes through Viper so bound sources and loaded
	// .env files feed the precedence rules.
	env := config.Ambient()

	opts := append(resolutionOptions(cmd), bedrockauth.WithEnviron(env))
	cfg, err := bedrockauth.New(opts...)
	if err != nil {
		return err
	}

	marker, value := runtimeenv.Describe(env)

	status := checkStatus{
		Mode:       cfg.Mode().String(),
		Region:     cfg.Region(),
		ModelID:    cfg.ModelID(),
		APIKey:     cfg.MaskedAPIKey(),
		Configured: cfg.IsConfigured(),
	}
	if marker != "" {
		status.ManagedRuntime = fmt.Sprintf("%s=%s", marker, value)
	}

	return printStatus(cmd, status)
}

// resolutionOptions translates set flags into resolution options. Flags the
// user did not set are omitted so ambient variables keep their role in the
// precedence rules.
func resolutionOptions(cmd *cobra.Command) []bedrockauth.Option {
	var opts []bedrockauth.Option

	if cmd.Flags().Changed("api-key") {
		key, _ := cmd.Flags().GetString("api-key")
		opts = append(opts, bedrockauth.WithAPIKey(key))
	}
	if cmd.Flags().Changed("iam-role") {
		use, _ := cmd.Flags().GetBool("iam-role")
		opts = append(opts, bedrockauth.WithIAMRole(use))
	}
	if region, _ := cmd.Flags().GetString("region"); region != "" {
		opts = append(opts, bedrockauth.WithRegion(region))
	}
	if modelID, _ := cmd.Flags().GetString("model-id"); modelID != "" {
		opts = append(opts, bedrockauth.WithModelID(modelID))
	}

	return opts
}

// printStatus renders the report in the requested output format.
func printStatus(cmd *cobra.Command, status checkStatus) error {
	out := cmd.OutOrStdout()

	switch outputFormat {
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(status)
	case "yaml":
		data, err := yaml.Marshal(status)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(out, string(data))
		return err
	case "text", "":
		fmt.Fprintf(out, "Mode:     %s\n", status.Mode)
		if status.APIKey != "" {
			fmt.Fprintf(out, "API key:  %s\n", status.APIKey)
		}
		if status.Region != "" {
			fmt.Fprintf(out, "Region:   %s\n", status.Region)
		}
		fmt.Fprintf(out, "Model:    %s\n", status.ModelID)
		if status.ManagedRuntime != "" {
			fmt.Fprintf(out, "Runtime:  %s\n", status.ManagedRuntime)
		}
		return nil
	default:
		fmt.Fprintf(os.Stderr, "unknown output format %q, using text\n", outputFormat)
		outputFormat = "text"
		return printStatus(cmd, status)
	}
}
