package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/bedrockauth"
	"github.com/agentstation/bedrockauth/internal/config"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print shell exports for the resolved configuration",
	Long: `Env resolves the authentication configuration and prints the
environment variables a downstream SDK process expects, in a form
suitable for eval:

  eval "$(bedrockauth env)"

In IAM role mode the API key variable is unset so stale key material
cannot shadow the ambient identity.`,
	RunE: runEnv,
}

func init() {
	rootCmd.AddCommand(envCmd)
}

func runEnv(cmd *cobra.Command, _ []string) error {
	cfg, err := bedrockauth.New(bedrockauth.WithEnviron(config.Ambient()))
	if err != nil {
		return err
	}

	set, unset := cfg.ExportEnviron()

	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := cmd.OutOrStdout()
	for _, key := range keys {
		fmt.Fprintf(out, "export %s=%s\n", key, shellQuote(set[key]))
	}
	for _, key := range unset {
		fmt.Fprintf(out, "unset %s\n", key)
	}
	return nil
}

// shellQuote single-quotes a value for POSIX shells.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
