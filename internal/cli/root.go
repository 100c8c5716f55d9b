package cli

import (
	"github.com/nextellar-labs/create-nextellar-app/internal/branding"
	"github.com/nextellar-labs/create-nextellar-app/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " <project-name>",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds a Next.js application pre-wired for the Stellar
network: wallet adapters, Horizon and Soroban RPC clients, and a typed
contract hook, ready to run after one dependency install.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
	RunE: runNew,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
