package cli

import (
	"fmt"
	"os"

	"github.com/nextellar-labs/create-nextellar-app/internal/toolchain"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the local toolchain",
	Long:  `Verify that Node.js and at least one supported package manager are available.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Runtime check:")
		node := toolchain.CheckNode()
		toolchain.Report(os.Stdout, []toolchain.Check{node})

		fmt.Println("Package managers:")
		managers := toolchain.CheckManagers()
		toolchain.Report(os.Stdout, managers)

		anyManager := false
		for _, m := range managers {
			if m.OK {
				anyManager = true
			}
		}

		if !node.OK {
			return fmt.Errorf("Node.js %s or newer is required", toolchain.MinNodeVersion)
		}
		if !anyManager {
			return fmt.Errorf("no supported package manager found: install npm, yarn, or pnpm")
		}
		return nil
	},
}
