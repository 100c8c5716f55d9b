package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/nextellar-labs/create-nextellar-app/internal/branding"
	"github.com/nextellar-labs/create-nextellar-app/internal/config"
	"github.com/nextellar-labs/create-nextellar-app/internal/installer"
	"github.com/nextellar-labs/create-nextellar-app/internal/manifest"
	"github.com/nextellar-labs/create-nextellar-app/internal/scaffold"
	"github.com/spf13/cobra"
)

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

var (
	flagTypeScript     bool
	flagJavaScript     bool
	flagHorizonURL     string
	flagSorobanRPCURL  string
	flagWallets        string
	flagYes            bool
	flagSkipInstall    bool
	flagPackageManager string
	flagInstallTimeout int
)

func init() {
	f := rootCmd.Flags()
	f.BoolVar(&flagTypeScript, "typescript", true, "Use the TypeScript template")
	f.BoolVar(&flagJavaScript, "javascript", false, "Use the JavaScript template")
	f.StringVar(&flagHorizonURL, "horizon-url", "", "Horizon endpoint baked into the app (default: testnet)")
	f.StringVar(&flagSorobanRPCURL, "soroban-rpc-url", "", "Soroban RPC endpoint baked into the app (default: testnet)")
	f.StringVar(&flagWallets, "wallets", "", "Comma-separated wallet adapters (default: freighter,albedo,xbull)")
	f.BoolVarP(&flagYes, "yes", "y", false, "Accept defaults, skip all prompts")
	f.BoolVar(&flagSkipInstall, "skip-install", false, "Skip the dependency install step")
	f.StringVar(&flagPackageManager, "package-manager", "", "Package manager to install with: npm, yarn, or pnpm")
	f.IntVar(&flagInstallTimeout, "install-timeout", 0, "Install timeout in milliseconds (default: 1200000)")
}

func runNew(cmd *cobra.Command, args []string) error {
	name := args[0]
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid project name %q: must match pattern [a-z0-9][a-z0-9-]*", name)
	}

	variant := "typescript"
	if flagJavaScript {
		variant = "javascript"
	}

	manager, err := installer.ParseManager(resolveString(flagPackageManager, config.KeyPackageManager))
	if err != nil {
		return err
	}

	wallets, err := resolveWallets(cmd)
	if err != nil {
		return err
	}

	timeoutMS := flagInstallTimeout
	if timeoutMS <= 0 {
		timeoutMS = config.GetInt(config.KeyInstallTimeout)
	}

	req := &scaffold.Request{
		ProjectName:    name,
		Variant:        variant,
		HorizonURL:     resolveString(flagHorizonURL, config.KeyHorizonURL),
		SorobanRPCURL:  resolveString(flagSorobanRPCURL, config.KeySorobanRPCURL),
		Wallets:        wallets,
		SkipInstall:    flagSkipInstall,
		PackageManager: string(manager),
		InstallTimeout: time.Duration(timeoutMS) * time.Millisecond,
		TemplateRoot:   config.Get(config.KeyTemplateRoot),
	}

	outDir := filepath.Join(".", name)

	fmt.Fprintf(cmd.OutOrStdout(), "Creating a new %s app in %s/\n", branding.DisplayName(), outDir)

	result, err := scaffold.Materialize(req, outDir, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "\nWarnings:")
		for _, w := range result.Warnings {
			fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", w)
		}
	}

	outcome := installer.Run(cmd.Context(), installer.Options{
		TargetDir:   outDir,
		SkipInstall: req.SkipInstall,
		Manager:     manager,
		Timeout:     req.InstallTimeout,
	})

	printNextSteps(cmd, name, outDir, outcome)
	return nil
}

// resolveString prefers the flag value, then the config/env value for key.
func resolveString(flagValue, key string) string {
	if flagValue != "" {
		return flagValue
	}
	return config.Get(key)
}

// resolveWallets parses the --wallets flag, prompting interactively when no
// wallets were given and prompts are not suppressed.
func resolveWallets(cmd *cobra.Command) ([]string, error) {
	if flagWallets != "" {
		var wallets []string
		for _, w := range strings.Split(flagWallets, ",") {
			w = strings.TrimSpace(w)
			if w != "" {
				wallets = append(wallets, w)
			}
		}
		return wallets, nil
	}

	if flagYes {
		return nil, nil // empty list selects the built-in defaults
	}

	return selectWallets(os.Stdin, cmd.OutOrStdout())
}

func printNextSteps(cmd *cobra.Command, name, outDir string, outcome installer.Outcome) {
	out := cmd.OutOrStdout()

	// Report what was actually written, from the generated manifest itself.
	if pkg, err := manifest.ParseFile(filepath.Join(outDir, "package.json")); err == nil && pkg.Name != "" {
		fmt.Fprintf(out, "\n✓ Created %s@%s\n", pkg.Name, pkg.Version)
	} else {
		fmt.Fprintf(out, "\n✓ Created %s\n", name)
	}
	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintf(out, "  cd %s\n", name)
	switch {
	case outcome.PackageManager == installer.Skipped:
		fmt.Fprintf(out, "  %s\n", installer.CommandLine(installer.DefaultManager))
		fmt.Fprintln(out, "  npm run dev")
	case !outcome.Success:
		fmt.Fprintf(out, "  %s   # install did not finish, see above\n", installer.CommandLine(outcome.PackageManager))
		fmt.Fprintf(out, "  %s run dev\n", outcome.PackageManager)
	default:
		fmt.Fprintf(out, "  %s run dev\n", outcome.PackageManager)
	}
	fmt.Fprintf(out, "\nDocs: %s\n", branding.DocsURL())
}
