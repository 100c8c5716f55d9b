package scaffold

import (
	"encoding/json"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Placeholder tokens embedded literally in template files. Substitution is
// plain token replacement, not template interpolation: a token with no
// mapping stays untouched, and values are never re-scanned for tokens.
const (
	TokenAppName       = "{{APP_NAME}}"
	TokenAppTitle      = "{{APP_TITLE}}"
	TokenHorizonURL    = "{{HORIZON_URL}}"
	TokenSorobanRPCURL = "{{SOROBAN_RPC_URL}}"
	TokenNetwork       = "{{NETWORK}}"
	TokenWallets       = "{{WALLETS}}"
)

// Built-in testnet endpoints baked into new projects when the caller does
// not override them.
const (
	DefaultHorizonURL    = "https://horizon-testnet.stellar.org"
	DefaultSorobanRPCURL = "https://soroban-testnet.stellar.org"
)

// DefaultWallets is the wallet-adapter list baked into new projects when the
// caller does not request specific adapters.
var DefaultWallets = []string{"freighter", "albedo", "xbull"}

// placeholderFiles is the fixed set of files rewritten after copy, relative
// to the project root. Files outside this list are left byte-for-byte as
// copied, which keeps token replacement away from binary assets and template
// payload that happens to contain similar-looking braces.
var placeholderFiles = []string{
	"package.json",
	"src/app/providers.tsx",
	"src/lib/wallets.ts",
	"src/hooks/useSorobanContract.ts", // reserved: listed for substitution, currently token-free
}

var titleCaser = cases.Title(language.English)

// Placeholders derives the token-to-value table for one scaffold request.
// The mapping is deterministic: the same request always yields the same table.
func Placeholders(req *Request) map[string]string {
	horizon := req.HorizonURL
	if horizon == "" {
		horizon = DefaultHorizonURL
	}
	soroban := req.SorobanRPCURL
	if soroban == "" {
		soroban = DefaultSorobanRPCURL
	}

	wallets := req.Wallets
	if len(wallets) == 0 {
		wallets = DefaultWallets
	}
	// A fixed string slice always marshals cleanly.
	serialized, _ := json.Marshal(wallets)

	return map[string]string{
		TokenAppName:       req.ProjectName,
		TokenAppTitle:      appTitle(req.ProjectName),
		TokenHorizonURL:    horizon,
		TokenSorobanRPCURL: soroban,
		TokenNetwork:       networkFor(horizon),
		TokenWallets:       string(serialized),
	}
}

// networkFor derives the Stellar network identifier from the horizon
// endpoint: endpoints naming the public network select PUBLIC, everything
// else defaults to TESTNET.
func networkFor(horizonURL string) string {
	if strings.Contains(horizonURL, "public") {
		return "PUBLIC"
	}
	return "TESTNET"
}

// appTitle turns a kebab-case project name into a display title,
// e.g. "my-stellar-app" → "My Stellar App".
func appTitle(name string) string {
	return titleCaser.String(strings.ReplaceAll(name, "-", " "))
}
