package scaffold

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nextellar-labs/create-nextellar-app/internal/manifest"
)

// Request is the configuration for one scaffold operation. It is built once
// per invocation from CLI input and never mutated afterwards.
type Request struct {
	ProjectName    string        // must be non-empty; target dir derived from it
	Variant        string        // template variant name, e.g. "typescript"
	HorizonURL     string        // Stellar Horizon endpoint baked into the app
	SorobanRPCURL  string        // Soroban RPC endpoint baked into the app
	Wallets        []string      // wallet-adapter ids; empty means DefaultWallets
	SkipInstall    bool          // carried through to the installer
	PackageManager string        // explicit manager override, empty if unset
	InstallTimeout time.Duration // bound on the dependency install step
	TemplateRoot   string        // on-disk template root override for template development
}

// Result holds the outcome of a materialize operation.
type Result struct {
	OutputDir   string
	FileCount   int      // regular files copied
	Substituted []string // designated files that were rewritten
	Warnings    []string // non-fatal issues, e.g. manifest schema violations
}

// Materialize produces a project skeleton at outputDir: resolve the template
// variant, copy the tree, then substitute placeholders in the designated
// files. Progress lines are written to w.
//
// The target must not exist beforehand; a pre-existing path is always a fatal
// precondition failure, even for an empty directory. Filesystem errors during
// the copy propagate unchanged and no partial rollback is attempted.
func Materialize(req *Request, outputDir string, w io.Writer) (*Result, error) {
	if req.ProjectName == "" {
		return nil, fmt.Errorf("project name must not be empty")
	}

	if _, err := os.Lstat(outputDir); err == nil {
		return nil, fmt.Errorf("target %s already exists; choose a different project name or remove it first", outputDir)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("checking target %s: %w", outputDir, err)
	}

	src, err := templateSource(req)
	if err != nil {
		return nil, err
	}

	count, err := copyTree(src, outputDir)
	if err != nil {
		return nil, fmt.Errorf("copying template to %s: %w", outputDir, err)
	}
	fmt.Fprintf(w, "Copied %d files to %s/\n", count, outputDir)

	result := &Result{
		OutputDir: outputDir,
		FileCount: count,
	}

	tokens := Placeholders(req)
	substituted, err := substitute(outputDir, tokens)
	if err != nil {
		return nil, err
	}
	result.Substituted = substituted
	fmt.Fprintf(w, "Configured %d files for %s\n", len(substituted), req.ProjectName)

	// Validate the generated manifest; schema violations are warnings, never
	// errors — the skeleton is already usable.
	pkgPath := filepath.Join(outputDir, "package.json")
	if _, statErr := os.Stat(pkgPath); statErr == nil {
		valResult, valErr := manifest.ValidateFile(pkgPath)
		if valErr != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Could not validate package.json: %v", valErr))
		} else if !valResult.Valid {
			for _, issue := range valResult.Issues {
				msg := issue.Message
				if issue.Path != "" {
					msg = issue.Path + ": " + msg
				}
				result.Warnings = append(result.Warnings, msg)
			}
		}
	}

	return result, nil
}

// templateSource resolves the filesystem the template is copied from: the
// embedded tree by default, or an on-disk root when the request carries a
// template-root override.
func templateSource(req *Request) (fs.FS, error) {
	variant, err := ResolveVariant(req.Variant)
	if err != nil {
		return nil, err
	}

	if req.TemplateRoot != "" {
		dir := filepath.Join(req.TemplateRoot, variant.Dir)
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("template root %s: %w", dir, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("template root %s is not a directory", dir)
		}
		return os.DirFS(dir), nil
	}

	sub, err := fs.Sub(templatesFS, "templates/"+variant.Dir)
	if err != nil {
		return nil, fmt.Errorf("embedded template %q: %w", variant.Name, err)
	}
	return sub, nil
}

// substitute rewrites every designated file that exists under root, replacing
// each known token with its mapped value in a single pass. Designated files
// missing from the variant are silently skipped. Returns the relative paths
// of the files actually rewritten.
func substitute(root string, tokens map[string]string) ([]string, error) {
	pairs := make([]string, 0, len(tokens)*2)
	for token, value := range tokens {
		pairs = append(pairs, token, value)
	}
	replacer := strings.NewReplacer(pairs...)

	var rewritten []string
	for _, rel := range placeholderFiles {
		path := filepath.Join(root, filepath.FromSlash(rel))

		info, err := os.Stat(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("checking %s: %w", path, err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		replaced := replacer.Replace(string(data))
		if err := os.WriteFile(path, []byte(replaced), info.Mode().Perm()); err != nil {
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}
		rewritten = append(rewritten, rel)
	}
	return rewritten, nil
}
