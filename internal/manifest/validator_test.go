package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

const validPackageJSON = `{
  "name": "demo",
  "version": "0.1.0",
  "private": true,
  "scripts": { "dev": "next dev" },
  "dependencies": { "next": "14.2.5" }
}`

func TestValidateValidManifest(t *testing.T) {
	result, err := Validate([]byte(validPackageJSON))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got issues: %v", result.Issues)
	}
}

func TestValidateMissingRequiredFields(t *testing.T) {
	result, err := Validate([]byte(`{"private": true}`))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if result.Valid {
		t.Fatal("manifest without name/version should be invalid")
	}
	if len(result.Issues) == 0 {
		t.Error("expected at least one issue")
	}
}

func TestValidateBadName(t *testing.T) {
	tests := []struct {
		name    string
		pkgName string
	}{
		{"uppercase", "MyApp"},
		{"leading dot", ".demo"},
		{"spaces", "my app"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := []byte(`{"name": "` + tt.pkgName + `", "version": "0.1.0"}`)
			result, err := Validate(data)
			if err != nil {
				t.Fatalf("Validate() error: %v", err)
			}
			if result.Valid {
				t.Errorf("name %q should be rejected", tt.pkgName)
			}
		})
	}
}

func TestValidateBadVersion(t *testing.T) {
	result, err := Validate([]byte(`{"name": "demo", "version": "not-semver"}`))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if result.Valid {
		t.Error("non-semver version should be rejected")
	}
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "package.json")
	if err := os.WriteFile(path, []byte(validPackageJSON), 0644); err != nil {
		t.Fatal(err)
	}

	result, err := ValidateFile(path)
	if err != nil {
		t.Fatalf("ValidateFile() error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got issues: %v", result.Issues)
	}

	if _, err := ValidateFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
