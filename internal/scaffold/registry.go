package scaffold

import (
	"fmt"
	"sync"

	"go.yaml.in/yaml/v3"
)

// Variant describes one entry in the template registry.
type Variant struct {
	Name      string `yaml:"name"`
	Dir       string `yaml:"dir"`
	Supported bool   `yaml:"supported"`
}

type variantRegistry struct {
	Variants []Variant `yaml:"variants"`
}

var (
	registryOnce sync.Once
	registry     variantRegistry
	registryErr  error
)

func loadRegistry() (variantRegistry, error) {
	registryOnce.Do(func() {
		data, err := templatesFS.ReadFile("templates/registry.yaml")
		if err != nil {
			registryErr = fmt.Errorf("reading template registry: %w", err)
			return
		}
		if err := yaml.Unmarshal(data, &registry); err != nil {
			registryErr = fmt.Errorf("parsing template registry: %w", err)
		}
	})
	return registry, registryErr
}

// ResolveVariant looks up a template variant by name. Unknown variants and
// variants that are registered but not yet shipped both fail; there is no
// silent fallback to another variant.
func ResolveVariant(name string) (*Variant, error) {
	reg, err := loadRegistry()
	if err != nil {
		return nil, err
	}
	for i := range reg.Variants {
		v := &reg.Variants[i]
		if v.Name == name {
			if !v.Supported {
				return nil, fmt.Errorf("template variant %q is not supported yet", name)
			}
			return v, nil
		}
	}
	return nil, fmt.Errorf("unknown template variant %q", name)
}

// VariantNames returns the registered variant names in registry order.
func VariantNames() []string {
	reg, err := loadRegistry()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(reg.Variants))
	for _, v := range reg.Variants {
		names = append(names, v.Name)
	}
	return names
}
