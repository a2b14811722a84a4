package counter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/RavenCompanion_Go/internal/domain"
)

// Descriptors resolves what a trophy's counter measures. Exact item ids are
// checked before the trophy type.
type Descriptors struct {
	Default    domain.CounterDescriptor            `yaml:"default"`
	Categories map[string]domain.CounterDescriptor `yaml:"categories"`
	Items      map[string]domain.CounterDescriptor `yaml:"items"`
}

// DefaultDescriptors returns the built-in tables
func DefaultDescriptors() *Descriptors {
	return &Descriptors{
		Default: domain.CounterDescriptor{Type: TypeKills, Label: "Kills"},
		Categories: map[string]domain.CounterDescriptor{
			domain.TrophyTypeCreature: {Type: TypeKills, Label: "Kills"},
			domain.TrophyTypeOcean:    {Type: TypeSeaKills, Label: "Sea Kills"},
			domain.TrophyTypeCarnival: {Type: TypeAttempts, Label: "Attempts"},
			domain.TrophyTypeMonument: {Type: TypeBossKills, Label: "Boss Kills", Shared: true},
		},
		Items: map[string]domain.CounterDescriptor{},
	}
}

// LoadDescriptors reads a YAML file and merges it over the built-in tables.
// An empty path returns the defaults.
func LoadDescriptors(path string) (*Descriptors, error) {
	d := DefaultDescriptors()
	if path == "" {
		return d, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadDescriptorsFailed, path, err)
	}

	var override Descriptors
	if err := yaml.Unmarshal(raw, &override); err != nil {
		return nil, fmt.Errorf(ErrMsgParseDescriptorsFailed, path, err)
	}

	if override.Default.Type != "" {
		d.Default = override.Default
	}
	for k, v := range override.Categories {
		d.Categories[k] = v
	}
	for k, v := range override.Items {
		d.Items[k] = v
	}
	return d, nil
}

// Resolve returns the descriptor for a trophy
func (d *Descriptors) Resolve(item domain.TrophyItem) domain.CounterDescriptor {
	if desc, ok := d.Items[item.ID]; ok {
		return desc
	}
	if desc, ok := d.Categories[item.Type]; ok {
		return desc
	}
	return d.Default
}

// CounterKeyFor returns the counter a trophy's progress is recorded under
func (d *Descriptors) CounterKeyFor(item domain.TrophyItem) string {
	if d.Resolve(item).Shared {
		return domain.SharedMonumentKey
	}
	return item.ID
}
