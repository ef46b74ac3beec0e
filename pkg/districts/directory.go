// Package districts holds the static manager to district assignments.
package districts

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed districts.yaml
var defaultTable []byte

// Assignment is one manager and the districts they cover, in display order
type Assignment struct {
	Manager   string   `yaml:"name"`
	Districts []string `yaml:"districts"`
}

type tableFile struct {
	Managers []Assignment `yaml:"managers"`
}

// Directory is an immutable manager to districts lookup. It is safe for
// concurrent use since nothing mutates it after construction.
type Directory struct {
	managers  []string
	districts map[string][]string
}

// New builds a directory from assignments. Manager names must be unique and
// non-empty.
func New(assignments []Assignment) (*Directory, error) {
	d := &Directory{
		managers:  make([]string, 0, len(assignments)),
		districts: make(map[string][]string, len(assignments)),
	}
	for _, a := range assignments {
		name := strings.TrimSpace(a.Manager)
		if name == "" {
			return nil, fmt.Errorf("error loading districts: manager name is empty")
		}
		if _, exists := d.districts[name]; exists {
			return nil, fmt.Errorf("error loading districts: duplicate manager %q", name)
		}
		list := make([]string, len(a.Districts))
		copy(list, a.Districts)
		d.managers = append(d.managers, name)
		d.districts[name] = list
	}
	return d, nil
}

// Parse reads a YAML table
func Parse(data []byte) (*Directory, error) {
	var table tableFile
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("error parsing districts table: %w", err)
	}
	return New(table.Managers)
}

// Default returns the built-in table
func Default() (*Directory, error) {
	return Parse(defaultTable)
}

// Load reads the table from path, falling back to the built-in table when
// path is empty.
func Load(path string) (*Directory, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading districts file: %w", err)
	}
	return Parse(data)
}

// Managers returns manager names in table order
func (d *Directory) Managers() []string {
	out := make([]string, len(d.managers))
	copy(out, d.managers)
	return out
}

// Resolve returns the ordered districts of a manager. Unknown and empty
// managers resolve to an empty list.
func (d *Directory) Resolve(manager string) []string {
	list, ok := d.districts[manager]
	if !ok {
		return []string{}
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// Has reports whether manager is present in the table
func (d *Directory) Has(manager string) bool {
	_, ok := d.districts[manager]
	return ok
}
