// Package catalog holds the fixed exercise tables used to render workout
// messages: form cues, prescriptions, warm-ups, cool-downs and the cardio
// circuit. The tables are read once at start-up and never change afterwards.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/diegoclair/workout-reminder-bot/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalog []byte

// Prescription is the sets/reps/rest scheme of one exercise
type Prescription struct {
	Sets string `yaml:"sets"`
	Reps string `yaml:"reps"`
	Rest string `yaml:"rest"`
}

func (p Prescription) String() string {
	return fmt.Sprintf("%s × %s | Rest: %s", p.Sets, p.Reps, p.Rest)
}

type document struct {
	FormCues      map[string]string       `yaml:"form_cues"`
	Prescriptions map[string]Prescription `yaml:"prescriptions"`
	Warmups       map[string][]string     `yaml:"warmups"`
	Cooldowns     map[string][]string     `yaml:"cooldowns"`
	CardioCircuit []string                `yaml:"cardio_circuit"`
}

// Catalog is read-only once built
type Catalog struct {
	doc document
}

// Default returns the catalog embedded in the binary
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog file, or the embedded default when path is empty
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	return Parse(data)
}

// Parse decodes a YAML catalog document
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	general := string(domain.CategoryGeneral)
	if len(doc.Warmups[general]) == 0 {
		return nil, fmt.Errorf("catalog has no %s warm-ups", general)
	}
	if len(doc.Cooldowns[general]) == 0 {
		return nil, fmt.Errorf("catalog has no %s cool-downs", general)
	}

	return &Catalog{doc: doc}, nil
}

// FormCue returns the coaching cue for an exercise, if any
func (c *Catalog) FormCue(exercise string) (string, bool) {
	cue, ok := c.doc.FormCues[exercise]
	return cue, ok && cue != ""
}

// Prescription returns the sets/reps/rest scheme for an exercise, if any
func (c *Catalog) Prescription(exercise string) (Prescription, bool) {
	p, ok := c.doc.Prescriptions[exercise]
	return p, ok
}

// Warmups returns the warm-up names for a category, falling back to general
func (c *Catalog) Warmups(category domain.Category) []string {
	return lookupOrGeneral(c.doc.Warmups, category)
}

// Cooldowns returns the cool-down names for a category, falling back to general
func (c *Catalog) Cooldowns(category domain.Category) []string {
	return lookupOrGeneral(c.doc.Cooldowns, category)
}

// CardioCircuit returns the fixed exercises rendered on every cardio day
func (c *Catalog) CardioCircuit() []string {
	out := make([]string, len(c.doc.CardioCircuit))
	copy(out, c.doc.CardioCircuit)
	return out
}

func lookupOrGeneral(table map[string][]string, category domain.Category) []string {
	names, ok := table[string(category)]
	if !ok {
		names = table[string(domain.CategoryGeneral)]
	}
	out := make([]string, len(names))
	copy(out, names)
	return out
}
