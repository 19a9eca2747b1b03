package services

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// Category and subcategory names with lookup or rounding rules of their own.
const (
	CategoryInstall           = "Install"
	CategoryProgramming       = "Programming"
	CategoryRackFabrication   = "Rack Fabrication"
	CategoryEngineering       = "Engineering"
	CategoryFieldEngineering  = "Field Engineering"
	CategoryQualityAssurance  = "Quality Assurance"
	CategoryProjectManagement = "Project Management"
	CategoryTraining          = "Training"

	SubcategoryDecommissioning = "Decommissioning"
)

// decommissioningShare is the fraction of an installed task's hours charged
// to remove it.
const decommissioningShare = 0.25

//go:embed data/reference.yaml
var defaultReferenceYAML []byte

// Task is a single reference-table entry.
type Task struct {
	Key   string  `yaml:"key"`
	Label string  `yaml:"label"`
	Hours float64 `yaml:"hours"`
}

type Subcategory struct {
	Name  string `yaml:"name"`
	Tasks []Task `yaml:"tasks"`
}

type Category struct {
	Name          string        `yaml:"name"`
	Flat          bool          `yaml:"flat"`
	Subcategories []Subcategory `yaml:"subcategories"`
}

// WirePrice is the bulk price of one cable type per 1000 ft.
type WirePrice struct {
	Type                 string  `yaml:"type"`
	PricePerThousandFeet float64 `yaml:"price_per_thousand_feet"`
}

type referenceFile struct {
	Categories    []Category  `yaml:"categories"`
	Wires         []WirePrice `yaml:"wires"`
	RackMaterials []string    `yaml:"rack_materials"`
}

// taskIndex resolves a task by display label first, then by stable key.
type taskIndex struct {
	byLabel map[string]float64
	byKey   map[string]float64
}

func newTaskIndex() taskIndex {
	return taskIndex{byLabel: make(map[string]float64), byKey: make(map[string]float64)}
}

func (ti taskIndex) hours(task string) (float64, bool) {
	if h, ok := ti.byLabel[task]; ok {
		return h, true
	}
	h, ok := ti.byKey[task]
	return h, ok
}

// ReferenceTables holds the canonical hours-per-task for every category and
// the materials price lists. It is built once and only read afterwards, so a
// single value can be shared by every request.
type ReferenceTables struct {
	categories    []Category
	subIndex      map[string]map[string]taskIndex
	flatIndex     map[string]taskIndex
	wirePrices    map[string]float64
	wireTypes     []string
	rackMaterials []string
}

// DefaultReferenceTables parses the reference data compiled into the binary.
func DefaultReferenceTables() (*ReferenceTables, error) {
	return ParseReferenceTables(defaultReferenceYAML)
}

// LoadReferenceTables reads reference data from path, or falls back to the
// compiled-in tables when path is empty.
func LoadReferenceTables(path string) (*ReferenceTables, error) {
	if path == "" {
		return DefaultReferenceTables()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reference tables %s: %w", path, err)
	}
	return ParseReferenceTables(data)
}

// ParseReferenceTables decodes and validates YAML reference data. Task keys
// left blank are derived from the label with TaskKey.
func ParseReferenceTables(data []byte) (*ReferenceTables, error) {
	var file referenceFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse reference tables: %w", err)
	}
	if len(file.Categories) == 0 {
		return nil, fmt.Errorf("parse reference tables: no categories defined")
	}

	rt := &ReferenceTables{
		subIndex:   make(map[string]map[string]taskIndex),
		flatIndex:  make(map[string]taskIndex),
		wirePrices: make(map[string]float64),
	}

	for ci := range file.Categories {
		cat := &file.Categories[ci]
		cat.Name = strings.TrimSpace(cat.Name)
		if cat.Name == "" {
			return nil, fmt.Errorf("category %d: name is required", ci+1)
		}
		if _, dup := rt.subIndex[cat.Name]; dup {
			return nil, fmt.Errorf("category %q: defined twice", cat.Name)
		}

		subs := make(map[string]taskIndex)
		flat := newTaskIndex()
		for si := range cat.Subcategories {
			sub := &cat.Subcategories[si]
			sub.Name = strings.TrimSpace(sub.Name)
			if sub.Name == "" {
				return nil, fmt.Errorf("category %q subcategory %d: name is required", cat.Name, si+1)
			}
			if _, dup := subs[sub.Name]; dup {
				return nil, fmt.Errorf("category %q: subcategory %q defined twice", cat.Name, sub.Name)
			}

			idx := newTaskIndex()
			for ti := range sub.Tasks {
				task := &sub.Tasks[ti]
				task.Label = strings.TrimSpace(task.Label)
				if task.Label == "" {
					return nil, fmt.Errorf("%s / %s task %d: label is required", cat.Name, sub.Name, ti+1)
				}
				if task.Hours < 0 {
					return nil, fmt.Errorf("%s / %s / %s: hours must not be negative", cat.Name, sub.Name, task.Label)
				}
				if task.Key == "" {
					task.Key = TaskKey(task.Label)
				}
				if _, dup := idx.byKey[task.Key]; dup {
					return nil, fmt.Errorf("%s / %s: task key %q is not unique", cat.Name, sub.Name, task.Key)
				}
				idx.byLabel[task.Label] = task.Hours
				idx.byKey[task.Key] = task.Hours
				if cat.Flat {
					flat.byLabel[task.Label] = task.Hours
					flat.byKey[task.Key] = task.Hours
				}
			}
			subs[sub.Name] = idx
		}

		rt.subIndex[cat.Name] = subs
		if cat.Flat {
			rt.flatIndex[cat.Name] = flat
		}
		rt.categories = append(rt.categories, *cat)
	}

	for _, w := range file.Wires {
		wireType := strings.TrimSpace(w.Type)
		if wireType == "" {
			return nil, fmt.Errorf("wire price: type is required")
		}
		if w.PricePerThousandFeet < 0 {
			return nil, fmt.Errorf("wire %q: price must not be negative", wireType)
		}
		if _, dup := rt.wirePrices[wireType]; dup {
			return nil, fmt.Errorf("wire %q: priced twice", wireType)
		}
		rt.wirePrices[wireType] = w.PricePerThousandFeet
		rt.wireTypes = append(rt.wireTypes, wireType)
	}

	for _, m := range file.RackMaterials {
		if m = strings.TrimSpace(m); m != "" {
			rt.rackMaterials = append(rt.rackMaterials, m)
		}
	}

	return rt, nil
}

// Hours returns the canonical hours-per-task for a task, or 0 when any tier of
// the lookup is unknown. Training and Rack Fabrication ignore subcategory.
// Install/Decommissioning is a quarter of the task's hours summed across every
// other Install subcategory.
func (rt *ReferenceTables) Hours(category, subcategory, task string) float64 {
	if rt == nil || task == "" {
		return 0
	}
	if flat, ok := rt.flatIndex[category]; ok {
		h, _ := flat.hours(task)
		return h
	}
	if category == CategoryInstall && subcategory == SubcategoryDecommissioning {
		return rt.decommissioningHours(task)
	}
	h, _ := rt.subIndex[category][subcategory].hours(task)
	return h
}

func (rt *ReferenceTables) decommissioningHours(task string) float64 {
	install, ok := rt.category(CategoryInstall)
	if !ok {
		return 0
	}
	var sum float64
	for _, sub := range install.Subcategories {
		if sub.Name == SubcategoryDecommissioning {
			continue
		}
		h, _ := rt.subIndex[CategoryInstall][sub.Name].hours(task)
		sum += h
	}
	return sum * decommissioningShare
}

func (rt *ReferenceTables) category(name string) (Category, bool) {
	if rt == nil {
		return Category{}, false
	}
	for _, c := range rt.categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// Categories returns category names in display order.
func (rt *ReferenceTables) Categories() []string {
	if rt == nil {
		return nil
	}
	names := make([]string, 0, len(rt.categories))
	for _, c := range rt.categories {
		names = append(names, c.Name)
	}
	return names
}

// Subcategories returns the subcategory names of category in display order.
func (rt *ReferenceTables) Subcategories(category string) []string {
	c, ok := rt.category(category)
	if !ok {
		return nil
	}
	names := make([]string, 0, len(c.Subcategories))
	for _, s := range c.Subcategories {
		names = append(names, s.Name)
	}
	return names
}

// IsFlat reports whether category is looked up by task name alone.
func (rt *ReferenceTables) IsFlat(category string) bool {
	if rt == nil {
		return false
	}
	_, ok := rt.flatIndex[category]
	return ok
}

// TaskOptions lists the tasks a user may pick for a subcategory, with the
// hours Hours would return for each. Decommissioning offers every other
// Install task once.
func (rt *ReferenceTables) TaskOptions(category, subcategory string) []Task {
	c, ok := rt.category(category)
	if !ok {
		return nil
	}

	var out []Task
	switch {
	case c.Flat:
		for _, s := range c.Subcategories {
			out = append(out, s.Tasks...)
		}
	case category == CategoryInstall && subcategory == SubcategoryDecommissioning:
		seen := make(map[string]bool)
		for _, s := range c.Subcategories {
			for _, t := range s.Tasks {
				if seen[t.Label] {
					continue
				}
				seen[t.Label] = true
				t.Hours = rt.decommissioningHours(t.Label)
				out = append(out, t)
			}
		}
	default:
		for _, s := range c.Subcategories {
			if s.Name == subcategory {
				out = append(out, s.Tasks...)
				break
			}
		}
	}
	return out
}

// WirePrice implements WirePricer.
func (rt *ReferenceTables) WirePrice(wireType string) (float64, bool) {
	p, ok := rt.wirePrices[wireType]
	return p, ok
}

// WireTypes returns the priced cable types in display order.
func (rt *ReferenceTables) WireTypes() []string {
	return append([]string(nil), rt.wireTypes...)
}

// RackMaterialTypes returns the selectable rack material types.
func (rt *ReferenceTables) RackMaterialTypes() []string {
	return append([]string(nil), rt.rackMaterials...)
}

// TaskKey derives a stable key from a display label: lower-case letters and
// digits, every other run of characters collapsed to a single dash.
func TaskKey(label string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(label) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}
