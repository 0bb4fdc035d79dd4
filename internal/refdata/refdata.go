// Package refdata loads the process-wide reference data: industry lexicons,
// synonym tables, phrase and heading lexicons, ATS system profiles, and
// scoring weight tables. Everything is embedded at compile time, validated at
// load, and immutable afterwards, so concurrent evaluations read it without
// synchronization.
package refdata

import (
	"embed"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-analyzer/internal/types"
)

//go:embed data/*.json schema/*.json
var files embed.FS

// LevelLexicon holds the signal words for one seniority band.
type LevelLexicon struct {
	Level   types.RoleLevel `json:"level"`
	Signals []string        `json:"signals"`
}

// IndustryProfile is the lexicon for one known industry. Profiles are ordered:
// the position in the registry fixes the tie-break priority for classification.
type IndustryProfile struct {
	Name     string         `json:"name"`
	Keywords []string       `json:"keywords"`
	Levels   []LevelLexicon `json:"levels"`
}

// PhraseEntry is a multi-word term or credential recognized before
// single-token extraction.
type PhraseEntry struct {
	Phrase   string                `json:"phrase"`
	Category types.KeywordCategory `json:"category"`
	Weight   float64               `json:"weight"`
}

// SectionHeadings maps a canonical section name to its heading variants.
type SectionHeadings struct {
	Section  string   `json:"section"`
	Variants []string `json:"variants"`
}

// SynonymTable maps a canonical term to its accepted equivalents.
type SynonymTable map[string][]string

// DimensionWeight is one entry of a weight table.
type DimensionWeight struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// WeightTable is the dimension weighting for one (industry, role_level) pair.
// An empty RoleLevel marks the industry default; an empty Industry marks the
// global default.
type WeightTable struct {
	Industry  string            `json:"industry"`
	RoleLevel types.RoleLevel   `json:"role_level"`
	Weights   []DimensionWeight `json:"weights"`
}

// Data is the full immutable reference-data set.
type Data struct {
	Industries  []IndustryProfile
	Synonyms    map[string]SynonymTable
	Phrases     []PhraseEntry
	Headings    []SectionHeadings
	ATSProfiles []types.ATSSystemProfile
	WeightTable []WeightTable
}

var (
	sharedOnce sync.Once
	shared     *Data
	sharedErr  error
)

// Shared returns the process-wide reference data, loading it on first use.
func Shared() (*Data, error) {
	sharedOnce.Do(func() {
		shared, sharedErr = Load()
	})
	return shared, sharedErr
}

// Load parses and validates all embedded reference-data files.
func Load() (*Data, error) {
	d := &Data{}

	if err := loadValidated("data/ats_profiles.json", "schema/ats_profiles.schema.json", &d.ATSProfiles); err != nil {
		return nil, err
	}
	if err := loadValidated("data/weights.json", "schema/weights.schema.json", &d.WeightTable); err != nil {
		return nil, err
	}
	if err := loadJSON("data/industries.json", &d.Industries); err != nil {
		return nil, err
	}
	if err := loadJSON("data/synonyms.json", &d.Synonyms); err != nil {
		return nil, err
	}
	if err := loadJSON("data/phrases.json", &d.Phrases); err != nil {
		return nil, err
	}
	if err := loadJSON("data/headings.json", &d.Headings); err != nil {
		return nil, err
	}

	if err := d.check(); err != nil {
		return nil, err
	}
	return d, nil
}

// check enforces the invariants the schemas cannot express.
func (d *Data) check() error {
	if len(d.Industries) == 0 {
		return types.NewConfigurationError("no industry profiles registered")
	}
	for _, t := range d.WeightTable {
		total := 0.0
		for _, w := range t.Weights {
			total += w.Weight
		}
		if math.Abs(total-1.0) > 1e-9 {
			return types.NewConfigurationError(
				"weight table (%q,%q) sums to %.4f, want 1.0", t.Industry, t.RoleLevel, total)
		}
	}
	if !d.hasGlobalDefaultWeights() {
		return types.NewConfigurationError("weight tables lack a global default entry")
	}
	for _, p := range d.ATSProfiles {
		for _, pat := range p.Patterns {
			if _, err := regexp.Compile(pat.Pattern); err != nil {
				return types.NewConfigurationError(
					"ATS profile %q pattern %q does not compile: %v", p.SystemID, pat.ID, err)
			}
		}
	}
	return nil
}

func (d *Data) hasGlobalDefaultWeights() bool {
	for _, t := range d.WeightTable {
		if t.Industry == "" && t.RoleLevel == "" {
			return true
		}
	}
	return false
}

// Industry returns the profile registered under name (case-insensitive).
func (d *Data) Industry(name string) (*IndustryProfile, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i := range d.Industries {
		if d.Industries[i].Name == name {
			return &d.Industries[i], true
		}
	}
	return nil, false
}

// SynonymsFor returns the merged synonym table for an industry: the general
// table plus the industry-scoped entries, with industry entries winning on
// collision.
func (d *Data) SynonymsFor(industry string) SynonymTable {
	merged := make(SynonymTable)
	for term, syns := range d.Synonyms["general"] {
		merged[term] = syns
	}
	for term, syns := range d.Synonyms[strings.ToLower(industry)] {
		merged[term] = syns
	}
	return merged
}

// WeightsFor resolves the weight table for (industry, level), falling back to
// the industry default and then the global default. A table always exists:
// Load rejects data without a global default.
func (d *Data) WeightsFor(industry string, level types.RoleLevel) []DimensionWeight {
	industry = strings.ToLower(strings.TrimSpace(industry))
	if t := d.findWeights(industry, level); t != nil {
		return t
	}
	if t := d.findWeights(industry, ""); t != nil {
		return t
	}
	return d.findWeights("", "")
}

func (d *Data) findWeights(industry string, level types.RoleLevel) []DimensionWeight {
	for _, t := range d.WeightTable {
		if t.Industry == industry && t.RoleLevel == level {
			return t.Weights
		}
	}
	return nil
}

// WithWeightOverrides returns a copy of d whose weight resolution consults
// the given tables before the embedded defaults. Override tables must
// satisfy the same sum-to-one invariant as embedded ones.
func (d *Data) WithWeightOverrides(overrides []WeightTable) (*Data, error) {
	for _, t := range overrides {
		total := 0.0
		for _, w := range t.Weights {
			total += w.Weight
		}
		if math.Abs(total-1.0) > 1e-9 {
			return nil, types.NewConfigurationError(
				"weight override (%q,%q) sums to %.4f, want 1.0", t.Industry, t.RoleLevel, total)
		}
	}

	merged := *d
	merged.WeightTable = make([]WeightTable, 0, len(overrides)+len(d.WeightTable))
	merged.WeightTable = append(merged.WeightTable, overrides...)
	merged.WeightTable = append(merged.WeightTable, d.WeightTable...)
	return &merged, nil
}

// DetectSections returns the canonical names of resume sections whose
// headings appear in the text, in registration order. A heading is a line
// that, trimmed, lowercased, and stripped of a trailing colon, equals one of
// the section's variants.
func (d *Data) DetectSections(text string) []string {
	lines := make(map[string]bool)
	for _, line := range strings.Split(text, "\n") {
		line = strings.ToLower(strings.TrimSpace(line))
		line = strings.TrimSuffix(line, ":")
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			lines[line] = true
		}
	}

	sections := []string{}
	for _, section := range d.Headings {
		for _, variant := range section.Variants {
			if lines[variant] {
				sections = append(sections, section.Section)
				break
			}
		}
	}
	return sections
}

func loadJSON(path string, out any) error {
	raw, err := files.ReadFile(path)
	if err != nil {
		return types.NewConfigurationError("reading embedded %s: %v", path, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return types.NewConfigurationError("parsing %s: %v", path, err)
	}
	return nil
}

// loadValidated runs the document through its JSON Schema before decoding.
func loadValidated(dataPath, schemaPath string, out any) error {
	raw, err := files.ReadFile(dataPath)
	if err != nil {
		return types.NewConfigurationError("reading embedded %s: %v", dataPath, err)
	}
	schemaRaw, err := files.ReadFile(schemaPath)
	if err != nil {
		return types.NewConfigurationError("reading embedded %s: %v", schemaPath, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaRaw),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return types.NewConfigurationError("validating %s: %v", dataPath, err)
	}
	if !result.Valid() {
		var sb strings.Builder
		for i, desc := range result.Errors() {
			if i > 0 {
				sb.WriteString("; ")
			}
			sb.WriteString(fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
		}
		return types.NewConfigurationError("%s failed schema validation: %s", dataPath, sb.String())
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return types.NewConfigurationError("parsing %s: %v", dataPath, err)
	}
	return nil
}
