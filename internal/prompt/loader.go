// Package prompt composes context-enriched requests for the external
// inference collaborator. Templates are stored as JSON and embedded at
// compile time; the composer performs no scoring itself.
package prompt

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed templates.json
var templateFile []byte

var (
	templatesOnce sync.Once
	templates     map[string]string
	templatesErr  error
)

// loadTemplates parses the embedded template file once.
func loadTemplates() (map[string]string, error) {
	templatesOnce.Do(func() {
		templatesErr = json.Unmarshal(templateFile, &templates)
	})
	if templatesErr != nil {
		return nil, fmt.Errorf("failed to parse embedded prompt templates: %w", templatesErr)
	}
	return templates, nil
}

// formatTemplate replaces placeholders in the form {{.Key}} with values from
// data.
func formatTemplate(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		placeholder := fmt.Sprintf("{{.%s}}", key)
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}
