package prompting

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed templates.json
var templateData []byte

var loadTemplates = sync.OnceValue(func() map[string]string {
	var templates map[string]string
	if err := json.Unmarshal(templateData, &templates); err != nil {
		panic(fmt.Sprintf("prompt templates corrupted: %v", err))
	}
	return templates
})

// template returns the named prompt template. Templates are compiled in, so
// a missing key is a programming error.
func template(key string) string {
	tmpl, ok := loadTemplates()[key]
	if !ok {
		panic(fmt.Sprintf("unknown prompt template %q", key))
	}
	return tmpl
}

// fill replaces {{.Key}} placeholders in a template with values from data.
// Unknown placeholders are left intact.
func fill(tmpl string, data map[string]string) string {
	for key, value := range data {
		tmpl = strings.ReplaceAll(tmpl, "{{."+key+"}}", value)
	}
	return tmpl
}
