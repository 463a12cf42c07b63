package service

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed templates/*.yaml
var templateFiles embed.FS

// ExportTemplate describes one of the built-in PDF export layouts.
type ExportTemplate struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	PageSize    string `yaml:"page_size" json:"page_size"`
}

type templateFile struct {
	Templates []ExportTemplate `yaml:"templates"`
}

// TemplateRegistry holds the export templates loaded from embedded YAML.
type TemplateRegistry struct {
	templates map[string]ExportTemplate
	order     []string
	mu        sync.RWMutex
}

// NewTemplateRegistry creates a registry and loads the embedded template file
func NewTemplateRegistry() (*TemplateRegistry, error) {
	r := &TemplateRegistry{
		templates: make(map[string]ExportTemplate),
	}

	data, err := templateFiles.ReadFile("templates/templates.yaml")
	if err != nil {
		return nil, fmt.Errorf("read template definitions: %w", err)
	}

	var file templateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unmarshal template definitions: %w", err)
	}

	r.mu.Lock()
	for _, tpl := range file.Templates {
		r.templates[tpl.ID] = tpl
		r.order = append(r.order, tpl.ID)
	}
	r.mu.Unlock()

	return r, nil
}

// Get returns the template with the given id
func (r *TemplateRegistry) Get(id string) (ExportTemplate, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tpl, ok := r.templates[id]
	return tpl, ok
}

// List returns all templates in definition order
func (r *TemplateRegistry) List() []ExportTemplate {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ExportTemplate, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.templates[id])
	}
	return out
}
