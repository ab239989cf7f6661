package prompts

import (
	"embed"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"jobprep/interview/internal/models"
)

// embeds all .yaml files in the templates folder at compile time
//
//go:embed templates/*.yaml
var templateFS embed.FS

type Manager struct {
	prompts map[string]string // template name -> prompt text
}

// loaded prompt template
type promptTemplate struct {
	Prompt string `yaml:"prompt"`
}

// creates a new prompt manager and loads templates
func NewManager() (*Manager, error) {
	m := &Manager{prompts: make(map[string]string)}
	if err := m.loadPrompts(); err != nil {
		return nil, fmt.Errorf("failed to load prompt templates: %w", err)
	}
	return m, nil
}

// BuildPrompt substitutes the given variables into the named template.
// Simple string replacement instead of template execution.
func (m *Manager) BuildPrompt(name string, vars map[string]string) (string, error) {
	prompt, exists := m.prompts[name]
	if !exists {
		return "", fmt.Errorf("template not found: %s", name)
	}
	for key, value := range vars {
		prompt = strings.ReplaceAll(prompt, "{{."+key+"}}", value)
	}
	return prompt, nil
}

// BuildGeneratePrompt renders the question-generation instruction.
func (m *Manager) BuildGeneratePrompt(req *models.GenerateRequest) (string, error) {
	return m.BuildPrompt("generate", map[string]string{
		"Role":        req.Role,
		"Level":       req.Level,
		"Category":    req.Category,
		"BatchSize":   strconv.Itoa(req.BatchSize),
		"FocusTopics": bulletList(req.FocusTopics),
		"AvoidList":   bulletList(req.AvoidList),
	})
}

// BuildEvaluatePrompt renders the answer-evaluation instruction.
func (m *Manager) BuildEvaluatePrompt(req *models.EvaluateRequest) (string, error) {
	return m.BuildPrompt("evaluate", map[string]string{
		"Role":      req.Role,
		"Level":     req.Level,
		"Category":  req.Category,
		"Question":  req.Question,
		"KeyPoints": bulletList(req.KeyPoints),
		"Answer":    req.Answer,
	})
}

func bulletList(items []string) string {
	if len(items) == 0 {
		return "- (none)"
	}
	return "- " + strings.Join(items, "\n- ")
}

func (m *Manager) loadPrompts() error {
	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return fmt.Errorf("failed to read templates directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		data, err := templateFS.ReadFile("templates/" + entry.Name())
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", entry.Name(), err)
		}

		var tmpl promptTemplate
		if err := yaml.Unmarshal(data, &tmpl); err != nil {
			return fmt.Errorf("failed to parse template file %s: %w", entry.Name(), err)
		}
		if tmpl.Prompt == "" {
			return fmt.Errorf("template file %s has an empty prompt", entry.Name())
		}

		m.prompts[strings.TrimSuffix(entry.Name(), ".yaml")] = tmpl.Prompt
	}

	return nil
}
