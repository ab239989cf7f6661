package llm

import "fmt"

// ProviderFactory builds a configured question source.
type ProviderFactory func() (Provider, error)

// question-source registry; provider packages register themselves on import
var providers = make(map[string]ProviderFactory)

// RegisterProvider makes a factory available under the given name. Called
// from provider package init functions.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewProvider builds the question source selected by configuration.
func NewProvider(name string) (Provider, error) {
	factory, exists := providers[name]
	if !exists {
		return nil, fmt.Errorf("unsupported provider: %s", name)
	}
	return factory()
}
