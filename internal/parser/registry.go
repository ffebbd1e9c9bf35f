package parser

// Registry manages a collection of language parsers, indexed by language
// and by file extension.
//
// Registration is expected to happen once during setup; lookups afterwards
// are read-only. Because the registered parsers hold native handles that
// are not safe for concurrent use, a Registry should not be shared between
// goroutines that parse concurrently — build one Registry per worker.
type Registry struct {
	parsers  map[Language]Parser
	extIndex map[string]Parser
	order    []Language
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{
		parsers:  make(map[Language]Parser),
		extIndex: make(map[string]Parser),
	}
}

// Register adds a parser to the registry, indexing it by language and file
// extensions. Registering a language twice replaces the earlier parser.
func (r *Registry) Register(p Parser) {
	lang := p.Language()
	if _, exists := r.parsers[lang]; !exists {
		r.order = append(r.order, lang)
	}
	r.parsers[lang] = p
	for _, ext := range p.Extensions() {
		r.extIndex[ext] = p
	}
}

// Get retrieves a parser by language.
func (r *Registry) Get(lang Language) (Parser, bool) {
	p, ok := r.parsers[lang]
	return p, ok
}

// GetByExtension retrieves a parser by file extension (e.g. ".py").
func (r *Registry) GetByExtension(ext string) (Parser, bool) {
	p, ok := r.extIndex[ext]
	return p, ok
}

// All returns all registered parsers in registration order.
func (r *Registry) All() []Parser {
	result := make([]Parser, len(r.order))
	for i, lang := range r.order {
		result[i] = r.parsers[lang]
	}
	return result
}

// Supports reports whether a parser is registered for the given language.
func (r *Registry) Supports(lang Language) bool {
	_, ok := r.parsers[lang]
	return ok
}
