package verb

import (
	"fmt"
	"io"
)

// Parser builds a Verb from its CLI-style argument list (§6), writing usage
// to stderr and returning an error on a parse failure (§7 item 1).
type Parser func(argv0, verbName string, args []string, stderr io.Writer) (Verb, error)

// Registry maps a verb-type name to its argument parser, so a pipeline
// config (§4.11) can resolve a `{type, args}` spec to a constructed Verb.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry returns a Registry pre-populated with the two illustrated
// verbs, having-fields and sec2gmt.
func NewRegistry() *Registry {
	r := &Registry{parsers: make(map[string]Parser)}
	r.Register("having-fields", func(argv0, verbName string, args []string, stderr io.Writer) (Verb, error) {
		return ParseHavingFieldsArgs(argv0, verbName, args, stderr)
	})
	r.Register("sec2gmt", func(argv0, verbName string, args []string, stderr io.Writer) (Verb, error) {
		return ParseSec2GMTArgs(argv0, verbName, args, stderr)
	})
	return r
}

// Register adds or replaces the parser for a verb-type name.
func (r *Registry) Register(name string, p Parser) {
	r.parsers[name] = p
}

// Build resolves a verb-type name and its argument list to a constructed
// Verb via the registered parser.
func (r *Registry) Build(argv0, name string, args []string, stderr io.Writer) (Verb, error) {
	p, ok := r.parsers[name]
	if !ok {
		return nil, fmt.Errorf("tabverb: unknown verb type %q", name)
	}
	return p(argv0, name, args, stderr)
}
