package serialize

import "sort"

// Content types of the generated documents.
const (
	ContentTypeTurtle  = "text/turtle; charset=utf-8"
	ContentTypeMermaid = "text/vnd.mermaid; charset=utf-8"
)

// Generator produces one text format from a Graph.
type Generator interface {
	Name() string
	ContentType() string
	Generate(g Graph) string
}

type generatorFunc struct {
	name        string
	contentType string
	fn          func(Graph) string
}

func (f generatorFunc) Name() string            { return f.name }
func (f generatorFunc) ContentType() string     { return f.contentType }
func (f generatorFunc) Generate(g Graph) string { return f.fn(g) }

var generators = map[string]Generator{
	"r2rml":   generatorFunc{name: "r2rml", contentType: ContentTypeTurtle, fn: R2RML},
	"rdf":     generatorFunc{name: "rdf", contentType: ContentTypeTurtle, fn: RDF},
	"mermaid": generatorFunc{name: "mermaid", contentType: ContentTypeMermaid, fn: Mermaid},
}

// Lookup returns the generator registered under name.
func Lookup(name string) (Generator, bool) {
	g, ok := generators[name]
	return g, ok
}

// Names lists the registered generator names in sorted order.
func Names() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
