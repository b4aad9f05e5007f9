package serialize

import (
	"fmt"
	"strings"
)

// RDF renders every node as an rdf:Resource with an rdfs:label, then one
// triple per edge whose source and target nodes both exist. Edges pointing
// at unknown node ids are dropped.
func RDF(g Graph) string {
	lines := []string{
		"@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .",
		"@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .",
		"@prefix ex: <http://example.org/> .",
		"",
	}

	for _, n := range g.Nodes {
		lines = append(lines,
			fmt.Sprintf("<%s> a rdf:Resource ;", resourceURI(n)),
			fmt.Sprintf(`    rdfs:label "%s" .`, n.label()),
			"",
		)
	}

	for _, e := range g.Edges {
		source, ok := g.nodeByID(e.Source)
		if !ok {
			continue
		}
		target, ok := g.nodeByID(e.Target)
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("<%s> <%s> <%s> .", resourceURI(source), e.propertyURI(), resourceURI(target)))
	}

	return strings.Join(lines, "\n")
}

func resourceURI(n Node) string {
	if uri := n.uri(); uri != "" {
		return uri
	}
	return ExampleBase + n.ID
}
