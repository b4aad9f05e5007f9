package serialize

import (
	"fmt"
	"strings"
)

// R2RMLTableName is the logical table every TriplesMap reads from.
const R2RMLTableName = "UploadedCSV"

// R2RML renders one TriplesMap per node, an ObjectMap per edge whose source
// and target are both set, and an ObjectMap stub per header link.
// Labels are interpolated as-is, without escaping.
func R2RML(g Graph) string {
	lines := []string{
		"@prefix rr: <http://www.w3.org/ns/r2rml#> .",
		"@prefix ex: <http://example.org/> .",
		"",
	}

	for _, n := range g.Nodes {
		label := n.label()
		uri := n.uri()
		if uri == "" {
			uri = ExampleBase + label
		}
		lines = append(lines,
			fmt.Sprintf("ex:TriplesMap_%s a rr:TriplesMap ;", n.ID),
			fmt.Sprintf(`  rr:logicalTable [ rr:tableName "%s" ];`, R2RMLTableName),
			fmt.Sprintf(`  rr:subjectMap [ rr:template "http://example.org/resource/{%s}" ;`, label),
			fmt.Sprintf("                  rr:class <%s> ] .\n", uri),
		)
	}

	for _, e := range g.Edges {
		if e.Source == "" || e.Target == "" {
			continue
		}
		lines = append(lines,
			fmt.Sprintf("# Relationship between %s and %s", e.Source, e.Target),
			fmt.Sprintf("<%s> a rr:ObjectMap ;", e.propertyURI()),
			fmt.Sprintf("  rr:parentTriplesMap ex:TriplesMap_%s .\n", e.Target),
		)
	}

	for _, h := range g.HeaderLinks {
		lines = append(lines,
			fmt.Sprintf("# Header link: %s", h.Header),
			fmt.Sprintf("<%s> a rr:ObjectMap .\n", h.propertyURI()),
		)
	}

	return strings.Join(lines, "\n")
}
