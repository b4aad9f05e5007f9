package ontology

import "strings"

// searchLimit is the match count that stops a search. Collection stops only
// once it is exceeded, so a search returns at most searchLimit+1 results.
const searchLimit = 25

// Search returns labelled classes whose label contains term, ignoring case.
// An empty term matches every labelled class. Results follow class IRI order.
func Search(s *Store, term string) []Ref {
	needle := strings.ToLower(term)
	results := make([]Ref, 0)

	for _, uri := range iriTargets(s.Subjects(RDFType, IRI(OWLClass))) {
		label, ok := RawLabel(s, uri)
		if !ok || label == "" {
			continue
		}
		if strings.Contains(strings.ToLower(label), needle) {
			results = append(results, Ref{URI: uri, Label: label})
		}
		if len(results) > searchLimit {
			break
		}
	}
	return results
}
