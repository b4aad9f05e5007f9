package ontology

import "strings"

// LocalName returns the fallback display name of a URI: the last
// "/"-delimited segment, reduced to the text after its last "#".
// If that leaves nothing, the URI is returned unchanged.
func LocalName(uri string) string {
	name := uri[strings.LastIndex(uri, "/")+1:]
	name = name[strings.LastIndex(name, "#")+1:]
	if name == "" {
		return uri
	}
	return name
}

// RawLabel returns the first non-empty rdfs:label of uri, without any fallback.
func RawLabel(s *Store, uri string) (string, bool) {
	for _, label := range s.Objects(uri, RDFSLabel) {
		if label.Value != "" {
			return label.Value, true
		}
	}
	return "", false
}

// ResolveLabel returns the first non-empty rdfs:label of uri or, when there
// is none, its LocalName. The result is never empty for a non-empty URI.
func ResolveLabel(s *Store, uri string) string {
	if label, ok := RawLabel(s, uri); ok {
		return label
	}
	return LocalName(uri)
}

// ResolveDefinition walks the definition predicates in priority order and
// returns the first non-empty value. Values are not merged across predicates.
func ResolveDefinition(s *Store, uri string) (string, bool) {
	for _, predicate := range definitionPredicates {
		for _, def := range s.Objects(uri, predicate) {
			if def.Value != "" {
				return def.Value, true
			}
		}
	}
	return "", false
}

// ref resolves a reference to another entity with its display label.
func ref(s *Store, uri string) Ref {
	return Ref{URI: uri, Label: ResolveLabel(s, uri)}
}
