package ontology

import (
	"errors"
	"fmt"

	"github.com/knakk/rdf"
)

// ErrInvalidURI is returned when a lookup key does not parse as an IRI.
var ErrInvalidURI = errors.New("invalid URI")

// ResultKind classifies the outcome of a detail lookup.
type ResultKind int

const (
	ResultOK ResultKind = iota
	ResultInvalidInput
	ResultInternalError
)

// Result carries either a detail record or the reason there is none.
// A URI that parses but is absent from the store is ResultOK with empty fields.
type Result[T any] struct {
	Kind  ResultKind
	Value T
	Err   error
}

// OK reports whether the lookup succeeded.
func (r Result[T]) OK() bool {
	return r.Kind == ResultOK
}

// ClassDetails is the full record for one class.
type ClassDetails struct {
	URI               string  `json:"uri"`
	Label             *string `json:"label"`
	Definition        *string `json:"definition"`
	Parents           []Ref   `json:"parents"`
	EquivalentClasses []Ref   `json:"equivalentClasses"`
	DisjointWith      []Ref   `json:"disjointWith"`
}

// PropertyDetails is the full record for one property.
type PropertyDetails struct {
	URI        string  `json:"uri"`
	Label      *string `json:"label"`
	Definition *string `json:"definition"`
	Domain     []Ref   `json:"domain"`
	Range      []Ref   `json:"range"`
	Inverse    []Ref   `json:"inverse"`
}

// ParseURI checks that uri is usable as an IRI lookup key.
func ParseURI(uri string) (string, error) {
	iri, err := rdf.NewIRI(uri)
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrInvalidURI, uri, err)
	}
	return iri.String(), nil
}

// FetchClassDetails assembles the detail record of a class: its own label
// and definition plus every IRI-typed parent, equivalent and disjoint class.
func FetchClassDetails(s *Store, uri string) Result[ClassDetails] {
	return fetch(uri, func(iri string) ClassDetails {
		details := ClassDetails{
			URI:               uri,
			Parents:           refs(s, s.Objects(iri, RDFSSubClassOf)),
			EquivalentClasses: refs(s, s.Objects(iri, OWLEquivalentClass)),
			DisjointWith:      refs(s, s.Objects(iri, OWLDisjointWith)),
		}
		details.Label, details.Definition = annotations(s, iri)
		return details
	})
}

// FetchPropertyDetails assembles the detail record of a property. Inverse
// combines the forward owl:inverseOf targets with every property that
// declares this one as its inverse.
func FetchPropertyDetails(s *Store, uri string) Result[PropertyDetails] {
	return fetch(uri, func(iri string) PropertyDetails {
		forward := iriTargets(s.Objects(iri, OWLInverseOf))
		backward := iriTargets(s.Subjects(OWLInverseOf, IRI(iri)))

		details := PropertyDetails{
			URI:     uri,
			Domain:  refs(s, s.Objects(iri, RDFSDomain)),
			Range:   refs(s, s.Objects(iri, RDFSRange)),
			Inverse: refsOf(s, dedupe(append(forward, backward...))),
		}
		details.Label, details.Definition = annotations(s, iri)
		return details
	})
}

// fetch validates the URI and runs build, converting a panic from the
// store into an internal error result.
func fetch[T any](uri string, build func(iri string) T) (res Result[T]) {
	iri, err := ParseURI(uri)
	if err != nil {
		return Result[T]{Kind: ResultInvalidInput, Err: err}
	}

	defer func() {
		if r := recover(); r != nil {
			res = Result[T]{Kind: ResultInternalError, Err: fmt.Errorf("lookup %s: %v", uri, r)}
		}
	}()

	return Result[T]{Kind: ResultOK, Value: build(iri)}
}

func annotations(s *Store, iri string) (label, definition *string) {
	if l, ok := RawLabel(s, iri); ok {
		label = &l
	}
	if d, ok := ResolveDefinition(s, iri); ok {
		definition = &d
	}
	return label, definition
}

func refs(s *Store, terms []Term) []Ref {
	return refsOf(s, iriTargets(terms))
}

func refsOf(s *Store, uris []string) []Ref {
	out := make([]Ref, 0, len(uris))
	for _, uri := range uris {
		out = append(out, ref(s, uri))
	}
	return out
}

func dedupe(uris []string) []string {
	seen := make(map[string]struct{}, len(uris))
	out := uris[:0]
	for _, uri := range uris {
		if _, ok := seen[uri]; ok {
			continue
		}
		seen[uri] = struct{}{}
		out = append(out, uri)
	}
	return out
}
