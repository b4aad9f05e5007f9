// Package ontology holds the read-only ontology fact base and the queries the
// service answers over it: labels, definitions, class and property catalogs,
// per-entity detail records and label search.
//
// A Store is assembled once by a Builder (usually through Load) and never
// mutated afterwards, so a single *Store can be shared by any number of
// concurrent readers without locking.
package ontology

import (
	"fmt"
	"sort"
)

// TermKind distinguishes the three RDF term types.
type TermKind int

const (
	TermIRI TermKind = iota
	TermBlank
	TermLiteral
)

func (k TermKind) String() string {
	switch k {
	case TermIRI:
		return "iri"
	case TermBlank:
		return "blank"
	case TermLiteral:
		return "literal"
	default:
		return fmt.Sprintf("TermKind(%d)", int(k))
	}
}

// Term is a single RDF node: an IRI, a blank node or a literal.
// Datatype and Lang are only meaningful for literals.
type Term struct {
	Kind     TermKind
	Value    string
	Datatype string
	Lang     string
}

// IRI returns an IRI term.
func IRI(value string) Term {
	return Term{Kind: TermIRI, Value: value}
}

// Blank returns a blank node term.
func Blank(id string) Term {
	return Term{Kind: TermBlank, Value: id}
}

// Literal returns a plain literal term.
func Literal(value string) Term {
	return Term{Kind: TermLiteral, Value: value}
}

// LangLiteral returns a language-tagged literal term.
func LangLiteral(value, lang string) Term {
	return Term{Kind: TermLiteral, Value: value, Lang: lang}
}

// IsIRI reports whether the term is an IRI.
func (t Term) IsIRI() bool {
	return t.Kind == TermIRI
}

// Key returns the identity of the term used by the store's set semantics.
func (t Term) Key() string {
	switch t.Kind {
	case TermIRI:
		return "<" + t.Value + ">"
	case TermBlank:
		return "_:" + t.Value
	default:
		key := fmt.Sprintf("%q", t.Value)
		if t.Lang != "" {
			key += "@" + t.Lang
		}
		if t.Datatype != "" {
			key += "^^<" + t.Datatype + ">"
		}
		return key
	}
}

// String returns the lexical value of the term.
func (t Term) String() string {
	return t.Value
}

// Triple is a subject-predicate-object statement.
type Triple struct {
	Subject   Term
	Predicate Term
	Object    Term
}

// Stats summarises the contents of a store.
type Stats struct {
	TotalTriples     int `json:"total_triples"`
	UniqueSubjects   int `json:"unique_subjects"`
	UniquePredicates int `json:"unique_predicates"`
}

// Builder accumulates triples before they are frozen into a Store.
// A Builder is not safe for concurrent use.
type Builder struct {
	// subject key -> predicate IRI -> object key -> object
	spo      map[string]map[string]map[string]Term
	subjects map[string]Term
	count    int
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		spo:      make(map[string]map[string]map[string]Term),
		subjects: make(map[string]Term),
	}
}

// Add inserts a triple. It returns false when the triple is already present
// or is not a valid RDF statement (literal subject, non-IRI predicate, empty values).
func (b *Builder) Add(t Triple) bool {
	if t.Subject.Kind == TermLiteral || t.Subject.Value == "" {
		return false
	}
	if !t.Predicate.IsIRI() || t.Predicate.Value == "" {
		return false
	}
	if t.Object.Kind != TermLiteral && t.Object.Value == "" {
		return false
	}

	subjectKey := t.Subject.Key()
	byPredicate, ok := b.spo[subjectKey]
	if !ok {
		byPredicate = make(map[string]map[string]Term)
		b.spo[subjectKey] = byPredicate
		b.subjects[subjectKey] = t.Subject
	}
	objects, ok := byPredicate[t.Predicate.Value]
	if !ok {
		objects = make(map[string]Term)
		byPredicate[t.Predicate.Value] = objects
	}

	objectKey := t.Object.Key()
	if _, exists := objects[objectKey]; exists {
		return false
	}
	objects[objectKey] = t.Object
	b.count++
	return true
}

// Merge adds every triple of other to b and returns how many were new.
func (b *Builder) Merge(other *Builder) int {
	added := 0
	for subjectKey, byPredicate := range other.spo {
		subject := other.subjects[subjectKey]
		for predicate, objects := range byPredicate {
			for _, object := range objects {
				if b.Add(Triple{Subject: subject, Predicate: IRI(predicate), Object: object}) {
					added++
				}
			}
		}
	}
	return added
}

// Len returns the number of distinct triples added so far.
func (b *Builder) Len() int {
	return b.count
}

// Build freezes the accumulated triples into an immutable Store.
// The builder must not be used afterwards.
func (b *Builder) Build() *Store {
	s := &Store{
		spo:   make(map[string]map[string][]Term, len(b.spo)),
		pos:   make(map[string]map[string][]Term),
		count: b.count,
	}

	pos := make(map[string]map[string]map[string]Term)
	for subjectKey, byPredicate := range b.spo {
		subject := b.subjects[subjectKey]
		frozen := make(map[string][]Term, len(byPredicate))
		for predicate, objects := range byPredicate {
			list := make([]Term, 0, len(objects))
			for objectKey, object := range objects {
				list = append(list, object)

				if pos[predicate] == nil {
					pos[predicate] = make(map[string]map[string]Term)
				}
				if pos[predicate][objectKey] == nil {
					pos[predicate][objectKey] = make(map[string]Term)
				}
				pos[predicate][objectKey][subjectKey] = subject
			}
			sortTerms(list)
			frozen[predicate] = list
		}
		s.spo[subjectKey] = frozen
	}

	for predicate, byObject := range pos {
		frozen := make(map[string][]Term, len(byObject))
		for objectKey, subjects := range byObject {
			list := make([]Term, 0, len(subjects))
			for _, subject := range subjects {
				list = append(list, subject)
			}
			sortTerms(list)
			frozen[objectKey] = list
		}
		s.pos[predicate] = frozen
	}

	b.spo = nil
	b.subjects = nil
	return s
}

// Store is an immutable, indexed set of triples.
//
// Every query returns terms sorted by lexical value, so any "first match"
// taken by a caller is deterministic across runs.
type Store struct {
	// subject key -> predicate IRI -> objects
	spo map[string]map[string][]Term
	// predicate IRI -> object key -> subjects
	pos   map[string]map[string][]Term
	count int
}

// Empty returns a store with no triples.
func Empty() *Store {
	return NewBuilder().Build()
}

// Len returns the number of triples in the store.
func (s *Store) Len() int {
	return s.count
}

// Objects returns the objects of all triples with the given IRI subject and
// predicate. The returned slice must not be modified.
func (s *Store) Objects(subject, predicate string) []Term {
	return s.spo[IRI(subject).Key()][predicate]
}

// Subjects returns the subjects of all triples with the given predicate and
// object. The returned slice must not be modified.
func (s *Store) Subjects(predicate string, object Term) []Term {
	return s.pos[predicate][object.Key()]
}

// Stats returns summary counts for the store.
func (s *Store) Stats() Stats {
	predicates := make(map[string]struct{})
	for _, byPredicate := range s.spo {
		for predicate := range byPredicate {
			predicates[predicate] = struct{}{}
		}
	}
	return Stats{
		TotalTriples:     s.count,
		UniqueSubjects:   len(s.spo),
		UniquePredicates: len(predicates),
	}
}

// iriTargets keeps only IRI-typed terms and returns their values.
// Blank nodes and literals are dropped silently.
func iriTargets(terms []Term) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		if t.IsIRI() {
			out = append(out, t.Value)
		}
	}
	return out
}

func sortTerms(terms []Term) {
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Value != terms[j].Value {
			return terms[i].Value < terms[j].Value
		}
		return terms[i].Key() < terms[j].Key()
	})
}
