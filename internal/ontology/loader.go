package ontology

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/knakk/rdf"
	"github.com/piprate/json-gold/ld"
)

// Format identifies the serialization of an ontology source.
type Format string

const (
	FormatTurtle Format = "turtle"
	FormatNQuads Format = "nquads"
	FormatJSONLD Format = "jsonld"
)

// Source is one ontology document to load.
// An empty Format is detected from the file extension.
type Source struct {
	Path   string
	Format Format
}

// SourcesFromPaths builds sources with extension-based format detection.
func SourcesFromPaths(paths []string) []Source {
	sources := make([]Source, 0, len(paths))
	for _, p := range paths {
		sources = append(sources, Source{Path: p})
	}
	return sources
}

// DetectFormat maps a file extension to a Format.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttl", ".turtle":
		return FormatTurtle, nil
	case ".nt", ".nq":
		return FormatNQuads, nil
	case ".jsonld", ".json":
		return FormatJSONLD, nil
	default:
		return "", fmt.Errorf("unknown ontology format for %q", path)
	}
}

// SourceError records why a single source could not be loaded.
type SourceError struct {
	Source string
	Err    error
}

func (e SourceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e SourceError) Unwrap() error {
	return e.Err
}

// LoadError is returned by Load when one or more sources failed.
// The store returned alongside it still holds every source that parsed.
type LoadError struct {
	Failures []SourceError
}

func (e *LoadError) Error() string {
	msgs := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		msgs = append(msgs, f.Error())
	}
	return fmt.Sprintf("failed to load %d ontology source(s): %s", len(e.Failures), strings.Join(msgs, "; "))
}

func (e *LoadError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures))
	for _, f := range e.Failures {
		errs = append(errs, f)
	}
	return errs
}

// Load parses every source into a single store.
//
// Loading is best-effort: a source that is missing or unparsable is logged
// and recorded in the returned *LoadError, and the remaining sources are
// still loaded. The returned store is never nil. Each source is parsed on
// its own and merged only when it parses completely, so a source that fails
// part way through contributes nothing.
func Load(ctx context.Context, sources []Source, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	b := NewBuilder()
	var loadErr *LoadError

	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return b.Build(), err
		}

		staged := NewBuilder()
		_, err := loadFile(staged, src)
		if err != nil {
			logger.Warn("failed to load ontology source", "source", src.Path, "error", err)
			if loadErr == nil {
				loadErr = &LoadError{}
			}
			loadErr.Failures = append(loadErr.Failures, SourceError{Source: src.Path, Err: err})
			continue
		}
		added := b.Merge(staged)
		logger.Info("ontology source loaded", "source", src.Path, "triples", added)
	}

	store := b.Build()
	logger.Info("ontology store ready", "triples", store.Len(), "sources", len(sources))

	if loadErr != nil {
		return store, loadErr
	}
	return store, nil
}

func loadFile(b *Builder, src Source) (int, error) {
	format := src.Format
	if format == "" {
		detected, err := DetectFormat(src.Path)
		if err != nil {
			return 0, err
		}
		format = detected
	}

	f, err := os.Open(src.Path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	return LoadReader(b, f, format)
}

// LoadReader parses one document from r into b and returns the number of
// new triples added.
func LoadReader(b *Builder, r io.Reader, format Format) (int, error) {
	switch format {
	case FormatTurtle:
		return loadTurtle(b, r)
	case FormatNQuads:
		data, err := io.ReadAll(r)
		if err != nil {
			return 0, err
		}
		dataset, err := ld.ParseNQuads(string(data))
		if err != nil {
			return 0, fmt.Errorf("parse n-quads: %w", err)
		}
		return addDataset(b, dataset), nil
	case FormatJSONLD:
		return loadJSONLD(b, r)
	default:
		return 0, fmt.Errorf("unsupported ontology format %q", format)
	}
}

func loadTurtle(b *Builder, r io.Reader) (int, error) {
	dec := rdf.NewTripleDecoder(r, rdf.Turtle)
	added := 0
	for {
		tr, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			return added, nil
		}
		if err != nil {
			return added, fmt.Errorf("parse turtle: %w", err)
		}
		if b.Add(Triple{
			Subject:   fromRDFTerm(tr.Subj),
			Predicate: fromRDFTerm(tr.Pred),
			Object:    fromRDFTerm(tr.Obj),
		}) {
			added++
		}
	}
}

func fromRDFTerm(t rdf.Term) Term {
	switch t.Type() {
	case rdf.TermIRI:
		return IRI(t.String())
	case rdf.TermBlank:
		return Blank(t.String())
	default:
		term := Literal(t.String())
		if lit, ok := t.(rdf.Literal); ok {
			term.Lang = lit.Lang()
			term.Datatype = literalDatatype(term.Lang, lit.DataType.String())
		}
		return term
	}
}

func loadJSONLD(b *Builder, r io.Reader) (int, error) {
	var doc interface{}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return 0, fmt.Errorf("parse json-ld: %w", err)
	}

	proc := ld.NewJsonLdProcessor()
	opts := ld.NewJsonLdOptions("")
	out, err := proc.ToRDF(doc, opts)
	if err != nil {
		return 0, fmt.Errorf("convert json-ld to rdf: %w", err)
	}

	dataset, ok := out.(*ld.RDFDataset)
	if !ok {
		return 0, fmt.Errorf("convert json-ld to rdf: unexpected result %T", out)
	}
	return addDataset(b, dataset), nil
}

// addDataset flattens every named graph of the dataset into the builder.
func addDataset(b *Builder, dataset *ld.RDFDataset) int {
	added := 0
	for _, quads := range dataset.Graphs {
		for _, q := range quads {
			if b.Add(Triple{
				Subject:   fromLDNode(q.Subject),
				Predicate: fromLDNode(q.Predicate),
				Object:    fromLDNode(q.Object),
			}) {
				added++
			}
		}
	}
	return added
}

func fromLDNode(n ld.Node) Term {
	switch v := n.(type) {
	case *ld.IRI:
		return IRI(v.Value)
	case *ld.BlankNode:
		return Blank(v.Attribute)
	case *ld.Literal:
		term := Literal(v.Value)
		term.Lang = v.Language
		term.Datatype = literalDatatype(v.Language, v.Datatype)
		return term
	default:
		return Term{}
	}
}

const (
	xsdString     = "http://www.w3.org/2001/XMLSchema#string"
	rdfLangString = "http://www.w3.org/1999/02/22-rdf-syntax-ns#langString"
)

// literalDatatype drops the implicit datatypes so the same literal read from
// Turtle and from JSON-LD has the same identity in the store.
func literalDatatype(lang, datatype string) string {
	if lang != "" || datatype == xsdString || datatype == rdfLangString {
		return ""
	}
	return datatype
}
