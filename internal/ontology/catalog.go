package ontology

import "log/slog"

// Ref is a reference to an entity together with its resolved label.
type Ref struct {
	URI   string `json:"uri"`
	Label string `json:"label"`
}

// CatalogEntry is one row of a class or property listing.
// Parent holds only the first IRI-typed subsumption target found.
type CatalogEntry struct {
	URI    string  `json:"uri"`
	Label  string  `json:"label"`
	Parent *string `json:"parent"`
}

// DataPropertyEntry is a data property listing row with its full
// domain and range IRI lists.
type DataPropertyEntry struct {
	CatalogEntry
	Domain []string `json:"domain"`
	Range  []string `json:"range"`
}

// Catalog lists typed entities of a store.
type Catalog struct {
	store  *Store
	logger *slog.Logger
}

// NewCatalog returns a catalog over s. A nil logger uses slog.Default.
func NewCatalog(s *Store, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{store: s, logger: logger}
}

// Classes lists every owl:Class with an IRI.
func (c *Catalog) Classes() []CatalogEntry {
	entries := c.list(OWLClass, RDFSSubClassOf)
	c.logSummary("classes", entries)
	return entries
}

// ObjectProperties lists every owl:ObjectProperty with an IRI.
func (c *Catalog) ObjectProperties() []CatalogEntry {
	entries := c.list(OWLObjectProperty, RDFSSubPropertyOf)
	c.logSummary("object properties", entries)
	return entries
}

// DataProperties lists every owl:DatatypeProperty with an IRI, including
// the IRI-typed domain and range targets.
func (c *Catalog) DataProperties() []DataPropertyEntry {
	entries := c.list(OWLDatatypeProperty, RDFSSubPropertyOf)
	c.logSummary("data properties", entries)

	out := make([]DataPropertyEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, DataPropertyEntry{
			CatalogEntry: e,
			Domain:       iriTargets(c.store.Objects(e.URI, RDFSDomain)),
			Range:        iriTargets(c.store.Objects(e.URI, RDFSRange)),
		})
	}
	return out
}

func (c *Catalog) list(typeIRI, parentPredicate string) []CatalogEntry {
	subjects := iriTargets(c.store.Subjects(RDFType, IRI(typeIRI)))
	entries := make([]CatalogEntry, 0, len(subjects))
	for _, uri := range subjects {
		entry := CatalogEntry{
			URI:   uri,
			Label: ResolveLabel(c.store, uri),
		}
		if parents := iriTargets(c.store.Objects(uri, parentPredicate)); len(parents) > 0 {
			parent := parents[0]
			entry.Parent = &parent
		}
		entries = append(entries, entry)
	}
	return entries
}

func (c *Catalog) logSummary(kind string, entries []CatalogEntry) {
	withParent := 0
	var sample *CatalogEntry
	for i := range entries {
		if entries[i].Parent != nil {
			withParent++
			if sample == nil {
				sample = &entries[i]
			}
		}
	}

	attrs := []any{"kind", kind, "total", len(entries), "with_parent", withParent}
	if sample != nil {
		attrs = append(attrs, "sample", sample.Label+" -> "+*sample.Parent)
	}
	c.logger.Info("catalog listed", attrs...)
}
