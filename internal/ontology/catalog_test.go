package ontology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryByURI[T interface{ entryURI() string }](entries []T, uri string) (T, bool) {
	for _, e := range entries {
		if e.entryURI() == uri {
			return e, true
		}
	}
	var zero T
	return zero, false
}

func (e CatalogEntry) entryURI() string      { return e.URI }
func (e DataPropertyEntry) entryURI() string { return e.URI }

func TestCatalog_Classes(t *testing.T) {
	catalog := NewCatalog(loadFixture(t), discardLogger())
	classes := catalog.Classes()

	require.Len(t, classes, 5)
	assert.Equal(t, "http://ex.org/onto#Agent", classes[0].URI, "entries follow IRI order")

	person, ok := entryByURI(classes, "http://ex.org/onto#Person")
	require.True(t, ok)
	assert.Equal(t, "Person", person.Label)
	require.NotNil(t, person.Parent)
	assert.Equal(t, "http://ex.org/onto#Agent", *person.Parent, "only the first parent is kept")

	human, ok := entryByURI(classes, "http://ex.org/onto#Human")
	require.True(t, ok)
	assert.Equal(t, "Human", human.Label)
	assert.Nil(t, human.Parent)
}

func TestCatalog_SkipsBlankParentsAndSubjects(t *testing.T) {
	b := NewBuilder()
	b.Add(Triple{Subject: IRI("http://x/A"), Predicate: IRI(RDFType), Object: IRI(OWLClass)})
	b.Add(Triple{Subject: IRI("http://x/A"), Predicate: IRI(RDFSSubClassOf), Object: Blank("restriction")})
	b.Add(Triple{Subject: Blank("anon"), Predicate: IRI(RDFType), Object: IRI(OWLClass)})
	catalog := NewCatalog(b.Build(), discardLogger())

	classes := catalog.Classes()
	require.Len(t, classes, 1)
	assert.Equal(t, "http://x/A", classes[0].URI)
	assert.Nil(t, classes[0].Parent)
}

func TestCatalog_ObjectProperties(t *testing.T) {
	catalog := NewCatalog(loadFixture(t), discardLogger())
	props := catalog.ObjectProperties()

	require.Len(t, props, 3)
	memberOf, ok := entryByURI(props, "http://ex.org/onto#memberOf")
	require.True(t, ok)
	assert.Equal(t, "member of", memberOf.Label)
	require.NotNil(t, memberOf.Parent)
	assert.Equal(t, "http://ex.org/onto#relatedTo", *memberOf.Parent)

	relatedTo, ok := entryByURI(props, "http://ex.org/onto#relatedTo")
	require.True(t, ok)
	assert.Equal(t, "relatedTo", relatedTo.Label)
}

func TestCatalog_DataProperties(t *testing.T) {
	catalog := NewCatalog(loadFixture(t), discardLogger())
	props := catalog.DataProperties()

	require.Len(t, props, 1)
	hasName := props[0]
	assert.Equal(t, "has name", hasName.Label)
	assert.Nil(t, hasName.Parent)
	assert.Equal(t, []string{"http://ex.org/onto#Person"}, hasName.Domain)
	assert.Equal(t, []string{"http://www.w3.org/2001/XMLSchema#string"}, hasName.Range)
}

func TestCatalog_EmptyStore(t *testing.T) {
	catalog := NewCatalog(Empty(), nil)

	assert.NotNil(t, catalog.Classes())
	assert.Empty(t, catalog.Classes())
	assert.Empty(t, catalog.ObjectProperties())
	assert.Empty(t, catalog.DataProperties())
}

func TestCatalog_EmptyLabelFallsBackToLocalName(t *testing.T) {
	b := NewBuilder()
	b.Add(Triple{Subject: IRI("http://x/Foo"), Predicate: IRI(RDFType), Object: IRI(OWLClass)})
	b.Add(Triple{Subject: IRI("http://x/Foo"), Predicate: IRI(RDFSLabel), Object: Literal("")})
	catalog := NewCatalog(b.Build(), discardLogger())

	classes := catalog.Classes()
	require.Len(t, classes, 1)
	assert.Equal(t, "Foo", classes[0].Label)
}
