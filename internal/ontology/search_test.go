package ontology

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_CaseInsensitive(t *testing.T) {
	store := loadFixture(t)

	results := Search(store, "person")
	require.Len(t, results, 1)
	assert.Equal(t, Ref{URI: "http://ex.org/onto#Person", Label: "Person"}, results[0])

	results = Search(store, "AN")
	assert.Equal(t, []Ref{
		{URI: "http://ex.org/onto#Organization", Label: "Organization"},
	}, results)
}

func TestSearch_EmptyTermMatchesLabelledClasses(t *testing.T) {
	results := Search(loadFixture(t), "")

	// Human has no label and is skipped.
	assert.Len(t, results, 4)
	for _, r := range results {
		assert.NotEqual(t, "http://ex.org/onto#Human", r.URI)
	}
}

func TestSearch_StopsAfterExceedingLimit(t *testing.T) {
	b := NewBuilder()
	for i := 0; i < 40; i++ {
		uri := fmt.Sprintf("http://x/C%02d", i)
		b.Add(Triple{Subject: IRI(uri), Predicate: IRI(RDFType), Object: IRI(OWLClass)})
		b.Add(Triple{Subject: IRI(uri), Predicate: IRI(RDFSLabel), Object: Literal(fmt.Sprintf("Class %d", i))})
	}
	store := b.Build()

	results := Search(store, "")
	assert.Len(t, results, searchLimit+1)
	assert.Equal(t, "http://x/C00", results[0].URI)

	assert.Len(t, Search(store, "class 3"), 11)
}

func TestSearch_NoMatches(t *testing.T) {
	results := Search(loadFixture(t), "zzz")
	assert.NotNil(t, results)
	assert.Empty(t, results)
}
