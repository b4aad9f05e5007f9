package ontology

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"bfo-core.ttl", FormatTurtle, false},
		{"ONTO.TURTLE", FormatTurtle, false},
		{"data.nt", FormatNQuads, false},
		{"data.nq", FormatNQuads, false},
		{"context.jsonld", FormatJSONLD, false},
		{"ontology.owl", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := DetectFormat(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_MergesSourcesWithSetSemantics(t *testing.T) {
	sources := SourcesFromPaths([]string{
		filepath.Join("testdata", "mini.ttl"),
		filepath.Join("testdata", "extra.nt"),
	})

	store, err := Load(context.Background(), sources, discardLogger())
	require.NoError(t, err)

	// extra.nt repeats the Person label, which must not be counted twice.
	assert.Equal(t, 35, store.Len())
	assert.Len(t, store.Objects("http://ex.org/onto#Person", RDFSLabel), 1)
	assert.Equal(t, "Robot", ResolveLabel(store, "http://ex.org/onto#Robot"))
}

func TestLoad_MissingSourceIsNotFatal(t *testing.T) {
	sources := SourcesFromPaths([]string{
		filepath.Join("testdata", "does-not-exist.ttl"),
		filepath.Join("testdata", "mini.ttl"),
	})

	store, err := Load(context.Background(), sources, discardLogger())
	require.Error(t, err)
	require.NotNil(t, store)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	require.Len(t, loadErr.Failures, 1)
	assert.Contains(t, loadErr.Failures[0].Source, "does-not-exist.ttl")
	assert.True(t, errors.Is(err, os.ErrNotExist))

	assert.Equal(t, 32, store.Len(), "sources after the failing one are still loaded")
}

func TestLoad_UnparsableSource(t *testing.T) {
	sources := SourcesFromPaths([]string{
		filepath.Join("testdata", "broken.ttl"),
		filepath.Join("testdata", "extra.nt"),
	})

	store, err := Load(context.Background(), sources, discardLogger())
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	require.Len(t, loadErr.Failures, 1)
	assert.Contains(t, err.Error(), "broken.ttl")
	assert.Equal(t, "Robot", ResolveLabel(store, "http://ex.org/onto#Robot"))
}

func TestLoad_PartialSourceContributesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.ttl")
	content := `@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .
<http://ex.org/onto#Partial> rdfs:label "Partial" .
<http://ex.org/onto#Broken> rdfs:label "never closed .
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	sources := SourcesFromPaths([]string{path, filepath.Join("testdata", "extra.nt")})
	store, err := Load(context.Background(), sources, discardLogger())
	require.Error(t, err)

	_, ok := RawLabel(store, "http://ex.org/onto#Partial")
	assert.False(t, ok)
	assert.Equal(t, "Robot", ResolveLabel(store, "http://ex.org/onto#Robot"))
}

func TestLoad_NoSources(t *testing.T) {
	store, err := Load(context.Background(), nil, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, 0, store.Len())
}

func TestLoad_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store, err := Load(ctx, SourcesFromPaths([]string{filepath.Join("testdata", "mini.ttl")}), discardLogger())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, store.Len())
}

func TestLoadReader_JSONLD(t *testing.T) {
	doc := `{
		"@context": {
			"rdfs": "http://www.w3.org/2000/01/rdf-schema#",
			"owl": "http://www.w3.org/2002/07/owl#"
		},
		"@id": "http://ex.org/onto#Vehicle",
		"@type": "owl:Class",
		"rdfs:label": "Vehicle",
		"rdfs:subClassOf": {"@id": "http://ex.org/onto#Entity"}
	}`

	b := NewBuilder()
	added, err := LoadReader(b, strings.NewReader(doc), FormatJSONLD)
	require.NoError(t, err)
	assert.Equal(t, 3, added)

	store := b.Build()
	assert.Equal(t, "Vehicle", ResolveLabel(store, "http://ex.org/onto#Vehicle"))
	assert.Equal(t, []string{"http://ex.org/onto#Entity"}, iriTargets(store.Objects("http://ex.org/onto#Vehicle", RDFSSubClassOf)))
}

func TestLoadReader_TurtleAndNQuadsAgreeOnLiterals(t *testing.T) {
	b := NewBuilder()
	_, err := LoadReader(b, strings.NewReader(`<http://x/a> <http://www.w3.org/2000/01/rdf-schema#label> "A" .`+"\n"), FormatTurtle)
	require.NoError(t, err)

	added, err := LoadReader(b, strings.NewReader(`<http://x/a> <http://www.w3.org/2000/01/rdf-schema#label> "A" .`+"\n"), FormatNQuads)
	require.NoError(t, err)
	assert.Equal(t, 0, added, "the same plain literal from both formats is one triple")
}

func TestLoadReader_UnsupportedFormat(t *testing.T) {
	_, err := LoadReader(NewBuilder(), strings.NewReader(""), Format("rdfxml"))
	assert.Error(t, err)
}

func TestLoadError_Message(t *testing.T) {
	err := &LoadError{Failures: []SourceError{
		{Source: "a.ttl", Err: errors.New("boom")},
		{Source: "b.ttl", Err: os.ErrNotExist},
	}}

	assert.Contains(t, err.Error(), "failed to load 2 ontology source(s)")
	assert.Contains(t, err.Error(), "a.ttl: boom")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
