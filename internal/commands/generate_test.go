package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testGraph = `{
  "nodes": [
    {"id": "n1", "data": {"label": "Person", "uri": "http://ex.org/onto#Person"}},
    {"id": "n2", "data": {"label": "Organization"}}
  ],
  "edges": [
    {"id": "e1", "source": "n1", "target": "n2", "data": {"label": "member of"}}
  ],
  "headerLinks": [
    {"id": "h1", "header": "name", "target": "n1"}
  ]
}`

func TestGenerateMermaidFromFile(t *testing.T) {
	path := writeTempFile(t, "graph.json", testGraph)
	cmd, out := newTestCommand("")

	require.NoError(t, runGenerate(cmd, []string{"mermaid", path}))

	got := out.String()
	assert.Contains(t, got, "graph TD\n")
	assert.Contains(t, got, `    PER1["Person"]`)
	assert.Contains(t, got, `    PER1 -->|member of| ORG1`)
	assert.Contains(t, got, `    NAME_COL -->|has semantic type| PER1`)
}

func TestGenerateR2RMLFromStdin(t *testing.T) {
	cmd, out := newTestCommand(testGraph)

	require.NoError(t, runGenerate(cmd, []string{"r2rml", "-"}))

	got := out.String()
	assert.Contains(t, got, "ex:TriplesMap_n1 a rr:TriplesMap ;")
	assert.Contains(t, got, "rr:class <http://ex.org/onto#Person> ] .")
	assert.Contains(t, got, "rr:class <http://example.org/Organization> ] .")
	assert.Contains(t, got, "# Relationship between n1 and n2")
	assert.Contains(t, got, "# Header link: name")
}

func TestGenerateRDF(t *testing.T) {
	cmd, out := newTestCommand(testGraph)

	require.NoError(t, runGenerate(cmd, []string{"rdf", "-"}))
	assert.Contains(t, out.String(), "@prefix")
}

func TestGenerateUnknownFormat(t *testing.T) {
	cmd, _ := newTestCommand(testGraph)

	err := runGenerate(cmd, []string{"owl", "-"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format: owl")
	assert.Contains(t, err.Error(), "mermaid, r2rml, rdf")
}

func TestGenerateRejectsNodeWithoutID(t *testing.T) {
	cmd, out := newTestCommand(`{"nodes":[{"id":"n1"},{"label":"orphan"}]}`)

	err := runGenerate(cmd, []string{"r2rml", "-"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nodes[1].id")
	assert.Empty(t, out.String())
}

func TestGenerateMalformedJSON(t *testing.T) {
	cmd, _ := newTestCommand(`{"nodes": [`)

	err := runGenerate(cmd, []string{"mermaid", "-"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse graph")
}

func TestGenerateMissingFile(t *testing.T) {
	cmd, _ := newTestCommand("")

	err := runGenerate(cmd, []string{"mermaid", "does-not-exist.json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read graph")
}
