package serialize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMermaid(t *testing.T) {
	g := Graph{
		Nodes: []Node{
			{ID: "n1", Data: &NodeData{Label: "Person1"}},
			{ID: "n2", Data: &NodeData{Label: "Person2"}},
			{ID: "anchor-name", Data: &NodeData{Label: "name"}},
			{ID: "n3", Label: "Organization"},
		},
		Edges: []Edge{
			{Source: "n1", Target: "n3", Data: &EdgeData{Label: "member of"}},
			{Source: "n2", Target: "n3", PropertyLabel: "works for"},
			{Source: "n2", Target: "n1"},
			{Source: "anchor-name", Target: "n1"},
		},
		HeaderLinks: []HeaderLink{
			{Header: "first name", Target: "n1", PropertyLabel: "has name"},
			{Header: "org:id", NodeID: "n3", Property: &PropertyRef{Label: "identified by"}},
			{Header: "ignored", Target: "anchor-name"},
		},
	}

	want := strings.Join([]string{
		"graph TD",
		`    PER1["Person1"]`,
		`    PER2["Person2"]`,
		`    ORG1["Organization"]`,
		`    FIRST_NAME_COL["Column: first name<br/>Type: Person1"]`,
		`    FIRST_NAME_COL -->|has name| PER1`,
		`    ORGID_COL["Column: org:id<br/>Type: Organization"]`,
		`    ORGID_COL -->|identified by| ORG1`,
		`    PER1 -->|member of| ORG1`,
		`    PER2 -->|works for| ORG1`,
		`    PER2 -->|related to| PER1`,
	}, "\n")

	assert.Equal(t, want, Mermaid(g))
}

func TestMermaidEmptyGraph(t *testing.T) {
	assert.Equal(t, "graph TD", Mermaid(Graph{}))
}

func TestLabelPrefix(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"Person", "PER"},
		{"a-b c", "ABC"},
		{"x1", "X1"},
		{"été", "ÉTÉ"},
		{"---", placeholderPrefix},
		{"", placeholderPrefix},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, labelPrefix(tt.label))
		})
	}
}

func TestMermaidPlaceholderIDs(t *testing.T) {
	g := Graph{
		Nodes: []Node{
			{ID: "!!", Data: &NodeData{Label: "??"}},
			{ID: "##", Data: &NodeData{Label: "**"}},
		},
	}

	out := Mermaid(g)
	assert.Contains(t, out, `NODE1["??"]`)
	assert.Contains(t, out, `NODE2["**"]`)
}

func TestMermaidRepeatedNodeIDs(t *testing.T) {
	g := Graph{
		Nodes: []Node{
			{ID: "x", Label: "Person"},
			{ID: "x", Label: "Person"},
			{ID: "o", Label: "Organization"},
		},
		Edges: []Edge{{Source: "x", Target: "o", Label: "member of"}},
	}

	want := strings.Join([]string{
		"graph TD",
		`    PER1["Person"]`,
		`    PER2["Person"]`,
		`    ORG1["Organization"]`,
		`    PER2 -->|member of| ORG1`,
	}, "\n")

	assert.Equal(t, want, Mermaid(g))
}

func TestMermaidDefaultHeaderLabel(t *testing.T) {
	g := Graph{
		Nodes:       []Node{{ID: "n1", Label: "Thing"}},
		HeaderLinks: []HeaderLink{{Header: "col", Target: "n1"}},
	}

	assert.Contains(t, Mermaid(g), "    COL_COL -->|has semantic type| THI1")
}

func TestGeneratorRegistry(t *testing.T) {
	assert.Equal(t, []string{"mermaid", "r2rml", "rdf"}, Names())

	gen, ok := Lookup("rdf")
	assert.True(t, ok)
	assert.Equal(t, "rdf", gen.Name())
	assert.Equal(t, ContentTypeTurtle, gen.ContentType())
	assert.Equal(t, RDF(Graph{}), gen.Generate(Graph{}))

	gen, ok = Lookup("mermaid")
	assert.True(t, ok)
	assert.Equal(t, ContentTypeMermaid, gen.ContentType())

	_, ok = Lookup("owl")
	assert.False(t, ok)
}
