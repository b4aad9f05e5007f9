// Package serialize turns a user-authored node/edge graph into text: R2RML
// mappings, RDF/Turtle and Mermaid flowcharts.
//
// The generators are pure functions of the Graph payload. They never consult
// the ontology store and keep no state between calls.
package serialize

// Default IRIs used when a payload omits them.
const (
	// DefaultEdgeProperty is used for edges without a property URI.
	DefaultEdgeProperty = "http://www.w3.org/1999/02/22-rdf-syntax-ns#relatedTo"
	// DefaultHeaderProperty is used for header links without a property URI.
	DefaultHeaderProperty = "http://example.org/relatedTo"
	// ExampleBase prefixes generated resource IRIs.
	ExampleBase = "http://example.org/"
)

// Graph is the payload accepted by every generator.
type Graph struct {
	Nodes       []Node       `json:"nodes" validate:"dive"`
	Edges       []Edge       `json:"edges"`
	HeaderLinks []HeaderLink `json:"headerLinks"`
	// Mappings is accepted for compatibility with the editor and not interpreted.
	Mappings any `json:"mappings,omitempty"`
}

// Node is a class instance placed on the canvas. Editors that nest the
// display fields under "data" are accepted as well.
type Node struct {
	ID    string    `json:"id" validate:"required"`
	Label string    `json:"label,omitempty"`
	URI   string    `json:"uri,omitempty"`
	Data  *NodeData `json:"data,omitempty"`
}

// NodeData holds the nested display fields of a node.
type NodeData struct {
	Label string `json:"label,omitempty"`
	URI   string `json:"uri,omitempty"`
}

// Edge connects two nodes through an object property.
type Edge struct {
	ID            string    `json:"id,omitempty"`
	Source        string    `json:"source"`
	Target        string    `json:"target"`
	PropertyURI   string    `json:"propertyUri,omitempty"`
	PropertyLabel string    `json:"propertyLabel,omitempty"`
	Label         string    `json:"label,omitempty"`
	Data          *EdgeData `json:"data,omitempty"`
}

// EdgeData holds the nested display fields of an edge.
type EdgeData struct {
	Label         string `json:"label,omitempty"`
	PropertyURI   string `json:"propertyUri,omitempty"`
	PropertyLabel string `json:"propertyLabel,omitempty"`
}

// HeaderLink ties a CSV column header to a node.
// The target node may be given as "target" or "nodeId".
type HeaderLink struct {
	ID            string       `json:"id,omitempty"`
	Header        string       `json:"header"`
	Target        string       `json:"target,omitempty"`
	NodeID        string       `json:"nodeId,omitempty"`
	PropertyURI   string       `json:"propertyUri,omitempty"`
	PropertyLabel string       `json:"propertyLabel,omitempty"`
	Property      *PropertyRef `json:"property,omitempty"`
}

// PropertyRef is a property chosen for a header link.
type PropertyRef struct {
	URI   string `json:"uri,omitempty"`
	Label string `json:"label,omitempty"`
}

// label returns the node's own label, then the nested one, then its id.
func (n Node) label() string {
	return firstNonEmpty(n.Label, n.dataLabel(), n.ID)
}

// displayLabel prefers the nested label the way canvas editors store it.
func (n Node) displayLabel() string {
	return firstNonEmpty(n.dataLabel(), n.Label, n.ID, "Unknown")
}

func (n Node) dataLabel() string {
	if n.Data == nil {
		return ""
	}
	return n.Data.Label
}

func (n Node) uri() string {
	if n.URI != "" {
		return n.URI
	}
	if n.Data != nil {
		return n.Data.URI
	}
	return ""
}

func (e Edge) propertyURI() string {
	if e.PropertyURI != "" {
		return e.PropertyURI
	}
	if e.Data != nil && e.Data.PropertyURI != "" {
		return e.Data.PropertyURI
	}
	return DefaultEdgeProperty
}

func (e Edge) displayLabel() string {
	var dataLabel, dataPropertyLabel string
	if e.Data != nil {
		dataLabel, dataPropertyLabel = e.Data.Label, e.Data.PropertyLabel
	}
	return firstNonEmpty(dataLabel, e.Label, e.PropertyLabel, dataPropertyLabel, "related to")
}

// TargetID returns the node the header link points at.
func (h HeaderLink) TargetID() string {
	return firstNonEmpty(h.Target, h.NodeID)
}

func (h HeaderLink) propertyURI() string {
	if h.PropertyURI != "" {
		return h.PropertyURI
	}
	if h.Property != nil && h.Property.URI != "" {
		return h.Property.URI
	}
	return DefaultHeaderProperty
}

func (h HeaderLink) displayLabel() string {
	var propertyLabel string
	if h.Property != nil {
		propertyLabel = h.Property.Label
	}
	return firstNonEmpty(h.PropertyLabel, propertyLabel, "has semantic type")
}

// nodeByID returns the first node with the given id.
func (g Graph) nodeByID(id string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
