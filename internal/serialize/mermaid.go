package serialize

import (
	"fmt"
	"strings"
	"unicode"
)

// AnchorPrefix marks layout-only nodes that are left out of diagrams.
const AnchorPrefix = "anchor-"

const placeholderPrefix = "NODE"

// Mermaid renders a "graph TD" flowchart. Every non-anchor node gets an id
// built from the first three alphanumerics of its label plus a per-prefix
// counter; header links become column nodes pointing at their target, and
// edges become labelled arrows. Links to nodes without an id are skipped.
func Mermaid(g Graph) string {
	lines := []string{"graph TD"}
	nodeIDs, ids := mermaidIDs(g.Nodes)

	for i, n := range g.Nodes {
		if nodeIDs[i] == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf(`    %s["%s"]`, nodeIDs[i], n.displayLabel()))
	}

	for _, h := range g.HeaderLinks {
		targetID, ok := ids[h.TargetID()]
		if !ok {
			continue
		}
		targetLabel := "Unknown"
		if target, found := g.nodeByID(h.TargetID()); found {
			targetLabel = target.displayLabel()
		}

		colID := columnID(h.Header)
		lines = append(lines,
			fmt.Sprintf(`    %s["Column: %s<br/>Type: %s"]`, colID, h.Header, targetLabel),
			fmt.Sprintf("    %s -->|%s| %s", colID, h.displayLabel(), targetID),
		)
	}

	for _, e := range g.Edges {
		sourceID, ok := ids[e.Source]
		if !ok {
			continue
		}
		targetID, ok := ids[e.Target]
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("    %s -->|%s| %s", sourceID, e.displayLabel(), targetID))
	}

	return strings.Join(lines, "\n")
}

// mermaidIDs assigns a unique diagram id to every non-anchor node, in input
// order. nodeIDs is aligned with nodes ("" for anchors); byID resolves links
// and keeps the last id assigned when graph node ids repeat.
func mermaidIDs(nodes []Node) (nodeIDs []string, byID map[string]string) {
	counts := make(map[string]int)
	nodeIDs = make([]string, len(nodes))
	byID = make(map[string]string, len(nodes))
	for i, n := range nodes {
		if strings.HasPrefix(n.ID, AnchorPrefix) {
			continue
		}
		prefix := labelPrefix(n.displayLabel())
		counts[prefix]++
		nodeIDs[i] = fmt.Sprintf("%s%d", prefix, counts[prefix])
		byID[n.ID] = nodeIDs[i]
	}
	return nodeIDs, byID
}

// labelPrefix returns the first three letters or digits of label, upper-cased.
func labelPrefix(label string) string {
	var b strings.Builder
	n := 0
	for _, r := range label {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		b.WriteRune(r)
		n++
		if n == 3 {
			break
		}
	}
	if b.Len() == 0 {
		return placeholderPrefix
	}
	return strings.ToUpper(b.String())
}

func columnID(header string) string {
	id := strings.ReplaceAll(header, " ", "_")
	id = strings.ReplaceAll(id, ":", "")
	return strings.ToUpper(id) + "_COL"
}
