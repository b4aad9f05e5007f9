package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"evalgo.org/ontomapper/internal/serialize"
	"evalgo.org/ontomapper/internal/validation"
)

var generateCmd = &cobra.Command{
	Use:   "generate [format] [graph.json]",
	Short: "Generate R2RML, RDF or Mermaid from a saved graph",
	Long: `Render a graph exported from the editor ({nodes, edges, headerLinks}).
Use "-" to read the graph from stdin.

Examples:
  ontomapper generate r2rml mapping.json > mapping.ttl
  ontomapper generate mermaid mapping.json
  cat mapping.json | ontomapper generate rdf -`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: serialize.Names(),
	RunE:      runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	gen, ok := serialize.Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown format: %s (use one of: %s)", args[0], strings.Join(serialize.Names(), ", "))
	}

	g, err := readGraph(cmd.InOrStdin(), args[1])
	if err != nil {
		return err
	}
	if err := validation.New().ValidateGraph(g); err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), gen.Generate(g))
	return err
}

// readGraph decodes a graph from path, or from stdin when path is "-".
func readGraph(stdin io.Reader, path string) (serialize.Graph, error) {
	var g serialize.Graph

	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return g, fmt.Errorf("failed to read graph: %w", err)
		}
		defer f.Close()
		r = f
	}

	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return g, fmt.Errorf("failed to parse graph %s: %w", path, err)
	}
	return g, nil
}
