package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"evalgo.org/ontomapper/internal/validation"
)

var (
	validateDomain string
	validateRange  string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate graphs, JSON-LD documents and property suggestions",
}

var validateGraphCmd = &cobra.Command{
	Use:   "graph [graph.json]",
	Short: "Check that a saved graph can be rendered",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := readGraph(cmd.InOrStdin(), args[0])
		if err != nil {
			return err
		}
		if err := validation.New().ValidateGraph(g); err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "✗ %v\n", err)
			return fmt.Errorf("validation failed")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Graph is valid (%d nodes, %d edges, %d header links)\n",
			len(g.Nodes), len(g.Edges), len(g.HeaderLinks))
		return nil
	},
}

var validateJSONLDCmd = &cobra.Command{
	Use:   "jsonld [file]",
	Short: "Check that a JSON-LD ontology document expands",
	Long: `Expand a JSON-LD document with json-gold before using it as an ontology source.

Examples:
  ontomapper validate jsonld extensions.jsonld`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
		return printResult(cmd.OutOrStdout(), validation.New().ValidateJSONLD(data))
	},
}

var validatePropertyCmd = &cobra.Command{
	Use:   "property [uri]",
	Short: "Check a property suggestion",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := validation.PropertyRequest{Domain: validateDomain, Range: validateRange}
		if len(args) == 1 {
			req.Property = args[0]
		}
		return printResult(cmd.OutOrStdout(), validation.New().ValidateProperty(req))
	},
}

func init() {
	validateCmd.AddCommand(validateGraphCmd)
	validateCmd.AddCommand(validateJSONLDCmd)
	validateCmd.AddCommand(validatePropertyCmd)

	validatePropertyCmd.Flags().StringVar(&validateDomain, "domain", "", "domain class URI")
	validatePropertyCmd.Flags().StringVar(&validateRange, "range", "", "range class URI")
}

func printResult(w io.Writer, result *validation.ValidationResult) error {
	if result.Valid {
		fmt.Fprintln(w, "✓ Document is valid")
		return nil
	}

	fmt.Fprintln(w, "✗ Validation failed:")
	for _, e := range result.Errors {
		if e.Value != nil && e.Value != "" {
			fmt.Fprintf(w, "  - %s: %s (value: %v)\n", e.Field, e.Message, e.Value)
		} else {
			fmt.Fprintf(w, "  - %s: %s\n", e.Field, e.Message)
		}
	}

	return fmt.Errorf("validation failed")
}
