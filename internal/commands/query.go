package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"evalgo.org/ontomapper/internal/ontology"
)

var queryFormat string

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query the loaded ontology",
	Long:  `Run the same lookups the HTTP API serves, directly against the configured ontology sources.`,
}

var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "List every owl:Class with its first parent",
	Long: `List classes.

Examples:
  ontomapper query classes
  ontomapper query classes --format json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCatalog(cmd, func(c *ontology.Catalog) error {
			return writeEntries(cmd.OutOrStdout(), c.Classes(), queryFormat)
		})
	},
}

var objectPropertiesCmd = &cobra.Command{
	Use:   "object-properties",
	Short: "List every owl:ObjectProperty with its first parent property",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCatalog(cmd, func(c *ontology.Catalog) error {
			return writeEntries(cmd.OutOrStdout(), c.ObjectProperties(), queryFormat)
		})
	},
}

var dataPropertiesCmd = &cobra.Command{
	Use:   "data-properties",
	Short: "List every owl:DatatypeProperty with domain and range",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCatalog(cmd, func(c *ontology.Catalog) error {
			return writeDataProperties(cmd.OutOrStdout(), c.DataProperties(), queryFormat)
		})
	},
}

var classCmd = &cobra.Command{
	Use:   "class [uri]",
	Short: "Show the details of a class",
	Long: `Show label, definition, parents, equivalent and disjoint classes.

Examples:
  ontomapper query class http://purl.obolibrary.org/obo/BFO_0000040`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := queryStore(cmd)
		if err != nil {
			return err
		}
		res := ontology.FetchClassDetails(store, args[0])
		if !res.OK() {
			return res.Err
		}
		return writeClassDetails(cmd.OutOrStdout(), res.Value, queryFormat)
	},
}

var propertyCmd = &cobra.Command{
	Use:   "property [uri]",
	Short: "Show the details of a property",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := queryStore(cmd)
		if err != nil {
			return err
		}
		res := ontology.FetchPropertyDetails(store, args[0])
		if !res.OK() {
			return res.Err
		}
		return writePropertyDetails(cmd.OutOrStdout(), res.Value, queryFormat)
	},
}

var searchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Search class labels",
	Long: `Case-insensitive substring search over class labels.

Examples:
  ontomapper query search person
  ontomapper query search "" --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := queryStore(cmd)
		if err != nil {
			return err
		}
		term := ""
		if len(args) == 1 {
			term = args[0]
		}
		return writeRefs(cmd.OutOrStdout(), ontology.Search(store, term), queryFormat)
	},
}

func init() {
	queryCmd.AddCommand(classesCmd)
	queryCmd.AddCommand(objectPropertiesCmd)
	queryCmd.AddCommand(dataPropertiesCmd)
	queryCmd.AddCommand(classCmd)
	queryCmd.AddCommand(propertyCmd)
	queryCmd.AddCommand(searchCmd)

	queryCmd.PersistentFlags().StringVar(&queryFormat, "format", "table", "output format (table, json)")
}

func queryStore(cmd *cobra.Command) (*ontology.Store, error) {
	if queryFormat != "table" && queryFormat != "json" {
		return nil, fmt.Errorf("unknown format: %s (use 'table' or 'json')", queryFormat)
	}
	store, _, err := loadOntology(cmd.Context())
	return store, err
}

func withCatalog(cmd *cobra.Command, fn func(*ontology.Catalog) error) error {
	store, err := queryStore(cmd)
	if err != nil {
		return err
	}
	return fn(ontology.NewCatalog(store, logger))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeEntries(w io.Writer, entries []ontology.CatalogEntry, format string) error {
	if format == "json" {
		return writeJSON(w, entries)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LABEL\tURI\tPARENT")
	for _, e := range entries {
		parent := "-"
		if e.Parent != nil {
			parent = *e.Parent
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Label, e.URI, parent)
	}
	fmt.Fprintf(tw, "\nTotal: %d\n", len(entries))
	return tw.Flush()
}

func writeDataProperties(w io.Writer, entries []ontology.DataPropertyEntry, format string) error {
	if format == "json" {
		return writeJSON(w, entries)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LABEL\tURI\tDOMAIN\tRANGE")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Label, e.URI, joinOrDash(e.Domain), joinOrDash(e.Range))
	}
	fmt.Fprintf(tw, "\nTotal: %d\n", len(entries))
	return tw.Flush()
}

func writeRefs(w io.Writer, refs []ontology.Ref, format string) error {
	if format == "json" {
		return writeJSON(w, refs)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LABEL\tURI")
	for _, r := range refs {
		fmt.Fprintf(tw, "%s\t%s\n", r.Label, r.URI)
	}
	fmt.Fprintf(tw, "\nTotal: %d\n", len(refs))
	return tw.Flush()
}

func writeClassDetails(w io.Writer, d ontology.ClassDetails, format string) error {
	if format == "json" {
		return writeJSON(w, d)
	}

	writeHeader(w, d.URI, d.Label, d.Definition)
	writeRefList(w, "Parents", d.Parents)
	writeRefList(w, "Equivalent classes", d.EquivalentClasses)
	writeRefList(w, "Disjoint with", d.DisjointWith)
	return nil
}

func writePropertyDetails(w io.Writer, d ontology.PropertyDetails, format string) error {
	if format == "json" {
		return writeJSON(w, d)
	}

	writeHeader(w, d.URI, d.Label, d.Definition)
	writeRefList(w, "Domain", d.Domain)
	writeRefList(w, "Range", d.Range)
	writeRefList(w, "Inverse", d.Inverse)
	return nil
}

func writeHeader(w io.Writer, uri string, label, definition *string) {
	fmt.Fprintf(w, "URI:        %s\n", uri)
	fmt.Fprintf(w, "Label:      %s\n", valueOrDash(label))
	fmt.Fprintf(w, "Definition: %s\n", valueOrDash(definition))
}

func writeRefList(w io.Writer, title string, refs []ontology.Ref) {
	fmt.Fprintf(w, "\n%s (%d):\n", title, len(refs))
	for _, r := range refs {
		fmt.Fprintf(w, "  - %s <%s>\n", r.Label, r.URI)
	}
}

func valueOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func joinOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ", ")
}
