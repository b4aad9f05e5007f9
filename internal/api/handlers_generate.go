package api

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"evalgo.org/ontomapper/internal/serialize"
)

// decodeGraph reads a graph payload from the body whatever its
// Content-Type, then checks that every node has an id.
func (s *Server) decodeGraph(c echo.Context) (serialize.Graph, error) {
	var g serialize.Graph
	if err := json.NewDecoder(c.Request().Body).Decode(&g); err != nil {
		return g, BadRequestError("Invalid JSON body", err.Error())
	}
	if err := s.validator.ValidateGraph(g); err != nil {
		return g, BadRequestError("Invalid graph", err.Error())
	}
	return g, nil
}

// generateDocument renders the graph with the named generator as plain text.
func (s *Server) generateDocument(c echo.Context, name string) error {
	gen, ok := serialize.Lookup(name)
	if !ok {
		return InternalError("unknown generator "+name, "")
	}

	g, err := s.decodeGraph(c)
	if err != nil {
		return err
	}

	out := gen.Generate(g)
	if s.metrics != nil {
		s.metrics.ObserveDocument(name)
	}
	s.logger.Debug("document generated", "format", name, "nodes", len(g.Nodes), "edges", len(g.Edges))

	return c.Blob(http.StatusOK, gen.ContentType(), []byte(out))
}

func (s *Server) generateR2RML(c echo.Context) error {
	return s.generateDocument(c, "r2rml")
}

func (s *Server) generateRDF(c echo.Context) error {
	return s.generateDocument(c, "rdf")
}

// generateMermaid returns the flowchart wrapped in JSON for the editor's preview pane.
func (s *Server) generateMermaid(c echo.Context) error {
	g, err := s.decodeGraph(c)
	if err != nil {
		return err
	}

	out := serialize.Mermaid(g)
	if s.metrics != nil {
		s.metrics.ObserveDocument("mermaid")
	}

	return c.JSON(http.StatusOK, MermaidResponse{Mermaid: out, Success: true})
}
