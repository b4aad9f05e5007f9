package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"evalgo.org/ontomapper/internal/ontology"
)

// listClasses returns every owl:Class with its first parent.
func (s *Server) listClasses(c echo.Context) error {
	return c.JSON(http.StatusOK, s.catalog.Classes())
}

// listObjectProperties returns every owl:ObjectProperty with its first parent property.
func (s *Server) listObjectProperties(c echo.Context) error {
	return c.JSON(http.StatusOK, s.catalog.ObjectProperties())
}

// listDataProperties returns every owl:DatatypeProperty with domain and range IRIs.
func (s *Server) listDataProperties(c echo.Context) error {
	return c.JSON(http.StatusOK, s.catalog.DataProperties())
}

// classDetails handles GET /class_details?uri=...
func (s *Server) classDetails(c echo.Context) error {
	uri := c.QueryParam("uri")
	if uri == "" {
		return BadRequestError("URI parameter required", "")
	}

	s.logger.Debug("class details requested", "uri", uri)
	return detailResponse(c, ontology.FetchClassDetails(s.store, uri))
}

// propertyDetails handles GET /property_details?uri=...
func (s *Server) propertyDetails(c echo.Context) error {
	uri := c.QueryParam("uri")
	if uri == "" {
		return BadRequestError("URI parameter required", "")
	}

	s.logger.Debug("property details requested", "uri", uri)
	return detailResponse(c, ontology.FetchPropertyDetails(s.store, uri))
}

// ontologySearch handles GET /ontology_search?term=...
// An empty term matches every labelled class, subject to the result cap.
func (s *Server) ontologySearch(c echo.Context) error {
	return c.JSON(http.StatusOK, ontology.Search(s.store, c.QueryParam("term")))
}

// detailResponse maps a lookup result to HTTP. Both failure kinds are
// reported as 500 with the underlying message.
func detailResponse[T any](c echo.Context, res ontology.Result[T]) error {
	if res.OK() {
		return c.JSON(http.StatusOK, res.Value)
	}
	return InternalError(res.Err.Error(), "")
}
