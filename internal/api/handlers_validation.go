package api

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"evalgo.org/ontomapper/internal/validation"
)

// validateProperty handles POST /validate_property.
// Only the presence of a property is checked; domain and range are logged.
func (s *Server) validateProperty(c echo.Context) error {
	var req validation.PropertyRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return BadRequestError("Invalid JSON body", err.Error())
	}

	result := s.validator.ValidateProperty(req)
	s.logger.Debug("validate property",
		"property", req.Property,
		"domain", req.Domain,
		"range", req.Range,
		"valid", result.Valid,
	)

	return c.JSON(http.StatusOK, ValidPropertyResponse{Valid: result.Valid})
}
