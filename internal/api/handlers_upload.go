package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"evalgo.org/ontomapper/internal/storage"
)

// upload handles POST /upload with a multipart "file" field.
// JSON-LD uploads are checked with json-gold; problems are returned as
// warnings and never block staging.
func (s *Server) upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return BadRequestError("file field required", err.Error())
	}

	src, err := fh.Open()
	if err != nil {
		return InternalError("failed to open upload", err.Error())
	}
	defer src.Close()

	var resp MessageResponse
	var body io.Reader = src

	if isJSONLD(fh.Filename) {
		data, err := io.ReadAll(src)
		if err != nil {
			return InternalError("failed to read upload", err.Error())
		}
		if result := s.validator.ValidateJSONLD(data); !result.Valid {
			resp.Warnings = result.Errors
			s.logger.Warn("uploaded JSON-LD did not validate", "file", fh.Filename, "errors", len(result.Errors))
		}
		body = bytes.NewReader(data)
	}

	name, _, err := s.uploads.Save(fh.Filename, body)
	if errors.Is(err, storage.ErrInvalidName) {
		return BadRequestError("invalid file name", err.Error())
	}
	if err != nil {
		return InternalError("failed to store upload", err.Error())
	}

	resp.Message = fmt.Sprintf("%s received", name)
	return c.JSON(http.StatusOK, resp)
}

func isJSONLD(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".jsonld")
}
