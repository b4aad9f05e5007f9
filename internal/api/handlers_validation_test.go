package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateProperty(t *testing.T) {
	s := newTestServer(t, nil)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "property with domain and range",
			body:       `{"property": "http://ex.org/onto#hasMember", "domain": "http://ex.org/onto#Organization", "range": "http://ex.org/onto#Person"}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"valid": true}`,
		},
		{
			name:       "empty range",
			body:       `{"property": "http://ex.org/onto#hasMember", "domain": "http://www.w3.org/2000/01/rdf-schema#Resource", "range": ""}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"valid": true}`,
		},
		{
			name:       "missing property",
			body:       `{"domain": "http://ex.org/onto#Organization"}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"valid": false}`,
		},
		{
			name:       "empty property",
			body:       `{"property": ""}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"valid": false}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(s, http.MethodPost, "/validate_property", strings.NewReader(tt.body), "application/json")
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestValidateProperty_MalformedBody(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doRequest(s, http.MethodPost, "/validate_property", strings.NewReader(`not json`), "application/json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":"Invalid JSON body"`)
}
