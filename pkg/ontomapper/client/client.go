// Package client is a Go client for the ontomapper HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL is required")
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// Error is a non-2xx response from the server.
type Error struct {
	StatusCode int
	Message    string
	Details    string
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("ontomapper: HTTP %d: %s (%s)", e.StatusCode, e.Message, e.Details)
	}
	return fmt.Sprintf("ontomapper: HTTP %d: %s", e.StatusCode, e.Message)
}

type Ref struct {
	URI   string `json:"uri"`
	Label string `json:"label"`
}

type Entry struct {
	URI    string  `json:"uri"`
	Label  string  `json:"label"`
	Parent *string `json:"parent"`
}

type DataProperty struct {
	Entry
	Domain []string `json:"domain"`
	Range  []string `json:"range"`
}

type ClassDetails struct {
	URI               string  `json:"uri"`
	Label             *string `json:"label"`
	Definition        *string `json:"definition"`
	Parents           []Ref   `json:"parents"`
	EquivalentClasses []Ref   `json:"equivalentClasses"`
	DisjointWith      []Ref   `json:"disjointWith"`
}

type PropertyDetails struct {
	URI        string  `json:"uri"`
	Label      *string `json:"label"`
	Definition *string `json:"definition"`
	Domain     []Ref   `json:"domain"`
	Range      []Ref   `json:"range"`
	Inverse    []Ref   `json:"inverse"`
}

type Health struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
	Triples int    `json:"triples"`
}

func (c *Client) Health(ctx context.Context) (*Health, error) {
	var h Health
	if err := c.getJSON(ctx, "/health", nil, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

func (c *Client) Classes(ctx context.Context) ([]Entry, error) {
	var out []Entry
	err := c.getJSON(ctx, "/classes", nil, &out)
	return out, err
}

func (c *Client) ObjectProperties(ctx context.Context) ([]Entry, error) {
	var out []Entry
	err := c.getJSON(ctx, "/object_properties", nil, &out)
	return out, err
}

func (c *Client) DataProperties(ctx context.Context) ([]DataProperty, error) {
	var out []DataProperty
	err := c.getJSON(ctx, "/data_properties", nil, &out)
	return out, err
}

func (c *Client) ClassDetails(ctx context.Context, uri string) (*ClassDetails, error) {
	var d ClassDetails
	if err := c.getJSON(ctx, "/class_details", url.Values{"uri": {uri}}, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) PropertyDetails(ctx context.Context, uri string) (*PropertyDetails, error) {
	var d PropertyDetails
	if err := c.getJSON(ctx, "/property_details", url.Values{"uri": {uri}}, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Search returns classes whose label contains term.
func (c *Client) Search(ctx context.Context, term string) ([]Ref, error) {
	var out []Ref
	err := c.getJSON(ctx, "/ontology_search", url.Values{"term": {term}}, &out)
	return out, err
}

func (c *Client) ValidateProperty(ctx context.Context, property, domain, rng string) (bool, error) {
	body := map[string]string{"property": property, "domain": domain, "range": rng}

	var out struct {
		Valid bool `json:"valid"`
	}
	resp, err := c.post(ctx, "/validate_property", body)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, fmt.Errorf("failed to decode response: %w", err)
	}
	return out.Valid, nil
}

// Generate renders graph with the named generator (r2rml, rdf or mermaid)
// and returns the document text.
func (c *Client) Generate(ctx context.Context, format string, graph any) (string, error) {
	resp, err := c.post(ctx, "/generate_"+format, graph)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if format == "mermaid" {
		var out struct {
			Mermaid string `json:"mermaid"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return "", fmt.Errorf("failed to decode response: %w", err)
		}
		return out.Mermaid, nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	return string(data), nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, body any) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

// do sends req and converts non-2xx responses into *Error.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)

		apiErr := &Error{StatusCode: resp.StatusCode}
		var payload struct {
			Error   string `json:"error"`
			Details string `json:"details"`
		}
		if json.Unmarshal(body, &payload) == nil && payload.Error != "" {
			apiErr.Message = payload.Error
			apiErr.Details = payload.Details
		} else {
			apiErr.Message = strings.TrimSpace(string(body))
		}
		return nil, apiErr
	}

	return resp, nil
}
