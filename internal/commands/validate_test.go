package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evalgo.org/ontomapper/internal/config"
	"evalgo.org/ontomapper/internal/validation"
)

func TestValidateGraphCommand(t *testing.T) {
	path := writeTempFile(t, "graph.json", testGraph)
	cmd, out := newTestCommand("")

	require.NoError(t, validateGraphCmd.RunE(cmd, []string{path}))
	assert.Equal(t, "✓ Graph is valid (2 nodes, 1 edges, 1 header links)\n", out.String())
}

func TestValidateGraphCommandInvalid(t *testing.T) {
	cmd, out := newTestCommand(`{"nodes":[{"label":"no id"}]}`)

	err := validateGraphCmd.RunE(cmd, []string{"-"})
	require.Error(t, err)
	assert.Contains(t, out.String(), "✗ invalid graph: nodes[0].id")
}

func TestValidateJSONLDCommand(t *testing.T) {
	path := writeTempFile(t, "doc.jsonld", `{"@id":"http://ex.org/a","http://ex.org/p":"x"}`)
	cmd, out := newTestCommand("")

	require.NoError(t, validateJSONLDCmd.RunE(cmd, []string{path}))
	assert.Equal(t, "✓ Document is valid\n", out.String())
}

func TestValidateJSONLDCommandInvalid(t *testing.T) {
	path := writeTempFile(t, "doc.jsonld", `not json`)
	cmd, out := newTestCommand("")

	err := validateJSONLDCmd.RunE(cmd, []string{path})
	require.Error(t, err)
	assert.Contains(t, out.String(), "✗ Validation failed:")
	assert.Contains(t, out.String(), "  - document: Invalid JSON")
}

func TestValidatePropertyCommand(t *testing.T) {
	cmd, out := newTestCommand("")
	require.NoError(t, validatePropertyCmd.RunE(cmd, []string{"http://ex.org/onto#hasMember"}))
	assert.Equal(t, "✓ Document is valid\n", out.String())

	cmd, out = newTestCommand("")
	require.Error(t, validatePropertyCmd.RunE(cmd, nil))
	assert.Contains(t, out.String(), "  - property: property is required")
}

func TestPrintResultWithValue(t *testing.T) {
	var buf bytes.Buffer
	err := printResult(&buf, &validation.ValidationResult{
		Errors: []validation.ValidationError{{Field: "x", Message: "bad", Value: 3}},
	})
	require.Error(t, err)
	assert.Contains(t, buf.String(), "  - x: bad (value: 3)")
}

func TestInitConfigCommand(t *testing.T) {
	prevPath, prevForce := initConfigPath, initConfigForce
	t.Cleanup(func() { initConfigPath, initConfigForce = prevPath, prevForce })

	initConfigPath = filepath.Join(t.TempDir(), "config.yaml")
	initConfigForce = false

	cmd, out := newTestCommand("")
	require.NoError(t, runInitConfig(cmd, nil))
	assert.Contains(t, out.String(), "✓ Created")

	loaded, err := config.Load(initConfigPath)
	require.NoError(t, err)
	assert.Equal(t, config.Default().Server.Port, loaded.Server.Port)
	assert.Equal(t, config.Default().Ontology.Sources, loaded.Ontology.Sources)

	// Refuses to overwrite without --force.
	err = runInitConfig(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	require.NoError(t, os.WriteFile(initConfigPath, []byte("server:\n  port: 1\n"), 0644))
	initConfigForce = true
	require.NoError(t, runInitConfig(cmd, nil))
	data, err := os.ReadFile(initConfigPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "port: 5055")
}

func TestShowConfigCommand(t *testing.T) {
	useTestConfig(t)
	cmd, out := newTestCommand("")

	require.NoError(t, runShowConfig(cmd, nil))
	assert.Contains(t, out.String(), "mini.ttl")
	assert.Contains(t, out.String(), "port: 5055")
}
