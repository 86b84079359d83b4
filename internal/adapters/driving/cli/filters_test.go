package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFiltersCmd_Use(t *testing.T) {
	assert.Equal(t, "filters", filtersCmd.Use)
}

func TestFiltersCmd_PrintsCatalog(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"filters"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Topics:")
	assert.Contains(t, out, "guardrails")
	assert.Contains(t, out, "Facet language:")
	assert.Contains(t, out, "python")
	// Audiences is empty in the mock catalog and must not be printed.
	assert.NotContains(t, out, "Audiences:")
}

func TestFiltersCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"filters", "--json"})
	defer func() {
		rootCmd.SetArgs(nil)
		filtersJSON = false
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "\"topics\"")
	assert.Contains(t, buf.String(), "guardrails")
}

func TestRunFilters_ServiceNotConfigured(t *testing.T) {
	oldService := filterService
	filterService = nil
	defer func() {
		filterService = oldService
	}()

	err := runFilters(filtersCmd, nil)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "filter service not configured")
}
