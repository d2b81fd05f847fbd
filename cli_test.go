package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestStatsCommand(t *testing.T) {
	out, err := execute(t, "stats", "dashboard", "-o", "json")
	require.NoError(t, err)
	var dash map[string]int
	require.NoError(t, json.Unmarshal([]byte(out), &dash))
	assert.Equal(t, 81, dash["youth_engagement_rate"])

	out, err = execute(t, "stats", "project", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "title: Western Sydney Metro")
	assert.Contains(t, out, "abs_insights:")

	_, err = execute(t, "stats", "project", "99")
	assert.ErrorContains(t, err, "not found")
	_, err = execute(t, "stats", "weather")
	assert.ErrorContains(t, err, "unknown report")
}

func TestCatalogCommand(t *testing.T) {
	out, err := execute(t, "catalog", "gallery", "--category", "Kids Friendly")
	require.NoError(t, err)
	assert.Contains(t, out, "count: 1")
	assert.Contains(t, out, "category: Kids Friendly")

	out, err = execute(t, "catalog", "network", "--tab", "discover", "-o", "json")
	require.NoError(t, err)
	var res struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 3, res.Count)

	_, err = execute(t, "catalog", "network", "--tab", "blocked")
	assert.Error(t, err)
	_, err = execute(t, "catalog", "gallery", "-o", "xml")
	assert.ErrorContains(t, err, "unknown output format")
}
