package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ppcsim/internal/core/port"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRun_SummaryForDemo(t *testing.T) {
	out, err := execute(t, "run", "--start", "2024-03-04", "--seed", "7", "--format", "summary")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.True(t, strings.HasPrefix(lines[0], "# run "))
	assert.Contains(t, lines[0], "seed=7")
	assert.True(t, strings.HasPrefix(lines[1], "campaign_id,"))
}

func TestRun_JSONIsReproducible(t *testing.T) {
	run := func() port.RunResp {
		out, err := execute(t, "run", "--start", "2024-03-04", "--seed", "11", "--format", "json", "--conversion", "binomial")
		require.NoError(t, err)
		var resp port.RunResp
		require.NoError(t, json.Unmarshal([]byte(out), &resp))
		return resp
	}

	a, b := run(), run()
	require.NotEmpty(t, a.Records)
	require.Len(t, b.Records, len(a.Records))
	for i := range a.Records {
		assert.Equal(t, a.Records[i].Impressions, b.Records[i].Impressions)
		assert.Equal(t, a.Records[i].Clicks, b.Records[i].Clicks)
		assert.Equal(t, a.Records[i].Orders, b.Records[i].Orders)
		assert.True(t, a.Records[i].Spend.Equal(b.Records[i].Spend))
	}
}

func TestRun_Errors(t *testing.T) {
	_, err := execute(t, "run", "--start", "March 4", "--format", "summary")
	assert.ErrorContains(t, err, "--start")

	_, err = execute(t, "run", "--start", "2024-03-04", "--format", "xml")
	assert.ErrorContains(t, err, "--format")

	_, err = execute(t, "run", "--scenario", "/nonexistent/scenario.yaml", "--format", "summary")
	assert.ErrorContains(t, err, "reading scenario")
}

func TestRun_UnknownConversionRejected(t *testing.T) {
	t.Cleanup(func() { conversion = "bernoulli" })

	_, err := execute(t, "run", "--scenario", "", "--start", "2024-03-04", "--format", "summary", "--conversion", "binomal")
	require.Error(t, err)
	assert.ErrorContains(t, err, "--conversion")
	assert.ErrorContains(t, err, `"binomal"`)
}

func TestCatalog(t *testing.T) {
	out, err := execute(t, "catalog", "--scenario", "")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 11)
	assert.Contains(t, out, "B0CR8T8U8V")
}
