package cmd

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Setenv("HOME", t.TempDir())

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestDecodeCommand(t *testing.T) {
	out, _, err := execute(t, "decode", "--style", "verbose", "GRM033R61A224ME90#")
	require.NoError(t, err)
	assert.Equal(t, "CAP 220nF±20% 10V X5R 0201(0603 Metric) Height=0.3mm\n", out)

	out, _, err = execute(t, "decode", "--style", "compact", "GRM033R61A224ME90#", "GRM155R71C104KA88D")
	require.NoError(t, err)
	assert.Equal(t, "C0201_220NC10VX5R\nC0402_100NS16VX7R\n", out)

	out, _, err = execute(t, "decode", "--style", "debug", "GRM033R61A224ME90#")
	require.NoError(t, err)
	assert.Contains(t, out, "manufacturer: Murata")
	assert.Contains(t, out, "size:         0201 Inch / 0603 Metric")
	assert.Contains(t, out, "tolerance:    ±20% (C)")
}

func TestDecodeCommandFailures(t *testing.T) {
	out, errOut, err := execute(t, "decode", "--style", "verbose", "GRM03ZR61A224ME90#", "GRM033R61A224ME90#")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Equal(t, "CAP 220nF±20% 10V X5R 0201(0603 Metric) Height=0.3mm\n", out)
	assert.Contains(t, errOut, `Murata: wrong height code "Z" at offset 5`)

	_, _, err = execute(t, "decode", "--style", "fancy", "GRM033R61A224ME90#")
	assert.Error(t, err)
}

func TestBomCommand(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bom.csv")
	dst := filepath.Join(dir, "decoded.xlsx")
	prom := filepath.Join(dir, "capcode.prom")

	fp, err := os.Create(src)
	require.NoError(t, err)
	require.NoError(t, csv.NewWriter(fp).WriteAll([][]string{
		{"Designator", "MPN"},
		{"C1", "GRM033R61A224ME90#"},
		{"C2", "XYZ033R61A224ME90#"},
	}))
	require.NoError(t, fp.Close())

	out, _, err := execute(t, "bom", src, dst, "--column", "1", "--header", "--metrics", prom)
	require.NoError(t, err)
	assert.Equal(t, "decoded 1 of 2 part numbers\n", out)
	assert.FileExists(t, dst)

	text, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(text), `capcode_decodes_total{manufacturer="Murata",outcome="ok"} 1`)

	_, _, err = execute(t, "bom", filepath.Join(dir, "missing.csv"), dst)
	assert.Error(t, err)
}

func TestSizesCommand(t *testing.T) {
	t.Cleanup(func() { manufacturer = "" })

	out, _, err := execute(t, "sizes", "--manufacturer", "samsung")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`(?m)^EIA\s+IEC\s+samsung$`), out)
	assert.Regexp(t, regexp.MustCompile(`(?m)^0402\s+1005\s+05$`), out)
	assert.Regexp(t, regexp.MustCompile(`(?m)^2225\s+5764/5664 \*\s+-$`), out)

	out, _, err = execute(t, "sizes", "--manufacturer", "")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`(?m)^0603\s+1608\s+18\s+10$`), out)

	_, _, err = execute(t, "sizes", "--manufacturer", "bogus")
	assert.Error(t, err)
}

func TestSeriesSuggestions(t *testing.T) {
	suggestions := seriesSuggestions()
	require.NotEmpty(t, suggestions)
	assert.Equal(t, "GA2", suggestions[0].Text)
	assert.Equal(t, "Murata", suggestions[0].Description)
}
