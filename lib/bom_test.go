package lib

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/xoviat/capcode/parts"
	"github.com/xoviat/capcode/parts/capacitors"
	"github.com/xoviat/capcode/parts/capacitors/murata"
)

func writeCSVFile(t *testing.T, path string, records [][]string) {
	fp, err := os.Create(path)
	require.NoError(t, err)
	defer fp.Close()

	writer := csv.NewWriter(fp)
	require.NoError(t, writer.WriteAll(records))
}

func TestReadPartNumbersCSV(t *testing.T) {
	src := filepath.Join(t.TempDir(), "bom.csv")
	writeCSVFile(t, src, [][]string{
		{"Designator", "MPN"},
		{"C1", "GRM033R61A224ME90#"},
		{"C2"},
		{"C3", ""},
		{"C4", "GRM155R71C104KA88D"},
	})

	entries, err := ReadPartNumbers(src, 1, true)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 2, entries[0].Row)
	assert.Equal(t, "GRM033R61A224ME90#", entries[0].PartNumber)
	assert.Equal(t, 5, entries[1].Row)

	entries, err = ReadPartNumbers(src, 0, false)
	require.NoError(t, err)
	assert.Len(t, entries, 5)
	assert.Equal(t, "Designator", entries[0].PartNumber)

	_, err = ReadPartNumbers(src, -1, false)
	assert.Error(t, err)

	_, err = ReadPartNumbers(filepath.Join(t.TempDir(), "bom.txt"), 0, false)
	assert.Error(t, err)

	_, err = ReadPartNumbers(filepath.Join(t.TempDir(), "missing.csv"), 0, false)
	assert.Error(t, err)
}

func TestReadPartNumbersXLSX(t *testing.T) {
	src := filepath.Join(t.TempDir(), "bom.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"GRM033R61A224ME90#", "first"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"GRM155R71C104KA88D", "second"}))
	require.NoError(t, f.SaveAs(src))
	require.NoError(t, f.Close())

	entries, err := ReadPartNumbers(src, 0, false)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "GRM033R61A224ME90#", entries[0].PartNumber)
	assert.Equal(t, "GRM155R71C104KA88D", entries[1].PartNumber)
	assert.Equal(t, 2, entries[1].Row)
}

func TestDecodeAndWriteBOM(t *testing.T) {
	dir := t.TempDir()
	entries := []*BOMEntry{
		{Row: 1, PartNumber: "GRM033R61A224ME90#"},
		{Row: 2, PartNumber: "GRM033R6ZZ224ME90#"},
		{Row: 3, PartNumber: "CL10B104KB8NNNC"},
	}

	metrics := NewDecodeMetrics()
	failed := DecodeBOM(capacitors.NewDispatcher(nil, murata.Decoder{}), entries, metrics)
	assert.Equal(t, 2, failed)
	require.NoError(t, entries[0].Err)
	assert.True(t, errors.Is(entries[1].Err, capacitors.WrongVoltageCode))
	assert.True(t, errors.Is(entries[2].Err, capacitors.UnknownSeries))

	assert.Equal(t, "1: GRM033R61A224ME90#: C0201_220NC10VX5R", entries[0].Summary(parts.Compact))

	for _, name := range []string{"out.csv", "out.xlsx"} {
		dst := filepath.Join(dir, name)
		require.NoError(t, WriteBOM(dst, entries), name)
		require.True(t, Exists(dst))

		back, err := ReadPartNumbers(dst, 0, true)
		require.NoError(t, err, name)
		require.Len(t, back, len(entries), name)
		for i := range entries {
			assert.Equal(t, entries[i].PartNumber, back[i].PartNumber, name)
		}

		codes, err := ReadPartNumbers(dst, 10, true)
		require.NoError(t, err, name)
		require.Len(t, codes, 1, name)
		assert.Equal(t, "C0201_220NC10VX5R", codes[0].PartNumber, name)

		failures, err := ReadPartNumbers(dst, 12, true)
		require.NoError(t, err, name)
		assert.Len(t, failures, 2, name)
	}

	assert.Error(t, WriteBOM(filepath.Join(dir, "out.json"), entries))
}

func TestFormatOf(t *testing.T) {
	format, err := FormatOf("a/b/BOM.XLSX")
	require.NoError(t, err)
	assert.Equal(t, XLSX, format)

	format, err = FormatOf("bom.csv")
	require.NoError(t, err)
	assert.Equal(t, CSV, format)

	_, err = FormatOf("bom")
	assert.Error(t, err)

	path, err := Normalize("a/../b")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(path))
	assert.Equal(t, "b", filepath.Base(path))
}
