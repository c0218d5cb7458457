package lib

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/xoviat/capcode/parts"
	"github.com/xoviat/capcode/parts/capacitors"
)

const BOMSheet = "capacitors"

type PartDecoder interface {
	Decode(partNumber string) (capacitors.Capacitor, error)
}

// BOMEntry is one decoded row. Row is the 1-based row of the part number
// in the source table.
type BOMEntry struct {
	Row        int
	PartNumber string
	Capacitor  capacitors.Capacitor
	Err        error
}

var bomHeader = []string{
	"Part Number",
	"Manufacturer",
	"Series",
	"Size",
	"Metric",
	"Height",
	"Dielectric",
	"Voltage",
	"Capacitance",
	"Tolerance",
	"Code",
	"Description",
	"Error",
}

func (e *BOMEntry) columns() []string {
	if e.Err != nil {
		columns := make([]string, len(bomHeader))
		columns[0] = e.PartNumber
		columns[len(columns)-1] = e.Err.Error()
		return columns
	}

	c := e.Capacitor
	metric := []string{}
	for _, m := range c.Size.IECCandidates() {
		metric = append(metric, m.String())
	}

	return []string{
		e.PartNumber,
		c.Manufacturer(),
		c.Series.String(),
		c.Size.String(),
		strings.Join(metric, "/"),
		c.MaxHeight.String(),
		c.Dielectric.String(),
		c.Voltage.String(),
		c.Capacitance.String(),
		c.Tolerance.String(),
		c.Compact(),
		c.Verbose(),
		"",
	}
}

// ReadPartNumbers reads the part numbers in column (0-based) of the first
// sheet of an .xlsx file or of a .csv file. Rows with an empty cell are
// skipped; the returned entries keep their source row.
func ReadPartNumbers(src string, column int, header bool) ([]*BOMEntry, error) {
	if column < 0 {
		return nil, fmt.Errorf("column %d is negative", column)
	}

	format, err := FormatOf(src)
	if err != nil {
		return nil, err
	}

	var records [][]string
	switch format {
	case XLSX:
		records, err = readXLSX(src)
	default:
		records, err = readCSV(src)
	}
	if err != nil {
		return nil, err
	}

	entries := []*BOMEntry{}
	for i, record := range records {
		if header && i == 0 {
			continue
		}
		if column >= len(record) || record[column] == "" {
			continue
		}

		entries = append(entries, &BOMEntry{
			Row:        i + 1,
			PartNumber: record[column],
		})
	}

	return entries, nil
}

func readCSV(src string) ([][]string, error) {
	fp, err := os.Open(src)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	reader := csv.NewReader(fp)
	reader.FieldsPerRecord = -1

	return reader.ReadAll()
}

func readXLSX(src string) ([][]string, error) {
	f, err := excelize.OpenFile(src)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: no sheets", src)
	}

	rows, err := f.Rows(sheets[0])
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	chrows := make(chan []string, 100)
	cherr := make(chan error, 1)
	go func() {
		defer close(chrows)
		for rows.Next() {
			row, err := rows.Columns()
			if err != nil {
				cherr <- err
				return
			}

			chrows <- row
		}
		cherr <- rows.Error()
	}()

	records := [][]string{}
	for row := range chrows {
		records = append(records, row)
	}

	return records, <-cherr
}

// DecodeBOM decodes every entry in place. metrics may be nil.
// It returns the number of entries that failed to decode.
func DecodeBOM(decoder PartDecoder, entries []*BOMEntry, metrics *DecodeMetrics) int {
	failed := 0
	for _, entry := range entries {
		start := time.Now()
		entry.Capacitor, entry.Err = decoder.Decode(entry.PartNumber)
		if metrics != nil {
			metrics.Observe(entry.Capacitor, entry.Err, time.Since(start))
		}

		if entry.Err != nil {
			failed++
		}
	}

	return failed
}

// WriteBOM writes a header row and one row per entry, as .csv or .xlsx
// depending on the extension of dst
func WriteBOM(dst string, entries []*BOMEntry) error {
	format, err := FormatOf(dst)
	if err != nil {
		return err
	}

	if format == XLSX {
		return writeXLSX(dst, entries)
	}
	return writeCSV(dst, entries)
}

func writeCSV(dst string, entries []*BOMEntry) error {
	fp, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer fp.Close()

	writer := csv.NewWriter(fp)
	writer.Write(bomHeader)
	for _, entry := range entries {
		writer.Write(entry.columns())
	}

	writer.Flush()
	return writer.Error()
}

func writeXLSX(dst string, entries []*BOMEntry) error {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(BOMSheet); err != nil {
		return err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	row := func(i int, columns []string) error {
		cells := make([]interface{}, len(columns))
		for j, column := range columns {
			cells[j] = column
		}
		return f.SetSheetRow(BOMSheet, "A"+strconv.Itoa(i), &cells)
	}

	if err := row(1, bomHeader); err != nil {
		return err
	}
	for i, entry := range entries {
		if err := row(i+2, entry.columns()); err != nil {
			return err
		}
	}

	return f.SaveAs(dst)
}

// Summary renders an entry for terminal output in the given style
func (e *BOMEntry) Summary(style parts.Style) string {
	if e.Err != nil {
		return fmt.Sprintf("%d: %s: %s", e.Row, e.PartNumber, e.Err)
	}
	return fmt.Sprintf("%d: %s: %s", e.Row, e.PartNumber, e.Capacitor.Format(style))
}
