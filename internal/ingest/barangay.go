package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "github.com/jwalitptl/health-indicators/pkg/errors"
)

// BarangayColumn is the required header of every input file.
const BarangayColumn = "Barangay"

// Stats describes one read.
type Stats struct {
	Rows    int
	Skipped int
}

// ReadBarangays returns the non-blank Barangay values of a .csv or .xlsx file in
// row order. Extra columns are ignored, duplicates are kept.
func ReadBarangays(path string) ([]string, Stats, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, Stats{}, apperrors.NotFound("CSV file "+path, err)
		}
		return nil, Stats{}, apperrors.BadRequest("cannot stat "+path, err)
	}

	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		rows, err = readWorkbook(path)
	default:
		rows, err = readDelimited(path)
	}
	if err != nil {
		return nil, Stats{}, err
	}

	return extractColumn(rows, BarangayColumn)
}

func readDelimited(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.BadRequest("cannot open "+path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperrors.BadRequest("malformed CSV", err)
		}
		rows = append(rows, record)
	}
	return rows, nil
}

// readWorkbook reads the first sheet of an Excel workbook.
func readWorkbook(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.BadRequest("cannot open workbook "+path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.BadRequest("workbook has no sheets", nil)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.BadRequest(fmt.Sprintf("cannot read sheet %q", sheets[0]), err)
	}
	return rows, nil
}

func extractColumn(rows [][]string, column string) ([]string, Stats, error) {
	if len(rows) == 0 {
		return nil, Stats{}, apperrors.BadRequest("file has no header row", nil)
	}

	idx := -1
	for i, name := range rows[0] {
		if strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")) == column {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, Stats{}, apperrors.BadRequest(fmt.Sprintf("missing %q column", column), nil)
	}

	var stats Stats
	values := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		stats.Rows++
		if idx >= len(row) {
			stats.Skipped++
			continue
		}
		value := strings.TrimSpace(row[idx])
		if value == "" {
			stats.Skipped++
			continue
		}
		values = append(values, value)
	}
	return values, stats, nil
}
