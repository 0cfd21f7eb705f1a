package ingest

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/xuri/excelize/v2"

	"github.com/paulcobox/ar-carga-sabana/internal/domain"
)

// ErrUnsupportedFormat is returned when the input file is not csv or xlsx.
var ErrUnsupportedFormat = errors.New("unsupported file format")

var byteOrderMark = []byte{0xEF, 0xBB, 0xBF}

// MissingColumnError reports a required column absent from the input header.
// This is a configuration failure of the export, never locally recoverable.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("required column %q not found in input", e.Column)
}

// ReadFile loads the sábana export from disk.
func ReadFile(path, sheet string) ([]domain.Record, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read input file")
	}
	return Parse(filepath.Base(path), payload, sheet)
}

// Parse turns a csv or xlsx payload into records. The first non-empty row is
// the header; headers are trimmed and matched against the declared column
// contract. Every required column must be present. Data rows keep their
// 1-based sheet row number for diagnostics; empty cells become nil and extra
// columns are carried through untouched.
func Parse(fileName string, payload []byte, sheet string) ([]domain.Record, error) {
	if len(payload) == 0 {
		return nil, errors.New("file is empty")
	}

	var rows [][]string
	var err error
	switch ext := strings.ToLower(filepath.Ext(fileName)); ext {
	case ".csv":
		rows, err = readCSV(payload)
	case ".xlsx":
		rows, err = readExcel(payload, sheet)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%s", ext)
	}
	if err != nil {
		return nil, err
	}

	return buildRecords(rows)
}

func readCSV(payload []byte) ([][]string, error) {
	reader := bufio.NewReader(bytes.NewReader(payload))
	if prefix, err := reader.Peek(len(byteOrderMark)); err == nil && bytes.Equal(prefix, byteOrderMark) {
		_, _ = reader.Discard(len(byteOrderMark))
	}

	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1

	rows, err := csvReader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read csv")
	}
	return rows, nil
}

func readExcel(payload []byte, sheet string) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open xlsx")
	}
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("excel file has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read rows from sheet %q", sheet)
	}
	return rows, nil
}

func buildRecords(rows [][]string) ([]domain.Record, error) {
	headerIndex := -1
	var headers []string
	for idx, row := range rows {
		if isEmptyRow(row) {
			continue
		}
		headerIndex = idx
		headers = make([]string, len(row))
		for i, cell := range row {
			headers[i] = strings.TrimSpace(cell)
		}
		break
	}
	if headerIndex < 0 {
		return nil, errors.New("no header row detected")
	}

	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}
	for _, col := range domain.RequiredColumns {
		if !present[col] {
			return nil, &MissingColumnError{Column: col}
		}
	}

	var records []domain.Record
	for idx := headerIndex + 1; idx < len(rows); idx++ {
		row := rows[idx]
		if isEmptyRow(row) {
			continue
		}

		rec := domain.NewRecord(idx + 1)
		for col, header := range headers {
			if header == "" || col >= len(row) {
				continue
			}
			if strings.TrimSpace(row[col]) == "" {
				continue
			}
			rec.Set(header, row[col])
		}
		records = append(records, rec)
	}

	return records, nil
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
