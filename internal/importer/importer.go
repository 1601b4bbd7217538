// Package importer reads word lists from spreadsheets and whole topics
// documents from JSON or YAML backups.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/flipword/api/internal/model"
)

// Columns are read in this order: en, zh, pos, enSent, zhSent.
const columnCount = 5

type Config struct {
	FilePath   string
	SheetName  string // xlsx only; empty means the first sheet
	SkipHeader bool
}

type Result struct {
	Words   []model.Word
	Skipped int
	Errors  []string
}

// ImportWords reads a .xlsx or .csv file. Rows with fewer than five
// columns are reported and skipped; blank rows are skipped silently.
func ImportWords(cfg Config) (*Result, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(cfg.FilePath)) {
	case ".xlsx", ".xlsm":
		rows, err = readExcel(cfg)
	case ".csv":
		rows, err = readCSV(cfg.FilePath)
	default:
		return nil, fmt.Errorf("unsupported file type %q", filepath.Ext(cfg.FilePath))
	}
	if err != nil {
		return nil, err
	}

	result := &Result{Words: []model.Word{}}
	for i, row := range rows {
		if i == 0 && cfg.SkipHeader {
			continue
		}
		if blank(row) {
			continue
		}
		if len(row) < columnCount {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: expected %d columns, got %d", i+1, columnCount, len(row)))
			continue
		}
		w := model.Word{En: row[0], Zh: row[1], Pos: row[2], EnSent: row[3], ZhSent: row[4]}
		w.Sanitize()
		result.Words = append(result.Words, w)
	}
	return result, nil
}

func readExcel(cfg Config) ([][]string, error) {
	f, err := excelize.OpenFile(cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := cfg.SheetName
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		rows = append(rows, record)
	}
	return rows, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
