package supplier

import (
	"archive/zip"
	"bytes"
	"fmt"
	"path"
	"strings"

	"market-sync/core/reconcile"

	"github.com/xuri/excelize/v2"
)

// extractWorkbook pulls the remnants workbook out of the supplier's zip
// archive. It prefers the configured file name and falls back to the first
// .xlsx entry.
func extractWorkbook(archive []byte, workbook string) ([]byte, error) {
	reader, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, fmt.Errorf("failed to open feed archive: %w", err)
	}

	var fallback *zip.File
	for _, file := range reader.File {
		name := path.Base(file.Name)
		if name == workbook {
			return readZipFile(file)
		}
		if fallback == nil && strings.HasSuffix(name, ".xlsx") {
			fallback = file
		}
	}
	if fallback != nil {
		return readZipFile(fallback)
	}
	return nil, fmt.Errorf("feed archive contains no workbook (wanted %q)", workbook)
}

func readZipFile(file *zip.File) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s in feed archive: %w", file.Name, err)
	}
	defer rc.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(rc); err != nil {
		return nil, fmt.Errorf("failed to read %s from feed archive: %w", file.Name, err)
	}
	return buf.Bytes(), nil
}

// ParseWorkbook decodes the remnants workbook into feed records, in row
// order. Rows with an empty code cell are skipped; quantity and price cells
// are kept as raw text.
func ParseWorkbook(workbook []byte, cfg Config) ([]reconcile.FeedRecord, error) {
	f, err := excelize.OpenReader(bytes.NewReader(workbook))
	if err != nil {
		return nil, fmt.Errorf("failed to open feed workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("feed workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read feed sheet %s: %w", sheets[0], err)
	}
	if len(rows) < cfg.HeaderRow {
		return nil, fmt.Errorf("feed sheet has %d rows, header expected at row %d", len(rows), cfg.HeaderRow)
	}

	header := rows[cfg.HeaderRow-1]
	codeIdx, err := columnIndex(header, cfg.CodeColumn)
	if err != nil {
		return nil, err
	}
	qtyIdx, err := columnIndex(header, cfg.QuantityColumn)
	if err != nil {
		return nil, err
	}
	priceIdx, err := columnIndex(header, cfg.PriceColumn)
	if err != nil {
		return nil, err
	}

	records := make([]reconcile.FeedRecord, 0, len(rows)-cfg.HeaderRow)
	for _, row := range rows[cfg.HeaderRow:] {
		code := cell(row, codeIdx)
		if code == "" {
			continue
		}
		records = append(records, reconcile.FeedRecord{
			Code:        code,
			RawQuantity: cell(row, qtyIdx),
			RawPrice:    cell(row, priceIdx),
		})
	}
	return records, nil
}

// columnIndex locates a header column by its trimmed name.
func columnIndex(header []string, name string) (int, error) {
	for i, h := range header {
		if strings.TrimSpace(h) == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("feed sheet header has no %q column", name)
}

// cell returns the value at idx, tolerating the ragged rows excelize
// produces for trailing empty cells.
func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}
