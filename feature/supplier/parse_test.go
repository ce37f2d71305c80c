package supplier

import (
	"archive/zip"
	"bytes"
	"testing"

	"market-sync/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testConfig() Config {
	return Config{
		Source:         SourceHTTP,
		Object:         "ostatki.zip",
		Workbook:       "ostatki.xlsx",
		HeaderRow:      3,
		CodeColumn:     "Код",
		QuantityColumn: "Количество",
		PriceColumn:    "Цена",
	}
}

// buildWorkbook produces an xlsx in the supplier's layout: preamble rows,
// then a header row, then data rows.
func buildWorkbook(t *testing.T, headerRow int, header []interface{}, data [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetList()[0]

	require.NoError(t, f.SetCellValue(sheet, "A1", "Остатки на складе"))
	require.NoError(t, f.SetSheetRow(sheet, cellRef(t, 1, headerRow), &header))
	for i, row := range data {
		r := row
		require.NoError(t, f.SetSheetRow(sheet, cellRef(t, 1, headerRow+1+i), &r))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func cellRef(t *testing.T, col, row int) string {
	t.Helper()
	ref, err := excelize.CoordinatesToCellName(col, row)
	require.NoError(t, err)
	return ref
}

// buildArchive zips named files the way the supplier's endpoint serves them.
func buildArchive(t *testing.T, files map[string][]byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range files {
		entry, err := w.Create(name)
		require.NoError(t, err)
		_, err = entry.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestParseWorkbook(t *testing.T) {
	cfg := testConfig()
	workbook := buildWorkbook(t, cfg.HeaderRow,
		[]interface{}{"Код", "Наименование товара", "Цена", "Количество"},
		[][]interface{}{
			{"48852", "B 4204 LSSF", "24'570.00 руб.", "3"},
			{"00123", "GA 2100", "5'990.00 руб.", ">10"},
			{"", "пустая строка", "1.00", "1"}, // no code, skipped
			{"77001", "MTP 1302", "3'150.00 руб.", "1"},
		},
	)

	records, err := ParseWorkbook(workbook, cfg)
	require.NoError(t, err)

	assert.Equal(t, []reconcile.FeedRecord{
		{Code: "48852", RawQuantity: "3", RawPrice: "24'570.00 руб."},
		{Code: "00123", RawQuantity: ">10", RawPrice: "5'990.00 руб."},
		{Code: "77001", RawQuantity: "1", RawPrice: "3'150.00 руб."},
	}, records)
}

func TestParseWorkbook_PreservesLeadingZeros(t *testing.T) {
	cfg := testConfig()
	workbook := buildWorkbook(t, cfg.HeaderRow,
		[]interface{}{"Код", "Цена", "Количество"},
		[][]interface{}{{"00042", "10.00", "2"}},
	)

	records, err := ParseWorkbook(workbook, cfg)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "00042", records[0].Code)
}

func TestParseWorkbook_MissingColumn(t *testing.T) {
	cfg := testConfig()
	workbook := buildWorkbook(t, cfg.HeaderRow,
		[]interface{}{"Код", "Цена"}, // no quantity column
		[][]interface{}{{"48852", "10.00"}},
	)

	_, err := ParseWorkbook(workbook, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Количество")
}

func TestParseWorkbook_HeaderRowBeyondSheet(t *testing.T) {
	cfg := testConfig()
	cfg.HeaderRow = 50
	workbook := buildWorkbook(t, 3,
		[]interface{}{"Код", "Цена", "Количество"},
		[][]interface{}{{"48852", "10.00", "2"}},
	)

	_, err := ParseWorkbook(workbook, cfg)
	assert.Error(t, err)
}

func TestParseWorkbook_NotAWorkbook(t *testing.T) {
	_, err := ParseWorkbook([]byte("definitely not xlsx"), testConfig())
	assert.Error(t, err)
}

func TestExtractWorkbook(t *testing.T) {
	cfg := testConfig()
	workbook := buildWorkbook(t, cfg.HeaderRow,
		[]interface{}{"Код", "Цена", "Количество"},
		[][]interface{}{{"48852", "10.00", "2"}},
	)

	t.Run("named entry", func(t *testing.T) {
		archive := buildArchive(t, map[string][]byte{
			"readme.txt":   []byte("остатки"),
			"ostatki.xlsx": workbook,
		})
		got, err := extractWorkbook(archive, "ostatki.xlsx")
		require.NoError(t, err)
		assert.Equal(t, workbook, got)
	})

	t.Run("fallback to first xlsx entry", func(t *testing.T) {
		archive := buildArchive(t, map[string][]byte{
			"export-2024.xlsx": workbook,
		})
		got, err := extractWorkbook(archive, "ostatki.xlsx")
		require.NoError(t, err)
		assert.Equal(t, workbook, got)
	})

	t.Run("no workbook at all", func(t *testing.T) {
		archive := buildArchive(t, map[string][]byte{
			"readme.txt": []byte("nothing here"),
		})
		_, err := extractWorkbook(archive, "ostatki.xlsx")
		assert.Error(t, err)
	})

	t.Run("not an archive", func(t *testing.T) {
		_, err := extractWorkbook([]byte("not a zip"), "ostatki.xlsx")
		assert.Error(t, err)
	})
}
