package service

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"ledger/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var exportNow = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func sampleIncome() []models.Income {
	phone := "+91 98765 43210"
	return []models.Income{
		{Name: "Asha", PhoneNumber: &phone, Amount: 5000, Date: "2026-03-01", CalledStatus: true, CreatedAt: exportNow},
		{Name: "Ravi", Amount: 1250.5, Date: "2026-03-02", CreatedAt: exportNow},
	}
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "wedding_income_2026-03-14.csv", ExportFilename("wedding", ExportIncome, FormatCSV, exportNow))
}

func TestRenderIncome_CSV(t *testing.T) {
	file, err := RenderIncome("wedding", FormatCSV, sampleIncome(), exportNow)
	require.NoError(t, err)
	assert.Equal(t, "wedding_income_2026-03-14.csv", file.Name)
	assert.Contains(t, file.ContentType, "text/csv")
	require.True(t, bytes.HasPrefix(file.Data, []byte("\xEF\xBB\xBF")))

	records, err := csv.NewReader(bytes.NewReader(file.Data[3:])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Name", "Phone Number", "Amount", "Description", "Date", "Called Status", "Created At"}, records[0])
	assert.Equal(t, []string{"Asha", "+91 98765 43210", "5000", "", "2026-03-01", "Yes", "2026-03-14"}, records[1])
	assert.Equal(t, []string{"Ravi", "", "1250.5", "", "2026-03-02", "No", "2026-03-14"}, records[2])
}

func TestRenderExpenses_CSV_Empty(t *testing.T) {
	file, err := RenderExpenses("trip", FormatCSV, nil, exportNow)
	require.NoError(t, err)
	assert.Equal(t, "trip_expenses_2026-03-14.csv", file.Name)
	assert.Equal(t, "Description,Amount,Category,Date,Created At", strings.TrimSpace(string(file.Data[3:])))
}

func TestRenderExpenses_XLSX(t *testing.T) {
	list := []models.Expense{
		{Description: "Taxi", Amount: 320.75, Category: models.CategoryTransport, Date: "2026-03-03", CreatedAt: exportNow},
	}
	file, err := RenderExpenses("trip", FormatXLSX, list, exportNow)
	require.NoError(t, err)
	assert.Equal(t, "trip_expenses_2026-03-14.xlsx", file.Name)

	f, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ExportExpenses)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Description", rows[0][0])
	assert.Equal(t, "Taxi", rows[1][0])
	assert.Equal(t, models.CategoryTransport, rows[1][2])
}

func TestRender_UnsupportedFormat(t *testing.T) {
	_, err := RenderIncome("wedding", "pdf", nil, exportNow)
	assert.Error(t, err)
}
