package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"ledger/models"

	"github.com/xuri/excelize/v2"
)

// 导出类型
const (
	ExportIncome   = "income"
	ExportExpenses = "expenses"
)

// 导出格式
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// ExportFile 生成好的导出文件
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// table 表头 + 行数据，CSV 与 XLSX 共用
type table struct {
	headers []string
	rows    [][]interface{}
}

func incomeTable(list []models.Income) table {
	t := table{headers: []string{"Name", "Phone Number", "Amount", "Description", "Date", "Called Status", "Created At"}}
	for _, in := range list {
		called := "No"
		if in.CalledStatus {
			called = "Yes"
		}
		t.rows = append(t.rows, []interface{}{
			in.Name,
			derefString(in.PhoneNumber),
			in.Amount,
			derefString(in.Description),
			in.Date,
			called,
			in.CreatedAt.Format("2006-01-02"),
		})
	}
	return t
}

func expenseTable(list []models.Expense) table {
	t := table{headers: []string{"Description", "Amount", "Category", "Date", "Created At"}}
	for _, e := range list {
		t.rows = append(t.rows, []interface{}{
			e.Description,
			e.Amount,
			e.Category,
			e.Date,
			e.CreatedAt.Format("2006-01-02"),
		})
	}
	return t
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ExportFilename 导出文件名：<项目>_<类型>_<日期>.<扩展名>
func ExportFilename(projectName, kind, ext string, now time.Time) string {
	return fmt.Sprintf("%s_%s_%s.%s", projectName, kind, now.Format("2006-01-02"), ext)
}

// RenderIncome 按格式渲染收入导出文件
func RenderIncome(projectName, format string, list []models.Income, now time.Time) (*ExportFile, error) {
	return render(projectName, ExportIncome, format, incomeTable(list), now)
}

// RenderExpenses 按格式渲染支出导出文件
func RenderExpenses(projectName, format string, list []models.Expense, now time.Time) (*ExportFile, error) {
	return render(projectName, ExportExpenses, format, expenseTable(list), now)
}

func render(projectName, kind, format string, t table, now time.Time) (*ExportFile, error) {
	switch format {
	case FormatCSV:
		data, err := t.csv()
		if err != nil {
			return nil, err
		}
		return &ExportFile{
			Name:        ExportFilename(projectName, kind, FormatCSV, now),
			ContentType: "text/csv; charset=utf-8",
			Data:        data,
		}, nil
	case FormatXLSX:
		data, err := t.xlsx(kind)
		if err != nil {
			return nil, err
		}
		return &ExportFile{
			Name:        ExportFilename(projectName, kind, FormatXLSX, now),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        data,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

func (t table) csv() ([]byte, error) {
	buf := new(bytes.Buffer)
	// BOM，保证 Excel 正确识别 UTF-8
	buf.WriteString("\xEF\xBB\xBF")

	w := csv.NewWriter(buf)
	if err := w.Write(t.headers); err != nil {
		return nil, err
	}
	for _, row := range t.rows {
		record := make([]string, len(row))
		for i, v := range row {
			switch val := v.(type) {
			case float64:
				record[i] = strconv.FormatFloat(val, 'f', -1, 64)
			default:
				record[i] = fmt.Sprint(val)
			}
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (t table) xlsx(sheetName string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetName)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}
	amountStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: stringPtr("#,##0.00")})
	if err != nil {
		return nil, err
	}

	for i, h := range t.headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return nil, err
		}
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheetName, col, col, 18); err != nil {
			return nil, err
		}
	}

	for r, row := range t.rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
			if _, ok := v.(float64); ok {
				if err := f.SetCellStyle(sheetName, cell, cell, amountStyle); err != nil {
					return nil, err
				}
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func stringPtr(s string) *string {
	return &s
}
