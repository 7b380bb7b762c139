package report

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/screening-cli/internal/model"
)

// xlsxHeader is the column layout of the workbook export.
var xlsxHeader = []string{
	"Rank", "Name", "Score", "Industry",
	"Revenue", "Revenue Est.", "EBITDA", "EBITDA Est.",
	"Growth %", "Growth Est.", "Employees", "Employees Est.",
	"Description",
}

// Workbook renders the ranked records as a single-sheet XLSX file.
// Financials are written as numeric cells so the workbook sorts and
// filters correctly in a spreadsheet.
func Workbook(records []model.CompanyRecord) (*xlsx.File, error) {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Top Companies")
	if err != nil {
		return nil, eris.Wrap(err, "report: add sheet")
	}

	header := sheet.AddRow()
	for _, h := range xlsxHeader {
		header.AddCell().Value = h
	}

	for i, rec := range records {
		row := sheet.AddRow()
		row.AddCell().SetInt(i + 1)
		row.AddCell().Value = rec.Name
		row.AddCell().SetFloat(rec.Score)
		row.AddCell().Value = strings.Join(rec.Industries, ", ")

		addInt64Cell(row, rec.Revenue)
		addBoolCell(row, rec.RevenueEstimated)
		addInt64Cell(row, rec.EBITDA)
		addBoolCell(row, rec.EBITDAEstimated)
		addIntCell(row, rec.GrowthRate)
		addBoolCell(row, rec.GrowthEstimated)
		addIntCell(row, rec.Employees)
		addBoolCell(row, rec.EmployeesEstimated)

		desc := rec.Description
		if len(desc) > maxDescriptionChars {
			desc = desc[:maxDescriptionChars]
		}
		row.AddCell().Value = desc
	}

	return f, nil
}

// SaveWorkbook writes the XLSX export to path.
func SaveWorkbook(records []model.CompanyRecord, path string) error {
	f, err := Workbook(records)
	if err != nil {
		return err
	}
	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "report: save workbook %s", path)
	}
	return nil
}

func addInt64Cell(row *xlsx.Row, v *int64) {
	cell := row.AddCell()
	if v != nil {
		cell.SetInt64(*v)
	}
}

func addIntCell(row *xlsx.Row, v *int) {
	cell := row.AddCell()
	if v != nil {
		cell.SetInt(*v)
	}
}

func addBoolCell(row *xlsx.Row, v bool) {
	if v {
		row.AddCell().Value = "yes"
	} else {
		row.AddCell()
	}
}
