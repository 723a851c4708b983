package export

import (
	"io"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/salt-nlp/workbank-cli/internal/model"
)

// combinedColumns is the ordered XLSX header, matching the CSV field names.
var combinedColumns = []string{
	"Task ID",
	"Task",
	"Occupation",
	"Domain",
	"Task Category",
	"O*NET-SOC Code",
	"Automation Desire Rating",
	"Automation Desire Std",
	"Worker Count",
	"Job Security Rating",
	"Enjoyment Rating",
	"Expert Capability Rating",
	"Confidence",
	"Automation Readiness",
	"Desire Capability Gap",
}

// WriteXLSX writes the combined table as a single-sheet XLSX workbook.
func WriteXLSX(w io.Writer, rows []model.CombinedRow) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Combined Analysis")
	if err != nil {
		return eris.Wrap(err, "export: add xlsx sheet")
	}

	header := sheet.AddRow()
	for _, col := range combinedColumns {
		header.AddCell().SetString(col)
	}

	for _, r := range rows {
		row := sheet.AddRow()
		row.AddCell().SetString(r.TaskID)
		row.AddCell().SetString(r.Task)
		row.AddCell().SetString(r.Occupation)
		row.AddCell().SetString(r.Domain)
		row.AddCell().SetString(r.Category)
		row.AddCell().SetString(r.SOCCode)
		row.AddCell().SetFloat(r.AutomationDesire)
		setOptional(row.AddCell(), r.DesireStdDev)
		row.AddCell().SetInt(r.WorkerCount)
		row.AddCell().SetFloat(r.JobSecurity)
		row.AddCell().SetFloat(r.Enjoyment)
		setOptional(row.AddCell(), r.ExpertCapability)
		setOptional(row.AddCell(), r.ExpertConfidence)
		setOptional(row.AddCell(), r.AutomationReadiness)
		setOptional(row.AddCell(), r.DesireCapabilityGap)
	}

	return eris.Wrap(f.Write(w), "export: write xlsx")
}

// setOptional leaves the cell empty for absent values, mirroring the CSV
// empty-cell convention.
func setOptional(cell *xlsx.Cell, v *float64) {
	if v == nil {
		cell.SetString("")
		return
	}
	cell.SetFloat(*v)
}
