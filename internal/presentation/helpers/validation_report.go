package helpers

import (
	"fmt"
	"time"

	"github.com/anuntech/decision-backend/internal/domain/models"
	"github.com/anuntech/decision-backend/internal/utils"
	"github.com/xuri/excelize/v2"
)

const (
	ValidationReportSheet = "Validation"
	ChildrenReportSheet   = "Children"
)

var childrenReportHeader = []any{"Last name", "First name", "Patronymic", "Birth date", "SNILS", "Considered in calc", "Not in calc reason"}

// BuildValidationReport renders a stored validation and the applicant's children as an xlsx workbook.
func BuildValidationReport(validation *models.Validation, application *models.Application, children []models.Child) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ValidationReportSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	description := ""
	if validation.ErrorDescription != nil {
		description = *validation.ErrorDescription
	}

	summary := [][]any{
		{"Decision", validation.DocId.Hex()},
		{"Validation type", validation.TypeId},
		{"Result", validation.Result},
		{"Description", description},
		{"Checked at", validation.CheckedAt.UTC().Format(time.RFC3339)},
		{"Application", application.IncomingNumber},
		{"Reference date", utils.FormatDate(application.ReferenceDate())},
		{"Org unit", application.OrgUnit.FormattedCodeName()},
	}
	if err := writeRows(f, ValidationReportSheet, summary); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(ChildrenReportSheet); err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}

	rows := [][]any{childrenReportHeader}
	for _, child := range children {
		considered := "unknown"
		if child.IsConsideredInCalc != nil {
			considered = fmt.Sprint(*child.IsConsideredInCalc)
		}
		reason := ""
		if child.NotInCalcReason != nil {
			reason = *child.NotInCalcReason
		}

		rows = append(rows, []any{
			child.LastName,
			child.FirstName,
			child.Patronymic,
			utils.FormatDate(child.BirthDate),
			utils.SnilsString(child.Snils),
			considered,
			reason,
		})
	}
	if err := writeRows(f, ChildrenReportSheet, rows); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}

	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
