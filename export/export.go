// Package export renders the check-in list as downloadable CSV and XLSX
// files for the admin screen.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"tmht.org/checkin/model"
	"tmht.org/checkin/utils"
)

var header = []string{
	"Child Name", "Parent Name", "Phone", "Service Time",
	"Code", "QR URL", "Check-In", "Pick-Up", "Notes",
}

func fields(r model.Record) []string {
	pickUp := ""
	if r.PickUpAt != nil {
		pickUp = r.PickUpAt.Format(time.RFC3339)
	}
	return []string{
		r.ChildName, r.ParentName, r.Phone, r.ServiceTime,
		r.Code, r.QRUrl, r.CheckInAt.Format(time.RFC3339), pickUp, r.Notes,
	}
}

// WriteCSV writes one row per record. Every field is double-quoted with
// internal quotes doubled, so commas, quotes and newlines in names or
// notes survive a round trip through any CSV parser.
func WriteCSV(w io.Writer, records []model.Record) error {
	lines := make([]string, 0, len(records)+1)
	lines = append(lines, joinQuoted(header))
	for _, r := range records {
		lines = append(lines, joinQuoted(fields(r)))
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	return err
}

func joinQuoted(row []string) string {
	quoted := utils.Map(row, func(v string) string {
		return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
	})
	return strings.Join(quoted, ",")
}

// WriteXLSX writes the same sheet as WriteCSV into a single "Check-Ins"
// worksheet.
func WriteXLSX(w io.Writer, records []model.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Check-Ins"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	writeRow := func(rowNum int, values []string) error {
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		return nil
	}

	if err := writeRow(1, header); err != nil {
		return err
	}
	for i, r := range records {
		if err := writeRow(i+2, fields(r)); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
	}

	return f.Write(w)
}
