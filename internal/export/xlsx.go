// Package export writes customer populations to spreadsheet and JSON files.
package export

import (
	"io"
	"slices"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/greenbag/intervention-cli/internal/model"
)

// DefaultSheet is the sheet name used when none is given.
const DefaultSheet = "At-Risk Customers"

// Columns of Header holding integers.
const (
	colRiskScore      = 2
	colMissedPayments = 11
)

// Header is the first row of every export.
var Header = []string{
	"ID", "Name", "Risk Score", "Trigger", "Recommended Action", "Status",
	"Requested Help", "Request Date", "Phone", "Email", "Loan Amount", "Missed Payments",
}

// XLSXOptions configures the spreadsheet writer.
type XLSXOptions struct {
	SheetName string // default DefaultSheet
}

// BuildXLSX lays rows out on a single sheet under Header. Numbers are stored
// as numeric cells.
func BuildXLSX(rows []model.CustomerRecord, opts XLSXOptions) (*xlsx.File, error) {
	name := opts.SheetName
	if name == "" {
		name = DefaultSheet
	}

	f := xlsx.NewFile()
	sheet, err := f.AddSheet(name)
	if err != nil {
		return nil, eris.Wrapf(err, "export: add sheet %q", name)
	}

	hdr := sheet.AddRow()
	for _, h := range Header {
		hdr.AddCell().SetString(h)
	}

	for _, r := range rows {
		row := sheet.AddRow()
		for j, v := range Record(r) {
			switch j {
			case colRiskScore:
				row.AddCell().SetInt(r.RiskScore)
			case colMissedPayments:
				row.AddCell().SetInt(r.MissedPayments)
			default:
				row.AddCell().SetString(v)
			}
		}
	}

	return f, nil
}

// WriteXLSX saves rows to path.
func WriteXLSX(path string, rows []model.CustomerRecord, opts XLSXOptions) error {
	f, err := BuildXLSX(rows, opts)
	if err != nil {
		return err
	}
	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "export: save %s", path)
	}
	return nil
}

// EncodeXLSX streams the workbook to w.
func EncodeXLSX(w io.Writer, rows []model.CustomerRecord, opts XLSXOptions) error {
	f, err := BuildXLSX(rows, opts)
	if err != nil {
		return err
	}
	if err := f.Write(w); err != nil {
		return eris.Wrap(err, "export: write xlsx")
	}
	return nil
}

// ReadXLSX reads back a sheet written by WriteXLSX, header row included.
// An empty sheet name reads the first sheet.
func ReadXLSX(path, sheetName string) ([][]string, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "export: open xlsx")
	}

	var sheet *xlsx.Sheet
	if sheetName != "" {
		s, ok := f.Sheet[sheetName]
		if !ok {
			return nil, eris.Errorf("export: sheet %q not found", sheetName)
		}
		sheet = s
	} else {
		if len(f.Sheets) == 0 {
			return nil, eris.New("export: workbook has no sheets")
		}
		sheet = f.Sheets[0]
	}

	out := make([][]string, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = cell.String()
		}
		out = append(out, cells)
	}
	return out, nil
}

// ReadRecords reads customers back from a sheet written by WriteXLSX or
// EncodeXLSX. The first row must be Header.
func ReadRecords(path, sheetName string) ([]model.CustomerRecord, error) {
	cells, err := ReadXLSX(path, sheetName)
	if err != nil {
		return nil, err
	}
	if len(cells) == 0 || !slices.Equal(cells[0], Header) {
		return nil, eris.Errorf("export: %s has no customer header row", path)
	}

	out := make([]model.CustomerRecord, 0, len(cells)-1)
	for i, row := range cells[1:] {
		r, err := ParseRecord(row)
		if err != nil {
			return nil, eris.Wrapf(err, "export: row %d", i+2)
		}
		out = append(out, r)
	}
	return out, nil
}

// ParseRecord is the inverse of Record. Missing trailing cells read as
// empty.
func ParseRecord(cells []string) (model.CustomerRecord, error) {
	if len(cells) < len(Header) {
		cells = append(slices.Clone(cells), make([]string, len(Header)-len(cells))...)
	}

	score, err := strconv.Atoi(cells[colRiskScore])
	if err != nil {
		return model.CustomerRecord{}, eris.Wrapf(err, "export: risk score %q", cells[colRiskScore])
	}
	missed := 0
	if v := cells[colMissedPayments]; v != "" {
		if missed, err = strconv.Atoi(v); err != nil {
			return model.CustomerRecord{}, eris.Wrapf(err, "export: missed payments %q", v)
		}
	}

	return model.CustomerRecord{
		ID:                cells[0],
		Name:              cells[1],
		RiskScore:         score,
		Trigger:           cells[3],
		RecommendedAction: cells[4],
		Status:            model.Status(cells[5]),
		RequestedHelp:     cells[6] == "Yes",
		RequestDate:       cells[7],
		Phone:             cells[8],
		Email:             cells[9],
		LoanAmount:        cells[10],
		MissedPayments:    missed,
	}, nil
}

// Record flattens r into the cell strings of one export row.
func Record(r model.CustomerRecord) []string {
	return []string{
		r.ID,
		r.Name,
		strconv.Itoa(r.RiskScore),
		r.Trigger,
		r.RecommendedAction,
		string(r.Status),
		yesNo(r.RequestedHelp),
		r.RequestDate,
		r.Phone,
		r.Email,
		r.LoanAmount,
		strconv.Itoa(r.MissedPayments),
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
