package admin

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/lceo-rwanda/portal/internal/portal/mockdata"
)

const exportFilename = "lceo-beneficiaries.csv"

var exportHeader = []string{
	"ID", "Full Name", "Program", "Status", "District",
	"Enrollment Date", "Start Capital (RWF)", "Current Capital (RWF)", "Business Type",
}

// writeBeneficiariesCSV writes one row per beneficiary after a header row.
func writeBeneficiariesCSV(w io.Writer, list []mockdata.Beneficiary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, b := range list {
		program := b.ProgramID
		if p, ok := mockdata.ProgramByID(b.ProgramID); ok {
			program = p.Name.EN
		}
		enrolled := ""
		if !b.EnrollmentDate.IsZero() {
			enrolled = b.EnrollmentDate.Format("2006-01-02")
		}
		row := []string{
			b.ID, b.FullName, program, string(b.Status), b.Location.District,
			enrolled, b.StartCapital.StringFixed(0), b.CurrentCapital.StringFixed(0), b.BusinessType,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
