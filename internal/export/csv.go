// Package export renders history as CSV for sharing with other tools.
package export

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/SyreeseOfficial/Momentum/internal/models"
)

// Row is one exported line: a single tracker's count on a single day.
type Row struct {
	Date  string `csv:"Date"`
	Name  string `csv:"Name"`
	Count int    `csv:"Count"`
}

// Rows flattens history into export rows, one per detail entry,
// ordered by date. Names containing commas are quoted by the CSV
// encoder on write.
func Rows(history models.HistoryLog) []Row {
	var rows []Row
	for _, record := range history.SortedByDate() {
		for _, detail := range record.Details {
			rows = append(rows, Row{
				Date:  record.Date,
				Name:  detail.TrackerName,
				Count: detail.Count,
			})
		}
	}
	return rows
}

// Write emits the CSV document, header included, to w.
func Write(w io.Writer, history models.HistoryLog) error {
	rows := Rows(history)
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}

// WriteFile writes the CSV document to path.
func WriteFile(path string, history models.HistoryLog) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}

	if err := Write(f, history); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
