package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"workhours/internal/accounting"
	"workhours/internal/domain"
)

// CSVHeader is the first row of every export.
var CSVHeader = []string{"date", "start_time", "end_time", "hours", "description"}

// exportServiceImpl implements the ExportService interface
type exportServiceImpl struct {
	store domain.EntryStore
}

// NewExportService creates a new ExportService instance
func NewExportService(store domain.EntryStore) ExportService {
	return &exportServiceImpl{store: store}
}

// WriteCSV writes the user's entries, newest first.
func (e *exportServiceImpl) WriteCSV(ctx context.Context, ownerID string, w io.Writer) error {
	entries, err := e.store.ListEntries(ctx, ownerID)
	if err != nil {
		return err
	}
	domain.SortEntriesForDisplay(entries)

	writer := csv.NewWriter(w)
	if err := writer.Write(CSVHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, entry := range entries {
		row := []string{
			entry.Date.String(),
			entry.StartTime.String(),
			entry.EndTime.String(),
			fmt.Sprintf("%.2f", accounting.EntryHours(entry)),
			entry.Description,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}
