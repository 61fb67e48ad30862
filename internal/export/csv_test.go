package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"taskboard/internal/models"
)

func TestWriteTasksCSV(t *testing.T) {
	alice := int64(1)
	ghost := int64(42)
	due := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	tasks := []models.Task{
		{ID: 1, Title: "Assigned", Status: models.StatusPending, Priority: models.PriorityHigh,
			AssignedTo: &alice, DueDate: models.NewTimestamp(due), CreatedAt: models.NewTimestamp(due)},
		{ID: 2, Title: "Nobody, really", Description: "has \"quotes\""},
		{ID: 3, Title: "Unknown user", AssignedTo: &ghost},
	}
	users := []models.User{{ID: 1, Username: "alice", Email: "a@example.com"}}

	var buf bytes.Buffer
	if err := WriteTasksCSV(&buf, tasks, users, time.UTC); err != nil {
		t.Fatalf("WriteTasksCSV: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("rows = %d, want header + 3", len(rows))
	}
	if rows[0][0] != "ID" || rows[0][8] != "Updated At" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][5] != "2026-10-19 12:00:00" || rows[1][6] != "alice" || rows[1][7] != "2026-10-19 12:00:00" {
		t.Errorf("row 1 = %v", rows[1])
	}
	if rows[2][1] != "Nobody, really" || rows[2][2] != `has "quotes"` || rows[2][6] != "Unassigned" {
		t.Errorf("row 2 = %v", rows[2])
	}
	if rows[3][6] != "Unassigned" {
		t.Errorf("unknown assignee should read Unassigned, got %q", rows[3][6])
	}
}

func TestCSVFilename(t *testing.T) {
	got := CSVFilename(time.Date(2026, 10, 19, 8, 5, 9, 0, time.UTC))
	if got != "tasks_export_20261019_080509.csv" {
		t.Errorf("got %q", got)
	}
}
