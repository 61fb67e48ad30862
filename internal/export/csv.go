// Package export writes the task list in download formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"taskboard/internal/models"
)

const csvTimeLayout = "2006-01-02 15:04:05"

var csvHeader = []string{"ID", "Title", "Description", "Status", "Priority",
	"Due Date", "Assigned To", "Created At", "Updated At"}

// CSVFilename is tasks_export_YYYYMMDD_HHMMSS.csv for the given moment.
func CSVFilename(now time.Time) string {
	return "tasks_export_" + now.Format("20060102_150405") + ".csv"
}

// WriteTasksCSV writes one row per task; assignees are resolved through users.
func WriteTasksCSV(w io.Writer, tasks []models.Task, users []models.User, loc *time.Location) error {
	usernames := make(map[int64]string, len(users))
	for _, u := range users {
		usernames[u.ID] = u.Username
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i := range tasks {
		t := &tasks[i]
		assignee := "Unassigned"
		if t.AssignedTo != nil {
			if name, ok := usernames[*t.AssignedTo]; ok {
				assignee = name
			} else if t.AssignedToUsername != "" {
				assignee = t.AssignedToUsername
			}
		}
		row := []string{
			strconv.FormatInt(t.ID, 10),
			t.Title,
			t.Description,
			string(t.Status),
			string(t.Priority),
			formatTime(t.DueDate, loc),
			assignee,
			formatTime(t.CreatedAt, loc),
			formatTime(t.UpdatedAt, loc),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %d: %w", t.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatTime(ts *models.Timestamp, loc *time.Location) string {
	if ts == nil {
		return ""
	}
	if ts.IsZero() {
		return ts.Raw
	}
	return ts.In(loc).Format(csvTimeLayout)
}
