package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"taskboard/internal/app"
	"taskboard/internal/calendar"
	"taskboard/internal/export"
	"taskboard/internal/models"
)

// monthView picks the requested month, or the current one in the display zone.
func monthView(svc *app.Services, tasks []models.Task, year, month int, now time.Time) calendar.View {
	today := calendar.Today(tasks, now, svc.Renderer.Location())
	if year <= 0 {
		year = today.Year
	}
	if month <= 0 {
		month = int(today.Month)
	}
	return calendar.NewView(tasks, year, time.Month(month))
}

func printCalendar(ctx context.Context, w io.Writer, svc *app.Services, year, month int) error {
	tasks, err := svc.Tasks.List(ctx)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	grid := svc.Renderer.Build(monthView(svc, tasks, year, month, time.Now()))
	_, err = io.WriteString(w, grid.Text())
	return err
}

func exportTasks(ctx context.Context, svc *app.Services, format, out string, year, month int) error {
	tasks, err := svc.Tasks.List(ctx)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	now := time.Now()
	loc := svc.Renderer.Location()

	var write func(io.Writer) error
	switch format {
	case "csv":
		users, err := svc.Users.List(ctx)
		if err != nil {
			log.Printf("[export][csv][warn] users: %v", err)
		}
		if out == "" {
			out = export.CSVFilename(now.In(loc))
		}
		write = func(w io.Writer) error { return export.WriteTasksCSV(w, tasks, users, loc) }
	case "pdf":
		grid := svc.Renderer.Build(monthView(svc, tasks, year, month, now))
		if out == "" {
			out = fmt.Sprintf("calendar_%04d_%02d.pdf", grid.Year, int(grid.Month))
		}
		write = func(w io.Writer) error { return svc.PDF.WriteMonth(w, grid) }
	default:
		return fmt.Errorf("unknown export format %q", format)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", out, err)
	}
	log.Printf("[export][%s][ok] %s", format, out)
	return nil
}
