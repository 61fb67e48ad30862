package services

import (
	"fmt"
	"sort"
	"time"

	"taskboard/internal/models"
)

// Notification is one "deadline approaching" entry on the dashboard.
type Notification struct {
	Type         string    `json:"type"`
	TaskID       int64     `json:"task_id"`
	TaskTitle    string    `json:"task_title"`
	DueDate      time.Time `json:"due_date"`
	DaysUntil    int64     `json:"days_until"`
	HoursUntil   int64     `json:"hours_until"`
	MinutesUntil int64     `json:"minutes_until"`
	SecondsUntil int64     `json:"seconds_until"`
	TotalSeconds int64     `json:"total_seconds"`
	Message      string    `json:"message"`
}

// UpcomingDeadlines lists open tasks due in [now, now+days], earliest first.
func UpcomingDeadlines(tasks []models.Task, now time.Time, days int) []Notification {
	cutoff := now.Add(time.Duration(days) * 24 * time.Hour)

	out := []Notification{}
	for i := range tasks {
		t := &tasks[i]
		due, ok := t.Due()
		if !ok || t.Status == models.StatusCompleted {
			continue
		}
		if due.Before(now) || due.After(cutoff) {
			continue
		}
		out = append(out, deadlineNotification(t, due, now))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	return out
}

func deadlineNotification(t *models.Task, due, now time.Time) Notification {
	total := int64(due.Sub(now) / time.Second)
	n := Notification{
		Type:         "deadline_approaching",
		TaskID:       t.ID,
		TaskTitle:    t.Title,
		DueDate:      due,
		DaysUntil:    total / 86400,
		HoursUntil:   total / 3600, // всего часов, не по модулю 24
		MinutesUntil: (total / 60) % 60,
		SecondsUntil: total % 60,
		TotalSeconds: total,
	}
	n.Message = deadlineMessage(t.Title, n)
	return n
}

func deadlineMessage(title string, n Notification) string {
	prefix := fmt.Sprintf("Task \"%s\" is due in ", title)
	switch {
	case n.DaysUntil > 0:
		return prefix + fmt.Sprintf("%d day(s)", n.DaysUntil)
	case n.HoursUntil > 0:
		if m := (n.TotalSeconds % 3600) / 60; m > 0 {
			return prefix + fmt.Sprintf("%d hour(s), %d minute(s)", n.HoursUntil, m)
		}
		return prefix + fmt.Sprintf("%d hour(s)", n.HoursUntil)
	case n.MinutesUntil > 0:
		if n.SecondsUntil > 0 {
			return prefix + fmt.Sprintf("%d minute(s), %d second(s)", n.MinutesUntil, n.SecondsUntil)
		}
		return prefix + fmt.Sprintf("%d minute(s)", n.MinutesUntil)
	case n.SecondsUntil > 0:
		return prefix + fmt.Sprintf("%d second(s)", n.SecondsUntil)
	}
	return fmt.Sprintf("Task \"%s\" is overdue!", title)
}
