package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimestamp_Unmarshal(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		invalid bool
	}{
		{`"2026-10-19T12:00:00Z"`, time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC), false},
		{`"2026-10-19T12:00:00+05:00"`, time.Date(2026, 10, 19, 7, 0, 0, 0, time.UTC), false},
		{`"2026-10-19T12:00:00.123456"`, time.Date(2026, 10, 19, 12, 0, 0, 123456000, time.UTC), false},
		{`"2026-10-19T12:00:00"`, time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC), false},
		{`"2026-10-19T12:00"`, time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC), false},
		{`"2026-10-19 12:00:00"`, time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC), false},
		{`"tomorrow"`, time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var ts Timestamp
			if err := json.Unmarshal([]byte(tt.in), &ts); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if !ts.Equal(tt.want) {
				t.Errorf("got %v, want %v", ts.Time, tt.want)
			}
			if ts.Invalid() != tt.invalid {
				t.Errorf("Invalid() = %v", ts.Invalid())
			}
		})
	}
}

func TestTask_Due(t *testing.T) {
	var task Task
	body := `{"id": 1, "title": "x", "due_date": null, "assigned_to": null}`
	if err := json.Unmarshal([]byte(body), &task); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := task.Due(); ok {
		t.Error("null due_date should have no due time")
	}
	if task.DueDate.Invalid() {
		t.Error("nil timestamp must not be invalid")
	}

	body = `{"id": 2, "title": "y", "due_date": "not a date"}`
	task = Task{}
	if err := json.Unmarshal([]byte(body), &task); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := task.Due(); ok {
		t.Error("garbage due_date should have no due time")
	}
}

func TestTimestamp_Marshal(t *testing.T) {
	ts := NewTimestamp(time.Date(2026, 10, 19, 17, 0, 0, 0, time.FixedZone("UTC+5", 5*3600)))
	b, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2026-10-19T12:00:00Z"` {
		t.Errorf("got %s", b)
	}
}
