package handlers

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskboard/internal/calendar"
	"taskboard/internal/export"
	"taskboard/internal/models"
	"taskboard/internal/pdf"
	"taskboard/internal/services"
)

// ReportHandler serves the read-only views over the whole task list: the dashboard,
// deadline notifications and the downloads.
type ReportHandler struct {
	tasks        services.TaskService
	users        services.UserService
	renderer     *calendar.Renderer
	pdf          pdf.Generator
	deadlineDays int
	now          func() time.Time
}

func NewReportHandler(tasks services.TaskService, users services.UserService, renderer *calendar.Renderer, gen pdf.Generator, deadlineDays int) *ReportHandler {
	return &ReportHandler{
		tasks:        tasks,
		users:        users,
		renderer:     renderer,
		pdf:          gen,
		deadlineDays: deadlineDays,
		now:          time.Now,
	}
}

// GET /
func (h *ReportHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	data := gin.H{"DeadlineDays": h.deadlineDays}

	tasks, err := h.tasks.List(ctx)
	if err != nil {
		log.Printf("[dashboard][tasks][err] %v", err)
		tasks = []models.Task{}
		data["Alert"] = services.AlertMessage(err, services.MsgLoadTasks)
	}
	activity, err := h.tasks.RecentActivity(ctx)
	if err != nil {
		log.Printf("[dashboard][activity][err] %v", err)
		activity = []models.Activity{}
	}

	counts := map[models.TaskStatus]int{}
	for _, t := range tasks {
		counts[t.Status]++
	}
	data["Tasks"] = tasks
	data["Pending"] = counts[models.StatusPending]
	data["InProgress"] = counts[models.StatusInProgress]
	data["Completed"] = counts[models.StatusCompleted]
	data["Notifications"] = services.UpcomingDeadlines(tasks, h.now(), h.deadlineDays)
	data["Activity"] = activity

	c.HTML(http.StatusOK, "dashboard", page(c, "Dashboard", data))
}

// Notifications godoc
// @Summary      Upcoming deadlines
// @Description  Open tasks due within the configured window, earliest first
// @Tags         Tasks
// @Produce      json
// @Success      200  {array}   services.Notification
// @Failure      502  {object}  map[string]string
// @Router       /api/notifications [get]
func (h *ReportHandler) Notifications(c *gin.Context) {
	tasks, err := h.tasks.List(c.Request.Context())
	if err != nil {
		log.Printf("[notifications][err] %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": services.AlertMessage(err, services.MsgLoadTasks)})
		return
	}
	c.JSON(http.StatusOK, services.UpcomingDeadlines(tasks, h.now(), h.deadlineDays))
}

// GET /export/csv
func (h *ReportHandler) ExportCSV(c *gin.Context) {
	ctx := c.Request.Context()
	tasks, err := h.tasks.List(ctx)
	if err != nil {
		log.Printf("[export][csv][err] tasks: %v", err)
		redirectAlert(c, tasksPage, services.MsgExport)
		return
	}
	users, err := h.users.List(ctx)
	if err != nil {
		// still exportable; assignees fall back to the name embedded in the task
		log.Printf("[export][csv][warn] users: %v", err)
		users = nil
	}

	var buf bytes.Buffer
	if err := export.WriteTasksCSV(&buf, tasks, users, h.renderer.Location()); err != nil {
		log.Printf("[export][csv][err] %v", err)
		redirectAlert(c, tasksPage, services.MsgExport)
		return
	}
	filename := export.CSVFilename(h.now().In(h.renderer.Location()))
	log.Printf("[export][csv][ok] rows=%d file=%s", len(tasks), filename)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// GET /export/calendar.pdf?year=&month=
func (h *ReportHandler) ExportPDF(c *gin.Context) {
	tasks, err := h.tasks.List(c.Request.Context())
	if err != nil {
		log.Printf("[export][pdf][err] tasks: %v", err)
		redirectAlert(c, "/calendar", services.MsgExport)
		return
	}
	grid := h.renderer.Build(requestedView(c, tasks, h.now(), h.renderer.Location()))

	var buf bytes.Buffer
	if err := h.pdf.WriteMonth(&buf, grid); err != nil {
		log.Printf("[export][pdf][err] %v", err)
		redirectAlert(c, "/calendar", services.MsgExport)
		return
	}
	filename := fmt.Sprintf("calendar_%04d_%02d.pdf", grid.Year, int(grid.Month))
	log.Printf("[export][pdf][ok] %s bytes=%d", filename, buf.Len())
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
