package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"taskboard/internal/calendar"
	"taskboard/internal/models"
	"taskboard/internal/services"
)

type CalendarHandler struct {
	tasks    services.TaskService
	renderer *calendar.Renderer
	now      func() time.Time
}

func NewCalendarHandler(tasks services.TaskService, renderer *calendar.Renderer) *CalendarHandler {
	return &CalendarHandler{tasks: tasks, renderer: renderer, now: time.Now}
}

// GET /calendar?year=2026&month=10
func (h *CalendarHandler) Page(c *gin.Context) {
	data := gin.H{}
	tasks, err := h.tasks.List(c.Request.Context())
	if err != nil {
		log.Printf("[calendar][page][err] %v", err)
		tasks = []models.Task{}
		data["Alert"] = services.AlertMessage(err, services.MsgLoadTasks)
	}

	markup, view, err := h.renderer.HTML(requestedView(c, tasks, h.now(), h.renderer.Location()))
	if err != nil {
		log.Printf("[calendar][render][err] %v", err)
		c.String(http.StatusInternalServerError, "calendar unavailable")
		return
	}
	data["Calendar"] = markup
	data["Year"] = view.Year
	data["Month"] = int(view.Month)
	c.HTML(http.StatusOK, "calendar_page", page(c, "Calendar", data))
}

// MonthGrid godoc
// @Summary      Month grid
// @Description  Tasks bucketed by local due day, Sunday-first, with overflow collapsed to "+N more"
// @Tags         Calendar
// @Produce      json
// @Param        year   query     int  false  "Year (default current)"
// @Param        month  query     int  false  "Month 1-12 (default current)"
// @Success      200    {object}  calendar.Grid
// @Failure      502    {object}  map[string]string
// @Router       /api/calendar [get]
func (h *CalendarHandler) MonthGrid(c *gin.Context) {
	tasks, err := h.tasks.List(c.Request.Context())
	if err != nil {
		log.Printf("[calendar][json][err] %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": services.AlertMessage(err, services.MsgLoadTasks)})
		return
	}
	c.JSON(http.StatusOK, h.renderer.Build(requestedView(c, tasks, h.now(), h.renderer.Location())))
}

// requestedView reads ?year=&month= (month 1-12); missing or malformed values fall back
// to the current month in loc.
func requestedView(c *gin.Context, tasks []models.Task, now time.Time, loc *time.Location) calendar.View {
	today := calendar.Today(tasks, now, loc)
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 1 || year > 9999 {
		year = today.Year
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		month = int(today.Month)
	}
	return calendar.NewView(tasks, year, time.Month(month))
}
