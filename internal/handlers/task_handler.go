package handlers

import (
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"taskboard/internal/forms"
	"taskboard/internal/models"
	"taskboard/internal/services"
)

const tasksPage = "/tasks"

type TaskHandler struct {
	service services.TaskService
	users   services.UserService
	loc     *time.Location
}

func NewTaskHandler(service services.TaskService, users services.UserService, loc *time.Location) *TaskHandler {
	return &TaskHandler{service: service, users: users, loc: loc}
}

// GET /tasks
func (h *TaskHandler) List(c *gin.Context) {
	data := gin.H{"Form": newTaskForm()}

	tasks, err := h.service.List(c.Request.Context())
	if err != nil {
		log.Printf("[task][list][err] %v", err)
		tasks = []models.Task{}
		data["Alert"] = services.AlertMessage(err, services.MsgLoadTasks)
	}
	data["Tasks"] = tasks
	data["Users"] = h.userOptions(c)

	c.HTML(http.StatusOK, "tasks", page(c, "Tasks", data))
}

// GET /tasks/new
func (h *TaskHandler) New(c *gin.Context) {
	c.HTML(http.StatusOK, "task_edit", page(c, "New Task", gin.H{
		"Form":  newTaskForm(),
		"Users": h.userOptions(c),
	}))
}

// GET /tasks/:id/edit
func (h *TaskHandler) Edit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		redirectAlert(c, tasksPage, services.MsgLoadTask)
		return
	}
	task, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		log.Printf("[task][edit][err] id=%d: %v", id, err)
		redirectAlert(c, tasksPage, services.AlertMessage(err, services.MsgLoadTask))
		return
	}
	c.HTML(http.StatusOK, "task_edit", page(c, "Edit Task", gin.H{
		"Form":  forms.EditTaskForm(task, h.loc),
		"Users": h.userOptions(c),
	}))
}

// POST /tasks: creates when the form carries no id, updates otherwise.
func (h *TaskHandler) Save(c *gin.Context) {
	var form forms.TaskForm
	bindErr := c.ShouldBind(&form)

	failPage := tasksPage + "/new"
	if form.ID != "" {
		failPage = tasksPage + "/" + form.ID + "/edit"
	}
	failPage = localPath(c.PostForm("from"), failPage)

	if bindErr != nil {
		log.Printf("[task][save][bind][err] %v", bindErr)
		redirectAlert(c, failPage, services.MsgSaveTask)
		return
	}

	task, err := h.service.Save(c.Request.Context(), form)
	if err != nil {
		log.Printf("[task][save][err] id=%q: %v", form.ID, err)
		redirectAlert(c, failPage, services.AlertMessage(err, services.MsgSaveTask))
		return
	}
	log.Printf("[task][save][ok] id=%d", task.ID)
	redirect(c, returnTo(c, tasksPage))
}

// GET /tasks/:id/delete
func (h *TaskHandler) ConfirmDelete(c *gin.Context) {
	back := returnTo(c, tasksPage)
	id, ok := parseID(c)
	if !ok {
		redirectAlert(c, back, services.MsgLoadTask)
		return
	}
	task, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		log.Printf("[task][delete][err] load id=%d: %v", id, err)
		redirectAlert(c, back, services.AlertMessage(err, services.MsgLoadTask))
		return
	}
	c.HTML(http.StatusOK, "confirm", page(c, "Delete Task", gin.H{
		"Task":     task,
		"Message":  "Are you sure you want to delete this task?",
		"Action":   "/tasks/" + strconv.FormatInt(id, 10) + "/delete",
		"ReturnTo": back,
	}))
}

// POST /tasks/:id/delete. Nothing is sent upstream without confirm=yes.
func (h *TaskHandler) Delete(c *gin.Context) {
	back := returnTo(c, tasksPage)
	id, ok := parseID(c)
	if !ok {
		redirectAlert(c, back, services.MsgDeleteTask)
		return
	}
	if c.PostForm("confirm") != "yes" {
		log.Printf("[task][delete] id=%d not confirmed", id)
		redirect(c, "/tasks/"+strconv.FormatInt(id, 10)+"/delete?return_to="+url.QueryEscape(back))
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		redirectAlert(c, back, services.AlertMessage(err, services.MsgDeleteTask))
		return
	}
	redirect(c, back)
}

// GET /tasks/:id/assign
func (h *TaskHandler) AssignForm(c *gin.Context) {
	back := returnTo(c, tasksPage)
	id, ok := parseID(c)
	if !ok {
		redirectAlert(c, back, services.MsgLoadTask)
		return
	}
	view, err := h.service.AssignOptions(c.Request.Context(), id)
	if err != nil {
		log.Printf("[task][assign][err] options id=%d: %v", id, err)
		redirectAlert(c, back, services.AlertMessage(err, services.MsgLoadUsers))
		return
	}
	c.HTML(http.StatusOK, "task_assign", page(c, "Assign Task", gin.H{
		"View":     view,
		"ReturnTo": back,
	}))
}

// POST /tasks/:id/assign; an empty user_id unassigns.
func (h *TaskHandler) Assign(c *gin.Context) {
	back := returnTo(c, tasksPage)
	id, ok := parseID(c)
	if !ok {
		redirectAlert(c, back, services.MsgAssignTask)
		return
	}
	var form forms.AssignForm
	if err := c.ShouldBind(&form); err != nil {
		redirectAlert(c, back, services.MsgAssignTask)
		return
	}
	userID, err := form.Assignee()
	if err != nil {
		log.Printf("[task][assign][bind][err] %v", err)
		redirectAlert(c, back, services.MsgAssignTask)
		return
	}

	if _, err := h.service.Assign(c.Request.Context(), id, userID); err != nil {
		redirectAlert(c, back, services.AlertMessage(err, services.MsgAssignTask))
		return
	}
	redirect(c, back)
}

func (h *TaskHandler) userOptions(c *gin.Context) []models.User {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		log.Printf("[task][users][err] %v", err)
		return []models.User{}
	}
	return users
}

func newTaskForm() forms.TaskForm {
	return forms.TaskForm{
		Priority: string(models.PriorityMedium),
		Status:   string(models.StatusPending),
		DueTime:  forms.DefaultDueTime,
	}
}
