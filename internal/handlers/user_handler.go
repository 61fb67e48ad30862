package handlers

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"taskboard/internal/forms"
	"taskboard/internal/models"
	"taskboard/internal/services"
)

const usersPage = "/users"

type UserHandler struct {
	service services.UserService
}

func NewUserHandler(service services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// GET /users
func (h *UserHandler) List(c *gin.Context) {
	data := gin.H{}
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		log.Printf("[user][list][err] %v", err)
		users = []models.User{}
		data["Alert"] = services.AlertMessage(err, services.MsgLoadUsers)
	}
	data["Users"] = users
	c.HTML(http.StatusOK, "users", page(c, "Users", data))
}

// POST /users
func (h *UserHandler) Create(c *gin.Context) {
	var form forms.UserForm
	if err := c.ShouldBind(&form); err != nil {
		log.Printf("[user][create][bind][err] %v", err)
		redirectAlert(c, usersPage, services.MsgCreateUser)
		return
	}
	if _, err := h.service.Create(c.Request.Context(), form); err != nil {
		redirectAlert(c, usersPage, services.AlertMessage(err, services.MsgCreateUser))
		return
	}
	redirect(c, returnTo(c, usersPage))
}

// GET /users/:id/delete
func (h *UserHandler) ConfirmDelete(c *gin.Context) {
	back := returnTo(c, usersPage)
	id, ok := parseID(c)
	if !ok {
		redirectAlert(c, back, services.MsgLoadUsers)
		return
	}
	user, err := h.find(c, id)
	if err != nil {
		log.Printf("[user][delete][err] load id=%d: %v", id, err)
		redirectAlert(c, back, services.AlertMessage(err, services.MsgLoadUsers))
		return
	}
	c.HTML(http.StatusOK, "confirm", page(c, "Delete User", gin.H{
		"Message":  fmt.Sprintf("Are you sure you want to delete %s? This action cannot be undone.", user.Username),
		"Action":   "/users/" + strconv.FormatInt(id, 10) + "/delete",
		"ReturnTo": back,
	}))
}

// POST /users/:id/delete
func (h *UserHandler) Delete(c *gin.Context) {
	back := returnTo(c, usersPage)
	id, ok := parseID(c)
	if !ok {
		redirectAlert(c, back, services.MsgDeleteUser)
		return
	}
	if c.PostForm("confirm") != "yes" {
		log.Printf("[user][delete] id=%d not confirmed", id)
		redirect(c, "/users/"+strconv.FormatInt(id, 10)+"/delete?return_to="+url.QueryEscape(back))
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		redirectAlert(c, back, services.AlertMessage(err, services.MsgDeleteUser))
		return
	}
	redirect(c, back)
}

// The API has no single-user endpoint; the list is small.
func (h *UserHandler) find(c *gin.Context, id int64) (*models.User, error) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, fmt.Errorf("user %d not found", id)
}
