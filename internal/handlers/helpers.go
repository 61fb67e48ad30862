package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// parseID reads the :id path parameter.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// localPath accepts only same-site paths ("/tasks?x=1"); anything else becomes fallback.
func localPath(raw, fallback string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, "/\\") {
		return fallback
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return fallback
	}
	return u.RequestURI()
}

// returnTo is where the browser goes after a form action, from the form or the query.
func returnTo(c *gin.Context, fallback string) string {
	if v := c.PostForm("return_to"); v != "" {
		return localPath(v, fallback)
	}
	return localPath(c.Query("return_to"), fallback)
}

// withAlert adds (or replaces) the alert query parameter on a local path.
func withAlert(target, msg string) string {
	u, err := url.Parse(target)
	if err != nil {
		return target
	}
	q := u.Query()
	q.Set("alert", msg)
	u.RawQuery = q.Encode()
	return u.String()
}

// Post/redirect/get: a successful action lands on target, a failed one on target with a banner.
func redirect(c *gin.Context, target string) {
	c.Redirect(http.StatusSeeOther, target)
}

func redirectAlert(c *gin.Context, target, msg string) {
	c.Redirect(http.StatusSeeOther, withAlert(target, msg))
}

// page fills the fields every layout reads.
func page(c *gin.Context, title string, data gin.H) gin.H {
	if data == nil {
		data = gin.H{}
	}
	data["Title"] = title
	data["Path"] = c.Request.URL.Path
	data["Self"] = selfURL(c)
	if _, ok := data["Alert"]; !ok {
		data["Alert"] = c.Query("alert")
	}
	return data
}

// selfURL is the current page without its alert, used as return_to by the forms on it.
func selfURL(c *gin.Context) string {
	u := *c.Request.URL
	q := u.Query()
	q.Del("alert")
	u.RawQuery = q.Encode()
	return u.RequestURI()
}

// Health godoc
// @Summary      Liveness probe
// @Tags         System
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "taskboard"})
}
