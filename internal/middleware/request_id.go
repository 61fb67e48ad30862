package middleware

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/requestid"
)

// RequestID stamps every request with an id: the caller's X-Request-ID if it sent one,
// a fresh uuid otherwise. The id is echoed on the response and travels in the request
// context so upstream API calls carry it too.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestid.Header)
		if id == "" || len(id) > 128 {
			id = requestid.New()
		}
		c.Set("request_id", id)
		c.Request = c.Request.WithContext(requestid.WithID(c.Request.Context(), id))
		c.Writer.Header().Set(requestid.Header, id)
		c.Next()
	}
}
