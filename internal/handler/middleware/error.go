package middleware

import (
	"log/slog"
	"net/http"

	"hospital-ops/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the newest public error a handler recorded without writing a body.
// A handler that neither wrote nor set a status gets a 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if resp, ok := lastPublicResponse(c.Errors); ok {
			c.JSON(resp.Status, resp)
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		if last := c.Errors.Last(); last != nil {
			slog.Error("unhandled request error", "path", c.Request.URL.Path, "error", last.Error())
		}
		c.JSON(http.StatusInternalServerError, httperr.Internal())
	}
}

func lastPublicResponse(list []*gin.Error) (httperr.Response, bool) {
	for i := len(list) - 1; i >= 0; i-- {
		if !list[i].IsType(gin.ErrorTypePublic) {
			continue
		}
		if resp, ok := list[i].Meta.(httperr.Response); ok {
			return resp, true
		}
	}
	return httperr.Response{}, false
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)
				c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.Internal())
			}
		}()
		c.Next()
	}
}
