package middleware

import (
	"errors"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors attached to the Gin context into the
// standard error body: a top-level human-readable detail with the
// machine-readable code alongside. AppErrors map to their status code;
// anything else becomes a 500 with no internal detail exposed.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) {
			logger.Get().Errorw("unhandled error",
				"error", err,
				"path", c.Request.URL.Path,
			)
			appErr = apperrors.ErrInternalServer
		} else if appErr.Internal != nil {
			logger.Get().Errorw("request failed",
				"code", appErr.Code,
				"error", appErr.Internal,
				"path", c.Request.URL.Path,
			)
		}

		if c.Writer.Written() {
			return
		}

		c.JSON(appErr.StatusCode, gin.H{
			"detail": appErr.Detail,
			"code":   appErr.Code,
		})
	}
}
