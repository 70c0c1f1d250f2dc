// Package handlers contains the HTTP layer. Handlers bind and validate
// request payloads, pull the authenticated user from the context, call the
// service layer and shape responses. They never trust a client-supplied
// owner field.
package handlers

import (
	"strconv"
	"time"

	apperrors "fintrack/internal/errors"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// getUserID extracts the authenticated user's id set by the auth middleware.
func getUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("userID")
	if !exists {
		respondWithError(c, apperrors.ErrUnauthorized)
		return 0, false
	}
	userID, ok := v.(uint)
	if !ok {
		respondWithError(c, apperrors.ErrUnauthorized)
		return 0, false
	}
	return userID, true
}

// parsePathID parses the :id path parameter.
func parsePathID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, apperrors.WithDetail(apperrors.ErrInvalidInput, "Invalid id")
	}
	return uint(id), nil
}

// respondWithError attaches the error to the context for the error
// handler middleware to render.
func respondWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// parseFlexibleTime accepts either a bare date or a full RFC 3339 timestamp.
func parseFlexibleTime(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// today returns the current date truncated to midnight UTC. Used as the
// default when a date field is omitted.
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// formatDate renders a stored timestamp as a bare date for responses.
// Dates are stored at UTC midnight, so formatting must stay in UTC or a
// process west of UTC would shift every date back a day.
func formatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}
