package handler

import (
	"errors"
	"net/http"

	"catalog/internal/service"
	"catalog/pkg/paginate"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// statusFromErr maps service and pagination errors onto HTTP statuses.
func statusFromErr(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, service.ErrBadInput), errors.Is(err, paginate.ErrInvalidArgument):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// actorID pulls the authenticated user id the auth middleware stored, if any.
func actorID(c *gin.Context) *uuid.UUID {
	raw := c.GetString("user_id")
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}
