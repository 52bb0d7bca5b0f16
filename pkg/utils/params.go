package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

var ErrEmptyParameter = errors.New("parameter is empty")

func ParseIDParam(c *gin.Context, name string) (uint, error) {
	return ParseID(c.Param(name))
}

func ParseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, errors.New("id must be positive")
	}
	return uint(id), nil
}

// ParseQueryUintParam parses an optional positive id from the query string.
// It returns ErrEmptyParameter when the parameter is absent.
func ParseQueryUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, ErrEmptyParameter
	}
	return ParseID(raw)
}
