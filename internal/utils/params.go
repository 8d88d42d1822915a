package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dayflow-dev/dayflow/internal/types"
	"github.com/gin-gonic/gin"
)

func GetIDParam(ctx *gin.Context, name string) (uint, error) {
	idStr := ctx.Param(name)

	if idStr == "" {
		return 0, errors.New("ID not found")
	}

	id, err := strconv.ParseUint(idStr, 10, 32)

	if err != nil || id == 0 {
		return 0, errors.New("Invalid ID")
	}

	return uint(id), nil
}

// GetDateQuery parses an optional YYYY-MM-DD query value.
func GetDateQuery(ctx *gin.Context, name string) (*time.Time, error) {
	value := strings.TrimSpace(ctx.Query(name))

	if value == "" {
		return nil, nil
	}

	date, err := time.Parse(types.DateLayout, value)

	if err != nil {
		return nil, fmt.Errorf("Invalid %s, expected YYYY-MM-DD", name)
	}

	return &date, nil
}

func GetIntQuery(ctx *gin.Context, name string) (*int, error) {
	value := strings.TrimSpace(ctx.Query(name))

	if value == "" {
		return nil, nil
	}

	n, err := strconv.Atoi(value)

	if err != nil {
		return nil, fmt.Errorf("Invalid %s", name)
	}

	return &n, nil
}

func GetUintQuery(ctx *gin.Context, name string) (*uint, error) {
	value := strings.TrimSpace(ctx.Query(name))

	if value == "" {
		return nil, nil
	}

	n, err := strconv.ParseUint(value, 10, 32)

	if err != nil {
		return nil, fmt.Errorf("Invalid %s", name)
	}

	id := uint(n)
	return &id, nil
}
