package util

import (
	"errors"
	"strconv"
	"strings"
)

const PageSize = 20

var ErrInvalidPage = errors.New("page must be a positive integer")

// Calculate returns offset and limit for a 1-based page of PageSize rows.
func Calculate(page int) (offset, limit int, err error) {
	if page < 1 {
		return 0, 0, ErrInvalidPage
	}
	return (page - 1) * PageSize, PageSize, nil
}

func ParsePage(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, ErrInvalidPage
	}
	return n, nil
}

// ParseIntDefault returns def when s is empty or malformed.
func ParseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
