package service

import (
	"fmt"
	"strings"

	"github.com/Skotchmaster/shop_catalog/internal/apperr"
	"github.com/Skotchmaster/shop_catalog/internal/repo"
)

// sortColumns maps the public sortBy values onto product columns.
var sortColumns = map[string]string{
	"id":        "id",
	"name":      "name",
	"price":     "price",
	"stock":     "stock",
	"createdAt": "created_at",
}

// ParseSort returns nil when neither sortBy nor direction is given.
func ParseSort(sortBy, direction string) (*repo.Sort, error) {
	sortBy = strings.TrimSpace(sortBy)
	direction = strings.TrimSpace(direction)

	if sortBy == "" && direction == "" {
		return nil, nil
	}
	if sortBy == "" || direction == "" {
		return nil, apperr.Validation("sortBy and ascOrDesc must be provided together")
	}

	col, ok := sortColumns[sortBy]
	if !ok {
		return nil, apperr.Validation(fmt.Sprintf("cannot sort by %q", sortBy))
	}

	switch strings.ToLower(direction) {
	case "asc":
		return &repo.Sort{Column: col}, nil
	case "desc":
		return &repo.Sort{Column: col, Desc: true}, nil
	default:
		return nil, apperr.Validation(fmt.Sprintf("ascOrDesc must be asc or desc, got %q", direction))
	}
}
