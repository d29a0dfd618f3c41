package transport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// LooseInt decodes a JSON number or a numeric string. null and "" decode to 0.
type LooseInt int

func (n *LooseInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = 0
		return nil
	}

	var s string
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
	} else {
		s = string(b)
	}
	if s == "" {
		*n = 0
		return nil
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("not an integer: %q", s)
	}
	*n = LooseInt(v)
	return nil
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	UserName string `json:"userName"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SearchRequest is the body of the name search endpoints. Category is only used for products.
type SearchRequest struct {
	Name     string   `json:"name"`
	Page     LooseInt `json:"page"`
	Category string   `json:"category"`
}

type UserIDRequest struct {
	UserID uint `json:"userId"`
}

type ItemRequest struct {
	UserID    uint `json:"userId"`
	ProductID uint `json:"productId"`
	Quantity  *int `json:"quantity"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
