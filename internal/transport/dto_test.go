package transport

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooseInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		body string
		want LooseInt
	}{
		{`{"page": 2}`, 2},
		{`{"page": "3"}`, 3},
		{`{"page": null}`, 0},
		{`{"page": ""}`, 0},
		{`{}`, 0},
	}
	for _, tt := range tests {
		var req SearchRequest
		require.NoError(t, json.Unmarshal([]byte(tt.body), &req), tt.body)
		assert.Equal(t, tt.want, req.Page, tt.body)
	}

	for _, bad := range []string{`{"page": "two"}`, `{"page": 1.5}`, `{"page": true}`} {
		var req SearchRequest
		assert.Error(t, json.Unmarshal([]byte(bad), &req), bad)
	}
}
