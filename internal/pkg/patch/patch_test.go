//go:build unit

package patch

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type body struct {
	Limit Field[int32] `json:"usage_limit"`
}

func TestField(t *testing.T) {
	current := int32(5)

	tests := []struct {
		name string
		raw  string
		set  bool
		want *int32
	}{
		{name: "absent keeps current", raw: `{}`, set: false, want: &current},
		{name: "null clears", raw: `{"usage_limit":null}`, set: true, want: nil},
		{name: "value replaces", raw: `{"usage_limit":9}`, set: true, want: ptr(int32(9))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b body
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &b))
			assert.Equal(t, tt.set, b.Limit.Set)
			assert.Equal(t, tt.want, b.Limit.Apply(&current))
		})
	}

	t.Run("wrong type", func(t *testing.T) {
		var b body
		assert.Error(t, json.Unmarshal([]byte(`{"usage_limit":"many"}`), &b))
	})
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "x", Coalesce(nil, "x"))
	assert.Equal(t, "y", Coalesce(ptr("y"), "x"))
}

func ptr[T any](v T) *T { return &v }
