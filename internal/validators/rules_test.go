package validators

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRules_TableTest(t *testing.T) {
	tests := []struct {
		name    string
		rule    Rule
		value   any
		present bool
		wantMsg string
	}{
		{name: "required absent", rule: Required(), present: false, wantMsg: "f is a required field"},
		{name: "required null", rule: Required(), value: nil, present: true, wantMsg: "f is a required field"},
		{name: "required ok", rule: Required(), value: "", present: true},

		{name: "string absent is fine", rule: String(), present: false},
		{name: "string wrong type", rule: String(), value: true, present: true, wantMsg: "f must be a `string` type"},

		{name: "boolean ok", rule: Boolean(), value: false, present: true},
		{name: "boolean wrong type", rule: Boolean(), value: "true", present: true, wantMsg: "f must be a `boolean` type"},

		{name: "number json.Number", rule: Number(), value: json.Number("1.5"), present: true},
		{name: "number string rejected", rule: Number(), value: "1.5", present: true, wantMsg: "f must be a `number` type"},

		{name: "integer ok", rule: Integer(), value: json.Number("3"), present: true},
		{name: "integer fraction", rule: Integer(), value: 3.2, present: true, wantMsg: "f must be an integer"},

		{name: "numeric ok", rule: Numeric(), value: "-12.5", present: true},
		{name: "numeric bad", rule: Numeric(), value: "12a", present: true, wantMsg: "f must be a numeric string"},

		{name: "min length string", rule: MinLength(3), value: "ab", present: true, wantMsg: "f must be at least 3 characters"},
		{name: "min length counts runes", rule: MinLength(2), value: "äö", present: true},
		{name: "min length array", rule: MinLength(2), value: []any{1}, present: true, wantMsg: "f field must have at least 2 items"},
		{name: "max length string", rule: MaxLength(1), value: "ab", present: true, wantMsg: "f must be at most 1 characters"},
		{name: "max length array", rule: MaxLength(1), value: []any{1, 2}, present: true, wantMsg: "f field must have less than or equal to 1 items"},

		{name: "min", rule: Min(1), value: 0, present: true, wantMsg: "f must be greater than or equal to 1"},
		{name: "max", rule: Max(1), value: int64(2), present: true, wantMsg: "f must be less than or equal to 1"},
		{name: "max ok", rule: Max(1), value: json.Number("1"), present: true},

		{name: "one of ok", rule: OneOf("a", "b"), value: "b", present: true},
		{name: "one of bad", rule: OneOf("a", "b"), value: "c", present: true, wantMsg: "f must be one of the following values: a, b"},

		{name: "pattern ok", rule: Pattern(`^[a-z]+$`), value: "abc", present: true},
		{name: "pattern bad", rule: Pattern(`^[a-z]+$`), value: "ABC", present: true, wantMsg: `f must match the following: "^[a-z]+$"`},

		{name: "array bad", rule: Array(), value: "x", present: true, wantMsg: "f must be a `array` type"},
		{name: "each reports indexes", rule: Each(String()), value: []any{"a", 1, "b", false}, present: true,
			wantMsg: "f[1] must be a `string` type, f[3] must be a `string` type"},
		{name: "each ignores non arrays", rule: Each(String()), value: "x", present: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule("f", tt.value, tt.present)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Equal(t, tt.wantMsg, err.Error())
			}
		})
	}
}

func TestPattern_PanicsOnInvalidExpression(t *testing.T) {
	assert.Panics(t, func() { Pattern("(") })
}
