package pipeline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fragmentOf(f Fragment) Injector {
	return func(*Request, InjectorContext) (Fragment, error) {
		return f, nil
	}
}

func newTestRequest() *Request {
	return &Request{
		Method: "GET",
		Path:   "/members/5",
		Params: PathParams{"id": "5"},
	}
}

// ---------------------------------------------------------------------------
// Combine
// ---------------------------------------------------------------------------

func TestCombine_Associative(t *testing.T) {
	tests := []struct {
		name       string
		a, b, c    Fragment
		wantResult Fragment
		wantErr    bool
	}{
		{
			name:       "disjoint fields",
			a:          Fragment{"a": 1},
			b:          Fragment{"b": "two"},
			c:          Fragment{"c": true},
			wantResult: Fragment{"a": 1, "b": "two", "c": true},
		},
		{
			name:       "overlapping fields",
			a:          Fragment{"x": 1, "y": "a"},
			b:          Fragment{"x": 2},
			c:          Fragment{"y": "c", "z": 3.5},
			wantResult: Fragment{"x": 2, "y": "c", "z": 3.5},
		},
		{
			name:       "empty middle",
			a:          Fragment{"x": 1},
			b:          Fragment{},
			c:          Fragment{"x": 3},
			wantResult: Fragment{"x": 3},
		},
		{
			name:    "incompatible types across non-adjacent injectors",
			a:       Fragment{"x": 1},
			b:       Fragment{"y": 2},
			c:       Fragment{"x": "three"},
			wantErr: true,
		},
		{
			name:    "untyped nil in the middle",
			a:       Fragment{"x": 1},
			b:       Fragment{"x": nil},
			c:       Fragment{"x": "three"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b, c := fragmentOf(tt.a), fragmentOf(tt.b), fragmentOf(tt.c)

			left, leftErr := Combine(Combine(a, b), c)(newTestRequest(), InjectorContext{})
			right, rightErr := Combine(a, Combine(b, c))(newTestRequest(), InjectorContext{})
			folded, foldedErr := CombineAll(a, b, c)(newTestRequest(), InjectorContext{})

			if tt.wantErr {
				assert.ErrorIs(t, leftErr, ErrIncompatibleField)
				assert.ErrorIs(t, rightErr, ErrIncompatibleField)
				assert.ErrorIs(t, foldedErr, ErrIncompatibleField)
				return
			}
			require.NoError(t, leftErr)
			require.NoError(t, rightErr)
			require.NoError(t, foldedErr)
			assert.Equal(t, tt.wantResult, left)
			assert.Equal(t, left, right)
			assert.Equal(t, left, folded)
		})
	}
}

func TestCombine_LaterInjectorWins(t *testing.T) {
	combined := Combine(fragmentOf(Fragment{"x": "first"}), fragmentOf(Fragment{"x": "second"}))

	got, err := combined(newTestRequest(), InjectorContext{})

	require.NoError(t, err)
	assert.Equal(t, "second", got["x"])
}

func TestCombine_IncompatibleFieldTypes(t *testing.T) {
	combined := Combine(fragmentOf(Fragment{"x": 1}), fragmentOf(Fragment{"x": "one"}))

	_, err := combined(newTestRequest(), InjectorContext{})

	assert.ErrorIs(t, err, ErrIncompatibleField)
	assert.Contains(t, err.Error(), `"x" is int, then string`)
}

func TestCombine_TypedNilIsCompatible(t *testing.T) {
	type user struct{ name string }
	combined := Combine(fragmentOf(Fragment{"u": &user{name: "a"}}), fragmentOf(Fragment{"u": (*user)(nil)}))

	got, err := combined(newTestRequest(), InjectorContext{})

	require.NoError(t, err)
	assert.Nil(t, got["u"])
}

func TestCombine_PropagatesErrorsAndStops(t *testing.T) {
	boom := errors.New("boom")
	secondRan := false

	combined := Combine(
		func(*Request, InjectorContext) (Fragment, error) { return nil, boom },
		func(*Request, InjectorContext) (Fragment, error) {
			secondRan = true
			return Fragment{}, nil
		},
	)

	_, err := combined(newTestRequest(), InjectorContext{})

	assert.ErrorIs(t, err, boom)
	assert.False(t, secondRan)
}

func TestCombine_RunsInOrderWithSameContext(t *testing.T) {
	var order []string
	record := func(name string) Injector {
		return func(req *Request, ic InjectorContext) (Fragment, error) {
			order = append(order, name+":"+ic.Controller+"."+ic.Method+":"+req.Params["id"])
			return nil, nil
		}
	}

	got, err := CombineAll(record("a"), record("b"), record("c"))(newTestRequest(), InjectorContext{Controller: "members", Method: "get"})

	require.NoError(t, err)
	assert.Equal(t, Fragment{}, got)
	assert.Equal(t, []string{"a:members.get:5", "b:members.get:5", "c:members.get:5"}, order)
}

func TestCombine_NilInjectorIsEmpty(t *testing.T) {
	got, err := Combine(nil, fragmentOf(Fragment{"a": 1}))(newTestRequest(), InjectorContext{})

	require.NoError(t, err)
	assert.Equal(t, Fragment{"a": 1}, got)
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func TestCombineAll_NoInjectors(t *testing.T) {
	got, err := CombineAll()(newTestRequest(), InjectorContext{})

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStatic_ReturnsCopies(t *testing.T) {
	src := Fragment{"tenant": "acme"}
	inj := Static(src)

	first, err := inj(newTestRequest(), InjectorContext{})
	require.NoError(t, err)
	first["tenant"] = "changed"

	second, err := inj(newTestRequest(), InjectorContext{})
	require.NoError(t, err)
	assert.Equal(t, "acme", second["tenant"])
	assert.Equal(t, "acme", src["tenant"])
}

func TestField(t *testing.T) {
	f := Fragment{"count": 3, "name": "x"}

	count, ok := Field[int](f, "count")
	assert.True(t, ok)
	assert.Equal(t, 3, count)

	_, ok = Field[string](f, "count")
	assert.False(t, ok)

	_, ok = Field[int](f, "missing")
	assert.False(t, ok)

	name, err := MustField[string](f, "name")
	require.NoError(t, err)
	assert.Equal(t, "x", name)

	_, err = MustField[string](f, "count")
	assert.ErrorIs(t, err, ErrUnexpectedFragment)
}
