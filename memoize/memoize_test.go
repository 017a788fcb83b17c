package memoize_test

import (
	"errors"
	"testing"

	"github.com/on-the-ground/lowdash_go/functions"
	"github.com/on-the-ground/lowdash_go/logging"
	"github.com/on-the-ground/lowdash_go/memoize"
	"github.com/on-the-ground/lowdash_go/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMemoize_CachesByFirstArgument(t *testing.T) {
	count := 0
	double := memoize.Memoize(func(n int) int {
		count++
		return n * 2
	}, nil)

	v, err := double.Invoke(2)
	require.NoError(t, err)
	assert.Equal(t, 4, v)

	v, err = double.Invoke(2)
	require.NoError(t, err)
	assert.Equal(t, 4, v)
	assert.Equal(t, 1, count)

	_, _ = double.Invoke(3)
	assert.Equal(t, 2, count)
}

func TestMemoize_RecursiveFibonacci(t *testing.T) {
	var fib *memoize.Memoized
	calls := 0
	fib = memoize.Memoize(func(n int) (int, error) {
		calls++
		if n < 2 {
			return n, nil
		}
		a, err := functions.CallAs[int](fib, n-1)
		if err != nil {
			return 0, err
		}
		b, err := functions.CallAs[int](fib, n-2)
		return a + b, err
	}, nil)

	v, err := functions.CallAs[int](fib, 30)
	require.NoError(t, err)
	assert.Equal(t, 832040, v)
	assert.Equal(t, 31, calls)
}

func TestMemoize_Resolver(t *testing.T) {
	data := map[string]*object.Object{
		"moe":   object.New().Set("name", "moe").Set("age", 40),
		"curly": object.New().Set("name", "curly").Set("age", 60),
	}
	count := 0
	stooge := memoize.Memoize(func(name string) *object.Object {
		count++
		return data[name]
	}, func(name string) string { return "stooge:" + name })

	v, err := stooge.Invoke("curly")
	require.NoError(t, err)
	assert.Same(t, data["curly"], v)

	cached, ok := stooge.Cache().Load("stooge:curly")
	require.True(t, ok)
	cached.(*object.Object).Set("name", "jerome")

	v, err = stooge.Invoke("curly")
	require.NoError(t, err)
	name, _ := v.(*object.Object).Get("name")
	assert.Equal(t, "jerome", name)
	assert.Equal(t, 1, count)
}

func TestMemoize_CacheCanBeEdited(t *testing.T) {
	m := memoize.Memoize(func(s string) string { return s + "!" }, nil)
	m.Cache().Store("a", "overridden")

	v, err := m.Invoke("a")
	require.NoError(t, err)
	assert.Equal(t, "overridden", v)

	m.Cache().Delete("a")
	v, err = m.Invoke("a")
	require.NoError(t, err)
	assert.Equal(t, "a!", v)
}

func TestMemoize_ForwardsReceiver(t *testing.T) {
	m := memoize.Memoize(functions.Func(func(this any, args ...any) (any, error) {
		name, _ := object.Property(this, "name")
		return name, nil
	}), functions.Func(func(this any, args ...any) (any, error) {
		name, _ := object.Property(this, "name")
		return name, nil
	}))

	fred := object.New().Set("name", "fred")
	v, err := functions.Bind(m, fred).Invoke()
	require.NoError(t, err)
	assert.Equal(t, "fred", v)

	_, ok := m.Cache().Load("fred")
	assert.True(t, ok)
}

func TestMemoize_ErrorsAreNotCached(t *testing.T) {
	boom := errors.New("boom")
	fail := true
	m := memoize.Memoize(func(n int) (int, error) {
		if fail {
			return 0, boom
		}
		return n, nil
	}, nil)

	_, err := m.Invoke(1)
	assert.ErrorIs(t, err, boom)

	fail = false
	v, err := m.Invoke(1)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestMemoize_ResolverError(t *testing.T) {
	boom := errors.New("boom")
	m := memoize.Memoize(func(n int) int { return n }, func(int) (string, error) { return "", boom })

	_, err := m.Invoke(1)
	assert.ErrorIs(t, err, boom)
}

func TestMemoize_NotCallable(t *testing.T) {
	_, err := memoize.Memoize(42, nil).Invoke(1)
	assert.ErrorIs(t, err, functions.ErrNotCallable)
}

func TestMemoize_CurriesLikeItsTarget(t *testing.T) {
	m := memoize.Memoize(func(a, b int) int { return a * b }, nil)
	assert.Equal(t, 2, m.Length())

	curried := functions.Curry(m)
	next, err := curried.Invoke(3)
	require.NoError(t, err)
	v, err := next.(*functions.Wrapper).Invoke(4)
	require.NoError(t, err)
	assert.Equal(t, 12, v)
}

func TestMemoize_LogsCreation(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	prev := logging.SetLogger(zap.New(core))
	defer logging.SetLogger(prev)

	memoize.Memoize(func(int) int { return 0 }, nil)
	assert.Equal(t, 1, logs.FilterMessage("created memoized function").Len())
}
