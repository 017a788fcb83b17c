package functions_test

import (
	"testing"

	"github.com/on-the-ground/lowdash_go/functions"
	"github.com/on-the-ground/lowdash_go/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPoint(ret func(this *object.Object) any) *functions.Function {
	return functions.NewFunction("Point", 2, func(this any, args ...any) (any, error) {
		self := this.(*object.Object)
		self.Set("x", args[0]).Set("y", args[1])
		return ret(self), nil
	})
}

func TestConstruct_PrimitiveResultYieldsInstance(t *testing.T) {
	point := newPoint(func(*object.Object) any { return 42 })
	point.Prototype().Set("kind", "point")

	res, err := functions.Partial(point, 1).Construct(2)
	require.NoError(t, err)

	inst, ok := res.(*object.Object)
	require.True(t, ok)
	assert.True(t, inst.InheritsFrom(point.Prototype()))
	x, _ := inst.Get("x")
	y, _ := inst.Get("y")
	kind, _ := inst.Get("kind")
	assert.Equal(t, 1, x)
	assert.Equal(t, 2, y)
	assert.Equal(t, "point", kind)
}

func TestConstruct_ObjectResultReplacesInstance(t *testing.T) {
	other := object.New().Set("custom", true)
	point := newPoint(func(*object.Object) any { return other })

	res, err := functions.Partial(point).Construct(1, 2)
	require.NoError(t, err)
	assert.Same(t, other, res)
}

func TestConstruct_NilResultsYieldInstance(t *testing.T) {
	for _, ret := range []any{nil, (*object.Object)(nil), "str", 1.5, true} {
		point := newPoint(func(*object.Object) any { return ret })
		res, err := functions.Partial(point).Construct(1, 2)
		require.NoError(t, err)
		inst, ok := res.(*object.Object)
		require.True(t, ok, "return %#v", ret)
		assert.True(t, inst.HasOwn("x"))
	}
}

func TestConstruct_NonPrimitiveResults(t *testing.T) {
	for _, ret := range []any{map[string]int{}, []int{1}, struct{}{}, func() {}} {
		point := newPoint(func(*object.Object) any { return ret })
		res, err := functions.Partial(point).Construct(1, 2)
		require.NoError(t, err)
		_, isInstance := res.(*object.Object)
		assert.False(t, isInstance, "return %T", ret)
	}
}

func TestConstruct_IgnoresBoundReceiver(t *testing.T) {
	var seen any
	ctor := functions.NewFunction("Ctor", 0, func(this any, args ...any) (any, error) {
		seen = this
		return nil, nil
	})

	res, err := functions.Bind(ctor, "bound").Construct()
	require.NoError(t, err)
	assert.Same(t, res, seen)
	assert.True(t, res.(*object.Object).InheritsFrom(ctor.Prototype()))
}

func TestConstruct_PropagatesThroughNestedWrappers(t *testing.T) {
	point := newPoint(func(*object.Object) any { return nil })
	outer := functions.Bind(functions.Partial(point, 1), "ignored")

	res, err := outer.Construct(2)
	require.NoError(t, err)
	inst := res.(*object.Object)
	assert.True(t, inst.InheritsFrom(point.Prototype()))
	y, _ := inst.Get("y")
	assert.Equal(t, 2, y)
}

func TestConstruct_CurryUnderSupplyReturnsWrapper(t *testing.T) {
	point := newPoint(func(*object.Object) any { return nil })
	curried := functions.Curry(point)

	next := mustWrapper(t)(curried.Construct(1))
	res, err := next.Construct(2)
	require.NoError(t, err)
	x, _ := res.(*object.Object).Get("x")
	assert.Equal(t, 1, x)
}

func TestConstruct_BindKeyResolvesOnBoundObject(t *testing.T) {
	point := newPoint(func(*object.Object) any { return nil })
	factory := object.New().Set("Point", point)

	res, err := functions.BindKey(factory, "Point", 3).Construct(4)
	require.NoError(t, err)
	inst := res.(*object.Object)
	assert.True(t, inst.InheritsFrom(point.Prototype()))
	assert.Equal(t, []string{"x", "y"}, inst.OwnKeys())
}

func TestConstruct_PlainGoFunc(t *testing.T) {
	res, err := functions.Partial(func(a int) int { return a }).Construct(1)
	require.NoError(t, err)
	inst, ok := res.(*object.Object)
	require.True(t, ok)
	assert.Nil(t, inst.Proto())
}

func TestConstruct_NotCallable(t *testing.T) {
	_, err := functions.Partial("nope").Construct()
	assert.ErrorIs(t, err, functions.ErrNotCallable)
}
