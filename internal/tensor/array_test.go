package tensor

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShape(t *testing.T) {
	assert.Equal(t, 1, Shape{}.NumElements())
	assert.Equal(t, 24, Shape{2, 3, 4}.NumElements())
	assert.Equal(t, []int{12, 4, 1}, Shape{2, 3, 4}.ComputeStrides())
	assert.Equal(t, "()", Shape{}.String())
	assert.Equal(t, "(3,)", Shape{3}.String())
	assert.Equal(t, "(2, 3)", Shape{2, 3}.String())

	err := Shape{2, 0}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidShape))
}

func TestFromSlice(t *testing.T) {
	src := []float64{1, 2, 3, 4, 5, 6}
	a, err := FromSlice(src, Shape{2, 3})
	require.NoError(t, err)

	src[0] = 100 // The array owns its own copy.
	assert.Equal(t, 1.0, a.At(0))
	assert.Equal(t, 2, a.Ndim())
	assert.Equal(t, 6, a.Size())

	_, err = FromSlice(src, Shape{4})
	assert.True(t, errors.Is(err, ErrShapeMismatch))
}

func TestItem(t *testing.T) {
	v, err := Scalar(3.5).Item()
	require.NoError(t, err)
	assert.Equal(t, 3.5, v)

	_, err = Vector(1, 2).Item()
	assert.True(t, errors.Is(err, ErrNotScalar))
}

func TestString(t *testing.T) {
	assert.Equal(t, "4", Scalar(4).String())
	assert.Equal(t, "[1 2.5]", Vector(1, 2.5).String())

	m, err := FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2})
	require.NoError(t, err)
	assert.Equal(t, "[[1 2] [3 4]]", m.String())
}

func TestLinspace(t *testing.T) {
	a, err := Linspace(0, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, a.Data())

	_, err = Linspace(0, 1, 0)
	assert.Error(t, err)
}

func TestBinary(t *testing.T) {
	a := Vector(1, 2, 3)
	b := Vector(4, 5, 6)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 7, 9}, sum.Data())

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{-3, -3, -3}, diff.Data())

	prod, err := a.Mul(Scalar(2))
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4, 6}, prod.Data())
	assert.True(t, prod.Shape().Equal(Shape{3}))

	quot, err := Scalar(6).Div(a)
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 3, 2}, quot.Data())

	_, err = a.Add(Vector(1, 2))
	assert.True(t, errors.Is(err, ErrShapeMismatch))
}

func TestBinary_DoesNotMutateOperands(t *testing.T) {
	a := Vector(1, 2)
	b := Vector(3, 4)
	_, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, a.Data())
	assert.Equal(t, []float64{3, 4}, b.Data())
}

func TestBinary_Large(t *testing.T) {
	// Large enough to take the parallel path.
	n := 3 * kernelConfig.MinChunkSize
	a := Ones(Shape{n})
	b, err := a.Add(a)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.Equal(t, 2.0, b.At(i))
	}
}

func TestUnary(t *testing.T) {
	x := Vector(0, 1, 2)

	assert.Equal(t, []float64{0, -1, -2}, x.Neg().Data())
	assert.Equal(t, []float64{0, 3, 6}, x.Scale(3).Data())
	assert.Equal(t, []float64{0, 1, 4}, x.Pow(2).Data())
	assert.Equal(t, []float64{0, 1, 8}, x.Pow(3).Data())
	assert.InDelta(t, math.Sin(2), x.Sin().At(2), 1e-12)
	assert.InDelta(t, math.Cos(1), x.Cos().At(1), 1e-12)
	assert.InDelta(t, math.Tanh(1), x.Tanh().At(1), 1e-12)
	assert.InDelta(t, math.E, x.Exp().At(1), 1e-12)
}

func TestLog(t *testing.T) {
	y, err := Vector(1, math.E).Log()
	require.NoError(t, err)
	assert.InDelta(t, 0, y.At(0), 1e-12)
	assert.InDelta(t, 1, y.At(1), 1e-12)

	for _, bad := range []float64{0, -1, math.NaN()} {
		_, err = Vector(1, bad).Log()
		assert.True(t, errors.Is(err, ErrDomain), "log(%v)", bad)
	}
}

func TestReshapeAndTranspose(t *testing.T) {
	a, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)

	r, err := a.Reshape(Shape{3, 2})
	require.NoError(t, err)
	assert.True(t, r.Shape().Equal(Shape{3, 2}))
	assert.Equal(t, a.Data(), r.Data())

	_, err = a.Reshape(Shape{4})
	assert.True(t, errors.Is(err, ErrShapeMismatch))

	tr := a.Transpose()
	assert.True(t, tr.Shape().Equal(Shape{3, 2}))
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, tr.Data())
	assert.Equal(t, a.Data(), tr.Transpose().Data())
}

func TestSumToAndBroadcastTo(t *testing.T) {
	a := Vector(1, 2, 3)

	s, err := a.SumTo(Shape{})
	require.NoError(t, err)
	assert.Equal(t, 6.0, s.At(0))
	assert.Equal(t, 0, s.Ndim())

	same, err := a.SumTo(Shape{3})
	require.NoError(t, err)
	assert.Same(t, a, same)

	_, err = a.SumTo(Shape{2})
	assert.True(t, errors.Is(err, ErrShapeMismatch))

	b, err := Scalar(7).BroadcastTo(Shape{2, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 7, 7, 7}, b.Data())

	_, err = a.BroadcastTo(Shape{2, 3})
	assert.True(t, errors.Is(err, ErrShapeMismatch))
}

func TestAllClose(t *testing.T) {
	assert.True(t, AllClose(Vector(1, 2), Vector(1, 2+1e-9), 1e-6))
	assert.False(t, AllClose(Vector(1, 2), Vector(1, 2.1), 1e-6))
	assert.False(t, AllClose(Vector(1), Scalar(1), 1e-6))
}

func TestSplitAndConcat(t *testing.T) {
	a, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{3, 2})
	require.NoError(t, err)

	parts, err := a.Split(3)
	require.NoError(t, err)
	require.Len(t, parts, 3)
	assert.True(t, parts[1].Shape().Equal(Shape{1, 2}))
	assert.Equal(t, []float64{3, 4}, parts[1].Data())

	joined, err := Concat(parts...)
	require.NoError(t, err)
	assert.True(t, joined.Shape().Equal(a.Shape()))
	assert.Equal(t, a.Data(), joined.Data())

	_, err = a.Split(2)
	assert.True(t, errors.Is(err, ErrShapeMismatch))
	_, err = Scalar(1).Split(1)
	assert.True(t, errors.Is(err, ErrShapeMismatch))
	_, err = Concat(Vector(1), Zeros(Shape{1, 2}))
	assert.True(t, errors.Is(err, ErrShapeMismatch))
}
