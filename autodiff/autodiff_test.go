// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff_test

import (
	"strings"
	"testing"

	"github.com/born-ml/gograd/autodiff"
	"github.com/born-ml/gograd/tensor"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicAPI(t *testing.T) {
	x := autodiff.Const(3, autodiff.WithName("x"))
	y := must.M1(autodiff.Add(must.M1(autodiff.Square(x)), x))
	require.NoError(t, y.Backward())
	assert.Equal(t, 12.0, must.M1(y.Data().Item()))
	assert.Equal(t, 7.0, must.M1(x.Grad().Item()))

	src := autodiff.Dot(y, true)
	assert.True(t, strings.HasPrefix(src, "digraph g {"))
	assert.Contains(t, src, "Square")
	assert.Contains(t, src, "grad: 7")
}

func TestPublicAPI_Vector(t *testing.T) {
	x := autodiff.NewVariable(tensor.Vector(1, 2, 3, 4))
	parts := must.M1(autodiff.Split(x, 2))
	y := must.M1(autodiff.Sum(must.M1(autodiff.Mul(parts[0], parts[1]))))
	require.NoError(t, y.Backward())
	assert.Equal(t, 11.0, must.M1(y.Data().Item()))
	assert.Equal(t, []float64{3, 4, 1, 2}, x.Grad().Data())
}

func TestPublicAPI_NoGrad(t *testing.T) {
	x := autodiff.Const(2)
	y, err := autodiff.NoGrad().Apply(&sinOp{}, x)
	require.NoError(t, err)
	assert.True(t, y.IsLeaf())
}

// sinOp checks that Functions can be defined outside the module.
type sinOp struct {
	autodiff.Base
}

func (op *sinOp) Forward(xs ...*tensor.Array) ([]*tensor.Array, error) {
	return []*tensor.Array{xs[0].Sin()}, nil
}

func (op *sinOp) Backward(gys ...*tensor.Array) ([]*tensor.Array, error) {
	gx, err := gys[0].Mul(op.InputData(0).Cos())
	return []*tensor.Array{gx}, err
}

func TestPublicAPI_CustomFunction(t *testing.T) {
	x := autodiff.Const(0)
	y := must.M1(autodiff.Apply(&sinOp{}, x))
	require.NoError(t, y.Backward())
	assert.Equal(t, 1.0, must.M1(x.Grad().Item()))
	assert.Equal(t, "sin", y.Creator().Name())
}
