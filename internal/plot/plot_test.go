package plot

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/born-ml/gograd/internal/expr"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSample(t *testing.T) {
	e := must.M1(expr.Lookup("x ** 2 + x"))
	c, err := Sample(e, -2, 2, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -1, 0, 1, 2}, c.X)
	assert.Equal(t, []float64{2, 0, 0, 2, 6}, c.Y)
	assert.Equal(t, []float64{-3, -1, 1, 3, 5}, c.Grad)
}

func TestSample_MatchesEvaluate(t *testing.T) {
	for _, name := range expr.Names() {
		t.Run(name, func(t *testing.T) {
			e := must.M1(expr.Lookup(name))
			c, err := Sample(e, 0.1, 2, 7)
			require.NoError(t, err)
			for i, x := range c.X {
				res := must.M1(expr.Evaluate(name, x))
				assert.InDelta(t, res.Y, c.Y[i], 1e-12)
				assert.InDelta(t, res.Grad, c.Grad[i], 1e-12)
			}
		})
	}
}

func TestSample_Errors(t *testing.T) {
	e := must.M1(expr.Lookup("log(x + 1)"))
	_, err := Sample(e, -3, 1, 10)
	assert.True(t, errors.Is(err, expr.ErrUndefined))

	_, err = Sample(e, 1, 1, 10)
	assert.True(t, errors.Is(err, ErrInterval))
	_, err = Sample(e, math.NaN(), 1, 10)
	assert.True(t, errors.Is(err, ErrInterval))
}

func TestSample_DefaultSamples(t *testing.T) {
	c := must.M1(Sample(must.M1(expr.Lookup("sin(x) + x")), 0, 1, 0))
	assert.Len(t, c.X, DefaultSamples)
}

func TestSave(t *testing.T) {
	c := must.M1(Sample(must.M1(expr.Lookup("cos(x) + x")), -math.Pi, math.Pi, 50))
	path := filepath.Join(t.TempDir(), "curve.png")
	require.NoError(t, c.Save(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	var buf bytes.Buffer
	n, err := c.Encode(&buf, "svg")
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Contains(t, buf.String(), "<svg")
}

func TestFormatOf(t *testing.T) {
	assert.Equal(t, "png", FormatOf("out"))
	assert.Equal(t, "svg", FormatOf("a/b.SVG"))
	assert.Equal(t, "pdf", FormatOf("x.pdf"))
}
