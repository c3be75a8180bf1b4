package ddsolver_test

import (
	"testing"

	"github.com/katalvlaran/fjspdd/ddsolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFixedWidthRejectsNonPositive(t *testing.T) {
	_, err := ddsolver.NewFixedWidth(0)
	assert.ErrorIs(t, err, ddsolver.ErrNonPositiveWidth)

	_, err = ddsolver.NewFixedWidth(-3)
	assert.ErrorIs(t, err, ddsolver.ErrNonPositiveWidth)
}

func TestFixedWidthLimitIsConstantAcrossLayers(t *testing.T) {
	w, err := ddsolver.NewFixedWidth(4)
	require.NoError(t, err)

	assert.Equal(t, 4, w.Limit(0))
	assert.Equal(t, 4, w.Limit(100))
}
