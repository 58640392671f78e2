package readstats

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameColumns(t *testing.T) {
	f := NewFrame()
	require.NoError(t, f.SetColumn(ColLengths, []float64{100, 200, 300}))
	require.NoError(t, f.SetColumn(ColQuals, []float64{10, 12, 14}))

	assert.Equal(t, 3, f.Len())
	assert.Equal(t, []string{ColLengths, ColQuals}, f.Columns())
	assert.True(t, f.HasColumn(ColQuals))
	assert.False(t, f.HasColumn(ColChannelIDs))

	col, err := f.Column(ColLengths)
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 200, 300}, col)
}

func TestFrameMissingColumn(t *testing.T) {
	f := NewFrame()
	require.NoError(t, f.SetColumn(ColLengths, []float64{100}))

	_, err := f.Column(ColQuals)
	assert.True(t, errors.Is(err, ErrMissingColumn))
	assert.Contains(t, err.Error(), ColQuals)
}

func TestFrameRowCountMismatch(t *testing.T) {
	f := NewFrame()
	require.NoError(t, f.SetColumn(ColLengths, []float64{100, 200}))
	assert.Error(t, f.SetColumn(ColQuals, []float64{10}))
}

func TestFrameSelect(t *testing.T) {
	f := NewFrame()
	require.NoError(t, f.SetColumn(ColLengths, []float64{100, 200, 300, 400}))
	require.NoError(t, f.SetColumn(ColQuals, []float64{10, 12, 14, 16}))

	sub, err := f.Select([]bool{true, false, true, false})
	require.NoError(t, err)
	assert.Equal(t, 2, sub.Len())

	lengths, err := sub.Column(ColLengths)
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 300}, lengths)

	// Other columns are filtered in lockstep.
	quals, err := sub.Column(ColQuals)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 14}, quals)

	_, err = f.Select([]bool{true})
	assert.Error(t, err)
}
