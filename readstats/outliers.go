package readstats

import (
	"math"

	"github.com/pkg/errors"

	"github.com/wdecoster/nanomath/seqmath"
)

// RemoveLengthOutliers drops the rows of f whose value in column falls
// outside the fence [Q1-k*IQR, Q3+k*IQR]. Whole rows are removed, keeping
// every column aligned; the order of retained rows is preserved. With an
// IQR of zero every row is retained, since a spread-free distribution gives
// no usable fence.
//
// The multiplier k is deliberately large (DefaultConfig uses 3) so that only
// extreme artifacts such as chimeric or mis-called ultra-long reads are
// excluded while the legitimate long tail of the length distribution
// survives.
func RemoveLengthOutliers(f *Frame, column string, k float64) (*Frame, error) {
	col, err := f.Column(column)
	if err != nil {
		return nil, err
	}
	vals := make([]float64, 0, len(col))
	for _, v := range col {
		if !math.IsNaN(v) {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return nil, errors.Wrapf(seqmath.ErrEmptyInput, "no usable values in column %q", column)
	}
	lo, hi, err := seqmath.TukeyFence(vals, k)
	if err != nil {
		return nil, err
	}
	keep := make([]bool, f.Len())
	for i, v := range col {
		// An unbounded fence (zero IQR) retains everything, NaN included.
		keep[i] = (v >= lo && v <= hi) || (math.IsInf(lo, -1) && math.IsInf(hi, 1))
	}
	return f.Select(keep)
}
