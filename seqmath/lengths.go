package seqmath

import (
	"math"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

// N50 returns the read length N50: the length such that reads at least that
// long hold half or more of the total bases. Lengths are taken in descending
// order and the N50 is the length at which the cumulative sum first reaches
// half of the total. The input is not modified.
func N50(lengths []int) (int, error) {
	sorted, total, err := sortedDesc(lengths)
	if err != nil {
		return 0, errors.Wrap(err, "N50")
	}
	var cum int
	for _, l := range sorted {
		cum += l
		if 2*cum >= total {
			return l, nil
		}
	}
	// Not reachable: the full cumulative sum equals the total.
	return sorted[len(sorted)-1], nil
}

// Nxx returns all of N1..N99 for a set of read lengths. Index i of the
// result holds Ni; index 0 is unused. The input is not modified.
func Nxx(lengths []int) ([]int, error) {
	sorted, total, err := sortedDesc(lengths)
	if err != nil {
		return nil, errors.Wrap(err, "Nxx")
	}
	nxx := make([]int, 100)
	var cum int
	n := 1
	for _, l := range sorted {
		cum += l
		for n < 100 && float64(cum) >= float64(n)*0.01*float64(total) {
			nxx[n] = l
			n++
		}
	}
	return nxx, nil
}

// sortedDesc validates lengths and returns a descending copy plus the total.
func sortedDesc(lengths []int) ([]int, int, error) {
	if len(lengths) == 0 {
		return nil, 0, ErrEmptyInput
	}
	sorted := make([]int, len(lengths))
	copy(sorted, lengths)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	var total int
	for _, l := range sorted {
		if l <= 0 {
			return nil, 0, errors.Wrapf(ErrInvalidValue, "read length %d", l)
		}
		total += l
	}
	return sorted, total, nil
}

// Median returns the median of xs, averaging the two central elements for
// even-length input. The input is not modified.
func Median(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, errors.Wrap(ErrEmptyInput, "median")
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2, nil
	}
	return sorted[n/2], nil
}

// Quartiles returns the first and third quartiles of xs. The input is not
// modified.
func Quartiles(xs []float64) (q1, q3 float64, err error) {
	if len(xs) == 0 {
		return 0, 0, errors.Wrap(ErrEmptyInput, "quartiles")
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	q1 = stat.Quantile(0.25, stat.LinInterp, sorted, nil)
	q3 = stat.Quantile(0.75, stat.LinInterp, sorted, nil)
	return q1, q3, nil
}

// TukeyFence returns the outlier bounds [Q1-k*IQR, Q3+k*IQR] for xs. When
// the IQR is zero the distribution carries no usable spread and the fence is
// unbounded on both sides.
func TukeyFence(xs []float64, k float64) (lo, hi float64, err error) {
	q1, q3, err := Quartiles(xs)
	if err != nil {
		return 0, 0, errors.Wrap(err, "outlier fence")
	}
	iqr := q3 - q1
	if iqr == 0 {
		return math.Inf(-1), math.Inf(1), nil
	}
	return q1 - k*iqr, q3 + k*iqr, nil
}
