package readstats

import (
	"math"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"

	"github.com/wdecoster/nanomath/seqmath"
)

// Config carries the tunables of Compute and RemoveLengthOutliers. The
// defaults match the cutoff sets long-read summary tools conventionally
// report.
type Config struct {
	// LengthCutoffs are the read lengths for which "reads at least this
	// long" tallies are reported.
	LengthCutoffs []int
	// QualityCutoffs are the Phred scores for which "reads at least this
	// good" tallies are reported.
	QualityCutoffs []float64
	// OutlierK is the IQR multiplier of the length-outlier fence.
	OutlierK float64
}

// DefaultConfig returns the conventional cutoff sets and outlier multiplier.
func DefaultConfig() Config {
	return Config{
		LengthCutoffs:  []int{1000, 5000, 10000, 25000, 50000},
		QualityCutoffs: []float64{5, 7, 10, 12, 15},
		OutlierK:       3,
	}
}

// CutoffTally counts the reads meeting or exceeding a cutoff, the share of
// all reads they represent, and the bases they hold.
type CutoffTally struct {
	Cutoff  float64
	Reads   int
	Percent float64
	Bases   int64
}

// ReadHighlight is one entry of a top-5 list: a read's length and its mean
// basecall quality.
type ReadHighlight struct {
	Length  int
	Quality float64
}

// QualitySummary holds the quality-dependent statistics. It is absent from
// a ReadStats when the input carries no quality column.
type QualitySummary struct {
	Mean         float64
	Median       float64
	AboveCutoffs []CutoffTally
	Top5Longest  []ReadHighlight
	Top5Best     []ReadHighlight
}

// IdentitySummary holds alignment percent-identity statistics. It is absent
// when the input carries no percentIdentity column.
type IdentitySummary struct {
	Mean   float64
	Median float64
}

// ReadStats is the aggregate record for one set of reads. It is built once
// by Compute and never mutated afterwards. AlignedBases and ActiveChannels
// are zero when the corresponding optional column is not tracked.
type ReadStats struct {
	NumberOfReads int
	TotalBases    int64
	AlignedBases  int64
	MeanLength    float64
	MedianLength  float64
	N50           int
	LongestRead   int

	AboveLengthCutoffs []CutoffTally
	ActiveChannels     int

	Quality  *QualitySummary
	Identity *IdentitySummary
}

// Compute builds the aggregate statistics record for a Frame of reads.
//
// The lengths column is required; an empty frame or one without usable
// lengths fails with seqmath.ErrEmptyInput. Rows whose length is NaN or not
// positive are excluded from every statistic. Optional columns (quals,
// aligned_lengths, percentIdentity, channelIDs) each enable their summary
// when present; a missing or entirely unusable optional column leaves that
// summary absent rather than failing the computation. Within an optional
// column, rows holding NaN are skipped for that column's statistics only.
//
// For a fixed frame and config the result is reproducible bit for bit.
func Compute(f *Frame, cfg Config) (*ReadStats, error) {
	if f == nil || f.Len() == 0 {
		return nil, errors.Wrap(seqmath.ErrEmptyInput, "compute read stats")
	}
	lengthCol, err := f.Column(ColLengths)
	if err != nil {
		return nil, err
	}

	keep := make([]bool, f.Len())
	valid := 0
	for i, v := range lengthCol {
		if !math.IsNaN(v) && v > 0 {
			keep[i] = true
			valid++
		}
	}
	if valid == 0 {
		return nil, errors.Wrap(seqmath.ErrEmptyInput, "no usable read lengths")
	}
	if valid < f.Len() {
		if f, err = f.Select(keep); err != nil {
			return nil, err
		}
		lengthCol, _ = f.Column(ColLengths)
	}

	lengths := make([]int, len(lengthCol))
	var total int64
	longest := 0
	for i, v := range lengthCol {
		l := int(v)
		lengths[i] = l
		total += int64(l)
		if l > longest {
			longest = l
		}
	}

	n50, err := seqmath.N50(lengths)
	if err != nil {
		return nil, err
	}
	medianLength, err := seqmath.Median(lengthCol)
	if err != nil {
		return nil, err
	}

	s := &ReadStats{
		NumberOfReads: len(lengths),
		TotalBases:    total,
		MeanLength:    stat.Mean(lengthCol, nil),
		MedianLength:  medianLength,
		N50:           n50,
		LongestRead:   longest,
	}

	for _, c := range cfg.LengthCutoffs {
		s.AboveLengthCutoffs = append(s.AboveLengthCutoffs, tallyAbove(lengthCol, lengthCol, float64(c)))
	}

	if aligned, err := f.Column(ColAlignedLengths); err == nil {
		for _, v := range aligned {
			if !math.IsNaN(v) && v > 0 {
				s.AlignedBases += int64(v)
			}
		}
	}

	if quals, err := f.Column(ColQuals); err == nil {
		s.Quality = summarizeQuality(lengthCol, quals, cfg.QualityCutoffs)
	}

	if ident, err := f.Column(ColPercentIdentity); err == nil {
		s.Identity = summarizeIdentity(ident)
	}

	if channels, err := f.Column(ColChannelIDs); err == nil {
		s.ActiveChannels = countUnique(channels)
	}

	return s, nil
}

// summarizeQuality builds the quality summary over the rows holding a usable
// score. Returns nil when no row does.
func summarizeQuality(lengthCol, quals []float64, cutoffs []float64) *QualitySummary {
	var qs, ls []float64
	for i, q := range quals {
		if math.IsNaN(q) || q < 0 {
			continue
		}
		qs = append(qs, q)
		ls = append(ls, lengthCol[i])
	}
	if len(qs) == 0 {
		return nil
	}
	mean, err := seqmath.AvgQuality(qs)
	if err != nil {
		return nil
	}
	median, err := seqmath.Median(qs)
	if err != nil {
		return nil
	}
	sum := &QualitySummary{
		Mean:        mean,
		Median:      median,
		Top5Longest: topFiveBy(ls, ls, qs),
		Top5Best:    topFiveBy(qs, ls, qs),
	}
	for _, c := range cutoffs {
		sum.AboveCutoffs = append(sum.AboveCutoffs, tallyAbove(qs, ls, c))
	}
	return sum
}

func summarizeIdentity(ident []float64) *IdentitySummary {
	var vals []float64
	for _, v := range ident {
		if !math.IsNaN(v) {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return nil
	}
	median, err := seqmath.Median(vals)
	if err != nil {
		return nil
	}
	return &IdentitySummary{Mean: stat.Mean(vals, nil), Median: median}
}

// tallyAbove counts the rows of values meeting or exceeding cutoff and sums
// the corresponding lengths.
func tallyAbove(values, lengths []float64, cutoff float64) CutoffTally {
	t := CutoffTally{Cutoff: cutoff}
	for i, v := range values {
		if v >= cutoff {
			t.Reads++
			t.Bases += int64(lengths[i])
		}
	}
	t.Percent = 100 * float64(t.Reads) / float64(len(values))
	return t
}

// topFiveBy returns up to five (length, quality) pairs for the rows with the
// highest key, descending. The sort is stable so ties resolve to the earlier
// row.
func topFiveBy(key, lengths, quals []float64) []ReadHighlight {
	idx := make([]int, len(key))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return key[idx[a]] > key[idx[b]] })
	n := 5
	if len(idx) < n {
		n = len(idx)
	}
	out := make([]ReadHighlight, 0, n)
	for _, i := range idx[:n] {
		out = append(out, ReadHighlight{Length: int(lengths[i]), Quality: quals[i]})
	}
	return out
}

func countUnique(values []float64) int {
	seen := make(map[float64]struct{}, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			seen[v] = struct{}{}
		}
	}
	return len(seen)
}
