package seqmath

import (
	"math"

	"github.com/pkg/errors"
)

// Phred33Offset is the ASCII offset of Sanger-encoded base qualities.
const Phred33Offset = 33

var errorProbForQ = make([]float64, 201)

func init() {
	// Pre-compute expensive P(e) up to Q=200
	for q := range errorProbForQ {
		errorProbForQ[q] = math.Pow(10, -1*float64(q)/10)
	}
}

// ErrorProbForQ returns the probability that a base call with Phred quality
// qual is an error, P(e) = 10^(-Q/10). Integral qualities in [0,200] hit the
// pre-computed table.
func ErrorProbForQ(qual float64) float64 {
	if q := int(qual); float64(q) == qual && q >= 0 && q < len(errorProbForQ) {
		return errorProbForQ[q]
	}
	return math.Pow(10, -qual/10)
}

// AvgQuality returns the average Phred quality of a set of scores.
//
// Phred scores are logarithmic, so they are averaged in error-rate space:
// each score is converted to its error probability, the probabilities are
// averaged arithmetically, and the mean is converted back to the Phred
// scale. A naive arithmetic mean of the scores themselves would understate
// the error rate whenever low-quality calls are present.
func AvgQuality(quals []float64) (float64, error) {
	if len(quals) == 0 {
		return 0, errors.Wrap(ErrEmptyInput, "average quality")
	}
	var sum float64
	for _, q := range quals {
		if q < 0 || math.IsNaN(q) {
			return 0, errors.Wrapf(ErrInvalidValue, "quality score %v", q)
		}
		sum += ErrorProbForQ(q)
	}
	return -10 * math.Log10(sum/float64(len(quals))), nil
}

// AvgQualityPhred33 returns the average Phred quality of a read given its
// raw Sanger-encoded (ASCII+33) per-base quality string, as found in FASTQ
// records.
func AvgQualityPhred33(qual []byte) (float64, error) {
	if len(qual) == 0 {
		return 0, errors.Wrap(ErrEmptyInput, "average quality")
	}
	var sum float64
	for _, q := range qual {
		if q < Phred33Offset {
			return 0, errors.Wrapf(ErrInvalidValue, "quality character %q below Phred+33 range", q)
		}
		sum += ErrorProbForQ(float64(q - Phred33Offset))
	}
	return -10 * math.Log10(sum/float64(len(qual))), nil
}
