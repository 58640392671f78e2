package readstats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullFrame(t *testing.T) *Frame {
	t.Helper()
	f := NewFrame()
	require.NoError(t, f.SetColumn(ColLengths, []float64{1000, 2000, 3000, 4000, 5000}))
	require.NoError(t, f.SetColumn(ColQuals, []float64{8, 10, 12, 14, 16}))
	return f
}

func TestReportLengthOnly(t *testing.T) {
	f := NewFrame()
	require.NoError(t, f.SetColumn(ColLengths, []float64{1000, 2000, 3000, 4000, 5000}))
	s, err := Compute(f, DefaultConfig())
	require.NoError(t, err)

	report := s.Report()

	for _, label := range []string{
		"Number of reads:",
		"Total bases:",
		"Median read length:",
		"Mean read length:",
		"Read length N50:",
		"Longest read:",
	} {
		assert.Equal(t, 1, strings.Count(report, label), "label %q", label)
	}
	assert.NotContains(t, report, "Mean read quality")
	assert.NotContains(t, report, ">Q")

	// Two section headers, six summary lines, five length-cutoff lines.
	assert.Equal(t, 13, strings.Count(report, "\n"))

	// Integers are thousands-grouped, floats fixed-precision.
	assert.Contains(t, report, "15,000")
	assert.Contains(t, report, "3,000.0")
}

func TestReportWithQuality(t *testing.T) {
	s, err := Compute(fullFrame(t), DefaultConfig())
	require.NoError(t, err)

	report := s.Report()

	for _, label := range []string{
		"Mean read quality:",
		"Median read quality:",
		">Q5:",
		">Q15:",
		">1,000 bp:",
		">50,000 bp:",
	} {
		assert.Equal(t, 1, strings.Count(report, label), "label %q", label)
	}
	assert.Contains(t, report, "Top 5 longest reads and their mean basecall quality score")
	assert.Contains(t, report, "Top 5 highest mean basecall quality scores and their read lengths")

	// Every populated field of the record renders on exactly one line:
	// 8 summary lines, 4 cutoff/top-5 sections of 5 lines each, 5 headers.
	assert.Equal(t, 33, strings.Count(report, "\n"))
}

func TestReportRendersEveryCutoffTally(t *testing.T) {
	s, err := Compute(fullFrame(t), DefaultConfig())
	require.NoError(t, err)

	report := s.Report()
	for _, tally := range s.AboveLengthCutoffs {
		assert.Contains(t, report, reportPrinter.Sprintf(">%d bp:", int(tally.Cutoff)))
	}
	for _, tally := range s.Quality.AboveCutoffs {
		assert.Contains(t, report, reportPrinter.Sprintf(">Q%d:", int(tally.Cutoff)))
	}
}

func TestWriteStats(t *testing.T) {
	s, err := Compute(fullFrame(t), DefaultConfig())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, s.WriteStats(&buf))
	assert.Equal(t, s.Report(), buf.String())
}
