package readstats

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// reportPrinter localizes numbers: thousands-grouped integers and grouped
// fixed-precision floats.
var reportPrinter = message.NewPrinter(language.English)

type reportLine struct {
	label string
	value string
}

type reportSection struct {
	header string
	lines  []reportLine
}

// Report renders the record as an aligned text block: a "General summary"
// section followed by cutoff and top-5 sections for the statistics that are
// present. Every populated field of the record appears on exactly one line.
func (s *ReadStats) Report() string {
	p := reportPrinter

	general := reportSection{header: "General summary:"}
	addLine := func(label, value string) {
		general.lines = append(general.lines, reportLine{label, value})
	}
	addLine("Number of reads", p.Sprintf("%d", s.NumberOfReads))
	addLine("Total bases", p.Sprintf("%d", s.TotalBases))
	if s.AlignedBases > 0 {
		addLine("Total bases aligned", p.Sprintf("%d", s.AlignedBases))
	}
	addLine("Median read length", p.Sprintf("%.1f", s.MedianLength))
	addLine("Mean read length", p.Sprintf("%.1f", s.MeanLength))
	addLine("Read length N50", p.Sprintf("%d", s.N50))
	addLine("Longest read", p.Sprintf("%d", s.LongestRead))
	if s.ActiveChannels > 0 {
		addLine("Active channels", p.Sprintf("%d", s.ActiveChannels))
	}
	if s.Identity != nil {
		addLine("Average percent identity", p.Sprintf("%.1f", s.Identity.Mean))
		addLine("Median percent identity", p.Sprintf("%.1f", s.Identity.Median))
	}
	if s.Quality != nil {
		addLine("Mean read quality", p.Sprintf("%.1f", s.Quality.Mean))
		addLine("Median read quality", p.Sprintf("%.1f", s.Quality.Median))
	}

	sections := []reportSection{general}

	if len(s.AboveLengthCutoffs) > 0 {
		sec := reportSection{header: "Number, percentage and megabases of reads above length cutoffs"}
		for _, t := range s.AboveLengthCutoffs {
			sec.lines = append(sec.lines, reportLine{
				p.Sprintf(">%d bp", int(t.Cutoff)),
				p.Sprintf("%d (%.1f%%) %.1fMb", t.Reads, t.Percent, float64(t.Bases)/1e6),
			})
		}
		sections = append(sections, sec)
	}

	if s.Quality != nil {
		sec := reportSection{header: "Number, percentage and megabases of reads above quality cutoffs"}
		for _, t := range s.Quality.AboveCutoffs {
			sec.lines = append(sec.lines, reportLine{
				p.Sprintf(">Q%d", int(t.Cutoff)),
				p.Sprintf("%d (%.1f%%) %.1fMb", t.Reads, t.Percent, float64(t.Bases)/1e6),
			})
		}
		sections = append(sections, sec)

		long := reportSection{header: "Top 5 longest reads and their mean basecall quality score"}
		for i, h := range s.Quality.Top5Longest {
			long.lines = append(long.lines, reportLine{
				fmt.Sprintf("%d", i+1),
				p.Sprintf("%d (%.1f)", h.Length, h.Quality),
			})
		}
		sections = append(sections, long)

		best := reportSection{header: "Top 5 highest mean basecall quality scores and their read lengths"}
		for i, h := range s.Quality.Top5Best {
			best.lines = append(best.lines, reportLine{
				fmt.Sprintf("%d", i+1),
				p.Sprintf("%.1f (%d)", h.Quality, h.Length),
			})
		}
		sections = append(sections, best)
	}

	labelWidth, valueWidth := 0, 0
	for _, sec := range sections {
		for _, l := range sec.lines {
			if w := len(l.label) + 1; w > labelWidth {
				labelWidth = w
			}
			if len(l.value) > valueWidth {
				valueWidth = len(l.value)
			}
		}
	}

	var b strings.Builder
	for _, sec := range sections {
		b.WriteString(sec.header)
		b.WriteByte('\n')
		for _, l := range sec.lines {
			fmt.Fprintf(&b, "%-*s %*s\n", labelWidth, l.label+":", valueWidth, l.value)
		}
	}
	return b.String()
}

// WriteStats writes the rendered report to w.
func (s *ReadStats) WriteStats(w io.Writer) error {
	_, err := io.WriteString(w, s.Report())
	return err
}

// WriteStatsFile writes the rendered report to the named file. "stdout" or
// "-" writes to standard output.
func WriteStatsFile(s *ReadStats, path string) error {
	if path == "stdout" || path == "-" {
		return s.WriteStats(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.WriteStats(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
