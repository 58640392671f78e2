package cmd

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/shenwei356/bio/seqio/fastx"
	"github.com/shenwei356/xopen"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/wdecoster/nanomath/readstats"
	"github.com/wdecoster/nanomath/seqmath"
)

func init() {
	RootCmd.AddCommand(statsCmd)
	addStatsFlags(statsCmd.Flags())

	check(viper.BindPFlag("stats.length_cutoffs", statsCmd.Flags().Lookup("length-cutoffs")))
	check(viper.BindPFlag("stats.quality_cutoffs", statsCmd.Flags().Lookup("quality-cutoffs")))
	check(viper.BindPFlag("stats.outlier_k", statsCmd.Flags().Lookup("outlier-k")))
}

func addStatsFlags(fs *pflag.FlagSet) {
	fs.StringP("output", "o", "-", "Write the report to this file instead of stdout.")
	fs.BoolP("drop-outliers", "", false, "Drop length-outlier reads before computing statistics.")
	fs.Float64P("outlier-k", "", 3, "IQR multiplier of the length-outlier fence.")
	fs.IntSliceP("length-cutoffs", "", []int{1000, 5000, 10000, 25000, 50000}, "Report read tallies above these lengths.")
	fs.IntSliceP("quality-cutoffs", "", []int{5, 7, 10, 12, 15}, "Report read tallies above these Phred qualities.")
}

// statsConfig resolves the cutoff configuration from flags, environment and
// config file.
func statsConfig() readstats.Config {
	cfg := readstats.DefaultConfig()
	if v := viper.GetIntSlice("stats.length_cutoffs"); len(v) > 0 {
		cfg.LengthCutoffs = v
	}
	if v := viper.GetIntSlice("stats.quality_cutoffs"); len(v) > 0 {
		quals := make([]float64, 0, len(v))
		for _, q := range v {
			quals = append(quals, float64(q))
		}
		cfg.QualityCutoffs = quals
	}
	if v := viper.GetFloat64("stats.outlier_k"); v > 0 {
		cfg.OutlierK = v
	}
	return cfg
}

// loadFrame reads a FASTA/FASTQ file (gzipped or plain, "-" for stdin) into
// a Frame with one row per read: its length and, for FASTQ, its mean
// basecall quality.
func loadFrame(fname string) (*readstats.Frame, error) {
	reader, err := fastx.NewDefaultReader(fname)
	if err != nil {
		return nil, err
	}

	var lengths, quals []float64
	hasQuals := false
	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		lengths = append(lengths, float64(len(record.Seq.Seq)))
		if len(record.Seq.Qual) > 0 {
			q, err := seqmath.AvgQualityPhred33(record.Seq.Qual)
			if err != nil {
				return nil, err
			}
			quals = append(quals, q)
			hasQuals = true
		} else {
			quals = append(quals, math.NaN())
		}
	}

	f := readstats.NewFrame()
	if err := f.SetColumn(readstats.ColLengths, lengths); err != nil {
		return nil, err
	}
	if hasQuals {
		if err := f.SetColumn(readstats.ColQuals, quals); err != nil {
			return nil, err
		}
	}
	return f, nil
}

var statsCmd = &cobra.Command{
	Use:   "stats [SEQUENCE_FILE...]",
	Short: "Compute summary statistics for sequencing reads.",
	Long: `

Compute descriptive statistics (number of reads, total bases, median and mean
read length, read length N50, longest read, mean and median read quality,
cutoff tallies) over one or more FASTA/FASTQ files and print an aligned
summary report, one report per input file.

Gzipped input is handled transparently. Sequence can be piped in on STDIN.`,
	Run: func(cmd *cobra.Command, args []string) {
		StartProfiling()

		flags := cmd.Flags()
		outName, err := flags.GetString("output")
		check(err)
		dropOutliers, err := flags.GetBool("drop-outliers")
		check(err)
		cfg := statsConfig()

		inputs := args
		if len(inputs) == 0 {
			fmt.Fprintf(os.Stderr, "No input sequence file given. Reading from STDIN.\n")
			inputs = []string{"-"}
		}

		out, err := xopen.Wopen(outName)
		check(err)
		defer out.Close()

		for _, fname := range inputs {
			frame, err := loadFrame(fname)
			check(err)
			if dropOutliers {
				frame, err = readstats.RemoveLengthOutliers(frame, readstats.ColLengths, cfg.OutlierK)
				check(err)
			}
			stats, err := readstats.Compute(frame, cfg)
			check(err)
			if len(inputs) > 1 {
				fmt.Fprintf(out, "# %s\n", fname)
			}
			check(stats.WriteStats(out))
		}
		check(out.Flush())

		StopProfiling()
	},
}
