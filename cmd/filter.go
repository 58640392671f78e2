package cmd

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/shenwei356/bio/seqio/fastx"
	"github.com/shenwei356/xopen"
	"github.com/spf13/cobra"

	"github.com/wdecoster/nanomath/seqmath"
)

func init() {
	RootCmd.AddCommand(filterCmd)

	filterCmd.Flags().StringP("output", "o", "-", "Write retained records to this file instead of stdout.")
	filterCmd.Flags().Float64P("outlier-k", "", 3, "IQR multiplier of the length-outlier fence.")
}

var filterCmd = &cobra.Command{
	Use:   "filter [SEQUENCE_FILE]",
	Short: "Remove length-outlier reads from a sequence file.",
	Long: `

Drop reads whose length falls outside the fence [Q1-k*IQR, Q3+k*IQR] of the
file's length distribution and write the remaining records back out. With a
zero IQR no fence exists and every record is kept.

The whole file is read before filtering, since the fence depends on the full
length distribution. Gzipped input and output are handled transparently.`,
	Run: func(cmd *cobra.Command, args []string) {
		StartProfiling()

		flags := cmd.Flags()
		outName, err := flags.GetString("output")
		check(err)
		k, err := flags.GetFloat64("outlier-k")
		check(err)

		fname := "-"
		if len(args) > 0 {
			fname = args[0]
		} else {
			fmt.Fprintf(os.Stderr, "No input sequence file given. Reading from STDIN.\n")
		}

		reader, err := fastx.NewDefaultReader(fname)
		check(err)

		var records []*fastx.Record
		var lengths []float64
		for {
			record, err := reader.Read()
			if err != nil {
				if err == io.EOF {
					break
				}
				check(err)
			}
			records = append(records, record.Clone())
			lengths = append(lengths, float64(len(record.Seq.Seq)))
		}

		lo, hi, err := seqmath.TukeyFence(lengths, k)
		check(err)

		outfh, err := xopen.Wopen(outName)
		check(err)
		defer outfh.Close()

		kept := 0
		for i, rec := range records {
			unbounded := math.IsInf(lo, -1) && math.IsInf(hi, 1)
			if unbounded || (lengths[i] >= lo && lengths[i] <= hi) {
				rec.FormatToWriter(outfh, 0)
				kept++
			} else if DEBUG {
				fmt.Fprintf(os.Stderr, "DROPPED OUTLIER   Acc: %s\tLength: %d\n", rec.Name, len(rec.Seq.Seq))
			}
		}
		check(outfh.Flush())

		if Verbose {
			fmt.Fprintf(os.Stderr, "Kept %d of %d reads (fence %.1f .. %.1f).\n", kept, len(records), lo, hi)
		}

		StopProfiling()
	},
}
