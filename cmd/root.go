package cmd

import (
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var RootCmd = &cobra.Command{
	Use:   "nanomath",
	Short: "nanomath computes summary statistics for long-read sequencing data.",
	Long: `nanomath computes descriptive statistics over sequencing reads: read
length N50, error-rate-space mean quality, cutoff tallies and the like, and
prints them as an aligned summary report.`,
}

const (
	DEBUG = false
)

var cfgFile string

var Verbose bool

var MemProfileFileName string
var MemProfileFile *os.File
var CpuProfileFileName string
var CpuProfileFile *os.File

func StartProfiling() {
	if MemProfileFileName != "" {
		var err error
		MemProfileFile, err = os.Create(MemProfileFileName)
		if err != nil {
			log.Fatal(err)
		}
	}

	if CpuProfileFileName != "" {
		CpuProfileFile, err := os.Create(CpuProfileFileName)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(CpuProfileFile)
	}
}

func StopProfiling() {
	if MemProfileFileName != "" {
		pprof.WriteHeapProfile(MemProfileFile)
		MemProfileFile.Close()
	}
	if CpuProfileFileName != "" {
		pprof.StopCPUProfile()
		CpuProfileFile.Close()
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "", false, "Enable verbose output.")
	RootCmd.PersistentFlags().StringVarP(&MemProfileFileName, "memprofile", "", "", "Write a memory profile to this file.")
	RootCmd.PersistentFlags().StringVarP(&CpuProfileFileName, "cpuprofile", "", "", "Write a CPU profile to this file.")

	RootCmd.Flags().BoolP("help", "h", false, "Show this help message.")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" { // enable ability to specify config file via flag
		viper.SetConfigFile(cfgFile)
	}

	viper.SetConfigName(".nanomath") // name of config file (without extension)
	viper.AddConfigPath("$HOME")     // adding home directory as first search path
	viper.SetEnvPrefix("nanomath")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil && Verbose {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func check(e error) {
	if e != nil {
		log.Fatal(e)
	}
}
