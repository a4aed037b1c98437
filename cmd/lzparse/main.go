package main

import (
	"os"

	"github.com/andybalholm/lzparse/cmd/lzparse/bench"
	"github.com/andybalholm/lzparse/cmd/lzparse/compress"
	"github.com/andybalholm/lzparse/cmd/lzparse/decompress"
	"github.com/andybalholm/lzparse/cmd/lzparse/inspect"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lzparse",
	Short: "LZ4 block compressor with greedy and optimal parsing",
	Long:  "lzparse compresses files into single LZ4 blocks, choosing matches either greedily or with an optimal parser.",
}

func main() {
	rootCmd.AddCommand(compress.CompressCmd)
	rootCmd.AddCommand(decompress.DecompressCmd)
	rootCmd.AddCommand(inspect.InspectCmd)
	rootCmd.AddCommand(bench.BenchCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
