package compress

import (
	"fmt"
	"os"

	"github.com/andybalholm/lzparse"
	"github.com/andybalholm/lzparse/lz4"

	"github.com/spf13/cobra"
)

var (
	output      string
	optimal     bool
	fingerprint int
	history     int
	maxKeys     int
	lru         bool
	lazySteps   int
	maxScan     int
	compatible  bool
)

var CompressCmd = &cobra.Command{
	Use:   "compress [file]",
	Short: "Compress a file into an LZ4 block",
	Long:  "Compress a file into a single LZ4 block, written next to it with a .lz4 extension.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		in := args[0]
		out := output
		if out == "" {
			out = in + ".lz4"
		}

		data, err := os.ReadFile(in)
		if err != nil {
			fmt.Printf("Error reading %s: %s\n", in, err)
			os.Exit(1)
		}

		opts := lz4.DefaultOptions()
		if optimal {
			opts.Strategy = lz4.Optimal
		}
		opts.FingerprintLen = fingerprint
		opts.HistoryLen = history
		opts.MaxKeys = maxKeys
		if lru {
			opts.Eviction = lzparse.EvictLeastRecent
		}
		opts.LazySteps = lazySteps
		opts.MaxScan = maxScan
		opts.Compatible = compatible

		compressed := lz4.Compress(data, opts)
		if err := os.WriteFile(out, compressed, 0644); err != nil {
			fmt.Printf("Error writing %s: %s\n", out, err)
			os.Exit(1)
		}

		ratio := 0.0
		if len(compressed) > 0 {
			ratio = float64(len(data)) / float64(len(compressed))
		}
		fmt.Printf("Compressed %s (%d bytes) into %s (%d bytes), ratio %.3f, %v parser\n",
			in, len(data), out, len(compressed), ratio, opts.Strategy)
	},
}

func init() {
	CompressCmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: input file + .lz4)")
	CompressCmd.Flags().BoolVarP(&optimal, "optimal", "O", false, "Use the optimal parser instead of the greedy one")
	CompressCmd.Flags().IntVarP(&fingerprint, "fingerprint", "f", 4, "Bytes hashed to find match candidates: 4|8")
	CompressCmd.Flags().IntVar(&history, "history", 100, "Positions remembered per fingerprint")
	CompressCmd.Flags().IntVar(&maxKeys, "max-keys", 1<<20, "Fingerprints remembered (-1 = no limit)")
	CompressCmd.Flags().BoolVar(&lru, "lru", false, "Evict the least recently used fingerprint instead of the oldest")
	CompressCmd.Flags().IntVar(&lazySteps, "lazy", 1, "Lazy matching steps for the greedy parser (-1 = off)")
	CompressCmd.Flags().IntVar(&maxScan, "max-scan", 1024, "Match lengths scored per position by the optimal parser")
	CompressCmd.Flags().BoolVarP(&compatible, "compatible", "C", false, "Follow the reference LZ4 end-of-block rules")
}
