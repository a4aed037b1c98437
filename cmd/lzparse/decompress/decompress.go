package decompress

import (
	"fmt"
	"os"
	"strings"

	"github.com/andybalholm/lzparse/lz4"

	"github.com/spf13/cobra"
)

var output string

var DecompressCmd = &cobra.Command{
	Use:   "decompress [file]",
	Short: "Decompress an LZ4 block",
	Long:  "Decompress a file holding a single LZ4 block. The output name drops the .lz4 extension.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		in := args[0]
		out := output
		if out == "" {
			out = strings.TrimSuffix(in, ".lz4")
			if out == in {
				out = in + ".out"
			}
		}

		data, err := os.ReadFile(in)
		if err != nil {
			fmt.Printf("Error reading %s: %s\n", in, err)
			os.Exit(1)
		}

		decompressed, err := lz4.Decompress(data)
		if err != nil {
			fmt.Printf("Error decompressing %s: %s\n", in, err)
			os.Exit(1)
		}

		if err := os.WriteFile(out, decompressed, 0644); err != nil {
			fmt.Printf("Error writing %s: %s\n", out, err)
			os.Exit(1)
		}
		fmt.Printf("Decompressed %s (%d bytes) into %s (%d bytes)\n", in, len(data), out, len(decompressed))
	},
}

func init() {
	DecompressCmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: input file without .lz4)")
}
