package bench

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/andybalholm/lzparse/lz4"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	pierrec "github.com/pierrec/lz4/v4"

	"github.com/spf13/cobra"
)

var (
	history int
	maxScan int
)

// A codec is one row of the comparison.
type codec struct {
	name     string
	compress func(src []byte) ([]byte, error)
	// check verifies that compressed decodes back to src. It is nil for
	// codecs that are only measured.
	check func(compressed, src []byte) error
}

func roundTrip(compressed, src []byte) error {
	out, err := lz4.Decompress(compressed)
	if err != nil {
		return err
	}
	if !bytes.Equal(out, src) {
		return fmt.Errorf("decompressed output does not match")
	}
	return nil
}

func codecs() []codec {
	greedy := lz4.DefaultOptions()
	greedy.HistoryLen = history
	optimal := lz4.DefaultOptions()
	optimal.Strategy = lz4.Optimal
	optimal.HistoryLen = history
	optimal.MaxScan = maxScan

	return []codec{
		{
			name:     "lzparse greedy",
			compress: func(src []byte) ([]byte, error) { return lz4.Compress(src, greedy), nil },
			check:    roundTrip,
		},
		{
			name:     "lzparse optimal",
			compress: func(src []byte) ([]byte, error) { return lz4.Compress(src, optimal), nil },
			check:    roundTrip,
		},
		{
			name: "pierrec/lz4",
			compress: func(src []byte) ([]byte, error) {
				var c pierrec.Compressor
				dst := make([]byte, pierrec.CompressBlockBound(len(src)))
				n, err := c.CompressBlock(src, dst)
				return dst[:n], err
			},
			check: roundTrip,
		},
		{
			name: "pierrec/lz4 HC",
			compress: func(src []byte) ([]byte, error) {
				c := pierrec.CompressorHC{Level: pierrec.Level9}
				dst := make([]byte, pierrec.CompressBlockBound(len(src)))
				n, err := c.CompressBlock(src, dst)
				return dst[:n], err
			},
			check: roundTrip,
		},
		{
			name:     "snappy",
			compress: func(src []byte) ([]byte, error) { return snappy.Encode(nil, src), nil },
		},
		{
			name: "zstd",
			compress: func(src []byte) ([]byte, error) {
				enc, err := zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1))
				if err != nil {
					return nil, err
				}
				defer enc.Close()
				return enc.EncodeAll(src, nil), nil
			},
		},
		{
			name: "brotli",
			compress: func(src []byte) ([]byte, error) {
				buf := new(bytes.Buffer)
				w := brotli.NewWriterLevel(buf, 5)
				if _, err := w.Write(src); err != nil {
					return nil, err
				}
				if err := w.Close(); err != nil {
					return nil, err
				}
				return buf.Bytes(), nil
			},
		},
	}
}

var BenchCmd = &cobra.Command{
	Use:   "bench [files...]",
	Short: "Compare compression ratios",
	Long:  "Compress each file with the greedy and optimal parsers and with other compressors, and print the sizes and ratios.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		failed := false
		for _, in := range args {
			data, err := os.ReadFile(in)
			if err != nil {
				fmt.Printf("Error reading %s: %s\n", in, err)
				os.Exit(1)
			}

			fmt.Printf("%s: %d bytes\n", in, len(data))
			for _, c := range codecs() {
				start := time.Now()
				compressed, err := c.compress(data)
				elapsed := time.Since(start)
				if err != nil {
					fmt.Printf("\t%-16s error: %s\n", c.name, err)
					failed = true
					continue
				}

				// Reference LZ4 reports incompressible input as 0 bytes.
				if len(compressed) == 0 {
					fmt.Printf("\t%-16s incompressible\n", c.name)
					continue
				}

				fmt.Printf("\t%-16s %10d bytes  ratio %6.3f  %v\n",
					c.name, len(compressed), float64(len(data))/float64(len(compressed)), elapsed.Round(time.Microsecond))
				if c.check != nil {
					if err := c.check(compressed, data); err != nil {
						fmt.Printf("\t%-16s round trip failed: %s\n", c.name, err)
						failed = true
					}
				}
			}
		}
		if failed {
			os.Exit(1)
		}
	},
}

func init() {
	BenchCmd.Flags().IntVar(&history, "history", 100, "Positions remembered per fingerprint")
	BenchCmd.Flags().IntVar(&maxScan, "max-scan", 1024, "Match lengths scored per position by the optimal parser")
}
