package inspect

import (
	"fmt"
	"os"

	"github.com/andybalholm/lzparse"
	"github.com/andybalholm/lzparse/lz4"

	"github.com/spf13/cobra"
)

var InspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "View the tokens in an LZ4 block",
	Long:  "Inspect the tokens of an LZ4 block: literal runs, match lengths and offsets.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		in := args[0]
		text, _ := cmd.Flags().GetBool("text")
		verbose, _ := cmd.Flags().GetBool("verbose")

		data, err := os.ReadFile(in)
		if err != nil {
			fmt.Printf("Error reading %s: %s\n", in, err)
			os.Exit(1)
		}

		tokens, err := lz4.Tokens(data)
		if err != nil {
			fmt.Printf("Error inspecting %s: %s\n", in, err)
			os.Exit(1)
		}

		if text {
			decompressed, err := lz4.Decompress(data)
			if err != nil {
				fmt.Printf("Error decompressing %s: %s\n", in, err)
				os.Exit(1)
			}
			os.Stdout.Write(lzparse.TextEncoder{}.Encode(nil, decompressed, Matches(tokens)))
			fmt.Println()
			return
		}

		var literals, matched, matches, longest int
		for i, t := range tokens {
			literals += len(t.Literals)
			if t.Last {
				if verbose {
					fmt.Printf("%d: %d literals, end of block\n", i, len(t.Literals))
				}
				continue
			}
			matches++
			matched += t.MatchLen
			if t.MatchLen > longest {
				longest = t.MatchLen
			}
			if verbose {
				fmt.Printf("%d: %d literals, match of %d bytes at offset %d\n", i, len(t.Literals), t.MatchLen, t.Offset)
			}
		}

		total := literals + matched
		fmt.Printf("Block %s: %d bytes, decompresses to %d bytes\n", in, len(data), total)
		fmt.Printf("\tTokens: %d\n\tLiterals: %d\n\tMatches: %d (%d bytes", len(tokens), literals, matches, matched)
		if matches > 0 {
			fmt.Printf(", average %.1f, longest %d", float64(matched)/float64(matches), longest)
		}
		fmt.Println(")")
	},
}

// Matches converts a block's tokens into the matches that would produce it.
func Matches(tokens []lz4.Token) []lzparse.Match {
	matches := make([]lzparse.Match, len(tokens))
	for i, t := range tokens {
		matches[i] = lzparse.Match{
			Unmatched: len(t.Literals),
			Length:    t.MatchLen,
			Distance:  t.Offset,
		}
	}
	return matches
}

func init() {
	InspectCmd.Flags().BoolP("text", "t", false, "Print the decompressed data with matches shown as <length,distance>")
	InspectCmd.Flags().BoolP("verbose", "v", false, "List every token")
}
