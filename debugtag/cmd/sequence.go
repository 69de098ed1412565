package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

// goldenIncrement mirrors the constant the library seeds local counters with,
// 2^32 * (1 - 1/(golden ratio)).
const goldenIncrement uint32 = 1_640_531_527

var sequenceCmd = &cobra.Command{
	Use:   "sequence",
	Short: "Print the golden-ratio offset sequence.",
	Long: "`sequence --count N` prints the first N starting offsets the " +
		"library hands out to local counters and the smallest gap between " +
		"any two of them.",
	Run: func(cmd *cobra.Command, args []string) {
		count, _ := cmd.Flags().GetInt("count")
		if count < 2 {
			fmt.Println("Count must be at least 2.")
			return
		}

		offsets := make([]uint32, count)
		offset := uint32(0)
		for i := range offsets {
			offset += goldenIncrement
			offsets[i] = offset
			fmt.Printf("%4d  %#010x\n", i+1, offset)
		}

		fmt.Printf("Smallest gap: %d\n", smallestGap(offsets))
		fmt.Printf("Even spacing: %d\n", uint32((1<<32)/uint64(count)))
	},
}

func init() {
	rootCmd.AddCommand(sequenceCmd)
	sequenceCmd.Flags().Int("count", 16, "Number of offsets to print")
}

// smallestGap returns the smallest circular distance between any two offsets.
func smallestGap(offsets []uint32) uint32 {
	sorted := make([]uint32, len(offsets))
	copy(sorted, offsets)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	// The gap from the largest offset back to the smallest wraps around.
	gap := sorted[0] - sorted[len(sorted)-1]
	for i := 1; i < len(sorted); i++ {
		if d := sorted[i] - sorted[i-1]; d < gap {
			gap = d
		}
	}

	return gap
}
