package cmd

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"github.com/sarchlab/debugtag"
	"github.com/sarchlab/debugtag/samplerecording"
)

var spreadCmd = &cobra.Command{
	Use:   "spread",
	Short: "Mint tags on many goroutines and report collisions.",
	Long: "`spread --goroutines N --tags M` mints N*M tags concurrently and " +
		"counts how many of them collide. With --record, every minted tag " +
		"is stored in a SQLite database for offline analysis.",
	Run: func(cmd *cobra.Command, args []string) {
		numGoroutine, _ := cmd.Flags().GetInt("goroutines")
		numTag, _ := cmd.Flags().GetInt("tags")
		record, _ := cmd.Flags().GetBool("record")

		if !debugtag.Enabled {
			fmt.Println("Diagnostics are disabled in this build. " +
				"Rebuild with -tags debugtag to scan tag distribution.")
			return
		}

		minted := mintTags(numGoroutine, numTag)

		distinct := map[debugtag.Tag]int{}
		for _, tags := range minted {
			for _, tag := range tags {
				distinct[tag]++
			}
		}

		total := numGoroutine * numTag

		fmt.Printf("Goroutines:  %d\n", numGoroutine)
		fmt.Printf("Tags minted: %d\n", total)
		fmt.Printf("Distinct:    %d\n", len(distinct))
		fmt.Printf("Collisions:  %d\n", total-len(distinct))

		if record {
			recordSamples(minted)
		}
	},
}

func init() {
	rootCmd.AddCommand(spreadCmd)
	spreadCmd.Flags().Int("goroutines", 8,
		"Number of goroutines minting tags")
	spreadCmd.Flags().Int("tags", 1024,
		"Number of tags minted per goroutine")
	spreadCmd.Flags().Bool("record", false,
		"Record every minted tag into a SQLite database")
}

func mintTags(numGoroutine, numTag int) [][]debugtag.Tag {
	minted := make([][]debugtag.Tag, numGoroutine)

	var wg sync.WaitGroup
	for g := 0; g < numGoroutine; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()

			tags := make([]debugtag.Tag, 0, numTag)
			for i := 0; i < numTag; i++ {
				tags = append(tags, debugtag.New())
			}

			minted[g] = tags
		}(g)
	}
	wg.Wait()

	return minted
}

type tagSample struct {
	Goroutine int
	Position  int
	Tag       string
}

func recordSamples(minted [][]debugtag.Tag) {
	recorder := samplerecording.New("")
	recorder.CreateTable("tag_samples", tagSample{})

	for g, tags := range minted {
		for i, tag := range tags {
			recorder.InsertData("tag_samples", tagSample{
				Goroutine: g,
				Position:  i,
				Tag:       tag.String(),
			})
		}
	}

	recorder.Flush()
}
