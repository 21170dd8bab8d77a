package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"kelaskata/internal/catalog"
	"kelaskata/internal/config"
	"kelaskata/internal/models"
	"kelaskata/internal/service"
)

func main() {
	catalogFlag := flag.String("catalog", "mufradat", "Catalog to drill (see -list)")
	tierFlag := flag.String("tier", "all", "Tier to drill, or \"all\"")
	listFlag := flag.Bool("list", false, "List available catalogs and exit")
	resetFlag := flag.Bool("reset", false, "Discard any saved drill and start fresh")
	flag.Parse()

	if *listFlag {
		printCatalogs()
		return
	}

	cfg := config.Load()
	drill := service.NewSoloService(service.NewFileSoloStore(cfg.SoloStatePath))

	if *resetFlag {
		if err := drill.Reset(); err != nil {
			log.Fatalf("Failed to reset drill: %v", err)
		}
	}

	state, err := drill.Resume()
	if err != nil {
		log.Fatalf("Failed to load saved drill: %v", err)
	}

	reader := bufio.NewReader(os.Stdin)

	if state != nil {
		fmt.Printf("Found a saved %s drill (%d of %d assessed, %d points).\n",
			state.Catalog, len(state.Results), len(state.ItemOrder), state.TotalScore)
		if askYesNo(reader, "Resume it?") {
			run(drill, reader)
			return
		}
		if err := drill.Reset(); err != nil {
			log.Fatalf("Failed to discard saved drill: %v", err)
		}
	}

	if _, err := drill.Start(*catalogFlag, *tierFlag); err != nil {
		log.Fatalf("Failed to start drill: %v", err)
	}
	run(drill, reader)
}

func printCatalogs() {
	for _, cat := range catalog.All() {
		fmt.Printf("%s (%s)\n", cat.Key, cat.Name)
		counts := cat.Counts()
		for _, tier := range cat.Tiers {
			fmt.Printf("  %-6s %d items\n", tier, counts[string(tier)])
		}
		fmt.Printf("  %-6s %d items\n", "all", counts["all"])
	}
}

func run(drill *service.SoloService, reader *bufio.Reader) {
	state := drill.State()
	fmt.Printf("\nDrilling %s/%s, %d items. Score so far: %d (best streak %d).\n",
		state.Catalog, state.Tier, len(state.ItemOrder), state.TotalScore, state.MaxStreak)
	fmt.Println("Commands: [enter] reveal, y/n marks, p previous, n next, q quit.")

	for {
		state = drill.State()
		item, err := drill.CurrentItem()
		if err != nil {
			log.Fatalf("Failed to load current item: %v", err)
		}

		fmt.Printf("\n[%d/%d] %s\n", state.CurrentIndex+1, len(state.ItemOrder), item.PrimaryForm)

		if state.HasResult(item.ID) {
			fmt.Println("(already assessed)")
			if !askContinue(drill, reader) {
				return
			}
			continue
		}

		fmt.Print("Press enter to reveal...")
		if _, err := reader.ReadString('\n'); err != nil {
			return
		}
		printAnswer(item)

		reading := askYesNo(reader, "Reading correct?")
		meaning := askYesNo(reader, "Meaning correct?")
		usage := askYesNo(reader, "Usage correct?")

		state, result, err := drill.Submit(reading, meaning, usage)
		if err != nil {
			log.Fatalf("Failed to record assessment: %v", err)
		}
		if result != nil {
			fmt.Printf("+%d points (%d base, %d bonus). Total %d, streak %d.\n",
				result.TotalScore, result.BaseScore, result.BonusScore,
				state.TotalScore, state.Streak)
		}

		if drill.Finished() {
			printSummary(state)
			if err := drill.Reset(); err != nil {
				log.Printf("Failed to clear finished drill: %v", err)
			}
			return
		}
		if !askContinue(drill, reader) {
			return
		}
	}
}

func printAnswer(item models.VocabItem) {
	if item.Reading != "" {
		fmt.Printf("Reading: %s\n", item.Reading)
	}
	fmt.Printf("Meaning: %s\n", item.Meaning)
}

// askContinue moves the cursor based on one navigation command. It returns
// false when the user quits; progress is already on disk either way.
func askContinue(drill *service.SoloService, reader *bufio.Reader) bool {
	for {
		fmt.Print("[n]ext, [p]revious, [q]uit: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "", "n", "next":
			if _, err := drill.Advance(); err != nil {
				log.Fatalf("Failed to advance: %v", err)
			}
			return true
		case "p", "prev", "previous":
			if _, err := drill.Retreat(); err != nil {
				log.Fatalf("Failed to go back: %v", err)
			}
			return true
		case "q", "quit":
			fmt.Println("Progress saved. Run again to resume.")
			return false
		}
	}
}

func askYesNo(reader *bufio.Reader, prompt string) bool {
	for {
		fmt.Printf("%s [y/n]: ", prompt)
		line, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
	}
}

func printSummary(state *models.SoloState) {
	fully := 0
	for _, result := range state.Results {
		if result.Submitted() && *result.Reading && *result.Meaning && *result.Usage {
			fully++
		}
	}
	fmt.Printf("\nDrill complete! %d points, best streak %d, %d of %d fully correct.\n",
		state.TotalScore, state.MaxStreak, fully, len(state.ItemOrder))
}
