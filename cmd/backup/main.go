package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"kelaskata/internal/config"
	"kelaskata/internal/database"
	"kelaskata/internal/models"
	"kelaskata/internal/repository"
)

type sessionExport struct {
	Session models.DrillSession       `json:"session"`
	Results []models.AssessmentResult `json:"results"`
}

type exportFile struct {
	ExportedAt time.Time       `json:"exported_at"`
	Sessions   []sessionExport `json:"sessions"`
}

func main() {
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	exportOutput := exportCmd.String("output", "", "Output file path (default: sessions_YYYYMMDD_HHMMSS.json)")

	sweepCmd := flag.NewFlagSet("sweep", flag.ExitOnError)
	sweepIdle := sweepCmd.Duration("idle", 30*time.Minute, "End active sessions idle longer than this")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	repo := repository.NewSessionRepository(db)

	switch os.Args[1] {
	case "export":
		exportCmd.Parse(os.Args[2:])
		handleExport(repo, *exportOutput)

	case "sweep":
		sweepCmd.Parse(os.Args[2:])
		handleSweep(repo, *sweepIdle)

	default:
		printUsage()
		os.Exit(1)
	}
}

// handleExport writes every session and its ledger to one JSON file
func handleExport(repo *repository.SessionRepository, outputPath string) {
	if outputPath == "" {
		timestamp := time.Now().Format("20060102_150405")
		outputPath = fmt.Sprintf("sessions_%s.json", timestamp)
	}

	dir := filepath.Dir(outputPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create output directory: %v", err)
		}
	}

	sessions, err := repo.ListSessions()
	if err != nil {
		log.Fatalf("Failed to list sessions: %v", err)
	}

	out := exportFile{ExportedAt: time.Now()}
	for _, session := range sessions {
		results, err := repo.ListResults(session.ID)
		if err != nil {
			log.Fatalf("Failed to list results for session %s: %v", session.Code, err)
		}
		out.Sessions = append(out.Sessions, sessionExport{Session: session, Results: results})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode export: %v", err)
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		log.Fatalf("Failed to write export: %v", err)
	}

	log.Printf("Exported %d sessions to %s", len(out.Sessions), outputPath)
}

// handleSweep ends sessions with no recent writer activity
func handleSweep(repo *repository.SessionRepository, idle time.Duration) {
	ids, err := repo.DeactivateStale(time.Now().Add(-idle))
	if err != nil {
		log.Fatalf("Failed to sweep sessions: %v", err)
	}
	log.Printf("Ended %d sessions idle longer than %s", len(ids), idle)
}

func printUsage() {
	fmt.Println("Usage: backup <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  export   Write all drill sessions and their results to a JSON file")
	fmt.Println("  sweep    End active sessions with no recent writer activity")
	fmt.Println()
	fmt.Println("Run 'backup <command> -h' for command flags.")
}
