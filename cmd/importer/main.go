package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/mauv0809/summoner-tracker/internal/database"
	"github.com/mauv0809/summoner-tracker/internal/player"
	"github.com/mauv0809/summoner-tracker/internal/store"
	"github.com/spf13/cobra"
)

var (
	file   string
	dryRun bool
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := map[string]string{"DB_NAME": "players.db"}
	for _, key := range []string{"DB_NAME", "TURSO_PRIMARY_URL", "TURSO_AUTH_TOKEN"} {
		if value, ok := os.LookupEnv(key); ok && value != "" {
			config[key] = value
		}
	}
	return config
}

var rootCmd = &cobra.Command{
	Use:   "summoner-importer",
	Short: "Import a legacy players_db.json into the document store",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", file, err)
		}
		defer f.Close()

		db, err := database.InitDB(cfg["DB_NAME"], cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"])
		if err != nil {
			return err
		}
		defer db.Close()

		res, err := importFile(f, store.New(db), dryRun)
		if err != nil {
			return err
		}
		log.Info("Import finished", "documents", res.Imported, "replaced", res.Replaced, "dry_run", dryRun)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&file, "file", "f", "players_db.json", "Legacy TinyDB file to import")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Decode and validate documents without writing them")
}

type importResult struct {
	Imported int
	// Replaced counts imported players that already had a stored document.
	Replaced int
}

// importFile reads a TinyDB export ({"_default": {"1": {...}, ...}}) and upserts
// every document, upgraded to the current schema. Documents are written in
// insertion order.
func importFile(r io.Reader, st store.DocumentStore, dryRun bool) (importResult, error) {
	var res importResult
	var tables map[string]map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&tables); err != nil {
		return res, fmt.Errorf("failed to parse legacy database: %w", err)
	}
	docs, ok := tables["_default"]
	if !ok {
		return res, fmt.Errorf("legacy database has no _default table")
	}

	stored, err := st.GetAll()
	if err != nil {
		return res, fmt.Errorf("failed to list stored players: %w", err)
	}
	existing := make(map[string]bool, len(stored))
	for _, rec := range stored {
		existing[rec.Username] = true
	}

	ids := make([]string, 0, len(docs))
	for id := range docs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, errA := strconv.Atoi(ids[i])
		b, errB := strconv.Atoi(ids[j])
		if errA != nil || errB != nil {
			return ids[i] < ids[j]
		}
		return a < b
	})

	for _, id := range ids {
		rec, err := player.Decode(docs[id])
		if err != nil {
			return res, fmt.Errorf("document %s: %w", id, err)
		}
		if rec.Username == "" {
			log.Warn("Skipping document without username", "doc_id", id)
			continue
		}
		replaces := existing[rec.Username]
		if dryRun {
			log.Info("Would import player", "username", rec.Username, "replaces", replaces, "history_queues", len(rec.RankHistory))
		} else {
			if err := st.Upsert(rec); err != nil {
				return res, fmt.Errorf("failed to save %q: %w", rec.Username, err)
			}
			log.Info("Imported player", "username", rec.Username, "replaced", replaces)
		}
		res.Imported++
		if replaces {
			res.Replaced++
		}
	}
	return res, nil
}

func main() {
	log.Info("Starting legacy importer...")
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Import failed: %s", err)
	}
}
