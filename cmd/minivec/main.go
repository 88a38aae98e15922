package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dshills/minivec/config"
	"github.com/dshills/minivec/core"
	"github.com/dshills/minivec/persistence"
)

var (
	configPath   string
	snapshotPath string
)

var rootCmd = &cobra.Command{
	Use:   "minivec",
	Short: "CLI shell for the minivec similarity search engine",
	Long: `Manage an in-memory vector document store backed by a JSON snapshot:
add and remove documents, run cosine top-N searches, and move snapshots
between files.`,
	SilenceUsage: true,
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add or replace a document",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetString("id")
		title, _ := cmd.Flags().GetString("title")
		vectorStr, _ := cmd.Flags().GetString("vector")
		metadataStr, _ := cmd.Flags().GetString("metadata")

		if id == "" {
			id = uuid.NewString()
		}

		vector, err := parseVector(vectorStr)
		if err != nil {
			return err
		}

		metadata := make(map[string]string)
		if metadataStr != "" {
			if err := json.Unmarshal([]byte(metadataStr), &metadata); err != nil {
				return fmt.Errorf("invalid metadata JSON: %w", err)
			}
		}

		store, cfg, err := openStore()
		if err != nil {
			return err
		}

		doc := core.Document{ID: id, Title: title, Metadata: metadata, Vector: vector}
		if err := store.Upsert(doc); err != nil {
			return err
		}
		if err := saveStore(store, cfg); err != nil {
			return err
		}

		fmt.Printf("Document '%s' added\n", id)
		return nil
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		store, cfg, err := openStore()
		if err != nil {
			return err
		}

		if !store.Delete(id) {
			fmt.Printf("Document '%s' not found\n", id)
			return nil
		}
		if err := saveStore(store, cfg); err != nil {
			return err
		}

		fmt.Printf("Document '%s' removed\n", id)
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Find the documents most similar to a query vector",
	RunE: func(cmd *cobra.Command, args []string) error {
		vectorStr, _ := cmd.Flags().GetString("vector")
		topN, _ := cmd.Flags().GetInt("top")

		query, err := parseVector(vectorStr)
		if err != nil {
			return err
		}

		store, cfg, err := openStore()
		if err != nil {
			return err
		}
		if topN <= 0 {
			topN = cfg.Search.DefaultTopN
		}

		results, err := core.NewSearchIndex(store).Search(query, topN)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}

		if len(results) == 0 {
			fmt.Println("No documents found")
			return nil
		}
		for i, result := range results {
			fmt.Printf("%2d. %-24s score=%.4f", i+1, result.Document.ID, result.Score)
			if result.Document.Title != "" {
				fmt.Printf("  %s", result.Document.Title)
			}
			fmt.Println()
		}
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}

		docs := store.All()
		if len(docs) == 0 {
			fmt.Println("Store is empty")
			return nil
		}
		for _, doc := range docs {
			fmt.Printf("%-24s dim=%d", doc.ID, len(doc.Vector))
			if doc.Title != "" {
				fmt.Printf("  %s", doc.Title)
			}
			fmt.Println()
		}
		fmt.Printf("%d document(s)\n", len(docs))
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Export the store to a JSON snapshot file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}

		if err := persistence.Export(context.Background(), store, args[0]); err != nil {
			return err
		}
		fmt.Printf("Exported %d document(s) to %s\n", store.Len(), args[0])
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Import documents from a JSON snapshot file",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cfg, err := openStore()
		if err != nil {
			return err
		}

		loaded, err := persistence.ImportInto(context.Background(), store, args[0])
		if err != nil {
			return err
		}
		if err := saveStore(store, cfg); err != nil {
			return err
		}

		fmt.Printf("Imported %d document(s) from %s\n", loaded, args[0])
		return nil
	},
	Args: cobra.ExactArgs(1),
}

// openStore loads configuration and fills a fresh store from the snapshot
// file, if one exists yet
func openStore() (*core.DocumentStore, *config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}
	if snapshotPath != "" {
		cfg.Store.SnapshotPath = snapshotPath
	}

	store := core.NewDocumentStore()
	if _, err := os.Stat(cfg.Store.SnapshotPath); err == nil {
		if _, err := persistence.ImportInto(context.Background(), store, cfg.Store.SnapshotPath); err != nil {
			return nil, nil, fmt.Errorf("load snapshot: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, nil, fmt.Errorf("stat snapshot %s: %w", cfg.Store.SnapshotPath, err)
	}

	return store, cfg, nil
}

func saveStore(store *core.DocumentStore, cfg *config.Config) error {
	return persistence.Export(context.Background(), store, cfg.Store.SnapshotPath)
}

func parseVector(s string) ([]float32, error) {
	if s == "" {
		return nil, fmt.Errorf("vector is required")
	}

	parts := strings.Split(s, ",")
	vector := make([]float32, 0, len(parts))
	for _, part := range parts {
		val, err := strconv.ParseFloat(strings.TrimSpace(part), 32)
		if err != nil {
			return nil, fmt.Errorf("invalid vector component %q: %w", part, err)
		}
		vector = append(vector, float32(val))
	}

	return vector, nil
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: ~/.minivec.yml)")
	rootCmd.PersistentFlags().StringVarP(&snapshotPath, "snapshot", "s", "", "Snapshot file path (overrides config)")

	addCmd.Flags().String("id", "", "Document ID (generated when omitted)")
	addCmd.Flags().String("title", "", "Document title")
	addCmd.Flags().String("vector", "", "Embedding values (comma-separated)")
	addCmd.Flags().String("metadata", "", "Metadata as JSON")
	addCmd.MarkFlagRequired("vector")

	searchCmd.Flags().String("vector", "", "Query vector (comma-separated)")
	searchCmd.Flags().Int("top", 0, "Number of results (0 for config default)")
	searchCmd.MarkFlagRequired("vector")

	rootCmd.AddCommand(
		addCmd,
		rmCmd,
		searchCmd,
		listCmd,
		exportCmd,
		importCmd,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
