package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inclusionlab/cvmatch/internal/catalog"
	"github.com/inclusionlab/cvmatch/internal/matching"
	"github.com/inclusionlab/cvmatch/internal/types"
)

var candidatesCmd = &cobra.Command{
	Use:   "candidates",
	Short: "Rank stored candidates against one job offer",
	Long:  "Rank the stored candidate pool against a job offer JSON file and print the best matches with their reasons.",
	RunE:  runCandidates,
}

var (
	candidatesOfferFile   string
	candidatesPoolFile    string
	candidatesDatabaseURL string
	candidatesLimit       int
	candidatesOutputFile  string
)

func init() {
	candidatesCmd.Flags().StringVar(&candidatesOfferFile, "offer", "", "Path to job offer JSON file (required)")
	candidatesCmd.Flags().StringVar(&candidatesPoolFile, "pool", "", "Path to JSON file with an array of candidate profiles")
	candidatesCmd.Flags().StringVar(&candidatesDatabaseURL, "db-url", "", "Database URL (overrides DATABASE_URL env var)")
	candidatesCmd.Flags().IntVar(&candidatesLimit, "limit", matching.DefaultCandidateLimit, "Maximum number of candidates to return")
	candidatesCmd.Flags().StringVarP(&candidatesOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")

	rootCmd.AddCommand(candidatesCmd)
}

func runCandidates(_ *cobra.Command, _ []string) error {
	if candidatesOfferFile == "" {
		return fmt.Errorf("--offer is required")
	}

	data, err := os.ReadFile(candidatesOfferFile)
	if err != nil {
		return fmt.Errorf("failed to read offer file: %w", err)
	}
	var offer types.Offer
	if err := json.Unmarshal(data, &offer); err != nil {
		return fmt.Errorf("failed to parse offer JSON: %w", err)
	}

	pool, err := loadCandidatePool(context.Background())
	if err != nil {
		return err
	}

	matches := matching.NewScorer().MatchCandidates(offer, pool, candidatesLimit)
	return writeJSON(candidatesOutputFile, map[string]any{"matching_candidates": matches})
}

// loadCandidatePool reads candidates from --pool when given, otherwise from
// the database.
func loadCandidatePool(ctx context.Context) ([]types.CandidateProfile, error) {
	if candidatesPoolFile != "" {
		data, err := os.ReadFile(candidatesPoolFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read pool file: %w", err)
		}
		var pool []types.CandidateProfile
		if err := json.Unmarshal(data, &pool); err != nil {
			return nil, fmt.Errorf("failed to parse pool JSON: %w", err)
		}
		return pool, nil
	}

	databaseURL := candidatesDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return nil, fmt.Errorf("either --pool or a database URL is required (set DATABASE_URL or use --db-url)")
	}

	store, err := catalog.Connect(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	return store.CandidatesForMatching(ctx)
}
