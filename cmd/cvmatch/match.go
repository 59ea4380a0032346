package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/inclusionlab/cvmatch/internal/catalog"
	"github.com/inclusionlab/cvmatch/internal/matching"
	"github.com/inclusionlab/cvmatch/internal/observability"
	"github.com/inclusionlab/cvmatch/internal/recommend"
	"github.com/inclusionlab/cvmatch/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match a candidate profile against the offer catalog",
	Long:  "Score every active job offer against a candidate profile JSON file and print the ranked matches with their reasons.",
	RunE:  runMatch,
}

var (
	matchProfileFile string
	matchOffersFile  string
	matchDatabaseURL string
	matchOutputFile  string
	matchVerbose     bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchProfileFile, "profile", "p", "", "Path to candidate profile JSON file (required)")
	matchCmd.Flags().StringVar(&matchOffersFile, "offers", "", "Path to JSON offers catalog file")
	matchCmd.Flags().StringVar(&matchDatabaseURL, "db-url", "", "Database URL (overrides DATABASE_URL env var)")
	matchCmd.Flags().StringVarP(&matchOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print a formatted match summary to stderr")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	if matchProfileFile == "" {
		return fmt.Errorf("--profile is required")
	}

	profile, err := loadProfile(matchProfileFile)
	if err != nil {
		return err
	}

	offers, err := loadOffers(context.Background())
	if err != nil {
		return err
	}

	recommended := recommend.Positions(profile)
	matches := matching.NewScorer().MatchOffers(profile, recommended, offers)

	if matchVerbose {
		observability.NewPrinter(os.Stderr).PrintMatches(matches)
	}

	return writeJSON(matchOutputFile, map[string]any{
		"recommended_positions": recommended,
		"matching_offers":       matches,
	})
}

func loadProfile(path string) (types.CandidateProfile, error) {
	var profile types.CandidateProfile
	data, err := os.ReadFile(path)
	if err != nil {
		return profile, fmt.Errorf("failed to read profile file: %w", err)
	}
	if err := json.Unmarshal(data, &profile); err != nil {
		return profile, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	return profile, nil
}

// loadOffers resolves the offer source from flags and environment: a JSON
// file when --offers is set, otherwise the database.
func loadOffers(ctx context.Context) ([]types.Offer, error) {
	if matchOffersFile != "" {
		src, err := catalog.LoadOffersFile(matchOffersFile)
		if err != nil {
			return nil, err
		}
		return src.ActiveOffers(time.Now()), nil
	}

	databaseURL := matchDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return nil, fmt.Errorf("either --offers or a database URL is required (set DATABASE_URL or use --db-url)")
	}

	store, err := catalog.Connect(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	return store.ActiveOffers(ctx)
}
