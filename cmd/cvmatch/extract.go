package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/inclusionlab/cvmatch/internal/extraction"
	"github.com/inclusionlab/cvmatch/internal/observability"
	"github.com/inclusionlab/cvmatch/internal/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a structured candidate profile from CV text",
	Long:  "Extract name, contact data, skills, languages, experience, education and a summary from a plain-text CV file, printing the profile as JSON.",
	RunE:  runExtract,
}

var (
	extractInputFile    string
	extractOutputFile   string
	extractEntitiesFile string
	extractVerbose      bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractInputFile, "in", "i", "", "Path to plain-text CV file (required)")
	extractCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	extractCmd.Flags().StringVar(&extractEntitiesFile, "entities", "", "Path to JSON file with pre-recognized named entities")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print a formatted profile summary to stderr")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	if extractInputFile == "" {
		return fmt.Errorf("--in is required")
	}

	content, err := os.ReadFile(extractInputFile)
	if err != nil {
		return fmt.Errorf("failed to read CV file: %w", err)
	}

	var entities []types.Entity
	if extractEntitiesFile != "" {
		data, err := os.ReadFile(extractEntitiesFile)
		if err != nil {
			return fmt.Errorf("failed to read entities file: %w", err)
		}
		if err := json.Unmarshal(data, &entities); err != nil {
			return fmt.Errorf("failed to parse entities JSON: %w", err)
		}
	}

	extractor := extraction.New(extraction.DefaultConfig())
	profile := extractor.Extract(context.Background(), extraction.Input{
		ID:       uuid.New().String(),
		Text:     string(content),
		Entities: entities,
		Filename: filepath.Base(extractInputFile),
	})

	if extractVerbose {
		observability.NewPrinter(os.Stderr).PrintProfile(&profile)
	}

	return writeJSON(extractOutputFile, profile)
}

// writeJSON writes v as indented JSON to path, or to stdout when path is "".
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	if path == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
