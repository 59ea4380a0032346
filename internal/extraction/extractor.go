package extraction

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/inclusionlab/cvmatch/internal/types"
	"github.com/inclusionlab/cvmatch/internal/vocab"
)

// Config carries the fixed vocabularies the extractor reads. A Config is
// immutable once built; there is no ambient mutable state, so one Extractor
// can serve any number of concurrent documents.
type Config struct {
	Skills            []string
	Languages         []string
	ProficiencyLevels []string
}

// DefaultConfig returns a Config backed by the standard vocabularies.
func DefaultConfig() Config {
	return Config{
		Skills:            vocab.Skills,
		Languages:         vocab.Languages,
		ProficiencyLevels: vocab.ProficiencyLevels,
	}
}

// Extractor composes the extraction pipeline: text normalization, section
// segmentation, then the independent field extractors.
type Extractor struct {
	cfg Config
}

// New creates an Extractor with the given configuration.
func New(cfg Config) *Extractor {
	return &Extractor{cfg: cfg}
}

// Input is one CV document to extract: decoded plain text, the NER entity
// spans already resolved by the external model, and the source file name used
// only as a last-resort name signal.
type Input struct {
	ID       string
	Text     string
	Entities []types.Entity
	Filename string
}

// Extract runs the full pipeline over one document and assembles the
// CandidateProfile. Normalization and segmentation run first; the field
// extractors are pure and independent, so they run concurrently. Extraction
// never fails: fields that cannot be resolved stay absent.
func (e *Extractor) Extract(ctx context.Context, input Input) types.CandidateProfile {
	text := NormalizeText(input.Text)
	sections := Segment(text)

	profile := types.CandidateProfile{
		ID:      input.ID,
		RawText: input.Text,
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		profile.Name = ExtractName(NameInput{
			Text:     text,
			Entities: input.Entities,
			Filename: input.Filename,
		})
		return nil
	})
	g.Go(func() error {
		profile.Email = ExtractEmail(text)
		profile.Phone = ExtractPhone(text)
		return nil
	})
	g.Go(func() error {
		profile.Skills = ExtractSkills(text, e.cfg.Skills)
		return nil
	})
	g.Go(func() error {
		profile.Languages = ExtractLanguages(text, e.cfg.Languages, e.cfg.ProficiencyLevels)
		return nil
	})
	g.Go(func() error {
		profile.Experience = ExtractExperience(sections, text)
		return nil
	})
	g.Go(func() error {
		profile.Education = ExtractEducation(sections, text)
		return nil
	})
	g.Go(func() error {
		profile.Summary = ExtractSummary(text)
		return nil
	})

	// Extractors only return nil; Wait just synchronizes them.
	_ = g.Wait()

	return profile
}
