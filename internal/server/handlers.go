package server

import (
	"context"
	"encoding/json"
	"hash/fnv"
	"net/http"

	"github.com/google/uuid"

	"github.com/inclusionlab/cvmatch/internal/catalog"
	"github.com/inclusionlab/cvmatch/internal/employability"
	"github.com/inclusionlab/cvmatch/internal/extraction"
	"github.com/inclusionlab/cvmatch/internal/interview"
	"github.com/inclusionlab/cvmatch/internal/recommend"
	"github.com/inclusionlab/cvmatch/internal/types"
)

// ExtractRequest represents the request body for /extract-cv-data.
// Text is the plain text of one CV document; entities are optional named
// entities recognized upstream.
type ExtractRequest struct {
	ID       string         `json:"id,omitempty"`
	Filename string         `json:"filename,omitempty"`
	Text     string         `json:"text" validate:"required"`
	Entities []types.Entity `json:"entities,omitempty"`
}

// ProcessRequest represents the request body for /process-candidate-data.
// The profile is trusted input, typically one corrected during human review.
type ProcessRequest struct {
	Profile types.CandidateProfile `json:"profile" validate:"required"`
}

// CandidateSummary is the full processing result for one candidate.
type CandidateSummary struct {
	CandidateID        string                   `json:"candidate_id"`
	Profile            types.CandidateProfile   `json:"profile"`
	Recommendations    []string                 `json:"recommended_positions"`
	Employability      employability.Assessment `json:"employability"`
	InterviewQuestions []string                 `json:"interview_questions"`
	Matches            []types.MatchResult      `json:"matching_offers"`
}

// MatchOffersRequest represents the request body for /match-offers.
type MatchOffersRequest struct {
	Profile types.CandidateProfile `json:"profile" validate:"required"`
}

// MatchCandidatesRequest represents the request body for /match-candidates.
// The offer may be given inline or referenced by id, in which case it is
// resolved through the catalog.
type MatchCandidatesRequest struct {
	Offer   types.Offer `json:"offer,omitempty"`
	OfferID string      `json:"offer_id,omitempty"`
	Limit   int         `json:"limit,omitempty" validate:"gte=0"`
}

// handleExtractCV extracts a structured profile from raw CV text
func (s *Server) handleExtractCV(w http.ResponseWriter, r *http.Request) {
	var req ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		verr := &ErrValidation{Field: "text", Message: "is required"}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}
	if req.ID == "" {
		req.ID = uuid.New().String()
	}

	profile := s.extractor.Extract(r.Context(), extraction.Input{
		ID:       req.ID,
		Text:     req.Text,
		Entities: req.Entities,
		Filename: req.Filename,
	})

	s.jsonResponse(w, http.StatusOK, profile)
}

// handleProcessCandidate runs the full post-extraction pipeline over a
// reviewed profile: position recommendations, employability assessment,
// interview questions and offer matching. The summary is stored for later
// retrieval.
func (s *Server) handleProcessCandidate(w http.ResponseWriter, r *http.Request) {
	var req ProcessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Profile.ID == "" {
		req.Profile.ID = uuid.New().String()
	}
	if err := s.validate.Struct(req.Profile); err != nil {
		verr := &ErrValidation{Field: "profile", Message: err.Error()}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	offers, err := s.offers.ActiveOffers(r.Context())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	summary := s.buildSummary(r, req.Profile, offers)
	if s.printer != nil {
		s.printer.PrintProfile(&req.Profile)
		s.printer.PrintMatches(summary.Matches)
	}
	s.profiles.put(req.Profile, summary)
	if s.store != nil {
		if err := s.store.SaveCandidate(r.Context(), req.Profile); err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, summary)
}

// handleCandidateSummary returns the stored summary for a candidate. When the
// summary is not in memory but the candidate exists in the database, it is
// rebuilt against the current offer catalog.
func (s *Server) handleCandidateSummary(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if summary, ok := s.profiles.summary(id); ok {
		s.jsonResponse(w, http.StatusOK, summary)
		return
	}

	if s.store != nil {
		profile, err := s.store.GetCandidate(r.Context(), id)
		if err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		offers, err := s.offers.ActiveOffers(r.Context())
		if err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		summary := s.buildSummary(r, *profile, offers)
		s.profiles.put(*profile, summary)
		s.jsonResponse(w, http.StatusOK, summary)
		return
	}

	err := &ErrCandidateNotFound{ID: id}
	s.errorResponse(w, HTTPStatus(err), err.Error())
}

// handleMatchOffers scores the active offer catalog against one profile
func (s *Server) handleMatchOffers(w http.ResponseWriter, r *http.Request) {
	var req MatchOffersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	offers, err := s.offers.ActiveOffers(r.Context())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	recommended := recommend.Positions(req.Profile)
	matches := s.scorer.MatchOffers(req.Profile, recommended, offers)
	s.jsonResponse(w, http.StatusOK, map[string]any{"matching_offers": matches})
}

// handleMatchCandidates ranks the candidate pool against one offer
func (s *Server) handleMatchCandidates(w http.ResponseWriter, r *http.Request) {
	var req MatchCandidatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	offer := req.Offer
	if req.OfferID != "" {
		resolved, err := s.lookupOffer(r.Context(), req.OfferID)
		if err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		offer = *resolved
	}
	if offer.Title == "" {
		verr := &ErrValidation{Field: "offer", Message: "a title or an offer_id is required"}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}
	limit := req.Limit
	if limit <= 0 {
		limit = s.candidateLimit
	}

	pool := s.profiles.all()
	if s.store != nil {
		stored, err := s.store.CandidatesForMatching(r.Context())
		if err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		pool = stored
	}

	matches := s.scorer.MatchCandidates(offer, pool, limit)
	s.jsonResponse(w, http.StatusOK, map[string]any{"matching_candidates": matches})
}

// lookupOffer resolves an offer by id, through the database when one is
// configured and otherwise by scanning the active catalog.
func (s *Server) lookupOffer(ctx context.Context, id string) (*types.Offer, error) {
	if s.store != nil {
		return s.store.GetOffer(ctx, id)
	}
	offers, err := s.offers.ActiveOffers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range offers {
		if offers[i].ID == id {
			return &offers[i], nil
		}
	}
	return nil, &catalog.NotFoundError{Kind: "offer", ID: id}
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// buildSummary assembles the candidate summary. The interview question seed
// derives from the candidate ID, so reprocessing the same candidate yields
// the same questions.
func (s *Server) buildSummary(r *http.Request, profile types.CandidateProfile, offers []types.Offer) CandidateSummary {
	recommended := recommend.Positions(profile)
	assessment := employability.Assess(r.Context(), profile, s.model)
	questions := interview.Questions(interview.Params{
		Profile:          profile,
		DevelopmentAreas: assessment.DevelopmentAreas,
		Recommendations:  recommended,
		Seed:             seedFromID(profile.ID),
	})
	matches := s.scorer.MatchOffers(profile, recommended, offers)

	return CandidateSummary{
		CandidateID:        profile.ID,
		Profile:            profile,
		Recommendations:    recommended,
		Employability:      assessment,
		InterviewQuestions: questions,
		Matches:            matches,
	}
}

func seedFromID(id string) int64 {
	h := fnv.New64a()
	h.Write([]byte(id))
	return int64(h.Sum64())
}
