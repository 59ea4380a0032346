package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inclusionlab/cvmatch/internal/observability"
	"github.com/inclusionlab/cvmatch/internal/types"
)

const testOffersJSON = `[
  {
    "id": "0b9a3b1e-9d4a-4f4b-8a52-0f6a3b6a1c01",
    "title": "Desarrollador De Software",
    "category": "Desarrollador De Software",
    "company": "Acme Corp",
    "description": "Buscamos perfil con Python y SQL"
  },
  {
    "id": "0b9a3b1e-9d4a-4f4b-8a52-0f6a3b6a1c02",
    "title": "Piloto Aéreo",
    "category": "Aviación",
    "description": "Vuelos regionales"
  }
]`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	path := filepath.Join(t.TempDir(), "offers.json")
	require.NoError(t, os.WriteFile(path, []byte(testOffersJSON), 0o644))

	srv, err := New(context.Background(), Config{Port: 0, OffersFile: path})
	require.NoError(t, err)
	return srv
}

func doRequest(srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	rec := doRequest(newTestServer(t), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleExtractCV(t *testing.T) {
	srv := newTestServer(t)
	rec := doRequest(srv, http.MethodPost, "/extract-cv-data", ExtractRequest{
		Text: "Nombre: Ana García Pérez\nana@example.com\nTeléfono: 600123456",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var profile types.CandidateProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.NotEmpty(t, profile.ID, "an ID is assigned when the request carries none")
	assert.Equal(t, "Ana García Pérez", profile.Name)
	assert.Equal(t, "ana@example.com", profile.Email)
	assert.Equal(t, "600123456", profile.Phone)
}

func TestHandleExtractCV_MissingText(t *testing.T) {
	rec := doRequest(newTestServer(t), http.MethodPost, "/extract-cv-data", ExtractRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation error: text")
}

func TestHandleExtractCV_InvalidBody(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/extract-cv-data", bytes.NewBufferString("{broken"))
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func devTestProfile() types.CandidateProfile {
	return types.CandidateProfile{
		ID:     "cand-1",
		Name:   "Ana García",
		Email:  "ana@example.com",
		Skills: []string{"Python", "SQL"},
		Experience: []types.ExperienceItem{
			{Title: "Desarrollador De Software", Years: 4, Description: "Acme Corp"},
		},
		Education: []types.EducationItem{{Level: "Universitaria", Year: 2019}},
	}
}

func TestHandleProcessCandidate(t *testing.T) {
	srv := newTestServer(t)
	rec := doRequest(srv, http.MethodPost, "/process-candidate-data", ProcessRequest{Profile: devTestProfile()})
	require.Equal(t, http.StatusOK, rec.Code)

	var summary CandidateSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, "cand-1", summary.CandidateID)
	assert.Contains(t, summary.Recommendations, "Desarrollador de Software")
	assert.NotEmpty(t, summary.InterviewQuestions)
	assert.InDelta(t, 0.5, summary.Employability.Score, 0.001, "no model wired means the neutral score")

	require.NotEmpty(t, summary.Matches)
	assert.Equal(t, "Desarrollador De Software", summary.Matches[0].Title)
}

func TestHandleCandidateSummary_AfterProcessing(t *testing.T) {
	srv := newTestServer(t)
	rec := doRequest(srv, http.MethodPost, "/process-candidate-data", ProcessRequest{Profile: devTestProfile()})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(srv, http.MethodGet, "/candidate-summary/cand-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var summary CandidateSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, "cand-1", summary.CandidateID)
}

func TestHandleCandidateSummary_Unknown(t *testing.T) {
	rec := doRequest(newTestServer(t), http.MethodGet, "/candidate-summary/nadie", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleMatchOffers(t *testing.T) {
	srv := newTestServer(t)
	rec := doRequest(srv, http.MethodPost, "/match-offers", MatchOffersRequest{Profile: devTestProfile()})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Matches []types.MatchResult `json:"matching_offers"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Matches)
	assert.Equal(t, "Desarrollador De Software", resp.Matches[0].Title)
	assert.NotContains(t, matchTitles(resp.Matches), "Piloto Aéreo", "zero-score offers stay out")
}

func TestHandleMatchCandidates(t *testing.T) {
	srv := newTestServer(t)
	rec := doRequest(srv, http.MethodPost, "/process-candidate-data", ProcessRequest{Profile: devTestProfile()})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(srv, http.MethodPost, "/match-candidates", MatchCandidatesRequest{
		Offer: types.Offer{ID: "o1", Title: "Desarrollador De Software", Description: "se requiere python"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Matches []types.CandidateMatch `json:"matching_candidates"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Matches, 1)
	assert.Equal(t, "cand-1", resp.Matches[0].CandidateID)
	assert.Equal(t, "Desarrollador De Software", resp.Matches[0].CurrentPosition)
}

func TestHandleMatchCandidates_MissingTitle(t *testing.T) {
	rec := doRequest(newTestServer(t), http.MethodPost, "/match-candidates", MatchCandidatesRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation error: offer")
}

func TestHandleMatchCandidates_ByOfferID(t *testing.T) {
	srv := newTestServer(t)
	rec := doRequest(srv, http.MethodPost, "/process-candidate-data", ProcessRequest{Profile: devTestProfile()})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(srv, http.MethodPost, "/match-candidates", MatchCandidatesRequest{
		OfferID: "0b9a3b1e-9d4a-4f4b-8a52-0f6a3b6a1c01",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Matches []types.CandidateMatch `json:"matching_candidates"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Matches, 1)
	assert.Equal(t, "cand-1", resp.Matches[0].CandidateID)
}

func TestHandleMatchCandidates_UnknownOfferID(t *testing.T) {
	rec := doRequest(newTestServer(t), http.MethodPost, "/match-candidates", MatchCandidatesRequest{
		OfferID: "0b9a3b1e-9d4a-4f4b-8a52-0f6a3b6a1cff",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "offer not found")
}

func TestHandleProcessCandidate_VerbosePrinter(t *testing.T) {
	srv := newTestServer(t)
	var buf bytes.Buffer
	srv.printer = observability.NewPrinter(&buf)

	rec := doRequest(srv, http.MethodPost, "/process-candidate-data", ProcessRequest{Profile: devTestProfile()})
	require.Equal(t, http.StatusOK, rec.Code)

	out := buf.String()
	assert.Contains(t, out, "PERFIL EXTRAÍDO")
	assert.Contains(t, out, "OFERTAS RECOMENDADAS")
	assert.Contains(t, out, "Ana García")
}

func TestNew_RequiresSomeOfferSource(t *testing.T) {
	_, err := New(context.Background(), Config{Port: 0})
	assert.Error(t, err)
}

func matchTitles(matches []types.MatchResult) []string {
	titles := make([]string, 0, len(matches))
	for _, m := range matches {
		titles = append(titles, m.Title)
	}
	return titles
}
