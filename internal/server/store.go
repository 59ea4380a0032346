package server

import (
	"sync"

	"github.com/inclusionlab/cvmatch/internal/types"
)

// profileStore keeps processed candidate profiles and their summaries in
// memory, keyed by candidate ID. It backs the summary endpoint and the
// candidate pool for offer-to-candidate matching when no database is wired.
type profileStore struct {
	mu        sync.RWMutex
	order     []string
	profiles  map[string]types.CandidateProfile
	summaries map[string]CandidateSummary
}

func newProfileStore() *profileStore {
	return &profileStore{
		profiles:  make(map[string]types.CandidateProfile),
		summaries: make(map[string]CandidateSummary),
	}
}

func (ps *profileStore) put(profile types.CandidateProfile, summary CandidateSummary) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if _, exists := ps.profiles[profile.ID]; !exists {
		ps.order = append(ps.order, profile.ID)
	}
	ps.profiles[profile.ID] = profile
	ps.summaries[profile.ID] = summary
}

func (ps *profileStore) summary(id string) (CandidateSummary, bool) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	summary, ok := ps.summaries[id]
	return summary, ok
}

// all returns stored profiles in insertion order, so candidate ranking ties
// break the same way on every call.
func (ps *profileStore) all() []types.CandidateProfile {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	out := make([]types.CandidateProfile, 0, len(ps.order))
	for _, id := range ps.order {
		out = append(out, ps.profiles[id])
	}
	return out
}
