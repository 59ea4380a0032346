// Package catalog provides access to the job-offer catalog and the stored
// candidate pool, backed by PostgreSQL or a JSON file.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inclusionlab/cvmatch/internal/types"
)

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// ActiveOffers returns the offers that are active and inside their validity
// window today. Ordering is fixed so repeated calls rank identically.
func (s *Store) ActiveOffers(ctx context.Context) ([]types.Offer, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, title, category, company, description, active, valid_from, valid_to
		 FROM offers
		 WHERE active = TRUE
		   AND valid_from <= CURRENT_DATE
		   AND valid_to >= CURRENT_DATE
		 ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query active offers: %w", err)
	}
	defer rows.Close()

	var offers []types.Offer
	for rows.Next() {
		var o types.Offer
		if err := rows.Scan(&o.ID, &o.Title, &o.Category, &o.Company, &o.Description,
			&o.Active, &o.ValidFrom, &o.ValidTo); err != nil {
			return nil, fmt.Errorf("failed to scan offer row: %w", err)
		}
		offers = append(offers, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read offer rows: %w", err)
	}
	return offers, nil
}

// GetOffer retrieves one offer by ID. Returns a *NotFoundError when no row
// matches.
func (s *Store) GetOffer(ctx context.Context, id string) (*types.Offer, error) {
	var o types.Offer
	err := s.pool.QueryRow(ctx,
		`SELECT id, title, category, company, description, active, valid_from, valid_to
		 FROM offers WHERE id = $1`,
		id,
	).Scan(&o.ID, &o.Title, &o.Category, &o.Company, &o.Description,
		&o.Active, &o.ValidFrom, &o.ValidTo)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, &NotFoundError{Kind: "offer", ID: id}
		}
		return nil, fmt.Errorf("failed to get offer %s: %w", id, err)
	}
	return &o, nil
}

// SaveCandidate upserts a candidate profile. The structured profile is stored
// as jsonb alongside the columns candidate ranking filters on.
func (s *Store) SaveCandidate(ctx context.Context, profile types.CandidateProfile) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal candidate profile: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO candidates (id, name, email, phone, profile)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE SET name = $2, email = $3, phone = $4, profile = $5, updated_at = NOW()`,
		profile.ID, profile.Name, profile.Email, profile.Phone, payload,
	)
	if err != nil {
		return fmt.Errorf("failed to save candidate %s: %w", profile.ID, err)
	}
	return nil
}

// GetCandidate retrieves one stored candidate profile by ID.
func (s *Store) GetCandidate(ctx context.Context, id string) (*types.CandidateProfile, error) {
	var payload []byte
	err := s.pool.QueryRow(ctx,
		`SELECT profile FROM candidates WHERE id = $1`,
		id,
	).Scan(&payload)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, &NotFoundError{Kind: "candidate", ID: id}
		}
		return nil, fmt.Errorf("failed to get candidate %s: %w", id, err)
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal(payload, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal candidate %s: %w", id, err)
	}
	return &profile, nil
}

// CandidatesForMatching returns every stored candidate profile, in insertion
// order, for ranking against an offer.
func (s *Store) CandidatesForMatching(ctx context.Context) ([]types.CandidateProfile, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT profile FROM candidates ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	var pool []types.CandidateProfile
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan candidate row: %w", err)
		}
		var profile types.CandidateProfile
		if err := json.Unmarshal(payload, &profile); err != nil {
			return nil, fmt.Errorf("failed to unmarshal candidate profile: %w", err)
		}
		pool = append(pool, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidate rows: %w", err)
	}
	return pool, nil
}
