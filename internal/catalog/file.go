package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/inclusionlab/cvmatch/internal/schemas"
	"github.com/inclusionlab/cvmatch/internal/types"
)

// OffersSchemaFile is the schema path for offer catalog files, relative to
// the repo root.
const OffersSchemaFile = "schemas/offers.schema.json"

// FileSource serves offers from a JSON file, for running without a database.
type FileSource struct {
	offers []types.Offer
}

// LoadOffersFile reads and schema-validates a JSON offers file.
func LoadOffersFile(path string) (*FileSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Cause: err}
	}

	if schemaPath := schemas.ResolveSchemaPath(OffersSchemaFile); schemaPath != "" {
		if err := schemas.ValidateJSONBytes(schemaPath, data); err != nil {
			return nil, &LoadError{Path: path, Cause: err}
		}
	}

	offers, err := decodeOffers(data)
	if err != nil {
		return nil, &LoadError{Path: path, Cause: err}
	}
	return &FileSource{offers: offers}, nil
}

// ActiveOffers returns the loaded offers that are active and inside their
// validity window at now, in file order.
func (f *FileSource) ActiveOffers(now time.Time) []types.Offer {
	var active []types.Offer
	for _, o := range f.offers {
		if o.Active && o.CurrentlyValid(now) {
			active = append(active, o)
		}
	}
	return active
}

// All returns every loaded offer regardless of validity.
func (f *FileSource) All() []types.Offer {
	return f.offers
}

// offerRecord is the wire shape of one offer in the file. Validity bounds are
// optional and accept either a bare date or a full RFC 3339 timestamp.
type offerRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Company     string `json:"company"`
	Description string `json:"description"`
	Active      *bool  `json:"active"`
	ValidFrom   string `json:"valid_from"`
	ValidTo     string `json:"valid_to"`
}

func decodeOffers(data []byte) ([]types.Offer, error) {
	var records []offerRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse offers JSON: %w", err)
	}

	offers := make([]types.Offer, 0, len(records))
	for i, rec := range records {
		validFrom, err := parseOfferDate(rec.ValidFrom)
		if err != nil {
			return nil, fmt.Errorf("offer %d: invalid valid_from: %w", i, err)
		}
		validTo, err := parseOfferDate(rec.ValidTo)
		if err != nil {
			return nil, fmt.Errorf("offer %d: invalid valid_to: %w", i, err)
		}

		// Offers default to active unless the file says otherwise.
		active := true
		if rec.Active != nil {
			active = *rec.Active
		}

		offers = append(offers, types.Offer{
			ID:          rec.ID,
			Title:       rec.Title,
			Category:    rec.Category,
			Company:     rec.Company,
			Description: rec.Description,
			Active:      active,
			ValidFrom:   validFrom,
			ValidTo:     validTo,
		})
	}
	return offers, nil
}

func parseOfferDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}
