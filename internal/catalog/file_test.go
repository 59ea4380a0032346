package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const offersJSON = `[
  {
    "id": "0b9a3b1e-9d4a-4f4b-8a52-0f6a3b6a1c01",
    "title": "Cocinero",
    "category": "Cocinero",
    "company": "Restaurante Sol",
    "description": "Cocina tradicional",
    "active": true,
    "valid_from": "2020-01-01",
    "valid_to": "2099-12-31"
  },
  {
    "id": "0b9a3b1e-9d4a-4f4b-8a52-0f6a3b6a1c02",
    "title": "Conductor",
    "category": "Conductor",
    "active": false
  },
  {
    "id": "0b9a3b1e-9d4a-4f4b-8a52-0f6a3b6a1c03",
    "title": "Mozo De Almacén",
    "category": "Mozo De Almacén",
    "valid_from": "2020-01-01T00:00:00Z",
    "valid_to": "2020-12-31T00:00:00Z"
  }
]`

func writeOffersFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "offers.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadOffersFile_ParsesRecords(t *testing.T) {
	src, err := LoadOffersFile(writeOffersFile(t, offersJSON))
	require.NoError(t, err)

	all := src.All()
	require.Len(t, all, 3)
	assert.Equal(t, "Cocinero", all[0].Title)
	assert.Equal(t, "Restaurante Sol", all[0].Company)
	assert.True(t, all[0].Active)
	assert.False(t, all[1].Active)
	assert.True(t, all[2].Active, "offers default to active when the file says nothing")
}

func TestLoadOffersFile_AcceptsBothDateForms(t *testing.T) {
	src, err := LoadOffersFile(writeOffersFile(t, offersJSON))
	require.NoError(t, err)

	all := src.All()
	assert.Equal(t, 2020, all[0].ValidFrom.Year())
	assert.Equal(t, time.December, all[2].ValidTo.Month())
}

func TestLoadOffersFile_MissingFile(t *testing.T) {
	_, err := LoadOffersFile("/nonexistent/offers.json")
	require.Error(t, err)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestLoadOffersFile_MalformedJSON(t *testing.T) {
	_, err := LoadOffersFile(writeOffersFile(t, "{not json"))
	assert.Error(t, err)
}

func TestLoadOffersFile_BadDate(t *testing.T) {
	_, err := LoadOffersFile(writeOffersFile(t, `[{"id":"0b9a3b1e-9d4a-4f4b-8a52-0f6a3b6a1c09","title":"T","category":"C","valid_from":"pronto"}]`))
	assert.Error(t, err)
}

func TestFileSource_ActiveOffersFiltersWindow(t *testing.T) {
	src, err := LoadOffersFile(writeOffersFile(t, offersJSON))
	require.NoError(t, err)

	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	active := src.ActiveOffers(now)
	require.Len(t, active, 1, "inactive offers and expired windows are filtered out")
	assert.Equal(t, "Cocinero", active[0].Title)
}

func TestFileSource_OpenEndedWindow(t *testing.T) {
	src, err := LoadOffersFile(writeOffersFile(t, `[{"id":"0b9a3b1e-9d4a-4f4b-8a52-0f6a3b6a1c0a","title":"T","category":"C"}]`))
	require.NoError(t, err)

	active := src.ActiveOffers(time.Now())
	assert.Len(t, active, 1, "zero validity bounds leave the window open")
}
