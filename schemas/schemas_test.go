package schemas

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffersSchemaFile_ValidJSON(t *testing.T) {
	data, err := os.ReadFile("offers.schema.json")
	require.NoError(t, err, "should be able to read schema file")

	var v interface{}
	err = json.Unmarshal(data, &v)
	assert.NoError(t, err, "schema file should be valid JSON")
}

func TestOffersSchemaFile_ValidJSONSchema(t *testing.T) {
	data, err := os.ReadFile("offers.schema.json")
	require.NoError(t, err)

	var schemaObj map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &schemaObj))

	assert.Equal(t, "http://json-schema.org/draft-07/schema#", schemaObj["$schema"])
	assert.Equal(t, "array", schemaObj["type"], "the catalog is an array of offers")

	items, ok := schemaObj["items"].(map[string]interface{})
	require.True(t, ok, "schema should define the offer item shape")

	required, ok := items["required"].([]interface{})
	require.True(t, ok)
	assert.ElementsMatch(t, []interface{}{"id", "title", "category"}, required)
}
