package types

// Entity categories produced by the external NER collaborator. Only the person
// kind is consumed by extraction; other categories pass through untouched.
const (
	EntityPerson       = "PER"
	EntityOrganization = "ORG"
	EntityLocation     = "LOC"
)

// Entity represents a named-entity span supplied by the external NER model.
// Extraction consumes these as already-resolved input; it never invokes the
// model itself.
type Entity struct {
	Text     string `json:"text"`
	Category string `json:"category"`
	Offset   int    `json:"source_offset"` // byte offset of the span in the source text
}
