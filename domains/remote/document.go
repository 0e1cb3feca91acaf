package remote

import (
	"github.com/goccy/go-json"
)

// Document is a remote record. Data holds every field except the id.
type Document struct {
	ID   string         `json:"id"`
	Data map[string]any `json:"data"`
}

// Value returns a field value; "id" resolves to the document id.
func (d Document) Value(field string) any {
	if field == "" || field == "id" {
		return d.ID
	}
	return d.Data[field]
}

// Decode copies the document into dst through JSON, with the id injected as "id".
func (d Document) Decode(dst any) error {
	flat := make(map[string]any, len(d.Data)+1)
	for k, v := range d.Data {
		flat[k] = v
	}
	flat["id"] = d.ID
	raw, err := json.Marshal(flat)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

// Clone returns a copy whose top-level Data map can be mutated freely.
func (d Document) Clone() Document {
	data := make(map[string]any, len(d.Data))
	for k, v := range d.Data {
		data[k] = v
	}
	return Document{ID: d.ID, Data: data}
}

// ToData converts an entity into a field map through JSON. The "id" field is
// stripped because it lives on the Document itself.
func ToData(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	data := map[string]any{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	delete(data, "id")
	return data, nil
}
