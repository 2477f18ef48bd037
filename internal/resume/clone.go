package resume

import "encoding/json"

// Clone returns a deep copy of the document. The store hands out copies so
// callers can never mutate persisted state in place.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	// The document is plain data with JSON tags on every field, so a marshal
	// round trip is a complete deep copy.
	raw, err := json.Marshal(d)
	if err != nil {
		// A value built from the exported struct types cannot fail to marshal.
		panic("resume: clone marshal failed: " + err.Error())
	}
	var out Document
	if err := json.Unmarshal(raw, &out); err != nil {
		panic("resume: clone unmarshal failed: " + err.Error())
	}
	return &out
}
