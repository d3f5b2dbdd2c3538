package pipeline

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/entitymeta/wikiparse/internal/naming"
	"github.com/entitymeta/wikiparse/internal/wikitext"
)

// Document is one raw markup dump with its version tag.
type Document struct {
	Version string
	Text    string
}

// EntityRecord is the final unit produced for one entity block. Records are
// created by the assembler, never mutated afterwards, and keep the ordinal of
// the block that produced them as their sole ordering key.
type EntityRecord struct {
	Ordinal    int
	Fields     *wikitext.FieldSet
	Name       string
	NameSource naming.Source
	Complete   bool
}

// Meaning returns the record's meaning field, empty if absent.
func (r *EntityRecord) Meaning() string {
	v, _ := r.Fields.Get("meaning")
	return v
}

// Type returns the record's type field, empty if absent.
func (r *EntityRecord) Type() string {
	v, _ := r.Fields.Get("type")
	return v
}

// MarshalJSON emits the record as a flat object: extracted fields in
// first-seen order, then name, name_source and complete. Key order is fixed
// so identical input always produces byte-identical output.
func (r *EntityRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	writeKV := func(key string, value any) error {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		v, err := json.Marshal(value)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
		return nil
	}

	for _, key := range r.Fields.Keys() {
		value, _ := r.Fields.Get(key)
		if err := writeKV(key, value); err != nil {
			return nil, err
		}
	}
	if err := writeKV("name", r.Name); err != nil {
		return nil, err
	}
	if err := writeKV("name_source", string(r.NameSource)); err != nil {
		return nil, err
	}
	if err := writeKV("complete", r.Complete); err != nil {
		return nil, err
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// DocumentStats summarizes one document's processing pass.
type DocumentStats struct {
	Version    string
	Records    int
	Incomplete int
	Fallbacks  int
	Skipped    bool
}

// BatchStats summarizes a whole batch run.
type BatchStats struct {
	Documents      int
	Skipped        int
	Failed         int
	TotalRecords   int
	ProcessingTime time.Duration
}
