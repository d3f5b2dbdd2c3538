package wikitext

// RawBlock is one entity's unparsed markup fragment, in source order.
type RawBlock struct {
	// Ordinal is the position of this block in the source document.
	// It is assigned by the splitter and never changes downstream.
	Ordinal int

	// Heading is the section heading the block was opened under,
	// with surrounding markup removed. Empty for headingless preamble blocks.
	Heading string

	// Text is the unparsed markup of the block, heading line excluded.
	Text string

	// Malformed is set when the block's nested markup never returned to
	// balanced depth before the document ended. Malformed blocks are still
	// parsed; downstream flags their records as incomplete.
	Malformed bool
}

// FieldSet maps lowercased field names to plain-text values for one block.
// Required fields (meaning, type) may be absent; callers check with Has.
type FieldSet struct {
	values map[string]string
	order  []string
}

// NewFieldSet returns an empty FieldSet.
func NewFieldSet() *FieldSet {
	return &FieldSet{values: make(map[string]string)}
}

// Set stores a value under a case-insensitive key. The first occurrence of a
// key wins; later duplicates are dropped so repeated markers cannot overwrite
// an already extracted value.
func (fs *FieldSet) Set(key, value string) {
	k := normalizeKey(key)
	if k == "" {
		return
	}
	if _, dup := fs.values[k]; dup {
		return
	}
	fs.values[k] = value
	fs.order = append(fs.order, k)
}

// Get returns the value for key and whether it was present.
func (fs *FieldSet) Get(key string) (string, bool) {
	v, ok := fs.values[normalizeKey(key)]
	return v, ok
}

// Has reports whether key is present with a non-empty value.
func (fs *FieldSet) Has(key string) bool {
	v, ok := fs.values[normalizeKey(key)]
	return ok && v != ""
}

// Keys returns field names in first-seen order.
func (fs *FieldSet) Keys() []string {
	out := make([]string, len(fs.order))
	copy(out, fs.order)
	return out
}

// Len returns the number of stored fields.
func (fs *FieldSet) Len() int {
	return len(fs.order)
}
