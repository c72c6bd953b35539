// ABOUTME: Core data models for blog post sources, frontmatter metadata, and index records.
// ABOUTME: Provides the ordered metadata map and the PostRecord written to posts.json.
package models

// Source is a single markdown file read from the source directory.
type Source struct {
	Name    string // base filename, e.g. 2025-11-05-first-post.md
	Path    string
	Content string
}

// PostRecord is the per-post summary serialized into the index file.
// Field order matches the JSON layout consumers expect.
type PostRecord struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// Frontmatter keys the build reads.
const (
	KeyTitle       = "title"
	KeyDate        = "date"
	KeyDescription = "description"
)

// DefaultTitle is used when a post has no title key.
const DefaultTitle = "Untitled"

// Metadata is an insertion-ordered string map parsed from frontmatter.
type Metadata struct {
	keys   []string
	values map[string]string
}

// NewMetadata returns an empty metadata map.
func NewMetadata() *Metadata {
	return &Metadata{values: make(map[string]string)}
}

// Set stores value under key. A repeated key keeps its original position.
func (m *Metadata) Set(key, value string) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for key and whether it was present.
func (m *Metadata) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// GetOr returns the value for key, or fallback when the key is absent.
func (m *Metadata) GetOr(key, fallback string) string {
	if v, ok := m.values[key]; ok {
		return v
	}
	return fallback
}

// Keys returns keys in first-seen order.
func (m *Metadata) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of keys.
func (m *Metadata) Len() int {
	return len(m.keys)
}

// NewPostRecord builds the index record for a post from its metadata and slug.
func NewPostRecord(meta *Metadata, slug string) PostRecord {
	return PostRecord{
		Title:       meta.GetOr(KeyTitle, DefaultTitle),
		Date:        meta.GetOr(KeyDate, ""),
		Slug:        slug,
		Description: meta.GetOr(KeyDescription, ""),
	}
}
