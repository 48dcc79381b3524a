// Package manifest manages the index file (manifest.json) that tracks every
// .tex file generated into an output directory.
package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/sonnes/texgen/document"
)

// FileName is the manifest's name inside an output directory.
const FileName = "manifest.json"

// Entry holds metadata for one generated file.
type Entry struct {
	Path        string    `json:"path"` // output path including the .tex extension
	Source      string    `json:"source,omitempty"`
	Title       string    `json:"title,omitempty"`
	Class       string    `json:"class"`
	Packages    []string  `json:"packages"`
	Sections    int       `json:"sections"`
	GeneratedAt time.Time `json:"generated_at"`
}

// NewEntry extracts metadata from a document written to path.
func NewEntry(d *document.Document, path, source string, at time.Time) (Entry, error) {
	e := Entry{
		Path:        path,
		Source:      source,
		Title:       d.Title,
		Class:       d.Class,
		Packages:    []string{},
		Sections:    len(d.Outline()),
		GeneratedAt: at,
	}
	if e.Class == "" {
		e.Class = document.DefaultClass
	}
	for _, req := range d.Packages().Items() {
		line, err := req.Dumps()
		if err != nil {
			return Entry{}, err
		}
		e.Packages = append(e.Packages, line)
	}
	return e, nil
}

// Manifest holds the list of entries.
type Manifest struct {
	Entries []Entry `json:"entries"`
}

// ReadFile reads a manifest from disk. Returns an empty Manifest if the file
// does not exist.
func ReadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Manifest{}, nil
	}
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Upsert adds or replaces an entry matched by Path. After upserting, the
// entries are sorted newest-first by GeneratedAt.
func (m *Manifest) Upsert(entry Entry) {
	for i, e := range m.Entries {
		if e.Path == entry.Path {
			m.Entries[i] = entry
			m.sort()
			return
		}
	}
	m.Entries = append(m.Entries, entry)
	m.sort()
}

// Remove deletes the entry for path. It reports whether an entry was removed.
func (m *Manifest) Remove(path string) bool {
	for i, e := range m.Entries {
		if e.Path == path {
			m.Entries = append(m.Entries[:i], m.Entries[i+1:]...)
			return true
		}
	}
	return false
}

// Prune removes the entries whose file no longer exists under dir and returns
// their paths.
func (m *Manifest) Prune(dir string) []string {
	var missing []string
	for _, e := range m.Entries {
		if _, err := os.Stat(filepath.Join(dir, e.Path)); os.IsNotExist(err) {
			missing = append(missing, e.Path)
		}
	}
	for _, p := range missing {
		m.Remove(p)
	}
	return missing
}

func (m *Manifest) sort() {
	sort.SliceStable(m.Entries, func(i, j int) bool {
		return m.Entries[i].GeneratedAt.After(m.Entries[j].GeneratedAt)
	})
}

// WriteFile writes the manifest to disk atomically using a temporary file and
// rename, which is safe against concurrent writers.
func (m *Manifest) WriteFile(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".manifest-*.json")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	return os.Rename(tmpPath, path)
}
