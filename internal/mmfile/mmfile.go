// Package mmfile opens policy files as read-only byte slices with an explicit
// release, memory-mapping them where the platform allows.
package mmfile

import "sync"

// Mapping is a read-only view of a file's contents. Bytes must not be used
// after Close.
type Mapping struct {
	data    []byte
	release func() error
	once    sync.Once
	err     error
}

// Open maps the file at path.
func Open(path string) (*Mapping, error) {
	data, release, err := mapFile(path)
	if err != nil {
		return nil, err
	}
	return &Mapping{data: data, release: release}, nil
}

// Bytes returns the file contents.
func (m *Mapping) Bytes() []byte { return m.data }

// Len returns the file size.
func (m *Mapping) Len() int { return len(m.data) }

// Close releases the mapping. Further calls return the first result.
func (m *Mapping) Close() error {
	m.once.Do(func() {
		m.err = m.release()
		m.data = nil
	})
	return m.err
}

func noRelease() error { return nil }
