package pixels

import "sync"

// MemorySink keeps a copy of the last presented frame. It is useful for tests
// and headless operation.
type MemorySink struct {
	mu    sync.Mutex
	last  Frame
	count uint64
}

// Present records a copy of f.
func (m *MemorySink) Present(f Frame) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cap(m.last.Pix) < len(f.Pix) {
		m.last.Pix = make([]byte, len(f.Pix))
	}
	m.last.Pix = m.last.Pix[:len(f.Pix)]
	copy(m.last.Pix, f.Pix)
	m.last.Width, m.last.Height, m.last.Orientation = f.Width, f.Height, f.Orientation
	m.count++
	return nil
}

// Last returns a copy of the most recently presented frame.
func (m *MemorySink) Last() Frame {
	m.mu.Lock()
	defer m.mu.Unlock()
	f := m.last
	f.Pix = append([]byte(nil), m.last.Pix...)
	return f
}

// Count returns the number of presented frames.
func (m *MemorySink) Count() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.count
}
