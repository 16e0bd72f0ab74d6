package writer

// MemWriter captures policy bytes in memory.
type MemWriter struct {
	Buf []byte
}

// WritePol stores a copy of buf.
func (w *MemWriter) WritePol(buf []byte) error {
	w.Buf = append(w.Buf[:0], buf...)
	return nil
}
