package editor

import "os"

// save writes the buffer to the session filename, falling back to
// DefaultFilename when none is set. I/O failures surface on the status
// line only; the editor stays usable.
func (m *Model) save() error {
	if m.filename == "" {
		m.filename = DefaultFilename
	}
	if err := os.WriteFile(m.filename, []byte(m.buf.Text()), 0o644); err != nil {
		m.setStatus("Error saving file: " + err.Error())
		return err
	}
	m.buf.MarkClean()
	m.setStatus("Saved to " + m.filename)
	return nil
}

// openFile replaces the buffer with the file's contents. On failure the
// buffer is left untouched.
func (m *Model) openFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		m.setStatus("Error loading file: " + err.Error())
		return
	}
	m.buf.SetText(string(data))
	m.filename = path
	m.engine.clear()
	m.setStatus("Loaded " + path)
}
