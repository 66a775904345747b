package home

import (
	"github.com/bytedance/sonic"
)

// Snapshot is a read-only description of the layout for the
// presentation layer. It is a query surface, not a persistence
// format; nothing reads it back.
type Snapshot struct {
	Columns int        `json:"columns"`
	Rows    int        `json:"rows"`
	Pages   [][]string `json:"pages"`
	Dock    []string   `json:"dock"`

	Folders map[string][][]string `json:"folders,omitempty"`
	Running []string              `json:"running,omitempty"`
}

// Snapshot captures the current layout.
func (m *Manager) Snapshot() Snapshot {
	s := Snapshot{
		Columns: m.opts.Columns,
		Rows:    m.opts.Rows,
		Pages:   make([][]string, 0, m.grid.PageCount()),
		Dock:    m.dock.Names(),
	}
	for _, p := range m.grid.Pages() {
		s.Pages = append(s.Pages, p.Names())
	}

	if n := m.reg.FolderCount(); n > 0 {
		s.Folders = make(map[string][][]string, n)
		for _, name := range m.reg.FolderNames() {
			folder, _ := m.reg.Folder(name)
			pages := make([][]string, 0, folder.Grid().PageCount())
			for _, p := range folder.Grid().Pages() {
				pages = append(pages, p.Names())
			}
			s.Folders[name] = pages
		}
	}
	for _, app := range m.running {
		s.Running = append(s.Running, app.Name())
	}
	return s
}

// SnapshotJSON renders the layout snapshot as JSON.
func (m *Manager) SnapshotJSON() ([]byte, error) {
	return sonic.Marshal(m.Snapshot())
}
