package home

import (
	"github.com/gridhome/springboard/internal/screen"
)

// Stats summarizes the home screen state.
type Stats struct {
	Apps      int `json:"apps"`
	Folders   int `json:"folders"`
	Pages     int `json:"pages"`
	DockItems int `json:"dock_items"`
	Running   int `json:"running"`
}

// Grid returns the home screen's paged grid.
func (m *Manager) Grid() *screen.Grid { return m.grid }

// Dock returns the dock.
func (m *Manager) Dock() *screen.Page { return m.dock }

// Pages returns the home pages in display order.
func (m *Manager) Pages() []*screen.Page { return m.grid.Pages() }

// PageAt returns the home page at ordinal position i, nil out of range.
func (m *Manager) PageAt(i int) *screen.Page { return m.grid.PageAt(i) }

// DockItems returns the dock contents in display order.
func (m *Manager) DockItems() []screen.Item { return m.dock.Items() }

// RunningApps returns the running queue in launch order.
func (m *Manager) RunningApps() []*screen.App {
	out := make([]*screen.App, len(m.running))
	copy(out, m.running)
	return out
}

// GetApp retrieves an installed app by name.
func (m *Manager) GetApp(name string) (*screen.App, bool) {
	return m.reg.App(name)
}

// GetFolder retrieves a folder by name.
func (m *Manager) GetFolder(name string) (*screen.Folder, bool) {
	return m.reg.Folder(name)
}

// Stats returns current counts.
func (m *Manager) Stats() Stats {
	return Stats{
		Apps:      m.reg.AppCount(),
		Folders:   m.reg.FolderCount(),
		Pages:     m.grid.PageCount(),
		DockItems: m.dock.Len(),
		Running:   len(m.running),
	}
}
