// Package registry maps names to apps and folders for O(1) lookup by
// the home screen. Names are unique across the union of both: an app
// and a folder may never share a name.
package registry

import (
	"github.com/gridhome/springboard/internal/screen"
	"github.com/gridhome/springboard/internal/shared/errs"
)

// Registry holds the name index. It is explicit state owned by its
// Home; there is no ambient global.
type Registry struct {
	apps    map[string]*screen.App
	folders map[string]*screen.Folder
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		apps:    make(map[string]*screen.App),
		folders: make(map[string]*screen.Folder),
	}
}

// Available reports whether name collides with nothing.
func (r *Registry) Available(name string) bool {
	_, app := r.apps[name]
	_, folder := r.folders[name]
	return !app && !folder
}

// AddApp registers an app, failing with DuplicateName on any collision.
func (r *Registry) AddApp(a *screen.App) error {
	if !r.Available(a.Name()) {
		return errs.DuplicateName("name %q is already taken", a.Name())
	}
	r.apps[a.Name()] = a
	return nil
}

// AddFolder registers a folder, failing with DuplicateName on any collision.
func (r *Registry) AddFolder(f *screen.Folder) error {
	if !r.Available(f.Name()) {
		return errs.DuplicateName("name %q is already taken", f.Name())
	}
	r.folders[f.Name()] = f
	return nil
}

// App retrieves an app by name.
func (r *Registry) App(name string) (*screen.App, bool) {
	a, ok := r.apps[name]
	return a, ok
}

// Folder retrieves a folder by name.
func (r *Registry) Folder(name string) (*screen.Folder, bool) {
	f, ok := r.folders[name]
	return f, ok
}

// Item retrieves the app or folder with the given name.
func (r *Registry) Item(name string) (screen.Item, bool) {
	if a, ok := r.apps[name]; ok {
		return a, true
	}
	if f, ok := r.folders[name]; ok {
		return f, true
	}
	return nil, false
}

// RemoveApp deregisters an app by name.
func (r *Registry) RemoveApp(name string) {
	delete(r.apps, name)
}

// RemoveFolder deregisters a folder by name.
func (r *Registry) RemoveFolder(name string) {
	delete(r.folders, name)
}

// AppCount returns the number of registered apps.
func (r *Registry) AppCount() int { return len(r.apps) }

// FolderCount returns the number of registered folders.
func (r *Registry) FolderCount() int { return len(r.folders) }

// AppNames returns the registered app names, unordered.
func (r *Registry) AppNames() []string {
	names := make([]string, 0, len(r.apps))
	for n := range r.apps {
		names = append(names, n)
	}
	return names
}

// FolderNames returns the registered folder names, unordered.
func (r *Registry) FolderNames() []string {
	names := make([]string, 0, len(r.folders))
	for n := range r.folders {
		names = append(names, n)
	}
	return names
}
