package screen

import (
	"github.com/google/uuid"
)

// App is a leaf item. The name acts as the bundle ID; the instance ID
// is only for logs and snapshots.
type App struct {
	itemBase
	id        string
	deletable bool
}

// NewApp creates a deletable app with the given name.
func NewApp(name string) *App {
	return &App{
		itemBase:  itemBase{name: name},
		id:        uuid.New().String(),
		deletable: true,
	}
}

// ID returns the app's instance ID.
func (a *App) ID() string { return a.id }

// Deletable reports whether the app may be deleted. System apps are
// protected.
func (a *App) Deletable() bool { return a.deletable }

// Protect marks the app as undeletable.
func (a *App) Protect() { a.deletable = false }
