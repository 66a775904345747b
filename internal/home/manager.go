// Package home orchestrates the springboard home screen: the paged
// grid, the dock, the name registry, and the running-apps queue.
package home

import (
	"go.uber.org/zap"

	"github.com/gridhome/springboard/internal/infrastructure/logging"
	"github.com/gridhome/springboard/internal/infrastructure/monitoring"
	"github.com/gridhome/springboard/internal/registry"
	"github.com/gridhome/springboard/internal/screen"
	"github.com/gridhome/springboard/internal/shared/errs"
)

// Position and page sentinels re-exported for callers.
const (
	// AtEnd appends instead of inserting at an ordinal position.
	AtEnd = screen.AtEnd
	// NoPage lets the container pick a page instead of targeting one.
	NoPage = -1
)

// Options configures a Manager.
type Options struct {
	Columns      int
	Rows         int
	MaxPages     int
	DockCapacity int

	FolderColumns  int
	FolderRows     int
	FolderMaxPages int
}

// DefaultOptions mirrors the classic layout: 3x4 pages, five pages
// max, a four-slot dock, 3x3x3 folders.
func DefaultOptions() Options {
	return Options{
		Columns:        3,
		Rows:           4,
		MaxPages:       5,
		DockCapacity:   4,
		FolderColumns:  3,
		FolderRows:     3,
		FolderMaxPages: 3,
	}
}

// DefaultApps seed a fresh default home screen in order.
var DefaultApps = []string{"Phone", "Mail", "Safari", "Music", "Maps", "Clock", "Settings", "Camera", "Notes"}

// ProtectedApps cannot be deleted.
var ProtectedApps = []string{"Phone", "Settings", "Clock", "Camera"}

// Manager is the home screen root. All state is owned here and
// mutated by a single caller at a time; wrap the whole Manager in a
// mutex if concurrent access is ever needed, since cross-container
// moves touch two containers.
type Manager struct {
	opts    Options
	grid    *screen.Grid
	dock    *screen.Page
	reg     *registry.Registry
	running []*screen.App

	log     *logging.Logger
	metrics *monitoring.Metrics
}

// New creates an empty home screen.
func New(opts Options) *Manager {
	return &Manager{
		opts: opts,
		grid: screen.NewGrid(opts.Columns, opts.Rows, opts.MaxPages),
		dock: screen.NewDock(opts.DockCapacity),
		reg:  registry.New(),
		log:  logging.Nop(),
	}
}

// NewDefault creates a home screen seeded with the default apps: the
// first apps fill the dock and the system apps are protected.
func NewDefault() *Manager {
	m := New(DefaultOptions())
	m.Seed(DefaultApps, ProtectedApps)
	return m
}

// WithLogger attaches a logger to the manager.
func (m *Manager) WithLogger(log *logging.Logger) *Manager {
	if log != nil {
		m.log = log
	}
	return m
}

// WithMetrics attaches metrics tracking to the manager.
func (m *Manager) WithMetrics(metrics *monitoring.Metrics) *Manager {
	m.metrics = metrics
	return m
}

// Seed installs apps in order, moves the leading ones into the dock
// until it is full, and protects the named system apps. Already-taken
// names are skipped.
func (m *Manager) Seed(apps, protected []string) {
	for _, name := range apps {
		if _, err := m.AddApp(name); err != nil {
			m.log.Warn("seed: skipping app", zap.String("app", name), zap.Error(err))
		}
	}
	for i := 0; i < len(apps) && i < m.opts.DockCapacity; i++ {
		if err := m.MoveToDock(apps[i], AtEnd); err != nil {
			m.log.Warn("seed: dock move failed", zap.String("app", apps[i]), zap.Error(err))
		}
	}
	for _, name := range protected {
		if app, ok := m.reg.App(name); ok {
			app.Protect()
		}
	}
}

// AddApp installs a new app, placing it through the paging algorithm.
// Fails with DuplicateName on a collision with any app or folder and
// with CapacityExceeded when the screen cannot hold another app.
func (m *Manager) AddApp(name string) (*screen.App, error) {
	app, err := m.addApp(name)
	m.observe("add_app", err, zap.String("app", name))
	return app, err
}

func (m *Manager) addApp(name string) (*screen.App, error) {
	if !m.reg.Available(name) {
		return nil, errs.DuplicateName("name %q is already taken", name)
	}
	if max := m.grid.MaxItems(); max > 0 && m.reg.AppCount() >= max {
		return nil, errs.CapacityExceeded("app limit (%d) reached", max)
	}

	app := screen.NewApp(name)
	if err := m.grid.Add(app); err != nil {
		return nil, err
	}
	m.reg.AddApp(app)
	return app, nil
}

// DeleteApp uninstalls an app: terminates it if running, removes it
// from wherever it resides (page, dock, or folder), and deregisters
// it. Fails with NotDeletable for protected apps.
func (m *Manager) DeleteApp(name string) error {
	err := m.deleteApp(name)
	m.observe("delete_app", err, zap.String("app", name))
	return err
}

func (m *Manager) deleteApp(name string) error {
	app, ok := m.reg.App(name)
	if !ok {
		return errs.NotFound("app %q was not found", name)
	}
	if !app.Deletable() {
		return errs.NotDeletable("app %q is protected and cannot be deleted", name)
	}

	m.dropRunning(app)
	if _, err := m.detach(app); err != nil {
		return err
	}
	m.reg.RemoveApp(name)
	return nil
}

// CreateFolder creates a named folder on the home grid and moves the
// given apps into it. All names are validated up front; on any
// failure nothing is mutated.
func (m *Manager) CreateFolder(name string, appNames []string) (*screen.Folder, error) {
	folder, err := m.createFolder(name, appNames)
	m.observe("create_folder", err, zap.String("folder", name), zap.Int("apps", len(appNames)))
	return folder, err
}

func (m *Manager) createFolder(name string, appNames []string) (*screen.Folder, error) {
	if !m.reg.Available(name) {
		return nil, errs.DuplicateName("name %q is already taken", name)
	}

	apps := make([]*screen.App, 0, len(appNames))
	for _, appName := range appNames {
		app, ok := m.reg.App(appName)
		if !ok {
			return nil, errs.NotFound("app %q was not found", appName)
		}
		apps = append(apps, app)
	}

	folder := screen.NewFolder(name, m.opts.FolderColumns, m.opts.FolderRows, m.opts.FolderMaxPages)
	if max := folder.Grid().MaxItems(); max > 0 && len(apps) > max {
		return nil, errs.CapacityExceeded("folder holds at most %d apps, got %d", max, len(apps))
	}
	if err := m.grid.Add(folder); err != nil {
		return nil, err
	}
	m.reg.AddFolder(folder)

	// Capacity was validated above, and detaching the apps only frees
	// slots, so the loop cannot fail.
	for _, app := range apps {
		m.detach(app)
		folder.Grid().Add(app)
	}
	return folder, nil
}

// RemoveFolder deletes an empty folder. Fails with Conflict while the
// folder still holds items.
func (m *Manager) RemoveFolder(name string) error {
	err := m.removeFolder(name)
	m.observe("remove_folder", err, zap.String("folder", name))
	return err
}

func (m *Manager) removeFolder(name string) error {
	folder, ok := m.reg.Folder(name)
	if !ok {
		return errs.NotFound("folder %q was not found", name)
	}
	if !folder.Empty() {
		return errs.Conflict("folder %q still holds %d item(s)", name, folder.ItemCount())
	}

	if _, err := m.detach(folder); err != nil {
		return err
	}
	m.reg.RemoveFolder(name)
	return nil
}

// MoveToDock relocates an app or folder into the dock at pos (AtEnd
// appends). An item already in the dock is reordered instead. Fails
// with CapacityExceeded when the dock is full.
func (m *Manager) MoveToDock(name string, pos int) error {
	err := m.moveToDock(name, pos)
	m.observe("move_to_dock", err, zap.String("item", name))
	return err
}

func (m *Manager) moveToDock(name string, pos int) error {
	it, ok := m.reg.Item(name)
	if !ok {
		return errs.NotFound("%q was not found", name)
	}
	if it.Parent() == m.dock {
		return m.dock.MoveWithin(it, pos)
	}
	if m.dock.Full() {
		return errs.CapacityExceeded("dock is full (capacity %d)", m.dock.Cap())
	}
	if pos != AtEnd && (pos < 0 || pos > m.dock.Len()) {
		return errs.InvalidIndex("position %d out of range [0, %d]", pos, m.dock.Len())
	}

	detached, err := m.detach(it)
	if err != nil {
		return err
	}
	return m.dock.AddAt(detached, pos)
}

// MoveBetweenPages relocates an app or folder to the home page at
// pageIdx, inserting at pos. pageIdx equal to the page count creates a
// new trailing page holding only the item; anything beyond fails with
// InvalidIndex.
func (m *Manager) MoveBetweenPages(name string, pageIdx, pos int) error {
	err := m.moveBetweenPages(name, pageIdx, pos)
	m.observe("move_between_pages", err, zap.String("item", name), zap.Int("page", pageIdx))
	return err
}

func (m *Manager) moveBetweenPages(name string, pageIdx, pos int) error {
	it, ok := m.reg.Item(name)
	if !ok {
		return errs.NotFound("%q was not found", name)
	}

	n := m.grid.PageCount()
	switch {
	case pageIdx == n:
		if max := m.grid.MaxPages(); max > 0 && n >= max {
			return errs.CapacityExceeded("page limit (%d) reached", max)
		}
		detached, err := m.detach(it)
		if err != nil {
			return err
		}
		_, err = m.grid.AppendPage(detached)
		return err
	case pageIdx >= 0 && pageIdx < n:
		dest := m.grid.PageAt(pageIdx)
		src := it.Parent()
		if src == dest {
			return dest.MoveWithin(it, pos)
		}
		if src != nil && src.Owner() == m.grid {
			return m.grid.Move(it, dest, pos)
		}
		// Coming in from the dock or a folder: validate the landing
		// spot before detaching.
		if err := m.grid.ValidatePlacement(dest, pos); err != nil {
			return err
		}
		detached, err := m.detach(it)
		if err != nil {
			return err
		}
		return m.grid.AddToPage(detached, dest, pos)
	default:
		return errs.InvalidIndex("page index %d out of range [0, %d]", pageIdx, n)
	}
}

// MoveToFolder relocates an app into a folder. pageIdx targets a page
// inside the folder (NoPage lets the folder place it); pos positions
// within that page. Only apps can live in folders.
func (m *Manager) MoveToFolder(appName, folderName string, pageIdx, pos int) error {
	err := m.moveToFolder(appName, folderName, pageIdx, pos)
	m.observe("move_to_folder", err, zap.String("app", appName), zap.String("folder", folderName))
	return err
}

func (m *Manager) moveToFolder(appName, folderName string, pageIdx, pos int) error {
	app, ok := m.reg.App(appName)
	if !ok {
		return errs.NotFound("app %q was not found", appName)
	}
	folder, ok := m.reg.Folder(folderName)
	if !ok {
		return errs.NotFound("folder %q was not found", folderName)
	}

	if folder.Contains(app) {
		if pageIdx == NoPage {
			// Relocate to the folder's tail; the vacated slot
			// guarantees room.
			m.detach(app)
			return folder.Grid().Add(app)
		}
		return folder.MoveToPage(app, pageIdx, pos)
	}

	var target *screen.Page
	if pageIdx != NoPage {
		if target = folder.Grid().PageAt(pageIdx); target == nil {
			return errs.InvalidIndex("page index %d out of range [0, %d)", pageIdx, folder.Grid().PageCount())
		}
	}
	if err := folder.Grid().ValidatePlacement(target, pos); err != nil {
		return err
	}

	detached, err := m.detach(app)
	if err != nil {
		return err
	}
	if target == nil {
		return folder.Grid().Add(detached)
	}
	return folder.Grid().AddToPage(detached, target, pos)
}

// RunApp opens an app, appending it to the running queue unless it is
// already there.
func (m *Manager) RunApp(name string) error {
	err := m.runApp(name)
	m.observe("run_app", err, zap.String("app", name))
	return err
}

func (m *Manager) runApp(name string) error {
	app, ok := m.reg.App(name)
	if !ok {
		return errs.NotFound("app %q was not found", name)
	}
	if !m.IsRunning(name) {
		m.running = append(m.running, app)
	}
	return nil
}

// TerminateApp closes a running app, removing it from the queue. A
// non-running app is a no-op.
func (m *Manager) TerminateApp(name string) error {
	err := m.terminateApp(name)
	m.observe("terminate_app", err, zap.String("app", name))
	return err
}

func (m *Manager) terminateApp(name string) error {
	app, ok := m.reg.App(name)
	if !ok {
		return errs.NotFound("app %q was not found", name)
	}
	m.dropRunning(app)
	return nil
}

// IsRunning reports whether the named app is in the running queue.
func (m *Manager) IsRunning(name string) bool {
	for _, app := range m.running {
		if app.Name() == name {
			return true
		}
	}
	return false
}

// detach removes it from whatever currently holds it (dock, home
// page, or folder page), pruning an emptied grid page.
func (m *Manager) detach(it screen.Item) (screen.Item, error) {
	p := it.Parent()
	switch {
	case p == nil:
		return nil, errs.InvalidContainer("%q is not placed anywhere", it.Name())
	case p == m.dock:
		return m.dock.Remove(it)
	case p.Owner() != nil:
		return p.Owner().Remove(it)
	default:
		return nil, errs.InvalidContainer("%q is held by an orphaned page", it.Name())
	}
}

func (m *Manager) dropRunning(app *screen.App) {
	for i, running := range m.running {
		if running == app {
			m.running = append(m.running[:i], m.running[i+1:]...)
			return
		}
	}
}

func (m *Manager) observe(op string, err error, fields ...zap.Field) {
	if m.metrics != nil {
		m.metrics.RecordOp(op, err)
		m.metrics.SetCounts(m.reg.AppCount(), m.reg.FolderCount(), m.grid.PageCount(), len(m.running), m.dock.Len())
	}
	if err != nil {
		m.log.Warn(op+" failed", append(fields, zap.Error(err))...)
		return
	}
	m.log.Debug(op, fields...)
}
