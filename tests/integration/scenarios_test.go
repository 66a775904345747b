package integration

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridhome/springboard/internal/home"
	"github.com/gridhome/springboard/internal/infrastructure/monitoring"
	"github.com/gridhome/springboard/internal/shared/errs"
	"github.com/gridhome/springboard/tests/helpers/testutil"
)

// TestSequentialInstallPaging walks a fresh home screen through enough
// installs to overflow the first page.
func TestSequentialInstallPaging(t *testing.T) {
	m := testutil.NewSmall(t)

	t.Run("first page fills in order", func(t *testing.T) {
		testutil.InstallApps(t, m, "A", "B", "C", "D")
		require.Equal(t, [][]string{{"A", "B", "C", "D"}}, testutil.PageNames(m))
	})

	t.Run("next install opens a second page", func(t *testing.T) {
		testutil.InstallApps(t, m, "E")
		require.Equal(t, [][]string{{"A", "B", "C", "D"}, {"E"}}, testutil.PageNames(m))
	})

	t.Run("removals backfill from the last open page", func(t *testing.T) {
		require.NoError(t, m.DeleteApp("B"))
		testutil.InstallApps(t, m, "F")
		// The trailing page still has room, so F lands there rather
		// than filling the gap on page one.
		require.Equal(t, [][]string{{"A", "C", "D"}, {"E", "F"}}, testutil.PageNames(m))
	})

	t.Run("emptied pages disappear", func(t *testing.T) {
		require.NoError(t, m.DeleteApp("E"))
		require.NoError(t, m.DeleteApp("F"))
		require.Equal(t, [][]string{{"A", "C", "D"}}, testutil.PageNames(m))
	})
}

// TestDockCapacity pins the dock at two slots and verifies the third
// move is rejected without moving anything.
func TestDockCapacity(t *testing.T) {
	m := testutil.NewSmallWith(t, "A", "B", "C")

	require.NoError(t, m.MoveToDock("A", home.AtEnd))
	require.NoError(t, m.MoveToDock("B", home.AtEnd))

	err := m.MoveToDock("C", home.AtEnd)
	testutil.RequireErrType(t, err, errs.TypeCapacityExceeded)

	assert.Equal(t, []string{"A", "B"}, m.Dock().Names())
	c, ok := m.GetApp("C")
	require.True(t, ok)
	require.NotNil(t, c.Parent())
	assert.Same(t, m.Grid(), c.Parent().Owner(), "rejected app stays on its page")

	t.Run("docked items still reorder", func(t *testing.T) {
		require.NoError(t, m.MoveToDock("B", 0))
		assert.Equal(t, []string{"B", "A"}, m.Dock().Names())
	})
}

// TestFolderLifecycle creates a folder, shuffles apps through it, and
// removes it once drained.
func TestFolderLifecycle(t *testing.T) {
	m := testutil.NewSmallWith(t, "Chat", "Photos", "Camera")

	folder, err := m.CreateFolder("Media", []string{"Photos", "Camera"})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Photos", "Camera"}}, testutil.FolderPageNames(folder))
	assert.Equal(t, []string{"Chat", "Media"}, m.PageAt(0).Names())

	t.Run("folder name collides with app names", func(t *testing.T) {
		_, err := m.AddApp("Media")
		testutil.RequireErrType(t, err, errs.TypeDuplicateName)
		_, err = m.CreateFolder("Chat", nil)
		testutil.RequireErrType(t, err, errs.TypeDuplicateName)
	})

	t.Run("non-empty folder cannot be removed", func(t *testing.T) {
		testutil.RequireErrType(t, m.RemoveFolder("Media"), errs.TypeConflict)
	})

	t.Run("moving into a full folder page splits it", func(t *testing.T) {
		// Folder pages hold two; page 0 is full, so Chat pushes
		// Camera out onto a fresh page right after it.
		require.NoError(t, m.MoveToFolder("Chat", "Media", 0, 0))
		assert.Equal(t, [][]string{{"Chat", "Photos"}, {"Camera"}}, testutil.FolderPageNames(folder))
	})

	t.Run("drained folder removes cleanly", func(t *testing.T) {
		for _, name := range []string{"Chat", "Photos", "Camera"} {
			require.NoError(t, m.MoveBetweenPages(name, 0, home.AtEnd))
		}
		assert.True(t, folder.Empty())
		require.NoError(t, m.RemoveFolder("Media"))
		_, ok := m.GetFolder("Media")
		assert.False(t, ok)
	})
}

// TestRejectedMovesLeaveStateIntact exercises the validate-first
// policy: any failed relocation leaves every container untouched.
func TestRejectedMovesLeaveStateIntact(t *testing.T) {
	m := home.New(home.Options{
		Columns: 1, Rows: 1, MaxPages: 2, DockCapacity: 1,
		FolderColumns: 1, FolderRows: 1, FolderMaxPages: 1,
	})
	testutil.InstallApps(t, m, "A", "B")
	before := testutil.PageNames(m)

	testutil.RequireErrType(t, m.MoveBetweenPages("A", 5, home.AtEnd), errs.TypeInvalidIndex)
	testutil.RequireErrType(t, m.MoveBetweenPages("A", 2, home.AtEnd), errs.TypeCapacityExceeded)
	testutil.RequireErrType(t, m.MoveToDock("A", 9), errs.TypeInvalidIndex)
	testutil.RequireErrType(t, m.MoveToFolder("A", "nope", home.NoPage, home.AtEnd), errs.TypeNotFound)

	assert.Equal(t, before, testutil.PageNames(m))
	for _, name := range []string{"A", "B"} {
		app, ok := m.GetApp(name)
		require.True(t, ok)
		assert.NotNil(t, app.Parent(), "%s must stay attached", name)
	}
}

// TestRunningQueue drives the open/close lifecycle alongside deletes.
func TestRunningQueue(t *testing.T) {
	m := testutil.NewSmallWith(t, "A", "B", "C")

	require.NoError(t, m.RunApp("A"))
	require.NoError(t, m.RunApp("B"))
	require.NoError(t, m.RunApp("A")) // idempotent

	names := make([]string, 0, 2)
	for _, app := range m.RunningApps() {
		names = append(names, app.Name())
	}
	assert.Equal(t, []string{"A", "B"}, names)

	require.NoError(t, m.DeleteApp("A"))
	assert.False(t, m.IsRunning("A"), "delete terminates the app")
	assert.True(t, m.IsRunning("B"))
}

// TestSnapshotJSON round-trips the full layout through the JSON
// snapshot.
func TestSnapshotJSON(t *testing.T) {
	m := testutil.NewSmallWith(t, "A", "B", "C")
	require.NoError(t, m.MoveToDock("A", home.AtEnd))
	_, err := m.CreateFolder("Stuff", []string{"B"})
	require.NoError(t, err)
	require.NoError(t, m.RunApp("C"))

	raw, err := m.SnapshotJSON()
	require.NoError(t, err)

	var snap home.Snapshot
	require.NoError(t, sonic.Unmarshal(raw, &snap))

	assert.Equal(t, 2, snap.Columns)
	assert.Equal(t, 2, snap.Rows)
	assert.Equal(t, [][]string{{"C", "Stuff"}}, snap.Pages)
	assert.Equal(t, []string{"A"}, snap.Dock)
	assert.Equal(t, [][]string{{"B"}}, snap.Folders["Stuff"])
	assert.Equal(t, []string{"C"}, snap.Running)
}

// TestMetricsWiring attaches an isolated registry and checks the
// counters move with operations.
func TestMetricsWiring(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := monitoring.NewMetricsWith(reg)
	m := testutil.NewSmall(t).WithMetrics(metrics)

	testutil.InstallApps(t, m, "A", "B")
	_, err := m.AddApp("A")
	testutil.RequireErrType(t, err, errs.TypeDuplicateName)
	require.NoError(t, m.MoveToDock("A", home.AtEnd))

	families, err := reg.Gather()
	require.NoError(t, err)

	byName := make(map[string]float64)
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			if g := metric.GetGauge(); g != nil {
				byName[mf.GetName()] = g.GetValue()
			}
		}
	}
	assert.Equal(t, 2.0, byName["springboard_apps_installed"])
	assert.Equal(t, 1.0, byName["springboard_dock_items"])
}

// TestDefaultLayout checks the canonical seeded home screen.
func TestDefaultLayout(t *testing.T) {
	m := home.NewDefault()

	assert.Equal(t, []string{"Phone", "Mail", "Safari", "Music"}, m.Dock().Names())
	assert.Equal(t, len(home.DefaultApps), m.Stats().Apps)
	testutil.RequireErrType(t, m.DeleteApp("Settings"), errs.TypeNotDeletable)
	require.NoError(t, m.DeleteApp("Notes"))
}
