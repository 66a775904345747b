package registry

import (
	"testing"

	"github.com/gridhome/springboard/internal/screen"
	"github.com/gridhome/springboard/internal/shared/errs"
)

func TestAddAndLookup(t *testing.T) {
	r := New()
	a := screen.NewApp("Mail")
	if err := r.AddApp(a); err != nil {
		t.Fatal(err)
	}

	got, ok := r.App("Mail")
	if !ok || got != a {
		t.Fatalf("App(Mail) = %v, %v", got, ok)
	}
	if _, ok := r.App("missing"); ok {
		t.Error("lookup of unknown app should fail")
	}

	it, ok := r.Item("Mail")
	if !ok || it.Name() != "Mail" {
		t.Error("Item lookup should resolve apps")
	}
}

// Apps and folders share one namespace.
func TestNameCollisionAcrossKinds(t *testing.T) {
	r := New()
	if err := r.AddApp(screen.NewApp("Social")); err != nil {
		t.Fatal(err)
	}

	err := r.AddFolder(screen.NewFolder("Social", 3, 3, 3))
	if !errs.IsType(err, errs.TypeDuplicateName) {
		t.Fatalf("expected DuplicateName, got %v", err)
	}

	if err := r.AddFolder(screen.NewFolder("Games", 3, 3, 3)); err != nil {
		t.Fatal(err)
	}
	if err := r.AddApp(screen.NewApp("Games")); !errs.IsType(err, errs.TypeDuplicateName) {
		t.Fatalf("expected DuplicateName, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	r := New()
	r.AddApp(screen.NewApp("Mail"))
	r.AddFolder(screen.NewFolder("Games", 3, 3, 3))

	r.RemoveApp("Mail")
	if !r.Available("Mail") {
		t.Error("removed app name should be available again")
	}
	r.RemoveFolder("Games")
	if _, ok := r.Folder("Games"); ok {
		t.Error("removed folder should not resolve")
	}
	if r.AppCount() != 0 || r.FolderCount() != 0 {
		t.Error("counts should be zero after removal")
	}
}

func TestNames(t *testing.T) {
	r := New()
	r.AddApp(screen.NewApp("A"))
	r.AddApp(screen.NewApp("B"))
	r.AddFolder(screen.NewFolder("F", 3, 3, 3))

	if len(r.AppNames()) != 2 || len(r.FolderNames()) != 1 {
		t.Errorf("AppNames = %v, FolderNames = %v", r.AppNames(), r.FolderNames())
	}
}
