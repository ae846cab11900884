package alertfeed

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestListMissingDirectory(t *testing.T) {
	feed := NewLocalFeed(filepath.Join(t.TempDir(), "does-not-exist"), "/unauthorized_logs")

	entries, err := feed.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if entries == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}

func TestListFiltersAndSortsNewestFirst(t *testing.T) {
	dir := t.TempDir()

	writeFile := func(name string, modTime time.Time) {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		if err := os.Chtimes(path, modTime, modTime); err != nil {
			t.Fatalf("chtimes %s: %v", name, err)
		}
	}

	now := time.Now()
	writeFile("older.jpg", now.Add(-2*time.Hour))
	writeFile("newest.png", now)
	writeFile("middle.jpeg", now.Add(-time.Hour))
	writeFile("notes.txt", now) // not an image, must be skipped

	if err := os.Mkdir(filepath.Join(dir, "sub.jpg"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	feed := NewLocalFeed(dir, "/unauthorized_logs/")
	entries, err := feed.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	want := []string{"newest.png", "middle.jpeg", "older.jpg"}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i, name := range want {
		if entries[i].Filename != name {
			t.Errorf("entries[%d].Filename = %q, want %q", i, entries[i].Filename, name)
		}
	}

	if entries[0].Path != "/unauthorized_logs/newest.png" {
		t.Errorf("Path = %q, want /unauthorized_logs/newest.png", entries[0].Path)
	}
}
