package history

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/khanhnv219/nexus-downloader/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func entry(title, url, platform string) model.HistoryEntry {
	return model.NewHistoryEntry(url, title, platform, "/downloads/"+title+".mp4", 1024, "Best", "mp4", model.StatusCompleted)
}

func TestStore_ListMostRecentFirst(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 3; i++ {
		e := entry(fmt.Sprintf("video-%d", i), fmt.Sprintf("https://example.com/%d", i), "YouTube")
		if err := store.Append(e); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := store.List(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i, want := range []string{"video-2", "video-1", "video-0"} {
		if entries[i].Title != want {
			t.Errorf("entries[%d].Title = %s, expected %s", i, entries[i].Title, want)
		}
	}
}

func TestStore_ListHonorsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if err := store.Append(entry(fmt.Sprintf("v%d", i), "u", "YouTube")); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := store.List(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Title != "v4" {
		t.Errorf("limited list should still start from the newest, got %s", entries[0].Title)
	}
}

func TestStore_SearchMatchesTitleURLAndPlatform(t *testing.T) {
	store := openTestStore(t)

	seeds := []model.HistoryEntry{
		entry("Cooking Tutorial", "https://youtube.com/watch?v=1", "YouTube"),
		entry("Dance Clip", "https://bilibili.com/video/BV1", "Bilibili"),
		entry("Travel Vlog", "https://xiaohongshu.com/explore/2", "Xiaohongshu"),
	}
	for _, e := range seeds {
		if err := store.Append(e); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		query string
		want  int
	}{
		{"cooking", 1},
		{"BILIBILI", 1},
		{"youtube.com", 1},
		{"", 3},
		{"nothing-matches", 0},
	}
	for _, tt := range tests {
		got, err := store.Search(tt.query)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != tt.want {
			t.Errorf("Search(%q) returned %d entries, expected %d", tt.query, len(got), tt.want)
		}
	}
}

func TestStore_Get(t *testing.T) {
	store := openTestStore(t)

	e := entry("Findable", "https://example.com/v", "Other")
	if err := store.Append(e); err != nil {
		t.Fatal(err)
	}

	got, ok, err := store.Get(e.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected to find the appended entry")
	}
	if got.Title != "Findable" {
		t.Errorf("Get returned wrong entry: %+v", got)
	}

	if _, ok, _ := store.Get("no-such-id"); ok {
		t.Error("Get with an unknown ID should report absence")
	}
}

func TestStore_ReopenKeepsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	store, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Append(entry("Persistent", "u", "YouTube")); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	entries, err := reopened.List(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Title != "Persistent" {
		t.Errorf("entries should survive reopen, got %+v", entries)
	}
}
