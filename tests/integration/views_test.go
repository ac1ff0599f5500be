// CLI integration tests for list filtering, sorting, search, export,
// import, and stats.
package integration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestListStatusFilters(t *testing.T) {
	env := NewTestEnv(t)

	done := ParseJSON[Item](t, env.MustRun("--json", "add", "done").Stdout)
	shelf := ParseJSON[Item](t, env.MustRun("--json", "add", "shelved").Stdout)
	env.MustRun("add", "open")
	env.MustRun("toggle", done.ID)
	env.MustRun("archive", shelf.ID)

	tests := []struct {
		status string
		want   []string
	}{
		{"all", []string{"done", "shelved", "open"}},
		{"active", []string{"open"}},
		{"completed", []string{"done"}},
		{"archived", []string{"shelved"}},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			items := ParseJSON[[]Item](t, env.MustRun("--json", "list", "--status", tt.status).Stdout)
			got := make([]string, len(items))
			for i, it := range items {
				got[i] = it.Text
			}
			if len(got) != len(tt.want) {
				t.Fatalf("items = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("items = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestListSortPriority(t *testing.T) {
	env := NewTestEnv(t)

	env.MustRun("add", "low task", "--priority", "low")
	env.MustRun("add", "urgent task", "--priority", "high")
	env.MustRun("add", "plain task")

	items := ParseJSON[[]Item](t, env.MustRun("--json", "list", "--sort", "priority").Stdout)
	if len(items) != 3 {
		t.Fatalf("item count = %d, want 3", len(items))
	}
	if items[0].Text != "urgent task" {
		t.Errorf("first = %q, want urgent task", items[0].Text)
	}
	if items[2].Text != "plain task" {
		t.Errorf("last = %q, want plain task", items[2].Text)
	}
}

func TestListSearch(t *testing.T) {
	env := NewTestEnv(t)

	env.MustRun("add", "Buy milk")
	env.MustRun("add", "Review PR", "--notes", "the milk delivery one")
	env.MustRun("add", "Walk dog")

	items := ParseJSON[[]Item](t, env.MustRun("--json", "list", "--search", "MILK").Stdout)
	if len(items) != 2 {
		t.Errorf("search matches = %d, want 2 (text and notes)", len(items))
	}

	result := env.MustRun("list", "--search", "zzz")
	if !strings.Contains(result.Stdout, "No items found") {
		t.Errorf("expected empty-search message, got:\n%s", result.Stdout)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	env := NewTestEnv(t)

	env.MustRun("add", "first", "--priority", "high")
	done := ParseJSON[Item](t, env.MustRun("--json", "add", "second").Stdout)
	env.MustRun("toggle", done.ID)

	exportPath := filepath.Join(env.TempDir, "backup.json")
	env.MustRun("export", "--output", exportPath)
	if _, err := os.Stat(exportPath); err != nil {
		t.Fatalf("export file not written: %v", err)
	}

	env.MustRun("clear", "--all", "--force")
	if items := ParseJSON[[]Item](t, env.MustRun("--json", "list").Stdout); len(items) != 0 {
		t.Fatalf("expected empty list after clear, got %d items", len(items))
	}

	env.MustRun("import", exportPath)
	items := ParseJSON[[]Item](t, env.MustRun("--json", "list").Stdout)
	if len(items) != 2 {
		t.Fatalf("item count after import = %d, want 2", len(items))
	}
	if items[0].Text != "first" || items[0].Priority != "High" {
		t.Errorf("first item = %+v, want text=first priority=High", items[0])
	}
	if items[1].Status != "Completed" {
		t.Errorf("second item status = %q, want Completed", items[1].Status)
	}
}

func TestImportMalformedFileFails(t *testing.T) {
	env := NewTestEnv(t)

	badPath := filepath.Join(env.TempDir, "bad.json")
	if err := os.WriteFile(badPath, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	result := env.Run("import", badPath)
	if result.ExitCode == 0 {
		t.Error("expected import of malformed file to fail")
	}
}

func TestStats(t *testing.T) {
	env := NewTestEnv(t)

	done := ParseJSON[Item](t, env.MustRun("--json", "add", "done").Stdout)
	shelf := ParseJSON[Item](t, env.MustRun("--json", "add", "shelved").Stdout)
	env.MustRun("add", "open")
	env.MustRun("toggle", done.ID)
	env.MustRun("archive", shelf.ID)

	stats := ParseJSON[Stats](t, env.MustRun("--json", "stats").Stdout)
	if stats.Total != 3 {
		t.Errorf("total = %d, want 3", stats.Total)
	}
	if stats.Active != 1 || stats.Completed != 1 || stats.Archived != 1 {
		t.Errorf("active/completed/archived = %d/%d/%d, want 1/1/1",
			stats.Active, stats.Completed, stats.Archived)
	}
	if stats.Percent != 33 {
		t.Errorf("percent = %d, want 33", stats.Percent)
	}
}
