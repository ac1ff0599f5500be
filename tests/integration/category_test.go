// CLI integration tests for category management and the persisted
// category filter.
package integration

import (
	"strings"
	"testing"
)

func TestDefaultCategorySeeded(t *testing.T) {
	env := NewTestEnv(t)

	cats := ParseJSON[[]Category](t, env.MustRun("--json", "category", "list").Stdout)
	if len(cats) != 1 {
		t.Fatalf("category count = %d, want 1", len(cats))
	}
	if cats[0].Name != "General" {
		t.Errorf("name = %q, want General", cats[0].Name)
	}
	if cats[0].Color != "#8E8E93" {
		t.Errorf("color = %q, want #8E8E93", cats[0].Color)
	}
}

func TestCategoryAddUpdateDelete(t *testing.T) {
	env := NewTestEnv(t)

	work := ParseJSON[Category](t, env.MustRun("--json", "category", "add", "Work", "--color", "#FF9500").Stdout)
	if work.Color != "#FF9500" {
		t.Errorf("color = %q, want #FF9500", work.Color)
	}

	updated := ParseJSON[Category](t, env.MustRun("--json", "category", "update", "Work", "--name", "Office").Stdout)
	if updated.Name != "Office" {
		t.Errorf("name after update = %q, want Office", updated.Name)
	}
	if updated.Color != "#FF9500" {
		t.Errorf("color after rename = %q, want unchanged #FF9500", updated.Color)
	}

	env.MustRun("category", "delete", "Office")
	cats := ParseJSON[[]Category](t, env.MustRun("--json", "category", "list").Stdout)
	if len(cats) != 1 {
		t.Errorf("category count after delete = %d, want 1", len(cats))
	}
}

func TestDefaultCategoryCannotBeDeleted(t *testing.T) {
	env := NewTestEnv(t)

	result := env.Run("category", "delete", "General")
	if result.ExitCode == 0 {
		t.Error("expected deleting the default category to fail")
	}

	cats := ParseJSON[[]Category](t, env.MustRun("--json", "category", "list").Stdout)
	if len(cats) != 1 {
		t.Errorf("category count = %d, want 1", len(cats))
	}
}

func TestDeletedCategoryFallsBackToDefault(t *testing.T) {
	env := NewTestEnv(t)

	env.MustRun("category", "add", "Errands")
	env.MustRun("add", "Post office", "--category", "Errands")
	env.MustRun("category", "delete", "Errands")

	result := env.MustRun("list")
	if !strings.Contains(result.Stdout, "General") {
		t.Errorf("expected orphaned item to display under General:\n%s", result.Stdout)
	}
}

func TestUsePersistsCategoryFilter(t *testing.T) {
	env := NewTestEnv(t)

	env.MustRun("category", "add", "Work")
	env.MustRun("add", "Review PR", "--category", "Work")
	env.MustRun("add", "Buy milk")

	env.MustRun("use", "Work")

	items := ParseJSON[[]Item](t, env.MustRun("--json", "list").Stdout)
	if len(items) != 1 || items[0].Text != "Review PR" {
		t.Errorf("filtered items = %+v, want only Review PR", items)
	}

	all := ParseJSON[[]Item](t, env.MustRun("--json", "list", "--all-categories").Stdout)
	if len(all) != 2 {
		t.Errorf("all-categories count = %d, want 2", len(all))
	}

	env.MustRun("use", "--clear")
	cleared := ParseJSON[[]Item](t, env.MustRun("--json", "list").Stdout)
	if len(cleared) != 2 {
		t.Errorf("count after clearing filter = %d, want 2", len(cleared))
	}
}
