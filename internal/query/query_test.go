package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ticklab/ticklist/pkg/types"
)

var catWork = types.Category{ID: "cat-work", Name: "Work", Color: "#007AFF"}

func resolver(id string) types.Category {
	if id == catWork.ID {
		return catWork
	}
	return types.DefaultCategory()
}

func texts(items []types.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Text
	}
	return out
}

func TestProjectCategoryFilter(t *testing.T) {
	items := []types.Item{
		{Text: "a", CategoryID: catWork.ID, Status: types.StatusActive},
		{Text: "b", CategoryID: types.DefaultCategoryID, Status: types.StatusActive},
	}

	got := Project(items, resolver, Params{SelectedCategoryID: catWork.ID, Filter: types.FilterAll})
	assert.Equal(t, []string{"a"}, texts(got))

	got = Project(items, resolver, Params{Filter: types.FilterAll})
	assert.Equal(t, []string{"a", "b"}, texts(got))
}

func TestProjectStatusFilter(t *testing.T) {
	items := []types.Item{
		{Text: "A", Order: 0, IsChecked: true, Status: types.StatusCompleted},
		{Text: "B", Order: 1, Status: types.StatusActive},
		{Text: "C", Order: 2, Status: types.StatusArchived},
	}

	got := Project(items, resolver, Params{Filter: types.FilterActive})
	assert.Equal(t, []string{"B"}, texts(got))

	got = Project(items, resolver, Params{Filter: types.FilterArchived})
	assert.Equal(t, []string{"C"}, texts(got))

	got = Project(items, resolver, Params{Filter: types.FilterAll})
	assert.Len(t, got, 3)
}

func TestProjectCompletedFilterKeepsLegacyChecked(t *testing.T) {
	items := []types.Item{
		{Text: "new-style", Status: types.StatusCompleted},
		{Text: "legacy", IsChecked: true, Status: types.StatusActive},
		{Text: "open", Status: types.StatusActive},
	}

	got := Project(items, resolver, Params{Filter: types.FilterCompleted})
	assert.Equal(t, []string{"new-style", "legacy"}, texts(got))
	for _, it := range got {
		assert.True(t, it.Status == types.StatusCompleted || it.IsChecked)
	}
}

func TestProjectSearch(t *testing.T) {
	items := []types.Item{
		{Text: "Buy milk", Notes: "2% if possible", Status: types.StatusActive},
		{Text: "Review PR", CategoryID: catWork.ID, Status: types.StatusActive},
		{Text: "Walk dog", Notes: "around the park", Status: types.StatusActive},
	}

	tests := []struct {
		name string
		term string
		want []string
	}{
		{"matches text case-insensitively", "MILK", []string{"Buy milk"}},
		{"matches notes", "park", []string{"Walk dog"}},
		{"matches resolved category name", "work", []string{"Review PR"}},
		{"empty term passes through", "", []string{"Buy milk", "Review PR", "Walk dog"}},
		{"no match", "zebra", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Project(items, resolver, Params{Filter: types.FilterAll, SearchTerm: tt.term})
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, texts(got))
		})
	}
}

func TestProjectSortManual(t *testing.T) {
	items := []types.Item{
		{Text: "third", Order: 2, Status: types.StatusActive},
		{Text: "first", Order: 0, Status: types.StatusActive},
		{Text: "second", Order: 1, Status: types.StatusActive},
	}

	got := Project(items, resolver, Params{Filter: types.FilterAll, Sort: types.SortManual})
	assert.Equal(t, []string{"first", "second", "third"}, texts(got))
}

func TestProjectSortCreationDateNewestFirst(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	items := []types.Item{
		{Text: "old", CreatedAt: base, Status: types.StatusActive},
		{Text: "new", CreatedAt: base.Add(time.Hour), Status: types.StatusActive},
	}

	got := Project(items, resolver, Params{Filter: types.FilterAll, Sort: types.SortCreationDate})
	assert.Equal(t, []string{"new", "old"}, texts(got))
}

func TestProjectSortDueDateNilLast(t *testing.T) {
	soon := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	later := soon.Add(48 * time.Hour)
	items := []types.Item{
		{Text: "undated", Status: types.StatusActive},
		{Text: "later", DueDate: &later, Status: types.StatusActive},
		{Text: "soon", DueDate: &soon, Status: types.StatusActive},
	}

	got := Project(items, resolver, Params{Filter: types.FilterAll, Sort: types.SortDueDate})
	assert.Equal(t, []string{"soon", "later", "undated"}, texts(got))
}

func TestProjectSortPriorityStable(t *testing.T) {
	items := []types.Item{
		{Text: "low", Priority: types.PriorityLow, Status: types.StatusActive},
		{Text: "high-1", Priority: types.PriorityHigh, Status: types.StatusActive},
		{Text: "med", Priority: types.PriorityMedium, Status: types.StatusActive},
		{Text: "high-2", Priority: types.PriorityHigh, Status: types.StatusActive},
		{Text: "none", Priority: types.PriorityNone, Status: types.StatusActive},
	}

	got := Project(items, resolver, Params{Filter: types.FilterAll, Sort: types.SortPriority})
	// Equal ranks keep their input order: high-1 before high-2.
	assert.Equal(t, []string{"high-1", "high-2", "med", "low", "none"}, texts(got))
}

func TestProjectDoesNotMutateInput(t *testing.T) {
	items := []types.Item{
		{Text: "b", Order: 1, Status: types.StatusActive},
		{Text: "a", Order: 0, Status: types.StatusActive},
	}

	_ = Project(items, resolver, Params{Filter: types.FilterAll, Sort: types.SortManual})
	assert.Equal(t, "b", items[0].Text, "input order untouched")
}
