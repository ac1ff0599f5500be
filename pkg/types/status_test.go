package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatusFilter(t *testing.T) {
	tests := []struct {
		in      string
		want    StatusFilter
		wantErr error
	}{
		{"", FilterAll, nil},
		{"all", FilterAll, nil},
		{"Active", FilterActive, nil},
		{"COMPLETED", FilterCompleted, nil},
		{"done", FilterCompleted, nil},
		{"archived", FilterArchived, nil},
		{"bogus", "", ErrInvalidFilter},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStatusFilter(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatusFilterKeep(t *testing.T) {
	tests := []struct {
		name      string
		filter    StatusFilter
		status    string
		isChecked bool
		want      bool
	}{
		{"all keeps active", FilterAll, StatusActive, false, true},
		{"all keeps archived", FilterAll, StatusArchived, false, true},
		{"active keeps active", FilterActive, StatusActive, false, true},
		{"active drops completed", FilterActive, StatusCompleted, true, false},
		{"completed keeps completed", FilterCompleted, StatusCompleted, false, true},
		{"completed keeps legacy checked", FilterCompleted, StatusActive, true, true},
		{"completed drops active", FilterCompleted, StatusActive, false, false},
		{"archived keeps archived", FilterArchived, StatusArchived, false, true},
		{"archived drops checked active", FilterArchived, StatusActive, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Keep(tt.status, tt.isChecked))
		})
	}
}

func TestParseSortOption(t *testing.T) {
	tests := []struct {
		in      string
		want    SortOption
		wantErr error
	}{
		{"", SortManual, nil},
		{"manual", SortManual, nil},
		{"created", SortCreationDate, nil},
		{"due", SortDueDate, nil},
		{"due-date", SortDueDate, nil},
		{"Priority", SortPriority, nil},
		{"alphabetical", "", ErrInvalidSort},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSortOption(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
