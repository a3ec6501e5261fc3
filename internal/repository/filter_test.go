package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkoutFilterNormalize(t *testing.T) {
	tests := []struct {
		name        string
		page        int
		perPage     int
		wantPage    int
		wantPerPage int
	}{
		{"defaults zero values up", 0, 0, 1, 1},
		{"negative page clamps to one", -3, 24, 1, 24},
		{"per page capped at 100", 2, 500, 2, 100},
		{"in range untouched", 3, 50, 3, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := WorkoutFilter{Page: tt.page, PerPage: tt.perPage}
			f.Normalize()
			assert.Equal(t, tt.wantPage, f.Page)
			assert.Equal(t, tt.wantPerPage, f.PerPage)
		})
	}
}

func TestWorkoutFilterOffset(t *testing.T) {
	f := WorkoutFilter{Page: 3, PerPage: 24}
	assert.Equal(t, 48, f.Offset())

	f = WorkoutFilter{Page: 1, PerPage: 10}
	assert.Equal(t, 0, f.Offset())
}
