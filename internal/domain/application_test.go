package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func interval(startHour, endHour int) (time.Time, time.Time) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	return day.Add(time.Duration(startHour) * time.Hour), day.Add(time.Duration(endHour) * time.Hour)
}

func TestApplication_Overlaps(t *testing.T) {
	start, end := interval(10, 12)
	app := Application{StartTime: start, EndTime: end}

	tests := []struct {
		name      string
		startHour int
		endHour   int
		want      bool
	}{
		{"identical interval", 10, 12, true},
		{"contained interval", 10, 11, true},
		{"overlaps start", 9, 11, true},
		{"overlaps end", 11, 13, true},
		{"covers whole interval", 9, 13, true},
		{"touches start boundary", 8, 10, false},
		{"touches end boundary", 12, 14, false},
		{"strictly before", 7, 9, false},
		{"strictly after", 13, 15, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			otherStart, otherEnd := interval(tt.startHour, tt.endHour)
			assert.Equal(t, tt.want, app.Overlaps(otherStart, otherEnd))
		})
	}
}

func TestApplication_Overlaps_ZeroDuration(t *testing.T) {
	start, end := interval(10, 12)
	app := Application{StartTime: start, EndTime: end}

	// A zero-duration interval never conflicts, even inside the event
	point := start.Add(time.Hour)
	assert.False(t, app.Overlaps(point, point))

	zeroApp := Application{StartTime: point, EndTime: point}
	assert.False(t, zeroApp.Overlaps(start, end))
}

func TestRoleAllowed(t *testing.T) {
	assert.True(t, RoleAllowed(RoleStudent, RoleStudent))
	assert.True(t, RoleAllowed(RoleCurator, ModeratorRoles...))
	assert.True(t, RoleAllowed(RoleAdmin, ModeratorRoles...))

	assert.False(t, RoleAllowed(RoleStudent, ModeratorRoles...))
	assert.False(t, RoleAllowed(RoleCurator, RoleStudent))

	// Unknown roles are always denied, whatever the allow list
	assert.False(t, RoleAllowed(Role("superuser"), RoleStudent, RoleCurator, RoleAdmin))
	assert.False(t, RoleAllowed(Role(""), RoleStudent))
}

func TestPrincipal_IsModerator(t *testing.T) {
	assert.False(t, Principal{Role: RoleStudent}.IsModerator())
	assert.True(t, Principal{Role: RoleCurator}.IsModerator())
	assert.True(t, Principal{Role: RoleAdmin}.IsModerator())
	assert.False(t, Principal{Role: Role("unknown")}.IsModerator())
}
