package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/study-planner/internal/models"
)

func TestStoreEmptySnapshot(t *testing.T) {
	store := NewTimetableStore()
	tt, ok := store.Snapshot()
	assert.False(t, ok)
	assert.Nil(t, tt)
}

func TestStoreInstallAndSnapshot(t *testing.T) {
	store := NewTimetableStore()
	token := store.Begin()
	ok := store.Install(token, models.Timetable{"2025-01-05": {{Subject: "Math", Hours: 3}}})
	require.True(t, ok)

	tt, ok := store.Snapshot()
	require.True(t, ok)
	assert.Equal(t, 3.0, tt.HoursOn("2025-01-05"))
}

func TestStoreDiscardsStaleInstall(t *testing.T) {
	store := NewTimetableStore()
	early := store.Begin()
	late := store.Begin()

	require.True(t, store.Install(late, models.Timetable{"2025-01-06": {{Subject: "New", Hours: 2}}}))
	assert.False(t, store.Install(early, models.Timetable{"2025-01-05": {{Subject: "Old", Hours: 1}}}))

	tt, ok := store.Snapshot()
	require.True(t, ok)
	_, hasOld := tt["2025-01-05"]
	assert.False(t, hasOld)
	assert.Equal(t, 2.0, tt.HoursOn("2025-01-06"))
}

func TestStoreSnapshotIsCopied(t *testing.T) {
	store := NewTimetableStore()
	store.Install(store.Begin(), models.Timetable{"2025-01-05": {{Subject: "Math", Hours: 3}}})

	first, _ := store.Snapshot()
	delete(first, "2025-01-05")

	second, ok := store.Snapshot()
	require.True(t, ok)
	assert.Contains(t, second, "2025-01-05")
}
