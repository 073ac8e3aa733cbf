package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStoreIsStructurallyValid(t *testing.T) {
	s := NewStore()
	for _, role := range Roles {
		assert.NotNil(t, s.Data[role])
		assert.NotNil(t, s.CustomTasks[role])
	}
	assert.Empty(t, s.Role)
}

func TestToggleIsIdempotentPair(t *testing.T) {
	s := NewStore()
	s = s.Toggle(RoleGeneral, 4, "fajr")
	assert.True(t, s.Record(RoleGeneral, 4)["fajr"])

	s = s.Toggle(RoleGeneral, 4, "fajr")
	assert.False(t, s.Record(RoleGeneral, 4)["fajr"])
}

func TestToggleIsCopyOnWrite(t *testing.T) {
	before := NewStore()
	after := before.Toggle(RoleGeneral, 1, "fajr")

	// The original snapshot must not observe the mutation.
	assert.False(t, before.Record(RoleGeneral, 1)["fajr"])
	assert.True(t, after.Record(RoleGeneral, 1)["fajr"])
}

func TestMissingRecordReadsAsIncomplete(t *testing.T) {
	s := NewStore()
	rec := s.Record(RoleProfessional, 17)
	assert.False(t, rec["fajr"])
	assert.Empty(t, rec)
}

func TestAddAndRemoveCustomTask(t *testing.T) {
	s := NewStore()
	task := NewCustomTask("  Morning walk  ", 10, "star")
	assert.Equal(t, "Morning walk", task.Label)
	assert.Equal(t, CategoryRole, task.Category)
	assert.True(t, strings.HasPrefix(task.Id, "custom_"))

	s = s.AddCustomTask(RoleStudent, task)
	assert.Len(t, s.Custom(RoleStudent), 1)
	assert.Empty(t, s.Custom(RoleGeneral))

	s = s.RemoveCustomTask(RoleStudent, task.Id)
	assert.Empty(t, s.Custom(RoleStudent))
}

func TestRemoveCustomTaskKeepsCompletionFlags(t *testing.T) {
	s := NewStore()
	task := NewCustomTask("Charity", 15, "heart")
	s = s.AddCustomTask(RoleGeneral, task)
	s = s.Toggle(RoleGeneral, 8, task.Id)
	s = s.RemoveCustomTask(RoleGeneral, task.Id)

	// No cleanup on delete: the flag stays, orphaned.
	assert.True(t, s.Record(RoleGeneral, 8)[task.Id])
}

func TestCustomTaskIdsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewCustomTask("x", 5, "star").Id
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestSelectRole(t *testing.T) {
	s := NewStore()
	next := s.SelectRole(RoleProfessional)
	assert.Equal(t, RoleProfessional, next.Role)
	assert.Empty(t, s.Role)
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleStudent))
	assert.True(t, ValidRole(RoleProfessional))
	assert.True(t, ValidRole(RoleGeneral))
	assert.False(t, ValidRole("admin"))
	assert.False(t, ValidRole(""))
}
