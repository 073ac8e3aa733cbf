package models

import (
	"strings"

	"github.com/google/uuid"
)

// TotalDays is the number of tracked days in the month.
const TotalDays = 30

// CompletionRecord maps task id to done state for one (role, day) pair.
// A missing key means not completed, never "unknown".
type CompletionRecord map[string]bool

// RoleData maps day (1..30) to that day's completion record.
type RoleData map[int]CompletionRecord

// Store is the whole persisted tracker state. All mutations are
// copy-on-write: they return a new Store and leave the receiver untouched,
// so readers always hold a complete snapshot.
type Store struct {
	Data        map[string]RoleData `json:"data"`
	CustomTasks map[string][]Task   `json:"customTasks"`
	Role        string              `json:"role,omitempty"`
}

// NewStore returns a structurally valid empty store with all three roles
// present. It is also the recovery value for missing or malformed
// persisted state.
func NewStore() Store {
	s := Store{
		Data:        make(map[string]RoleData, len(Roles)),
		CustomTasks: make(map[string][]Task, len(Roles)),
	}
	for _, r := range Roles {
		s.Data[r] = RoleData{}
		s.CustomTasks[r] = []Task{}
	}
	return s
}

// Record returns the completion record for (role, day). Absent entries
// come back as an empty record.
func (s Store) Record(role string, day int) CompletionRecord {
	if rd, ok := s.Data[role]; ok {
		if rec, ok := rd[day]; ok {
			return rec
		}
	}
	return CompletionRecord{}
}

// Custom returns the custom task list for a role.
func (s Store) Custom(role string) []Task {
	return s.CustomTasks[role]
}

// Toggle flips the completion flag at (role, day, taskId), treating a
// missing entry as false.
func (s Store) Toggle(role string, day int, taskId string) Store {
	next := s.clone()
	rd, ok := next.Data[role]
	if !ok {
		rd = RoleData{}
		next.Data[role] = rd
	}
	rec, ok := rd[day]
	if !ok {
		rec = CompletionRecord{}
		rd[day] = rec
	}
	rec[taskId] = !rec[taskId]
	return next
}

// AddCustomTask appends a custom task to the role's bucket.
func (s Store) AddCustomTask(role string, task Task) Store {
	next := s.clone()
	next.CustomTasks[role] = append(next.CustomTasks[role], task)
	return next
}

// RemoveCustomTask deletes the custom task with the given id from the
// role's bucket. Historical completion flags for the id are left in place;
// they stop counting because the id no longer resolves in the catalog.
func (s Store) RemoveCustomTask(role string, taskId string) Store {
	next := s.clone()
	kept := make([]Task, 0, len(next.CustomTasks[role]))
	for _, t := range next.CustomTasks[role] {
		if t.Id != taskId {
			kept = append(kept, t)
		}
	}
	next.CustomTasks[role] = kept
	return next
}

// SelectRole sets the active role.
func (s Store) SelectRole(role string) Store {
	next := s.clone()
	next.Role = role
	return next
}

func (s Store) clone() Store {
	next := Store{
		Data:        make(map[string]RoleData, len(s.Data)),
		CustomTasks: make(map[string][]Task, len(s.CustomTasks)),
		Role:        s.Role,
	}
	for role, rd := range s.Data {
		days := make(RoleData, len(rd))
		for day, rec := range rd {
			cp := make(CompletionRecord, len(rec))
			for id, done := range rec {
				cp[id] = done
			}
			days[day] = cp
		}
		next.Data[role] = days
	}
	for role, tasks := range s.CustomTasks {
		next.CustomTasks[role] = append([]Task(nil), tasks...)
	}
	return next
}

// NewCustomTask builds a custom task with a generated unique id. Ids carry
// a custom_ prefix so they can never collide with catalog ids.
func NewCustomTask(label string, points int, icon string) Task {
	return Task{
		Id:       "custom_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12],
		Label:    strings.TrimSpace(label),
		Points:   points,
		Category: CategoryRole,
		Icon:     icon,
	}
}
