// Package store owns the in-memory tracker state and its persistence.
// Mutations go through pure copy-on-write transforms on models.Store and
// are serialized behind a mutex, so every reader holds a complete snapshot
// and the toggle handlers can diff two snapshots reliably.
package store

import (
	"encoding/json"
	"log"
	"sync"

	"gorm.io/gorm"

	"ramadantracker/backend/models"
)

type Manager struct {
	DB     *gorm.DB
	Logger *log.Logger

	mu        sync.RWMutex
	current   models.Store
	activeDay int
}

// NewManager loads the persisted snapshot and returns a ready manager.
// Missing or malformed state is replaced by an empty store, never an error.
func NewManager(db *gorm.DB, logger *log.Logger) *Manager {
	m := &Manager{DB: db, Logger: logger, activeDay: 1}
	m.current = m.load()
	return m
}

// Snapshot returns the current store value.
func (m *Manager) Snapshot() models.Store {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// ActiveDay returns the day clients are currently viewing.
func (m *Manager) ActiveDay() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.activeDay
}

// SetActiveDay records the viewed day. Session state only, not persisted.
func (m *Manager) SetActiveDay(day int) {
	m.mu.Lock()
	m.activeDay = day
	m.mu.Unlock()
}

// Toggle flips a completion flag and persists. It returns the snapshots
// before and after the mutation so callers can detect the day-completion
// transition.
func (m *Manager) Toggle(role string, day int, taskId string) (prev, next models.Store) {
	m.mu.Lock()
	defer m.mu.Unlock()
	prev = m.current
	next = prev.Toggle(role, day, taskId)
	m.commit(next)
	return prev, next
}

// AddCustomTask appends a custom task for the role and persists.
func (m *Manager) AddCustomTask(role string, task models.Task) models.Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	next := m.current.AddCustomTask(role, task)
	m.commit(next)
	return next
}

// RemoveCustomTask deletes a custom task for the role and persists.
func (m *Manager) RemoveCustomTask(role string, taskId string) models.Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	next := m.current.RemoveCustomTask(role, taskId)
	m.commit(next)
	return next
}

// SelectRole sets the active role and persists.
func (m *Manager) SelectRole(role string) models.Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	next := m.current.SelectRole(role)
	m.commit(next)
	return next
}

// commit swaps in the new value and writes it through. A write failure is
// logged and swallowed: the in-memory state stays authoritative for the
// running session.
func (m *Manager) commit(next models.Store) {
	m.current = next
	if err := m.save(next); err != nil {
		m.Logger.Printf("snapshot save failed: %v", err)
	}
}

func (m *Manager) save(s models.Store) error {
	data, err := json.Marshal(s.Data)
	if err != nil {
		return err
	}
	custom, err := json.Marshal(s.CustomTasks)
	if err != nil {
		return err
	}

	var snap models.TrackerSnapshot
	res := m.DB.First(&snap)
	snap.Data = string(data)
	snap.CustomTasks = string(custom)
	snap.Role = s.Role
	if res.Error != nil {
		return m.DB.Create(&snap).Error
	}
	return m.DB.Save(&snap).Error
}

func (m *Manager) load() models.Store {
	s := models.NewStore()

	var snap models.TrackerSnapshot
	if err := m.DB.First(&snap).Error; err != nil {
		return s
	}

	if snap.Data != "" {
		var data map[string]models.RoleData
		if err := json.Unmarshal([]byte(snap.Data), &data); err != nil {
			m.Logger.Printf("discarding malformed completion data: %v", err)
		} else {
			for role, rd := range data {
				s.Data[role] = rd
			}
		}
	}

	if snap.CustomTasks != "" {
		var custom map[string][]models.Task
		if err := json.Unmarshal([]byte(snap.CustomTasks), &custom); err != nil {
			m.Logger.Printf("discarding malformed custom tasks: %v", err)
		} else {
			for role, tasks := range custom {
				s.CustomTasks[role] = tasks
			}
		}
	}

	if models.ValidRole(snap.Role) {
		s.Role = snap.Role
	}

	return s
}
