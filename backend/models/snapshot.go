package models

import "gorm.io/gorm"

// TrackerSnapshot is the single persisted row holding the whole store.
// The three columns mirror the three top-level fields of the persistence
// format: completion data, custom task lists and the selected role.
type TrackerSnapshot struct {
	gorm.Model
	Data        string // JSON: role -> day -> task id -> bool
	CustomTasks string // JSON: role -> []Task
	Role        string
}
