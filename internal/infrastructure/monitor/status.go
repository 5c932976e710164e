package monitor

import "time"

// Status is a snapshot of dependency health.
type Status struct {
	Database   bool
	Spool      bool
	SpoolDepth int
	LastCheck  time.Time
}
