package session

import "time"

// Task is a scheduled callback that can be cancelled.
type Task interface {
	// Stop prevents the callback from running. It reports false if the callback
	// already ran or was already stopped.
	Stop() bool
}

// Scheduler runs f once after d. f must run on its own goroutine, never inside
// AfterFunc itself.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Task
}

// ClockScheduler schedules on the wall clock.
type ClockScheduler struct{}

func (ClockScheduler) AfterFunc(d time.Duration, f func()) Task {
	return time.AfterFunc(d, f)
}
