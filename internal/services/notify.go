package services

import (
	"time"

	"github.com/apex/log"
)

// Notifier is the user-notification collaborator of the archive workflow.
// Every failure path ends in one Error call; only a reconciled success
// produces the staged progress sequence, an outcome message and navigation.
type Notifier interface {
	Progress(step, total int, message string)
	Success(title, message string)
	Info(title, message string)
	Error(title, message string)
	Navigate(path string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Progress(step, total int, message string) {}
func (NopNotifier) Success(title, message string)            {}
func (NopNotifier) Info(title, message string)               {}
func (NopNotifier) Error(title, message string)              {}
func (NopNotifier) Navigate(path string)                     {}

// LogNotifier writes every notification to the structured log. It is the
// server-side stand-in for a user-facing toast surface.
type LogNotifier struct{}

func (LogNotifier) Progress(step, total int, message string) {
	log.WithFields(log.Fields{"step": step, "total": total}).Info(message)
}

func (LogNotifier) Success(title, message string) {
	log.WithField("title", title).Info(message)
}

func (LogNotifier) Info(title, message string) {
	log.WithField("title", title).Info(message)
}

func (LogNotifier) Error(title, message string) {
	log.WithField("title", title).Error(message)
}

func (LogNotifier) Navigate(path string) {
	log.WithField("path", path).Info("navigate")
}

// PacingDelays holds the deliberate UX pacing between the progress sequence,
// the final outcome message and navigation. Zero delays keep the ordering
// and drop only the waiting; correctness never depends on the pauses.
type PacingDelays struct {
	Outcome  time.Duration
	Navigate time.Duration
}

func pause(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}
