package timer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amonks/focusstation/internal/notify"
	"github.com/amonks/focusstation/session"
	"github.com/amonks/focusstation/task"
)

// NotificationTitle is the title of the session-done notification.
const NotificationTitle = "Focus Timer"

// ErrAlreadyCommitted is returned when a finished session is committed twice.
var ErrAlreadyCommitted = errors.New("session already committed")

// TaskMarker marks tasks done without uploading anything.
type TaskMarker interface {
	Today() string
	MarkDone(day, text string) error
}

// CommitOptions carries the collaborators of Commit.
type CommitOptions struct {
	Username string

	// Tasks are the tasks the user worked on during the session.
	Tasks []string

	Store    TaskMarker
	Recorder task.Recorder
	Notifier notify.Notifier
	Now      func() time.Time
}

// Commit records a finished session: every selected task is marked done for
// today, one summary record is submitted and the user is notified.
//
// Store failures are returned after the summary has been submitted, so the
// logged minutes are never lost to a bad task file. Notification failures
// are ignored.
func (t *Timer) Commit(opts CommitOptions) (*session.Upload, error) {
	if t.state != StateFinished {
		return nil, fmt.Errorf("commit while %s: %w", t.state, ErrInvalidState)
	}
	if t.committed {
		return nil, ErrAlreadyCommitted
	}
	t.committed = true

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	tasks := uniqueTasks(opts.Tasks)

	var errs []error
	if opts.Store != nil {
		day := opts.Store.Today()
		for _, text := range tasks {
			if err := opts.Store.MarkDone(day, text); err != nil {
				errs = append(errs, fmt.Errorf("mark %q done: %w", text, err))
			}
		}
	}

	var upload *session.Upload
	if opts.Recorder != nil {
		upload = opts.Recorder.Submit(session.NewSummary(opts.Username, t.logged, tasks, now()))
	}

	if opts.Notifier != nil {
		_ = opts.Notifier.Notify(NotificationTitle, NotificationMessage(t.logged))
	}

	return upload, errors.Join(errs...)
}

// NotificationMessage is the body of the session-done notification.
func NotificationMessage(minutes int) string {
	return fmt.Sprintf("Session Done! %d min logged.", minutes)
}

func uniqueTasks(tasks []string) []string {
	seen := make(map[string]bool, len(tasks))
	unique := make([]string, 0, len(tasks))
	for _, text := range tasks {
		text = strings.TrimSpace(text)
		if text == "" || seen[text] {
			continue
		}
		seen[text] = true
		unique = append(unique, text)
	}
	return unique
}
