package task

import "errors"

var (
	// ErrEmptyText is returned when a task operation is given blank text.
	ErrEmptyText = errors.New("task text is empty")

	// ErrUnreadableFile is returned by mutations when the task file exists
	// but cannot be read or parsed. The file is not overwritten.
	ErrUnreadableFile = errors.New("task file is unreadable")
)
