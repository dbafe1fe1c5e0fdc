package session

import (
	"context"
	"errors"
	"log"
	"os"
	"sync"
	"time"
)

// ErrNoRepository is reported by uploads submitted to an uploader that has
// no repository configured.
var ErrNoRepository = errors.New("no session repository configured")

// DefaultUploadTimeout bounds a single append.
const DefaultUploadTimeout = 15 * time.Second

// UploaderOptions configures an Uploader.
type UploaderOptions struct {
	// Logger receives upload failures. Defaults to stderr.
	Logger *log.Logger

	// Timeout bounds each append. Defaults to DefaultUploadTimeout.
	Timeout time.Duration
}

// Uploader appends records in the background.
//
// Each Submit runs independently: uploads are not ordered relative to each
// other or to concurrent fetches, failures are logged and never retried.
type Uploader struct {
	repo    Repository
	logger  *log.Logger
	timeout time.Duration
	pending sync.WaitGroup
}

// NewUploader creates an uploader for repo.
func NewUploader(repo Repository, opts UploaderOptions) *Uploader {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "upload: ", log.LstdFlags)
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultUploadTimeout
	}
	return &Uploader{repo: repo, logger: logger, timeout: timeout}
}

// Upload is the pending result of one Submit.
type Upload struct {
	done chan struct{}
	id   string
	err  error
}

// Done is closed once the upload has finished, successfully or not.
func (u *Upload) Done() <-chan struct{} {
	return u.done
}

// Wait blocks until the upload finishes or ctx is done.
func (u *Upload) Wait(ctx context.Context) (string, error) {
	select {
	case <-u.done:
		return u.id, u.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Submit starts appending record and returns immediately.
func (u *Uploader) Submit(record Record) *Upload {
	upload := &Upload{done: make(chan struct{})}
	if u == nil || u.repo == nil {
		upload.err = ErrNoRepository
		close(upload.done)
		return upload
	}

	u.pending.Add(1)
	go func() {
		defer u.pending.Done()
		defer close(upload.done)

		ctx, cancel := context.WithTimeout(context.Background(), u.timeout)
		defer cancel()

		upload.id, upload.err = u.repo.Append(ctx, record)
		if upload.err != nil {
			u.logger.Printf("upload record for %q failed: %v", record.Username, upload.err)
		}
	}()
	return upload
}

// Wait blocks until every submitted upload has finished or ctx is done.
func (u *Uploader) Wait(ctx context.Context) error {
	if u == nil {
		return nil
	}
	drained := make(chan struct{})
	go func() {
		u.pending.Wait()
		close(drained)
	}()
	select {
	case <-drained:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
