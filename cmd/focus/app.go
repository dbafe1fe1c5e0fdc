package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/amonks/focusstation/internal/config"
	"github.com/amonks/focusstation/internal/notify"
	"github.com/amonks/focusstation/internal/paths"
	"github.com/amonks/focusstation/internal/profile"
	"github.com/amonks/focusstation/remote"
	"github.com/amonks/focusstation/session"
	"github.com/amonks/focusstation/task"
)

// app holds the collaborators every command shares.
type app struct {
	cfg      *config.Config
	profile  profile.Profile
	loggedIn bool
	store    *task.Store
	repo     session.Repository
	uploader *session.Uploader
	notifier notify.Notifier
	logger   *log.Logger
}

// openApp loads configuration and the profile, and wires the task store to
// the session log. Diagnostics go to logOutput.
func openApp(logOutput io.Writer) (*app, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, err
	}

	profilePath, err := paths.DefaultProfilePath()
	if err != nil {
		return nil, err
	}
	p, loggedIn := profile.Load(profilePath)

	tasksPath, err := paths.DefaultTasksPath()
	if err != nil {
		return nil, err
	}
	sessionsPath, err := paths.DefaultSessionsPath()
	if err != nil {
		return nil, err
	}

	repo, err := remote.Open(cfg.Remote.URL, remote.OpenOptions{
		Timeout:     cfg.Remote.Timeout,
		DefaultPath: sessionsPath,
	})
	if err != nil {
		return nil, err
	}

	logger := log.New(logOutput, "focus: ", log.LstdFlags)
	uploader := session.NewUploader(repo, session.UploaderOptions{Logger: logger})
	store := task.NewStore(tasksPath, task.Options{
		Username: p.Username,
		Recorder: uploader,
		Logger:   logger,
	})

	return &app{
		cfg:      cfg,
		profile:  p,
		loggedIn: loggedIn,
		store:    store,
		repo:     repo,
		uploader: uploader,
		notifier: notify.New(cfg.Notify.Enabled),
		logger:   logger,
	}, nil
}

// close waits for outstanding uploads so a short-lived process does not
// drop them. Upload failures are already logged by the uploader.
func (a *app) close() {
	ctx, cancel := context.WithTimeout(context.Background(), session.DefaultUploadTimeout)
	defer cancel()
	if err := a.uploader.Wait(ctx); err != nil {
		a.logger.Printf("uploads still pending at exit: %v", err)
	}
}

// withApp runs fn with a freshly opened app and drains uploads afterwards.
func withApp(fn func(a *app) error) error {
	a, err := openApp(os.Stderr)
	if err != nil {
		return err
	}
	defer a.close()
	return fn(a)
}

func (a *app) username() string {
	return a.profile.Username
}
