package command

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestConfigureLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hamster.log")

	log, err := configureLogging(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	slog.Info("overlay started")
	if err := log.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	slog.Info("after close")

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "logged before close", strings.Contains(string(b), "overlay started"), true)
	testutil.AssertEqual(t, "logged after close", strings.Contains(string(b), "after close"), false)
}

func TestConfigureLogging_Errors(t *testing.T) {
	_, err := configureLogging(filepath.Join(t.TempDir(), "missing", "hamster.log"))
	testutil.AssertErrorContains(t, err, "opening log file")

	log, err := configureLogging("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := log.Close(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

type stubWorker struct {
	err error
}

func (w stubWorker) Start(context.Context) error {
	return w.err
}

type recordingCloser struct {
	closed bool
	err    error
}

func (c *recordingCloser) Close() error {
	c.closed = true
	return c.err
}

func TestLoggedWorker_Start(t *testing.T) {
	errWorker := errors.New("worker failed")
	errClose := errors.New("disk gone")

	tests := map[string]struct {
		workerErr error
		closeErr  error
		expErr    string
	}{
		"clean stop":           {},
		"worker error wins":    {workerErr: errWorker, closeErr: errClose, expErr: "worker failed"},
		"close error surfaces": {closeErr: errClose, expErr: "closing log: disk gone"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			log := &recordingCloser{err: tt.closeErr}
			w := loggedWorker{Worker: stubWorker{err: tt.workerErr}, log: log}

			err := w.Start(context.Background())
			if tt.expErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			} else {
				testutil.AssertErrorContains(t, err, tt.expErr)
			}
			testutil.AssertEqual(t, "log closed", log.closed, true)
		})
	}
}
