package command

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pixil98/go-service"
)

// configureLogging points the default logger at path. The terminal belongs
// to the overlay while it runs, so without a path logs are discarded. The
// returned closer detaches the default logger and releases the file.
func configureLogging(path string) (io.Closer, error) {
	if path == "" {
		slog.SetDefault(discardLogger())
		return logFile{}, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(f, nil)))
	return logFile{f: f}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

type logFile struct {
	f *os.File
}

func (l logFile) Close() error {
	if l.f == nil {
		return nil
	}
	slog.SetDefault(discardLogger())
	return l.f.Close()
}

// loggedWorker closes the log once the wrapped worker has stopped.
type loggedWorker struct {
	service.Worker
	log io.Closer
}

func (w loggedWorker) Start(ctx context.Context) error {
	err := w.Worker.Start(ctx)
	if cerr := w.log.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("closing log: %w", cerr)
	}
	return err
}
