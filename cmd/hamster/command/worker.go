package command

import (
	"fmt"

	"github.com/pixil98/go-hamster/internal/overlay"
	"github.com/pixil98/go-hamster/internal/storage"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	log, err := configureLogging(cfg.LogPath)
	if err != nil {
		return nil, err
	}

	host, err := cfg.buildHost()
	if err != nil {
		// Ignoring close error - the build error is the one worth reporting
		_ = log.Close()
		return nil, err
	}

	return service.WorkerList{
		"overlay": loggedWorker{Worker: host, log: log},
	}, nil
}

func (c *Config) buildHost() (*overlay.Host, error) {
	displayOpts, err := c.Display.hostOpts()
	if err != nil {
		return nil, fmt.Errorf("configuring display: %w", err)
	}

	store, err := c.Storage.BuildStore()
	if err != nil {
		return nil, fmt.Errorf("creating store: %w", err)
	}

	opts := append([]overlay.HostOpt{
		overlay.WithStoreKey(c.Storage.key()),
		overlay.WithSeed(c.Drawer.seed()),
		overlay.WithFrameLength(c.frameInterval()),
		overlay.WithEscapeWindow(c.escapeWindow()),
	}, displayOpts...)

	host, err := overlay.NewHost(store, opts...)
	if err != nil {
		// Ignoring close error - the store is being abandoned
		_ = storage.Close(store)
		return nil, fmt.Errorf("creating overlay: %w", err)
	}
	return host, nil
}
