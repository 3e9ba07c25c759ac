package di

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"mtodo/internal/domain/entity"
	"mtodo/internal/domain/repository"
	"mtodo/internal/infrastructure/config"
	"mtodo/internal/infrastructure/logging"
	"mtodo/internal/infrastructure/persistence/filesystem"
	"mtodo/internal/infrastructure/persistence/memory"
	"mtodo/internal/infrastructure/watcher"
)

// Provider functions

func ProvideConfigLoader(opts Options) (*config.Loader, error) {
	return config.NewLoaderFromPath(opts.ConfigPath)
}

func ProvideConfig(loader *config.Loader, opts Options) (*config.Config, error) {
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}
	if opts.NoSave {
		cfg.Storage.Autosave = false
	}
	return cfg, nil
}

func ProvideLogger(cfg *config.Config) (*log.Logger, func(), error) {
	return logging.Open(cfg.Logging)
}

func ProvideTaskRepository(cfg *config.Config, logger *log.Logger) repository.TaskRepository {
	if !cfg.Storage.Enabled {
		logger.Debug("storage disabled, keeping tasks in memory")
		return memory.NewTaskRepository()
	}
	return filesystem.NewTaskRepository(cfg.TasksPath())
}

// ProvideTaskList loads the session's starting list
func ProvideTaskList(ctx context.Context, taskRepo repository.TaskRepository) (*entity.TaskList, error) {
	tasks, err := taskRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	return tasks, nil
}

func ProvideFileWatcher(cfg *config.Config, logger *log.Logger) *watcher.FileWatcher {
	return watcher.NewFileWatcher(cfg.TasksPath(), logger)
}
