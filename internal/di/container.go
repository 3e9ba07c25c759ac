package di

import (
	"github.com/charmbracelet/log"
	"mtodo/internal/application/command"
	"mtodo/internal/application/usecase/task"
	"mtodo/internal/domain/entity"
	"mtodo/internal/domain/repository"
	"mtodo/internal/domain/service"
	"mtodo/internal/infrastructure/config"
	"mtodo/internal/infrastructure/watcher"
)

// Options carries command line choices that shape the container
type Options struct {
	ConfigPath string
	NoSave     bool
}

// Container holds all application dependencies
type Container struct {
	// Config
	Config       *config.Config
	ConfigLoader *config.Loader
	Logger       *log.Logger

	// Repositories
	TaskRepo repository.TaskRepository

	// Session state
	Tasks *entity.TaskList

	// Domain Services
	ValidationService *service.ValidationService
	Parser            *command.Parser

	// Use Cases
	ExecuteCommandUseCase *task.ExecuteCommandUseCase
	ListTasksUseCase      *task.ListTasksUseCase

	// Infrastructure
	FileWatcher *watcher.FileWatcher
}
