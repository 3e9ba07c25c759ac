//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"
	"mtodo/internal/application/command"
	"mtodo/internal/application/usecase/task"
	"mtodo/internal/domain/service"
)

// InitializeContainer sets up all dependencies
func InitializeContainer(ctx context.Context, opts Options) (*Container, func(), error) {
	wire.Build(
		// Config
		ProvideConfigLoader,
		ProvideConfig,
		ProvideLogger,

		// Repositories
		ProvideTaskRepository,
		ProvideTaskList,

		// Domain Services
		service.NewValidationService,
		command.NewParser,

		// Use Cases
		task.NewExecuteCommandUseCase,
		task.NewListTasksUseCase,

		// Infrastructure
		ProvideFileWatcher,

		// Wire the container
		wire.Struct(new(Container), "*"),
	)
	return nil, nil, nil
}
