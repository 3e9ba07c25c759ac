package task

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"mtodo/internal/application/command"
	"mtodo/internal/application/dto"
	"mtodo/internal/domain/entity"
	"mtodo/internal/domain/repository"
	"mtodo/internal/infrastructure/config"
)

// ExecuteCommandUseCase parses one command line and applies it to the
// session's task list
type ExecuteCommandUseCase struct {
	tasks    *entity.TaskList
	parser   *command.Parser
	taskRepo repository.TaskRepository
	config   *config.Config
	logger   *log.Logger
}

// NewExecuteCommandUseCase creates a new ExecuteCommandUseCase
func NewExecuteCommandUseCase(
	tasks *entity.TaskList,
	parser *command.Parser,
	taskRepo repository.TaskRepository,
	cfg *config.Config,
	logger *log.Logger,
) *ExecuteCommandUseCase {
	return &ExecuteCommandUseCase{
		tasks:    tasks,
		parser:   parser,
		taskRepo: taskRepo,
		config:   cfg,
		logger:   logger,
	}
}

// Execute parses line against the current list and applies the result.
// Parse errors are returned untouched so callers can match them with errors.Is.
func (uc *ExecuteCommandUseCase) Execute(ctx context.Context, line string) (*dto.CommandResult, error) {
	cmd, err := uc.parser.Parse(line, uc.tasks)
	if err != nil {
		uc.logger.Debug("command rejected", "line", line, "err", err)
		return nil, err
	}

	uc.logger.Debug("command parsed", "line", line, "command", fmt.Sprintf("%T", cmd))
	return uc.Apply(ctx, cmd)
}

// Apply performs an already validated command
func (uc *ExecuteCommandUseCase) Apply(ctx context.Context, cmd command.Command) (*dto.CommandResult, error) {
	switch c := cmd.(type) {
	case command.AddTodo:
		return uc.add(ctx, func() (*entity.Task, error) { return entity.NewToDo(c.Description) })

	case command.AddDeadline:
		return uc.add(ctx, func() (*entity.Task, error) { return entity.NewDeadline(c.Description, c.Due) })

	case command.AddEvent:
		return uc.add(ctx, func() (*entity.Task, error) { return entity.NewEvent(c.Description, c.Start) })

	case command.MarkDone:
		task, err := uc.tasks.MarkDone(c.Index)
		if err != nil {
			return nil, err
		}
		uc.persist(ctx)
		return uc.taskResult(dto.OutcomeDone, c.Index+1, task), nil

	case command.MarkUndone:
		task, err := uc.tasks.MarkUndone(c.Index)
		if err != nil {
			return nil, err
		}
		uc.persist(ctx)
		return uc.taskResult(dto.OutcomeUndone, c.Index+1, task), nil

	case command.Delete:
		task, err := uc.tasks.Remove(c.Index)
		if err != nil {
			return nil, err
		}
		uc.persist(ctx)
		return uc.taskResult(dto.OutcomeRemoved, c.Index+1, task), nil

	case command.ListAll:
		result := &dto.CommandResult{Outcome: dto.OutcomeListed, Size: uc.tasks.Size()}
		for pos, task := range uc.tasks.All() {
			result.Tasks = append(result.Tasks, dto.TaskToDTO(pos, task))
		}
		return result, nil

	case command.ListByDate:
		result := &dto.CommandResult{
			Outcome: dto.OutcomeQueried,
			Date:    c.Date.String(),
			Size:    uc.tasks.Size(),
		}
		for pos, task := range uc.tasks.ByDate(c.Date) {
			result.Tasks = append(result.Tasks, dto.TaskToDTO(pos, task))
		}
		return result, nil

	case command.Invalid:
		return &dto.CommandResult{Outcome: dto.OutcomeHint, Hint: c.Reason, Size: uc.tasks.Size()}, nil

	case command.Exit:
		return &dto.CommandResult{Outcome: dto.OutcomeExit, Size: uc.tasks.Size()}, nil

	default:
		return nil, fmt.Errorf("%w: unsupported command %T", entity.ErrInvalidCommand, cmd)
	}
}

// Tasks returns the task list this use case mutates
func (uc *ExecuteCommandUseCase) Tasks() *entity.TaskList {
	return uc.tasks
}

func (uc *ExecuteCommandUseCase) add(ctx context.Context, build func() (*entity.Task, error)) (*dto.CommandResult, error) {
	task, err := build()
	if err != nil {
		return nil, err
	}

	uc.tasks.Add(task)
	uc.persist(ctx)

	return uc.taskResult(dto.OutcomeAdded, uc.tasks.Size(), task), nil
}

func (uc *ExecuteCommandUseCase) taskResult(outcome dto.Outcome, position int, task *entity.Task) *dto.CommandResult {
	taskDTO := dto.TaskToDTO(position, task)
	return &dto.CommandResult{
		Outcome: outcome,
		Task:    &taskDTO,
		Size:    uc.tasks.Size(),
	}
}

// persist saves the list after a mutation. The in-memory change stands
// even when saving fails.
func (uc *ExecuteCommandUseCase) persist(ctx context.Context) {
	if uc.taskRepo == nil || !uc.config.Storage.Autosave {
		return
	}
	if err := uc.taskRepo.Save(ctx, uc.tasks); err != nil {
		uc.logger.Warn("failed to save tasks", "err", err)
		return
	}
	uc.logger.Debug("tasks saved", "count", uc.tasks.Size())
}
