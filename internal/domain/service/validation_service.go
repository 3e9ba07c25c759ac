package service

import (
	"regexp"
	"strconv"

	"mtodo/internal/domain/entity"
)

var indexRE = regexp.MustCompile(`^[0-9]+$`)

// TaskView is the read-only surface of a task list needed for validation
type TaskView interface {
	Size() int
	Get(index0 int) (*entity.Task, error)
}

// ValidationService checks user-supplied task positions against a list
type ValidationService struct{}

// NewValidationService creates a new ValidationService
func NewValidationService() *ValidationService {
	return &ValidationService{}
}

// ValidateIndex turns a 1-based position typed by the user into a
// 0-based index that is valid for tasks
func (s *ValidationService) ValidateIndex(text string, tasks TaskView) (int, error) {
	if !indexRE.MatchString(text) {
		return 0, entity.ErrInvalidIndexFormat
	}

	item, err := strconv.Atoi(text)
	if err != nil {
		// only digits reach here, so the number is too large for any list
		return 0, entity.ErrIndexOutOfRange
	}
	if item == 0 {
		return 0, entity.ErrIndexZero
	}
	if item > tasks.Size() {
		return 0, entity.ErrIndexOutOfRange
	}

	return item - 1, nil
}

// ValidateNotDone fails with ErrAlreadyDone when the task at index0 is done
func (s *ValidationService) ValidateNotDone(index0 int, tasks TaskView) error {
	task, err := tasks.Get(index0)
	if err != nil {
		return err
	}
	if task.IsDone() {
		return entity.ErrAlreadyDone
	}
	return nil
}
