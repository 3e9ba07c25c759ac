package dto

import "mtodo/internal/domain/entity"

// TaskDTO represents a task data transfer object
type TaskDTO struct {
	Position    int    `json:"position" yaml:"position"`
	ID          string `json:"id" yaml:"id"`
	Kind        string `json:"kind" yaml:"kind"`
	Description string `json:"description" yaml:"description"`
	Done        bool   `json:"done" yaml:"done"`
	Date        string `json:"date,omitempty" yaml:"date,omitempty"`
	Display     string `json:"display" yaml:"display"`
}

// TaskToDTO converts a task and its 1-based position
func TaskToDTO(position int, task *entity.Task) TaskDTO {
	d := TaskDTO{
		Position:    position,
		ID:          task.ID(),
		Kind:        task.Kind().String(),
		Description: task.Description(),
		Done:        task.IsDone(),
		Display:     task.String(),
	}
	if date, ok := task.Date(); ok {
		d.Date = date.String()
	}
	return d
}

// String renders the task the way listings show it
func (d TaskDTO) String() string {
	return d.Display
}
