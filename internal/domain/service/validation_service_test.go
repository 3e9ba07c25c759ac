package service

import (
	"errors"
	"testing"

	"mtodo/internal/domain/entity"
)

func newList(t *testing.T, n int) *entity.TaskList {
	t.Helper()
	list := entity.NewTaskList()
	for i := 0; i < n; i++ {
		task, err := entity.NewToDo("task")
		if err != nil {
			t.Fatalf("NewToDo: %v", err)
		}
		list.Add(task)
	}
	return list
}

func TestValidateIndex(t *testing.T) {
	svc := NewValidationService()
	list := newList(t, 3)

	tests := []struct {
		name    string
		input   string
		want    int
		wantErr error
	}{
		{name: "first", input: "1", want: 0},
		{name: "last", input: "3", want: 2},
		{name: "leading zeros", input: "002", want: 1},
		{name: "zero", input: "0", wantErr: entity.ErrIndexZero},
		{name: "past end", input: "4", wantErr: entity.ErrIndexOutOfRange},
		{name: "overflow", input: "99999999999999999999999", wantErr: entity.ErrIndexOutOfRange},
		{name: "negative", input: "-1", wantErr: entity.ErrInvalidIndexFormat},
		{name: "word", input: "one", wantErr: entity.ErrInvalidIndexFormat},
		{name: "two numbers", input: "1 2", wantErr: entity.ErrInvalidIndexFormat},
		{name: "empty", input: "", wantErr: entity.ErrInvalidIndexFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ValidateIndex(tt.input, list)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestValidateIndexZeroOnEmptyList(t *testing.T) {
	_, err := NewValidationService().ValidateIndex("0", newList(t, 0))
	if !errors.Is(err, entity.ErrIndexZero) {
		t.Fatalf("expected ErrIndexZero regardless of size, got %v", err)
	}
}

func TestValidateNotDone(t *testing.T) {
	svc := NewValidationService()
	list := newList(t, 1)

	if err := svc.ValidateNotDone(0, list); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := list.MarkDone(0); err != nil {
		t.Fatal(err)
	}
	if err := svc.ValidateNotDone(0, list); !errors.Is(err, entity.ErrAlreadyDone) {
		t.Fatalf("expected ErrAlreadyDone, got %v", err)
	}
}
