package dto

// Outcome names what a command did
type Outcome string

const (
	OutcomeAdded   Outcome = "added"
	OutcomeRemoved Outcome = "removed"
	OutcomeDone    Outcome = "done"
	OutcomeUndone  Outcome = "undone"
	OutcomeListed  Outcome = "listed"
	OutcomeQueried Outcome = "queried"
	OutcomeHint    Outcome = "hint"
	OutcomeExit    Outcome = "exit"
)

// CommandResult describes the effect of one executed command line
type CommandResult struct {
	Outcome Outcome   `json:"outcome" yaml:"outcome"`
	Task    *TaskDTO  `json:"task,omitempty" yaml:"task,omitempty"`
	Tasks   []TaskDTO `json:"tasks,omitempty" yaml:"tasks,omitempty"`
	Date    string    `json:"date,omitempty" yaml:"date,omitempty"`
	Size    int       `json:"size" yaml:"size"`
	Hint    string    `json:"hint,omitempty" yaml:"hint,omitempty"`
}

// IsExit reports whether the session should end
func (r *CommandResult) IsExit() bool {
	return r != nil && r.Outcome == OutcomeExit
}
