package command

import (
	"strings"

	"mtodo/internal/domain/entity"
	"mtodo/internal/domain/service"
	"mtodo/internal/domain/valueobject"
)

// Keywords understood by the parser
const (
	KeywordList     = "list"
	KeywordBye      = "bye"
	KeywordTodo     = "todo"
	KeywordDeadline = "deadline"
	KeywordEvent    = "event"
	KeywordDone     = "done"
	KeywordUndo     = "undo"
	KeywordDelete   = "delete"
	KeywordQuery    = "query"
)

const (
	markerBy = "/by"
	markerAt = "/at"
)

// Parser converts command lines into Commands without touching any state
type Parser struct {
	validation *service.ValidationService
}

// NewParser creates a new Parser
func NewParser(validation *service.ValidationService) *Parser {
	return &Parser{validation: validation}
}

// Parse reads one line (without its newline). tasks is consulted only
// to validate positional arguments.
func (p *Parser) Parse(line string, tasks service.TaskView) (Command, error) {
	keyword, rest, hasBody := strings.Cut(line, " ")
	if !hasBody {
		switch line {
		case KeywordList:
			return ListAll{}, nil
		case KeywordBye:
			return Exit{}, nil
		default:
			return nil, entity.ErrInvalidCommand
		}
	}

	body := strings.TrimSpace(rest)

	switch keyword {
	case KeywordTodo:
		if body == "" {
			return nil, entity.ErrInvalidCommand
		}
		return AddTodo{Description: body}, nil

	case KeywordDeadline:
		description, date, hint, err := p.parseDated(body, markerBy)
		if err != nil || hint != nil {
			return hint, err
		}
		return AddDeadline{Description: description, Due: date}, nil

	case KeywordEvent:
		description, date, hint, err := p.parseDated(body, markerAt)
		if err != nil || hint != nil {
			return hint, err
		}
		return AddEvent{Description: description, Start: date}, nil

	case KeywordDone:
		index, err := p.validation.ValidateIndex(body, tasks)
		if err != nil {
			return nil, err
		}
		if err := p.validation.ValidateNotDone(index, tasks); err != nil {
			return nil, err
		}
		return MarkDone{Index: index}, nil

	case KeywordUndo:
		index, err := p.validation.ValidateIndex(body, tasks)
		if err != nil {
			return nil, err
		}
		return MarkUndone{Index: index}, nil

	case KeywordDelete:
		index, err := p.validation.ValidateIndex(body, tasks)
		if err != nil {
			return nil, err
		}
		return Delete{Index: index}, nil

	case KeywordQuery:
		date, err := valueobject.ParseDate(body)
		if err != nil {
			return nil, entity.ErrInvalidCommand
		}
		return ListByDate{Date: date}, nil

	default:
		return nil, entity.ErrInvalidCommand
	}
}

// parseDated splits "<description> /by <date>" style bodies. A body
// without the marker is a hard error; an unreadable date comes back as
// an Invalid hint instead.
func (p *Parser) parseDated(body, marker string) (string, valueobject.Date, Command, error) {
	if !strings.Contains(body, marker) {
		return "", valueobject.Date{}, nil, &entity.MissingArgumentError{Marker: marker}
	}

	before, after, found := strings.Cut(body, marker+" ")
	description := strings.TrimSpace(before)
	if !found {
		return "", valueobject.Date{}, Invalid{Reason: DateFormatHint}, nil
	}
	if description == "" {
		return "", valueobject.Date{}, nil, entity.ErrInvalidCommand
	}

	date, err := valueobject.ParseDate(after)
	if err != nil {
		return "", valueobject.Date{}, Invalid{Reason: DateFormatHint}, nil
	}

	return description, date, nil, nil
}
