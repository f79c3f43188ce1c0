package task

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	Status      Status     `json:"status" db:"status"`
	Type        Type       `json:"type" db:"type"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty" db:"completed_at,omitempty"`
	OwnerID     uuid.UUID  `json:"-" db:"owner_id"`
}

type Status string
type Type string

const StatusTodo Status = "todo"
const StatusPending Status = "pending"
const StatusDone Status = "done"

const TypeFeature Type = "feature"
const TypeFix Type = "fix"
const TypeImprovement Type = "improvement"
const TypeDocumentation Type = "documentation"
const TypeRefactoring Type = "refactoring"
const TypeTest Type = "test"
const TypeOther Type = "other"

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusTodo, StatusPending, StatusDone:
		return Status(s), true
	}
	return "", false
}

func ParseType(s string) (Type, bool) {
	switch Type(s) {
	case TypeFeature, TypeFix, TypeImprovement, TypeDocumentation,
		TypeRefactoring, TypeTest, TypeOther:
		return Type(s), true
	}
	return "", false
}

// AllTypes - полный список типов, порядок стабильный (нужен для статистики)
func AllTypes() []Type {
	return []Type{
		TypeFeature,
		TypeFix,
		TypeImprovement,
		TypeDocumentation,
		TypeRefactoring,
		TypeTest,
		TypeOther,
	}
}

func AllStatuses() []Status {
	return []Status{StatusTodo, StatusPending, StatusDone}
}

func (t Type) Label() string {
	switch t {
	case TypeFeature:
		return "Feature"
	case TypeFix:
		return "Fix"
	case TypeImprovement:
		return "Improvement"
	case TypeDocumentation:
		return "Documentation"
	case TypeRefactoring:
		return "Refactoring"
	case TypeTest:
		return "Test"
	default:
		return "Other"
	}
}

func (t Type) Color() string {
	switch t {
	case TypeFeature:
		return "#3D99F5"
	case TypeFix:
		return "#EF4444"
	case TypeImprovement:
		return "#10B981"
	case TypeDocumentation:
		return "#8B5CF6"
	case TypeRefactoring:
		return "#F59E0B"
	case TypeTest:
		return "#06B6D4"
	default:
		return "#6B7280"
	}
}

// ApplyStatus применяет новый статус и поддерживает инвариант completed_at:
// completed_at != nil ровно тогда, когда статус done. Повторный done
// не перезаписывает момент завершения.
func (t *Task) ApplyStatus(status Status, now time.Time) {
	t.Status = status
	if status == StatusDone {
		if t.CompletedAt == nil {
			completed := now
			t.CompletedAt = &completed
		}
	} else {
		t.CompletedAt = nil
	}
}

func (t *Task) IsTodo() bool {
	return t.Status == StatusTodo
}

func (t *Task) IsPending() bool {
	return t.Status == StatusPending
}

func (t *Task) IsDone() bool {
	return t.Status == StatusDone
}
