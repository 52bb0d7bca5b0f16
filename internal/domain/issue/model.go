package issue

import "time"

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}

// Issue belongs to exactly one project. AssignedTo, when set, refers to the
// project's creator or one of its members.
type Issue struct {
	ID          uint       `gorm:"primaryKey;column:id" json:"id"`
	ProjectID   uint       `gorm:"column:project_id;not null;index" json:"project_id"`
	Title       string     `gorm:"column:title;not null" json:"title"`
	Description *string    `gorm:"column:description;type:text" json:"description"`
	Priority    Priority   `gorm:"column:priority;type:issue_priority;not null" json:"priority"`
	Status      Status     `gorm:"column:status;type:issue_status;not null;default:open" json:"status"`
	AssignedTo  *uint      `gorm:"column:assigned_to" json:"assigned_to"`
	CreatedBy   uint       `gorm:"column:created_by;not null" json:"created_by"`
	DueDate     *time.Time `gorm:"column:due_date" json:"due_date"`
	CreatedAt   time.Time  `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (Issue) TableName() string {
	return "issues"
}

// Filters narrows a project's issue list. Nil fields do not filter.
type Filters struct {
	Status     *Status
	Priority   *Priority
	AssignedTo *uint
}
