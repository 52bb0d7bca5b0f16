package issue

import (
	"time"

	"github.com/linskybing/issue-tracker/pkg/types"
)

type CreateIssueInput struct {
	ProjectID   uint       `json:"project_id" validate:"required" example:"1"`
	Title       string     `json:"title" validate:"required,notblank" example:"Login button does nothing"`
	Description *string    `json:"description,omitempty"`
	Priority    Priority   `json:"priority" validate:"required,oneof=low medium high critical" example:"high"`
	Status      Status     `json:"status,omitempty" validate:"omitempty,oneof=open in_progress resolved closed" example:"open"`
	AssignedTo  *uint      `json:"assigned_to,omitempty"`
	CreatedBy   uint       `json:"created_by" validate:"required" example:"1"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// UpdateIssueInput carries a partial update. Each field is Unchanged unless
// the caller sent it; an explicit null clears nullable columns.
type UpdateIssueInput struct {
	ID          uint                   `json:"-"`
	Title       types.Field[string]    `json:"title" swaggertype:"string"`
	Description types.Field[string]    `json:"description" swaggertype:"string"`
	Priority    types.Field[Priority]  `json:"priority" swaggertype:"string"`
	Status      types.Field[Status]    `json:"status" swaggertype:"string"`
	AssignedTo  types.Field[uint]      `json:"assigned_to" swaggertype:"integer"`
	DueDate     types.Field[time.Time] `json:"due_date" swaggertype:"string"`
}
