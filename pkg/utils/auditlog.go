package utils

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/linskybing/issue-tracker/internal/domain/audit"
	"gorm.io/datatypes"
)

// NewAuditLog builds an audit entry for a mutation, filling request metadata
// from ctx. before and after may be nil.
func NewAuditLog(ctx context.Context, actorID uint, action, resourceType string, resourceID uint, before, after any) (*audit.AuditLog, error) {
	oldData, err := marshalJSON(before)
	if err != nil {
		return nil, fmt.Errorf("marshal old data: %w", err)
	}
	newData, err := marshalJSON(after)
	if err != nil {
		return nil, fmt.Errorf("marshal new data: %w", err)
	}

	meta := RequestMetaFrom(ctx)
	if actorID == 0 {
		actorID = meta.ActorID
	}

	return &audit.AuditLog{
		UserID:       actorID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   fmt.Sprintf("%d", resourceID),
		OldData:      oldData,
		NewData:      newData,
		IPAddress:    meta.IPAddress,
		UserAgent:    meta.UserAgent,
		RequestID:    meta.RequestID,
	}, nil
}

func marshalJSON(v any) (datatypes.JSON, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}
