package utils

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
)

type requestMetaKey struct{}

// RequestMeta describes the HTTP request a service call originates from.
type RequestMeta struct {
	RequestID string
	IPAddress string
	UserAgent string
	ActorID   uint
}

func WithRequestMeta(ctx context.Context, meta RequestMeta) context.Context {
	return context.WithValue(ctx, requestMetaKey{}, meta)
}

func RequestMetaFrom(ctx context.Context) RequestMeta {
	meta, _ := ctx.Value(requestMetaKey{}).(RequestMeta)
	return meta
}

const ActorKey = "actor_id"

var ErrMissingActor = errors.New("missing or invalid X-User-ID header")

// GetActorIDFromContext returns the acting user resolved by the identity middleware.
var GetActorIDFromContext = func(c *gin.Context) (uint, error) {
	v, exists := c.Get(ActorKey)
	if !exists {
		return 0, ErrMissingActor
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		return 0, ErrMissingActor
	}
	return id, nil
}
