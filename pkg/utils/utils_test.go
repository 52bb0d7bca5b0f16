package utils

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestMetaRoundTrip(t *testing.T) {
	assert.Equal(t, RequestMeta{}, RequestMetaFrom(context.Background()))

	ctx := WithRequestMeta(context.Background(), RequestMeta{RequestID: "r-1", IPAddress: "10.0.0.1", ActorID: 4})
	meta := RequestMetaFrom(ctx)
	assert.Equal(t, "r-1", meta.RequestID)
	assert.Equal(t, uint(4), meta.ActorID)
}

func TestGetActorIDFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := GetActorIDFromContext(c)
	assert.ErrorIs(t, err, ErrMissingActor)

	c.Set(ActorKey, uint(9))
	id, err := GetActorIDFromContext(c)
	require.NoError(t, err)
	assert.Equal(t, uint(9), id)
}

func TestParseID(t *testing.T) {
	id, err := ParseID("12")
	require.NoError(t, err)
	assert.Equal(t, uint(12), id)

	for _, raw := range []string{"", "0", "-1", "abc", "1.5"} {
		_, err := ParseID(raw)
		assert.Error(t, err, raw)
	}
}

func TestNewAuditLog(t *testing.T) {
	ctx := WithRequestMeta(context.Background(), RequestMeta{
		RequestID: "req-7",
		IPAddress: "127.0.0.1",
		UserAgent: "curl/8",
		ActorID:   3,
	})

	t.Run("falls back to request actor", func(t *testing.T) {
		entry, err := NewAuditLog(ctx, 0, "create", "issue", 11, nil, map[string]string{"title": "x"})
		require.NoError(t, err)
		assert.Equal(t, uint(3), entry.UserID)
		assert.Equal(t, "11", entry.ResourceID)
		assert.Equal(t, "req-7", entry.RequestID)
		assert.Nil(t, entry.OldData)

		var decoded map[string]string
		require.NoError(t, json.Unmarshal(entry.NewData, &decoded))
		assert.Equal(t, "x", decoded["title"])
	})

	t.Run("explicit actor wins", func(t *testing.T) {
		entry, err := NewAuditLog(ctx, 8, "update", "issue", 11, map[string]int{"a": 1}, nil)
		require.NoError(t, err)
		assert.Equal(t, uint(8), entry.UserID)
		assert.NotNil(t, entry.OldData)
	})

	t.Run("unmarshalable data", func(t *testing.T) {
		_, err := NewAuditLog(ctx, 1, "create", "issue", 1, nil, make(chan int))
		assert.Error(t, err)
	})
}

func TestAttachmentObjectKey(t *testing.T) {
	key := AttachmentObjectKey(5, "../../etc/passwd")
	assert.True(t, strings.HasPrefix(key, "issues/5/"))
	assert.True(t, strings.HasSuffix(key, "-passwd"))
	assert.NotContains(t, key, "..")

	assert.NotEqual(t, AttachmentObjectKey(5, "a.txt"), AttachmentObjectKey(5, "a.txt"))
	assert.True(t, strings.HasSuffix(AttachmentObjectKey(1, ""), "-file"))
}

func TestParseQueryUintParam(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?assigned_to=3&bad=x", nil)

	v, err := ParseQueryUintParam(c, "assigned_to")
	require.NoError(t, err)
	assert.Equal(t, uint(3), v)

	_, err = ParseQueryUintParam(c, "missing")
	assert.ErrorIs(t, err, ErrEmptyParameter)

	_, err = ParseQueryUintParam(c, "bad")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmptyParameter)
}
