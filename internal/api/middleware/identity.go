package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/issue-tracker/pkg/response"
	"github.com/linskybing/issue-tracker/pkg/utils"
)

const UserIDHeader = "X-User-ID"

// Identity reads the acting user from the X-User-ID header. A missing header
// leaves the request anonymous; a malformed one is rejected.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(UserIDHeader)
		if raw == "" {
			c.Next()
			return
		}

		id, err := utils.ParseID(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid " + UserIDHeader + " header"})
			return
		}

		c.Set(utils.ActorKey, id)
		ctx := c.Request.Context()
		meta := utils.RequestMetaFrom(ctx)
		meta.ActorID = id
		c.Request = c.Request.WithContext(utils.WithRequestMeta(ctx, meta))
		c.Next()
	}
}
