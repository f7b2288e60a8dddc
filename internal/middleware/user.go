package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/taxdesk/tax-service/internal/constants"
)

const userIDKey = "userID"

// RequireUserID reads the caller's numeric ID from the User-ID header set by
// the upstream gateway. Requests without a positive ID are rejected with 401.
func RequireUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(constants.UserIDHeader))
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			body := gin.H{"error": constants.MissingUserID}
			if id := GetCorrelationID(c); id != "" {
				body["correlation_id"] = id
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, body)
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the ID stored by RequireUserID.
func UserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
