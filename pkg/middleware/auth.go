package middleware

import (
	"net/http"
	"strings"

	"finan/ms-pos-report/pkg/model"
	"finan/ms-pos-report/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gitlab.com/goxp/cloud0/logger"
)

// Authenticate verifies the bearer token and stores the caller identity on
// the gin context under utils.IdentityKey.
func Authenticate(secret, issuer string) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.WithCtx(c, "middleware.Authenticate").WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.FullPath(),
		})

		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": utils.MESS_MISSING_BEARER_TOKEN})
			return
		}

		identity, err := utils.ParseAccessToken(secret, issuer, strings.TrimSpace(parts[1]))
		if err != nil {
			log.WithError(err).Warn("Invalid access token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": utils.MESS_INVALID_BEARER_TOKEN})
			return
		}

		c.Set(utils.IdentityKey, identity)
		c.Request.Header.Set(utils.HeaderRoles, string(identity.Role))
		c.Next()
	}
}

// RequireRoles lets the request through only when the caller has one of roles.
func RequireRoles(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := utils.CurrentIdentity(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": utils.MessageError()[http.StatusUnauthorized]})
			return
		}
		if !identity.HasRole(roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": utils.MESS_ROLE_NOT_ALLOWED})
			return
		}
		c.Next()
	}
}
