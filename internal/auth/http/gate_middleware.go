// Package http provides the gin middleware that enforces the access gate.
package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/securenotes/internal/auth/domain"
	apperrors "github.com/allisson/securenotes/internal/errors"
	"github.com/allisson/securenotes/internal/httputil"
)

// AccessGateMiddleware rejects requests the gate denies with 401 Unauthorized before
// any handler runs.
//
// It must be installed with router.Use so that unmatched routes under the protected
// prefix are gated as well. The presented credential is the first Authorization header
// value, or absent when no header is sent. The response never says why access was denied.
func AccessGateMiddleware(gate *authDomain.Gate, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var credential *string
		if values := c.Request.Header.Values("Authorization"); len(values) > 0 {
			credential = &values[0]
		}

		if gate.Authorize(c.Request.URL.Path, credential) == authDomain.Deny {
			logger.Debug("access denied",
				slog.String("path", c.Request.URL.Path),
				slog.Bool("credential_present", credential != nil))
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
