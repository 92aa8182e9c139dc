package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/light-bringer/procat-analytics/internal/app/catalog/domain"
)

// statusFor maps an error kind to its HTTP status.
func statusFor(kind domain.Kind) int {
	switch kind {
	case domain.KindValidation, domain.KindDuplicate, domain.KindReferential:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as {"detail": ...}. Store failures are logged with
// their cause and answered with the generic message only.
func writeError(c *gin.Context, logger *zap.Logger, err error) {
	kind := domain.KindOf(err)
	status := statusFor(kind)

	if status >= http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("request_id", requestID(c)),
			zap.String("kind", kind.String()),
			zap.Error(err))
	} else {
		logger.Debug("request rejected",
			zap.String("request_id", requestID(c)),
			zap.String("kind", kind.String()),
			zap.Error(err))
	}

	c.AbortWithStatusJSON(status, gin.H{"detail": domain.MessageOf(err)})
}

func badRequest(c *gin.Context, detail string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": detail})
}
