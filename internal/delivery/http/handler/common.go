package handler

import (
	"errors"

	"skillchain/internal/delivery/http/middleware"
	"skillchain/internal/infrastructure/ai"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const (
	msgRateLimited      = "Rate limit exceeded. Please try again later."
	msgCreditsExhausted = "AI credits exhausted. Please add credits to continue."
)

func userIDFromCtx(c fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	return id, ok
}

// mapAIGatewayError translates gateway faults into client-facing statuses.
// Unknown faults become exposed 500s: the dashboard shows the upstream
// message to the user.
func mapAIGatewayError(err error) error {
	switch {
	case errors.Is(err, ai.ErrRateLimited):
		return middleware.NewAppError(fiber.StatusTooManyRequests, msgRateLimited, nil, err)
	case errors.Is(err, ai.ErrQuotaExhausted):
		return middleware.NewAppError(fiber.StatusPaymentRequired, msgCreditsExhausted, nil, err)
	default:
		return middleware.NewExposedAppError(fiber.StatusInternalServerError, err.Error(), err)
	}
}
