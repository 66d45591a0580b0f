package handler

import (
	"errors"
	"fmt"
	"testing"

	"skillchain/internal/delivery/http/middleware"
	"skillchain/internal/infrastructure/ai"

	"github.com/gofiber/fiber/v3"
)

func TestMapAIGatewayError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
		wantExpose bool
	}{
		{
			name:       "rate limited",
			err:        fmt.Errorf("gateway: %w", ai.ErrRateLimited),
			wantStatus: fiber.StatusTooManyRequests,
			wantMsg:    "Rate limit exceeded. Please try again later.",
		},
		{
			name:       "credits exhausted",
			err:        fmt.Errorf("gateway: %w", ai.ErrQuotaExhausted),
			wantStatus: fiber.StatusPaymentRequired,
			wantMsg:    "AI credits exhausted. Please add credits to continue.",
		},
		{
			name:       "other gateway fault is exposed",
			err:        errors.New("model overloaded"),
			wantStatus: fiber.StatusInternalServerError,
			wantMsg:    "model overloaded",
			wantExpose: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var appErr *middleware.AppError
			if !errors.As(mapAIGatewayError(tc.err), &appErr) {
				t.Fatalf("expected AppError")
			}
			if appErr.StatusCode != tc.wantStatus {
				t.Fatalf("status = %d, want %d", appErr.StatusCode, tc.wantStatus)
			}
			if appErr.Message != tc.wantMsg {
				t.Fatalf("msg = %q, want %q", appErr.Message, tc.wantMsg)
			}
			if appErr.Expose != tc.wantExpose {
				t.Fatalf("expose = %v, want %v", appErr.Expose, tc.wantExpose)
			}
		})
	}
}
