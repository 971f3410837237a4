package controllers

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hiring-hare-backend/models"
)

func TestSendErrorStatusMapping(t *testing.T) {
	base := &BaseAPIController{}
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", errors.Wrap(models.ErrNotFound, "requirement not found"), fiber.StatusNotFound},
		{"invalid transition", models.NewInvalidTransition("approve", models.ReqStatusDraft), fiber.StatusConflict},
		{"denied", errors.Wrap(models.ErrAuthorizationDenied, "no pending approval task"), fiber.StatusForbidden},
		{"validation", errors.Wrap(models.ErrValidation, "comment too short"), fiber.StatusBadRequest},
		{"no approver configured", models.ErrNoApproverConfigured, fiber.StatusInternalServerError},
		{"unknown", errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/boom", func(ctx *fiber.Ctx) error {
				return base.SendError(ctx, base.GetLogger(ctx), tc.err, "operation failed")
			})
			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/boom", nil))
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}
