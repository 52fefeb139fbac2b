package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_Handler(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	app := fiber.New()
	app.Post("/jwt", rl.Handler(), func(c fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	var codes []int
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/jwt", nil))
		require.NoError(t, err)
		codes = append(codes, resp.StatusCode)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimiter_Cleanup(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	for i := 0; i <= maxTrackedClients; i++ {
		rl.getLimiter(time.Duration(i).String())
	}
	require.Len(t, rl.limiters, maxTrackedClients+1)

	rl.Cleanup()
	assert.Empty(t, rl.limiters)

	rl.getLimiter("10.0.0.1")
	rl.Cleanup()
	assert.Len(t, rl.limiters, 1, "small maps are kept")
}

func TestRateLimiter_StartCleanupStops(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	stop := make(chan struct{})
	rl.StartCleanup(time.Millisecond, stop)
	time.Sleep(5 * time.Millisecond)
	close(stop)
}
