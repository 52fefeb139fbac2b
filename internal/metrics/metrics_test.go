package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_CountsMatchedRoute(t *testing.T) {
	app := fiber.New()
	app.Use(Middleware())
	app.Get("/classes/:email", func(c fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	before := testutil.ToFloat64(httpRequests.WithLabelValues(fiber.MethodGet, "/classes/:email", "200"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/classes/a@x.com", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	after := testutil.ToFloat64(httpRequests.WithLabelValues(fiber.MethodGet, "/classes/:email", "200"))
	assert.Equal(t, before+1, after)
}

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(tokensIssued)
	TokenIssued()
	assert.Equal(t, before+1, testutil.ToFloat64(tokensIssued))

	beforeRej := testutil.ToFloat64(authRejections.WithLabelValues("missing_token"))
	AuthRejected("missing_token")
	assert.Equal(t, beforeRej+1, testutil.ToFloat64(authRejections.WithLabelValues("missing_token")))

	beforePay := testutil.ToFloat64(paymentIntents.WithLabelValues("created"))
	PaymentIntent("created")
	assert.Equal(t, beforePay+1, testutil.ToFloat64(paymentIntents.WithLabelValues("created")))
}

func TestHandler_ExposesRegistry(t *testing.T) {
	TokenIssued()

	app := fiber.New()
	app.Get("/metrics", Handler())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "musicalcamp_auth_tokens_issued_total")
}
