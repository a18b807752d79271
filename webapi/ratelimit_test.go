package webapi_test

import (
	"testing"
	"time"

	"github.com/amirasaad/user-management/internal/fixtures"
	"github.com/amirasaad/user-management/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimit(t *testing.T) {
	// Create app with stricter rate limits for testing
	cfg := testutils.TestConfig()
	cfg.RateLimit.MaxRequests = 5
	cfg.RateLimit.Window = 1 * time.Second

	app, err := testutils.NewTestApp(fixtures.NewUserStore(), cfg)
	require.NoError(t, err)
	auth := testutils.BasicAuthHeader(testutils.TestUsername, testutils.TestPassword)

	// Send requests until rate limit is hit
	for i := 0; i < 6; i++ {
		resp := testutils.MakeRequestWithApp(app, fiber.MethodGet, "/", "", auth)
		body := testutils.ReadBody(resp)

		if i < 5 {
			assert.Equal(t, fiber.StatusOK, resp.StatusCode, "Expected OK for request %d", i+1)
		} else {
			assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode, "Expected Too Many Requests for request %d", i+1)
			assert.Equal(t, "Too Many Requests", body)
		}
	}

	// Wait for the rate limit window to reset
	time.Sleep(1100 * time.Millisecond)

	resp := testutils.MakeRequestWithApp(app, fiber.MethodGet, "/", "", auth)
	defer resp.Body.Close() //nolint:errcheck
	assert.Equal(t, fiber.StatusOK, resp.StatusCode, "Expected OK after rate limit reset")
}

func TestRateLimit_KeyedByForwardedFor(t *testing.T) {
	cfg := testutils.TestConfig()
	cfg.RateLimit.MaxRequests = 1
	cfg.RateLimit.Window = time.Minute

	app, err := testutils.NewTestApp(fixtures.NewUserStore(), cfg)
	require.NoError(t, err)
	auth := testutils.BasicAuthHeader(testutils.TestUsername, testutils.TestPassword)

	send := func(ip string) int {
		req := testutils.NewRequest(fiber.MethodGet, "/", "", auth)
		req.Header.Set("X-Forwarded-For", ip+", 10.0.0.1")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck
		return resp.StatusCode
	}

	assert.Equal(t, fiber.StatusOK, send("192.0.2.1"))
	assert.Equal(t, fiber.StatusTooManyRequests, send("192.0.2.1"))
	assert.Equal(t, fiber.StatusOK, send("192.0.2.2"))
}

func TestHealthAndRouting(t *testing.T) {
	app, err := testutils.NewTestApp(fixtures.NewUserStore(), testutils.TestConfig())
	require.NoError(t, err)
	auth := testutils.BasicAuthHeader(testutils.TestUsername, testutils.TestPassword)

	resp := testutils.MakeRequestWithApp(app, fiber.MethodGet, "/", "", auth)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "User Management API is running!", testutils.ReadBody(resp))
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))

	resp = testutils.MakeRequestWithApp(app, fiber.MethodGet, "/nope", "", auth)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/plain")
	_ = testutils.ReadBody(resp)

	resp = testutils.MakeRequestWithApp(app, fiber.MethodGet, "/", "", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	_ = testutils.ReadBody(resp)
}
