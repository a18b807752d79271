package testutils

import (
	"bytes"
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/amirasaad/user-management/internal/fixtures"
	"github.com/amirasaad/user-management/pkg/app"
	"github.com/amirasaad/user-management/pkg/config"
	userrepo "github.com/amirasaad/user-management/pkg/repository/user"
	"github.com/amirasaad/user-management/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
)

const (
	TestUsername = "user"
	TestPassword = "user@123"
)

// TestConfig returns an application config suitable for tests.
func TestConfig() *config.App {
	return &config.App{
		Env:    "test",
		Server: &config.Server{Scheme: "http", Host: "localhost", Port: 8080},
		Log:    &config.Log{Format: "text"},
		DB:     &config.DB{},
		Auth:   &config.Auth{Username: TestUsername, Password: TestPassword},
		RateLimit: &config.RateLimit{
			MaxRequests: 10000,
			Window:      time.Minute,
		},
	}
}

// NewTestApp builds the full fiber app on top of repo.
func NewTestApp(repo userrepo.Repository, cfg *config.App) (*fiber.App, error) {
	a, err := app.New(&app.Deps{UserRepository: repo, Logger: slog.Default()}, cfg)
	if err != nil {
		return nil, err
	}
	return webapi.SetupApp(a), nil
}

// BasicAuthHeader encodes username and password as an Authorization header value.
func BasicAuthHeader(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}

// NewRequest builds a test request with a JSON body when body is set.
// An empty authHeader sends the request without credentials.
func NewRequest(method, path, body, authHeader string) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	return req
}

// MakeRequestWithApp is a helper for making HTTP requests against app
func MakeRequestWithApp(app *fiber.App, method, path, body, authHeader string) *http.Response {
	resp, err := app.Test(NewRequest(method, path, body, authHeader), -1)
	if err != nil {
		panic(err) // For standalone tests, panic on error
	}
	return resp
}

// ReadBody drains and closes resp.Body.
func ReadBody(resp *http.Response) string {
	defer resp.Body.Close() //nolint:errcheck
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		panic(err)
	}
	return string(b)
}

// HandlerTestSuite runs the full HTTP stack over an in-memory store,
// recreated before every test.
type HandlerTestSuite struct {
	suite.Suite
	Store *fixtures.UserStore
	App   *fiber.App
}

func (s *HandlerTestSuite) SetupTest() {
	s.Store = fixtures.NewUserStore()
	fiberApp, err := NewTestApp(s.Store, TestConfig())
	s.Require().NoError(err)
	s.App = fiberApp
}

// MakeRequest sends an authenticated request.
func (s *HandlerTestSuite) MakeRequest(method, path, body string) *http.Response {
	return MakeRequestWithApp(s.App, method, path, body, BasicAuthHeader(TestUsername, TestPassword))
}
