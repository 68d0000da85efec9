package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"finance-tracker/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type HealthCheckHandlerTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func TestHealthCheckHandlerSuite(t *testing.T) {
	suite.Run(t, new(HealthCheckHandlerTestSuite))
}

func (s *HealthCheckHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
}

func (s *HealthCheckHandlerTestSuite) TestHealthCheck_Healthy() {
	db := database.SetupTestDB(s.T())
	handler := NewHealthCheckHandler(db)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.Require().NoError(handler.HealthCheck(c))
	s.Equal(http.StatusOK, rec.Code)

	var body map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("healthy", body["status"])
	s.NotEmpty(body["time"])
}

func (s *HealthCheckHandlerTestSuite) TestHealthCheck_DatabaseClosed() {
	db := database.SetupTestDB(s.T())
	s.Require().NoError(db.Close())
	handler := NewHealthCheckHandler(db)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "health-trace")

	s.Require().NoError(handler.HealthCheck(c))
	s.Equal(http.StatusServiceUnavailable, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("SYSTEM_003", response.Error.Code)
	s.Equal("health-trace", response.Error.TraceID)
}
