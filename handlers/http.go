// Package handlers contains the HTTP status surface for mybalancer.
package handlers

import (
	"net/http"

	"mybalancer/domain"
	"mybalancer/helpers"
	"mybalancer/interfaces"
	"mybalancer/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
)

// HTTPServer serves GET /v1/status: a snapshot of every node (instance ID, derived state,
// in-flight count) plus the total number of idle-evicted nodes since start.
type HTTPServer struct {
	status interfaces.BalancerStatus
	stats  *service.MemStats
	logger log.Logger
}

// NewHTTPServer creates the status server. Panics on nil status, stats or logger.
//
// Parameters: status — balancer snapshot source; stats — in-memory sink holding the
// "expired" counter; logger — request-path logger.
//
// Returns: *HTTPServer.
//
// Called from cmd/main.
func NewHTTPServer(status interfaces.BalancerStatus, stats *service.MemStats, logger log.Logger) *HTTPServer {
	return &HTTPServer{
		status: helpers.NilPanic(status, "handlers.http.go: status is required"),
		stats:  helpers.NilPanic(stats, "handlers.http.go: stats is required"),
		logger: log.WithPrefix(helpers.NilPanic(logger, "handlers.http.go: logger is required"), "component", "HTTPServer"),
	}
}

// RegisterHandlers registers the status route on the echo instance.
//
// Parameters: e — echo instance; h — status server.
//
// Called from cmd/main.
func RegisterHandlers(e *echo.Echo, h *HTTPServer) {
	e.GET("/v1/status", h.Status)
}

// statusResponse is the JSON body of GET /v1/status.
type statusResponse struct {
	Nodes        []domain.NodeDescription `json:"nodes"`
	ExpiredTotal int64                    `json:"expired_total"`
}

// Status (GET /v1/status) returns the node snapshot and the expired counter. Always 200.
func (h *HTTPServer) Status(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK, statusResponse{
		Nodes:        h.status.Describe(),
		ExpiredTotal: h.stats.CounterValue("expired"),
	})
}
