package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/4nxiouz/thaitep-exam-booking/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/ginext"
)

type stubHandler struct{}

func ok(c *ginext.Context) { c.Status(http.StatusOK) }

func (stubHandler) ListActiveRounds(c *ginext.Context) { ok(c) }
func (stubHandler) CreateBooking(c *ginext.Context)    { ok(c) }
func (stubHandler) GetBookingByCode(c *ginext.Context) { ok(c) }
func (stubHandler) ListRounds(c *ginext.Context)       { ok(c) }
func (stubHandler) CreateRound(c *ginext.Context)      { ok(c) }
func (stubHandler) SetRoundActive(c *ginext.Context)   { ok(c) }
func (stubHandler) ListBookings(c *ginext.Context)     { ok(c) }
func (stubHandler) ReviewBooking(c *ginext.Context)    { ok(c) }

func TestInitRouter_AdminRoutesRequireToken(t *testing.T) {
	r := InitRouter("test", stubHandler{}, middleware.AdminAuth("operator-secret-token"))

	tests := []struct {
		name   string
		method string
		path   string
		auth   string
		code   int
	}{
		{"public rounds", http.MethodGet, "/api/rounds", "", http.StatusOK},
		{"public lookup", http.MethodGet, "/api/bookings/BK000001", "", http.StatusOK},
		{"admin without token", http.MethodGet, "/api/admin/bookings", "", http.StatusUnauthorized},
		{"admin review without token", http.MethodPost, "/api/admin/bookings/x/review", "", http.StatusUnauthorized},
		{"admin with token", http.MethodGet, "/api/admin/rounds", "Bearer operator-secret-token", http.StatusOK},
		{"health", http.MethodGet, "/health", "", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.code, w.Code)
		})
	}
}
