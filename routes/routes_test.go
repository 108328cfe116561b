package routes

import (
	"testing"

	"github.com/gin-gonic/gin"
)

func TestSetupRouterRegistersResourceRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := SetupRouter(nil)

	registered := make(map[string]bool)
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	want := []string{
		"POST /api/auth/register",
		"POST /api/auth/login",
		"GET /api/user/profile",
		"GET /api/games",
		"GET /api/games/:id",
		"GET /api/games/:id/levels",
		"GET /api/games/:id/analytics",
		"GET /api/games/:id/leaderboard",
		"POST /api/games",
		"POST /api/games/:id/publish",
		"POST /api/games/:id/duplicate",
		"POST /api/games/:id/levels/reorder",
		"GET /api/levels/:id",
		"GET /api/levels/:id/challenges",
		"GET /api/attempts",
		"POST /api/attempts",
		"POST /api/attempts/:id/complete",
		"GET /api/daily/energy",
		"GET /api/weekly/summary",
		"POST /api/upload/inbody",
		"POST /api/upload/inbody/confirm",
		"GET /api/upload/inbody",
		"GET /api/upload/inbody/latest",
		"POST /api/upload/coros",
		"POST /api/upload/coros/confirm",
		"POST /api/food/parse",
		"POST /api/food/log",
		"GET /api/food/log",
		"GET /api/ws/alerts",
		"GET /health",
	}
	for _, w := range want {
		if !registered[w] {
			t.Errorf("route %s not registered", w)
		}
	}
}
