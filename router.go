package main

import (
	"favorites-tracker/config"
	"favorites-tracker/handlers"
	"favorites-tracker/middleware"

	"github.com/gin-gonic/gin"
)

// Route is a static route descriptor. The full table is assembled once
// at startup; nothing registers routes at runtime.
type Route struct {
	Name      string
	Method    string
	Path      string
	Handler   gin.HandlerFunc
	Protected bool // requires a valid JWT when auth is enabled
}

func routes(fav *handlers.Favorites, mkt *handlers.Market, set *handlers.Settings, auth *handlers.Auth) []Route {
	return []Route{
		// Pages
		{Name: "favorites-page", Method: "GET", Path: "/", Handler: fav.Page},
		{Name: "favorites-add-form", Method: "POST", Path: "/favorites/add", Handler: fav.AddForm},
		{Name: "favorites-delete-form", Method: "POST", Path: "/favorites/delete", Handler: fav.RemoveForm},
		{Name: "settings-page", Method: "GET", Path: "/settings", Handler: set.Page},
		{Name: "settings-save-form", Method: "POST", Path: "/settings", Handler: set.UpdateForm},

		// JSON API
		{Name: "login", Method: "POST", Path: "/login", Handler: auth.Login},
		{Name: "favorites-list", Method: "GET", Path: "/api/favorites", Handler: fav.List},
		{Name: "favorites-get", Method: "GET", Path: "/api/favorites/:symbol", Handler: fav.Get},
		{Name: "favorites-add", Method: "POST", Path: "/api/favorites", Handler: fav.Add, Protected: true},
		{Name: "favorites-remove", Method: "DELETE", Path: "/api/favorites/:symbol", Handler: fav.Remove, Protected: true},
		{Name: "settings-get", Method: "GET", Path: "/api/settings", Handler: set.Get},
		{Name: "settings-update", Method: "PUT", Path: "/api/settings", Handler: set.Update, Protected: true},
		{Name: "quote", Method: "GET", Path: "/api/quotes/:symbol", Handler: mkt.GetQuote},
		{Name: "quote-history", Method: "GET", Path: "/api/quotes/:symbol/history", Handler: mkt.GetHistory},
	}
}

// NewRouter builds the gin engine from the static route table. With no
// JWT secret configured the app runs open and protected routes are
// registered like any other.
func NewRouter(cfg *config.Config, fav *handlers.Favorites, mkt *handlers.Market, set *handlers.Settings, auth *handlers.Auth) *gin.Engine {
	router := gin.Default()
	router.LoadHTMLGlob("templates/*.html")

	guard := func(c *gin.Context) { c.Next() }
	if cfg.AuthEnabled() {
		guard = middleware.JWTAuth(cfg.JWTSecret)
	}

	for _, r := range routes(fav, mkt, set, auth) {
		if r.Protected {
			router.Handle(r.Method, r.Path, guard, r.Handler)
			continue
		}
		router.Handle(r.Method, r.Path, r.Handler)
	}
	return router
}
