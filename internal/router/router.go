// Package router assembles the HTTP surface.
package router

import (
	"net/http"

	"jobvibe/internal/domain/admin"
	"jobvibe/internal/domain/application"
	"jobvibe/internal/domain/auth"
	"jobvibe/internal/domain/feed"
	"jobvibe/internal/domain/interview"
	"jobvibe/internal/domain/job"
	"jobvibe/internal/domain/location"
	"jobvibe/internal/domain/message"
	"jobvibe/internal/domain/notification"
	"jobvibe/internal/domain/relationship"
	"jobvibe/internal/domain/report"
	"jobvibe/internal/domain/resume"
	"jobvibe/internal/domain/settings"
	"jobvibe/internal/domain/upload"
	"jobvibe/internal/domain/user"
	"jobvibe/internal/health"
	"jobvibe/internal/middleware"
	"jobvibe/internal/pkg/response"
	"jobvibe/internal/realtime"

	"github.com/gin-gonic/gin"
)

// Prefixes every API route is mounted under.
var Prefixes = []string{"/api/v1", "/api"}

type Handlers struct {
	Auth          *auth.Handler
	Users         *user.Handler
	Feeds         *feed.Handler
	Jobs          *job.Handler
	Applications  *application.Handler
	Interviews    *interview.Handler
	Notifications *notification.Handler
	Files         *upload.Handler
	Messages      *message.Handler
	Relationships *relationship.Handler
	Resumes       *resume.Handler
	Settings      *settings.Handler
	Reports       *report.Handler
	Admin         *admin.Handler
	Locations     *location.Handler
	Realtime      *realtime.Handler
	Health        *health.Handler
}

type Options struct {
	Tokens        middleware.TokenValidator
	Origins       []string
	PublicBaseURL string
	UploadDir     string
	MaxBody       int64
}

func New(h Handlers, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.ErrorLogger(),
		middleware.CORS(opts.Origins),
		middleware.BaseURL(opts.PublicBaseURL),
	)

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Route not found")
	})

	h.Health.RegisterRoutes(r)
	r.Static("/uploads", opts.UploadDir)

	requireAuth := middleware.JWTAuth(opts.Tokens)
	h.Realtime.RegisterRoutes(r.Group("", requireAuth))

	for _, prefix := range Prefixes {
		api := r.Group(prefix)
		h.Auth.RegisterPublicRoutes(api)
		h.Locations.RegisterPublicRoutes(api)

		protected := api.Group("", requireAuth)
		h.Auth.RegisterProtectedRoutes(protected)
		h.Users.RegisterRoutes(protected, opts.MaxBody)
		h.Feeds.RegisterRoutes(protected)
		h.Jobs.RegisterRoutes(protected, opts.MaxBody)
		h.Applications.RegisterRoutes(protected)
		h.Interviews.RegisterRoutes(protected)
		h.Notifications.RegisterRoutes(protected)
		h.Files.RegisterRoutes(protected)
		h.Messages.RegisterRoutes(protected)
		h.Relationships.RegisterRoutes(protected)
		h.Resumes.RegisterRoutes(protected, opts.MaxBody)
		h.Settings.RegisterRoutes(protected)
		h.Reports.RegisterRoutes(protected)
		h.Admin.RegisterRoutes(protected)
		h.Locations.RegisterAdminRoutes(protected)
	}

	return r
}
