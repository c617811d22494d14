package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/harvfi/ecudecaalumni2/internal/delivery/http/controllers"
	"github.com/harvfi/ecudecaalumni2/internal/delivery/http/middleware"
	"github.com/harvfi/ecudecaalumni2/internal/domain"
)

// Controllers bundles the per-surface controllers for route registration.
type Controllers struct {
	Auth         *controllers.AuthController
	Member       *controllers.MemberController
	Event        *controllers.EventController
	Announcement *controllers.AnnouncementController
	RSVP         *controllers.RSVPController
	Chat         *controllers.ChatController
	Donation     *controllers.DonationController
	News         *controllers.NewsController
}

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(c Controllers, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	authed := middleware.RequireAuth(verifier, logger)

	// Auth
	mux.HandleFunc("POST /auth/login", c.Auth.Login)
	mux.HandleFunc("POST /auth/signup", c.Auth.Signup)
	mux.HandleFunc("POST /auth/logout", authed(c.Auth.Logout))
	mux.HandleFunc("GET /auth/me", authed(c.Auth.Me))

	// Roster and events
	mux.HandleFunc("GET /members", c.Member.ListMembers)
	mux.HandleFunc("GET /events", c.Event.ListEvents)
	mux.HandleFunc("GET /events/{eventID}", c.Event.GetEventByID)
	mux.HandleFunc("GET /events/{eventID}/calendar", c.Event.DownloadCalendar)

	// RSVP is open: guests RSVP by email without an account.
	mux.HandleFunc("POST /events/{eventID}/rsvps", c.RSVP.RSVP)

	// Add-event announcement flow
	mux.HandleFunc("GET /announcements", authed(c.Announcement.GetFlow))
	mux.HandleFunc("POST /announcements/draft", authed(c.Announcement.Draft))
	mux.HandleFunc("POST /announcements/edit", authed(c.Announcement.Edit))
	mux.HandleFunc("POST /announcements/send", authed(c.Announcement.Send))
	mux.HandleFunc("POST /announcements/reset", authed(c.Announcement.Reset))

	// Chat, donations, news
	mux.HandleFunc("POST /chat", c.Chat.Send)
	mux.HandleFunc("GET /chat", c.Chat.History)
	mux.HandleFunc("POST /donations", c.Donation.Donate)
	mux.HandleFunc("GET /news", c.News.ListNews)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
