package main

import (
	"log"
	"net/http"

	"github.com/harvfi/ecudecaalumni2/config"
	_ "github.com/harvfi/ecudecaalumni2/docs"
	"github.com/harvfi/ecudecaalumni2/internal/adapters/auth"
	"github.com/harvfi/ecudecaalumni2/internal/adapters/calendar"
	"github.com/harvfi/ecudecaalumni2/internal/adapters/email"
	"github.com/harvfi/ecudecaalumni2/internal/adapters/genai"
	"github.com/harvfi/ecudecaalumni2/internal/adapters/payment"
	httpdelivery "github.com/harvfi/ecudecaalumni2/internal/delivery/http"
	"github.com/harvfi/ecudecaalumni2/internal/delivery/http/controllers"
	"github.com/harvfi/ecudecaalumni2/internal/delivery/http/middleware"
	"github.com/harvfi/ecudecaalumni2/internal/repository/memory"
	"github.com/harvfi/ecudecaalumni2/internal/services"

	"golang.org/x/crypto/bcrypt"
)

// @title ECU DECA Alumni Network API
// @version 1.0
// @description Backend for the ECU DECA alumni chapter portal: roster, events, RSVPs, announcements, chat, and donations.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := config.NewLogger()

	memberRepo := memory.NewMemberRepository(memory.SeedMembers())
	eventRepo := memory.NewEventRepository(memory.SeedEvents())
	newsRepo := memory.NewNewsRepository(memory.SeedNews())

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFrom,
		FromName:    "ECU DECA Alumni",
		SES: email.SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretKey,
		},
	})
	if err != nil {
		log.Fatalf("create mailer: %v", err)
	}

	provider, err := payment.NewProviderFromConfig(cfg.PaymentProvider, logger)
	if err != nil {
		log.Fatalf("create payment provider: %v", err)
	}

	textGen := genai.NewClient(nil, genai.Config{
		APIKey:     cfg.GeminiAPIKey,
		ChatModel:  cfg.GeminiChatModel,
		DraftModel: cfg.GeminiTextModel,
	})

	session := services.NewSessionHolder()
	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)
	issuer := auth.NewJWTIssuer(cfg.JWTSecret, cfg.TokenExpiry)
	verifier := auth.NewJWTVerifier(cfg.JWTSecret)

	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), cfg.BroadcastDelay, logger)
	identityService := services.NewIdentityService(memberRepo, eventRepo, session, hasher, issuer, emailService, logger)
	rsvpService := services.NewRSVPService(memberRepo, eventRepo, session, emailService, logger)
	announcementFlow := services.NewAnnouncementFlow(eventRepo, memberRepo, textGen, emailService, logger)
	chatService := services.NewChatService(memberRepo, eventRepo, newsRepo, textGen, logger)
	donationService := services.NewDonationService(provider, logger)

	mux := httpdelivery.NewRouter(httpdelivery.Controllers{
		Auth:         controllers.NewAuthController(logger, identityService),
		Member:       controllers.NewMemberController(logger, memberRepo),
		Event:        controllers.NewEventController(logger, eventRepo, calendar.NewICSExporter()),
		Announcement: controllers.NewAnnouncementController(logger, announcementFlow),
		RSVP:         controllers.NewRSVPController(logger, rsvpService),
		Chat:         controllers.NewChatController(logger, chatService),
		Donation:     controllers.NewDonationController(logger, donationService),
		News:         controllers.NewNewsController(logger, newsRepo),
	}, verifier, logger)

	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	addr := ":" + cfg.Port
	logger.Info("server starting", "addr", addr, "environment", cfg.Environment)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}
