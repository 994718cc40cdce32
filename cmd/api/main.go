package main

import (
	"net/http"

	"tripplanner/internal/auth/google"
	authhandler "tripplanner/internal/auth/handler"
	authrepo "tripplanner/internal/auth/repository"
	authservice "tripplanner/internal/auth/service"
	"tripplanner/internal/auth/session"
	bookinghandler "tripplanner/internal/bookings/handler"
	bookingrepo "tripplanner/internal/bookings/repository"
	bookingservice "tripplanner/internal/bookings/service"
	bookingvalidator "tripplanner/internal/bookings/validator"
	triphandler "tripplanner/internal/trips/handler"
	triprepo "tripplanner/internal/trips/repository"
	tripservice "tripplanner/internal/trips/service"
	tripvalidator "tripplanner/internal/trips/validator"
	"tripplanner/pkg/app"
	"tripplanner/pkg/config"
	"tripplanner/pkg/contracts"
	"tripplanner/pkg/events"

	_ "tripplanner/docs"

	"github.com/julienschmidt/httprouter"
	httpSwagger "github.com/swaggo/http-swagger"
)

const ServiceName = "api"

// routeSet registers several handlers on one router.
type routeSet []contracts.Handler

func (rs routeSet) RegisterRoutes(router *httprouter.Router) {
	for _, h := range rs {
		h.RegisterRoutes(router)
	}
}

// swaggerRoutes serves the generated OpenAPI UI.
type swaggerRoutes struct{}

func (swaggerRoutes) RegisterRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/api-docs/*filepath", httpSwagger.Handler(
		httpSwagger.URL("/api-docs/doc.json"),
	))
}

// @title Trip Planner API
// @version 1.0
// @description API documentation for the Trip Planner service.
// @BasePath /
func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting Trip Planner API")

	sessionStore := session.NewInMemoryStore(cfg.SessionTTL)
	codec := session.NewCodec(cfg.SessionSecret, cfg.SessionTTL)
	publisher := newPublisher(cfg)

	userRepo := authrepo.NewMongoUserRepository(cfg)
	rehydrator := session.NewRehydrator(codec, sessionStore, userRepo, cfg.Log)
	gate := session.RequireAuth(cfg.Log)

	handlers := routeSet{
		initTripHandler(cfg, publisher, gate),
		initBookingHandler(cfg, publisher, gate),
		initAuthHandler(cfg, userRepo, sessionStore, codec),
		swaggerRoutes{},
	}

	serverApp := app.NewApplication()
	serverApp.SetApp(cfg, handlers, rehydrator, sessionStore, publisher)
	serverApp.Run()
	cfg.GracefulShutdown()
}

func newPublisher(cfg *config.Config) events.Publisher {
	if len(cfg.KafkaBrokers) > 0 {
		return events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaEventsTopic, cfg.Log)
	}
	return events.NewNopPublisher()
}

func initTripHandler(cfg *config.Config, publisher events.Publisher, gate triphandler.Gate) *triphandler.TripHandler {
	tripValidator := tripvalidator.NewTripValidator(cfg.Log)
	tripRepo := triprepo.NewMongoTripRepository(cfg)
	tripService := tripservice.NewTripService(tripRepo, tripValidator, publisher, cfg)

	cfg.Log.Info("Trip service initialized", "database", cfg.MongoDatabaseName)
	return triphandler.NewTripHandler(tripService, gate, cfg.Log)
}

func initBookingHandler(cfg *config.Config, publisher events.Publisher, gate bookinghandler.Gate) *bookinghandler.BookingHandler {
	tripRepo := triprepo.NewMongoTripRepository(cfg)
	bookingValidator := bookingvalidator.NewBookingValidator(tripRepo, cfg.Log)
	bookingRepo := bookingrepo.NewMongoBookingRepository(cfg)
	bookingService := bookingservice.NewBookingService(bookingRepo, bookingValidator, publisher, cfg)

	cfg.Log.Info("Booking service initialized", "database", cfg.MongoDatabaseName)
	return bookinghandler.NewBookingHandler(bookingService, gate, cfg.Log)
}

func initAuthHandler(
	cfg *config.Config,
	userRepo authrepo.UserRepository,
	sessionStore session.Store,
	codec *session.Codec,
) *authhandler.AuthHandler {
	googleClient := google.NewClient(cfg)
	authService := authservice.NewAuthService(userRepo, cfg)

	cfg.Log.Info("Auth service initialized")
	return authhandler.NewAuthHandler(googleClient, authService, sessionStore, codec, cfg.Log)
}
