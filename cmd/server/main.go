package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"randevu/internal/api"
	"randevu/internal/repository"
	"randevu/internal/service"
	"randevu/internal/session"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/stripe/stripe-go/v82"
)

func main() {
	godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	tzName := os.Getenv("TIMEZONE")
	if tzName == "" {
		tzName = "Europe/Istanbul"
	}
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		log.Fatalf("Invalid TIMEZONE %q: %v", tzName, err)
	}

	repo := repository.NewAppointmentRepository(db)
	store := session.NewMemoryStore()

	chatSvc := service.NewChatService(store, repo, loc)
	chatSvc.ValidateDates = os.Getenv("VALIDATE_DATES") == "true"
	chatSvc.Notifier = service.NewNotifyService(os.Getenv("BUSINESS_NAME"))

	if key := os.Getenv("STRIPE_SECRET_KEY"); key != "" {
		stripe.Key = key
		amount := int64(100)
		if v := os.Getenv("DEPOSIT_AMOUNT_TRY"); v != "" {
			if parsed, perr := strconv.ParseInt(v, 10, 64); perr == nil && parsed > 0 {
				amount = parsed
			}
		}
		chatSvc.Deposits = service.NewStripeService(amount)
	}

	chatHandler := api.NewChatHandler(chatSvc, repo)

	r := mux.NewRouter()
	r.HandleFunc("/", chatHandler.Health).Methods("GET")
	r.HandleFunc("/api/{slug}/message", chatHandler.HandleSlugMessage).Methods("POST")
	r.HandleFunc("/chat", chatHandler.HandleDefaultChat).Methods("POST")
	r.PathPrefix("/public/").Handler(http.StripPrefix("/public/", http.FileServer(http.Dir("public"))))

	// Stale-session sweep. Abandoned conversations otherwise live forever.
	ttlHours := 24
	if v := os.Getenv("SESSION_TTL_HOURS"); v != "" {
		if parsed, perr := strconv.Atoi(v); perr == nil {
			ttlHours = parsed
		}
	}
	if ttlHours > 0 {
		jobSvc := service.NewJobService(store)
		c := cron.New()
		c.AddFunc("@hourly", func() {
			jobSvc.SweepStaleSessions(time.Duration(ttlHours) * time.Hour)
		})
		c.Start()
	}

	corsMiddleware := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handlers.LoggingHandler(os.Stdout, corsMiddleware(r))))
}
