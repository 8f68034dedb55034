package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"cloud.google.com/go/firestore"
	clerk "github.com/clerk/clerk-sdk-go/v2"
	gorilllaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/api/iterator"

	"github.com/gitesh-ujgaonkar/tomorrow-tracker-V02/handlers"
	"github.com/gitesh-ujgaonkar/tomorrow-tracker-V02/middleware"
	"github.com/gitesh-ujgaonkar/tomorrow-tracker-V02/services"

	_ "net/http/pprof"
)

var (
	fsClient        *firestore.Client
	userService     *services.UserService
	goalService     *services.GoalService
	promptService   *services.PromptService
	progressService *services.ProgressService
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	clerkSecretKey := os.Getenv("CLERK_SECRET_KEY")
	if clerkSecretKey == "" {
		log.Fatal("CLERK_SECRET_KEY environment variable is not set")
	}
	clerk.SetKey(clerkSecretKey)
	log.Println("Clerk initialized successfully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var err error
	fsClient, err = services.NewFirestoreClient(ctx, "./serviceAccountKey.json")
	if err != nil {
		log.Fatal("Failed to create Firestore client:", err)
	}
	log.Println("Successfully connected to Firestore")

	userService = services.NewUserService(fsClient)
	goalService = services.NewGoalService(fsClient)
	promptService = services.NewPromptService(fsClient)
	progressService = services.NewProgressService(goalService, promptService)

	middleware.InitPrometheus()
}

func main() {
	defer func() {
		log.Println("Closing Firestore client...")
		fsClient.Close()
	}()

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService)
	goalHandler := handlers.NewGoalHandler(goalService)
	promptHandler := handlers.NewPromptHandler(promptService, goalService)
	progressHandler := handlers.NewProgressHandler(progressService)
	webhookHandler := handlers.NewWebhookHandler(userService)

	r := mux.NewRouter()

	go middleware.CleanupVisitors()

	r.Use(middleware.RateLimitMiddleware)
	r.Use(middleware.MonitorMiddleware)

	r.Handle("/metrics", middleware.BasicAuthMiddleware(promhttp.Handler()))
	r.PathPrefix("/debug/pprof/").Handler(middleware.PprofSecurityMiddleware(http.DefaultServeMux))

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		// One cheap read proves the store answers.
		_, err := fsClient.Collections(ctx).Next()
		if err != nil && err != iterator.Done {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status": "unhealthy", "error": "firestore connection failed"}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy", "service": "tomorrow-tracker-api"}`))
	}).Methods("GET")

	r.HandleFunc("/webhooks/clerk", webhookHandler.HandleClerkWebhook).Methods("POST")

	// -------------------------------------------------------------------------
	// API V1 SUBROUTER (REQUIRES AUTH HEADER)
	// -------------------------------------------------------------------------
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.ClerkAuthMiddleware)

	protected.HandleFunc("/user", userHandler.GetProfile).Methods("GET")

	protected.HandleFunc("/goals", goalHandler.ListGoals).Methods("GET")
	protected.HandleFunc("/goals", goalHandler.CreateGoal).Methods("POST")
	protected.HandleFunc("/goals/today", goalHandler.GetTodayOverview).Methods("GET")
	protected.HandleFunc("/goals/{goalID}", goalHandler.UpdateGoal).Methods("PUT")
	protected.HandleFunc("/goals/{goalID}", goalHandler.DeleteGoal).Methods("DELETE")
	protected.HandleFunc("/goals/{goalID}/completions", goalHandler.MarkComplete).Methods("POST")
	protected.HandleFunc("/goals/{goalID}/completions", goalHandler.UnmarkComplete).Methods("DELETE")
	protected.HandleFunc("/completions", goalHandler.ListCompletions).Methods("GET")

	protected.HandleFunc("/checkin", promptHandler.ListCheckins).Methods("GET")
	protected.HandleFunc("/checkin", promptHandler.SaveCheckin).Methods("POST")
	protected.HandleFunc("/checkin/status", promptHandler.CheckinStatus).Methods("GET")

	protected.HandleFunc("/progress", progressHandler.GetProgress).Methods("GET")

	// CORS configuration
	corsHandler := gorilllaHandlers.CORS(
		gorilllaHandlers.AllowedOrigins([]string{"*"}),
		gorilllaHandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		gorilllaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Pprof-Secret"}),
		gorilllaHandlers.ExposedHeaders([]string{"Content-Length"}),
		gorilllaHandlers.AllowCredentials(),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3333"
	}
	port = ":" + port

	server := http.Server{
		Addr:         port,
		Handler:      corsHandler(r),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Error starting server:", err)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)

	sig := <-sigChan
	log.Println("Got signal:", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server shutdown complete")
}
