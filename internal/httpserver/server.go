package httpserver

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/vitacoach/server/internal/ai"
	"github.com/vitacoach/server/internal/billing"
	"github.com/vitacoach/server/internal/blob"
	"github.com/vitacoach/server/internal/chat"
	"github.com/vitacoach/server/internal/coach"
	"github.com/vitacoach/server/internal/config"
	"github.com/vitacoach/server/internal/meals"
	"github.com/vitacoach/server/internal/metrics"
	"github.com/vitacoach/server/internal/reports"
	"github.com/vitacoach/server/internal/simulate"
	"github.com/vitacoach/server/internal/storage/memory"
	"github.com/vitacoach/server/internal/subscriptions"
	"github.com/vitacoach/server/internal/users"
	"github.com/vitacoach/server/internal/workouts"
)

// Server wires the mock API together: fixture store, simulated
// latency, providers, handlers.
type Server struct {
	config *config.Config
	mux    *http.ServeMux
	store  *memory.Store
}

func New(cfg *config.Config) *Server {
	s := &Server{
		config: cfg,
		mux:    http.NewServeMux(),
		store:  memory.New(),
	}

	s.routes()
	return s
}

func (s *Server) routes() {
	// Health check
	s.mux.HandleFunc("GET /healthz", s.handleHealthz)

	delay := &simulate.Network{Scale: s.config.LatencyScale}

	blobStore, blobMode, err := blob.NewBlobStore(s.config.Blob, log.Default())
	if err != nil {
		log.Fatalf("FATAL blob: failed to initialize store: %v", err)
	}
	log.Printf("INFO blob: mode: %s", blobMode)

	// User API
	usersService := users.NewService(s.store, blobStore, delay, s.config.UploadMaxMB)
	usersHandler := users.NewHandler(usersService)
	s.mux.HandleFunc("GET /v1/user", usersHandler.HandleGet)
	s.mux.HandleFunc("PATCH /v1/user", usersHandler.HandleUpdate)
	s.mux.HandleFunc("POST /v1/user/avatar", usersHandler.HandleUploadAvatar)

	// Meals API
	mealsService := meals.NewService(s.store, s.store, delay)
	mealsHandler := meals.NewHandler(mealsService)
	s.mux.HandleFunc("GET /v1/meals", mealsHandler.HandleList)
	s.mux.HandleFunc("POST /v1/meals", mealsHandler.HandleAdd)
	s.mux.HandleFunc("POST /v1/meals/analyze", mealsHandler.HandleAnalyze)
	s.mux.HandleFunc("DELETE /v1/meals/{id}", mealsHandler.HandleDelete)

	// Workouts API
	workoutsService := workouts.NewService(s.store, s.store, delay)
	workoutsHandler := workouts.NewHandler(workoutsService)
	s.mux.HandleFunc("GET /v1/workouts", workoutsHandler.HandleList)
	s.mux.HandleFunc("POST /v1/workouts", workoutsHandler.HandleAdd)
	s.mux.HandleFunc("GET /v1/workouts/plans", workoutsHandler.HandleListPlans)
	s.mux.HandleFunc("POST /v1/workouts/plans", workoutsHandler.HandleGeneratePlan)

	// Metrics and wearables API
	metricsService := metrics.NewService(s.store, s.store, delay)
	metricsHandler := metrics.NewHandler(metricsService)
	s.mux.HandleFunc("GET /v1/metrics", metricsHandler.HandleList)
	s.mux.HandleFunc("POST /v1/metrics", metricsHandler.HandleAdd)
	s.mux.HandleFunc("GET /v1/devices", metricsHandler.HandleListDevices)
	s.mux.HandleFunc("POST /v1/devices/{id}/sync", metricsHandler.HandleSync)

	// Coach API
	coachService := coach.NewService(s.store, delay)
	coachHandler := coach.NewHandler(coachService)
	s.mux.HandleFunc("GET /v1/coach/recommendations", coachHandler.HandleListRecommendations)
	s.mux.HandleFunc("POST /v1/coach/recommendations/{id}/read", coachHandler.HandleMarkRead)
	s.mux.HandleFunc("GET /v1/coach/message", coachHandler.HandleMotivationalMessage)
	s.mux.HandleFunc("POST /v1/coach/tip", coachHandler.HandleGenerateTip)

	// Chat API
	aiProvider := ai.NewProvider(s.config.AIMode)
	chatService := chat.NewService(aiProvider, delay)
	chatHandler := chat.NewHandler(chatService)
	s.mux.HandleFunc("POST /v1/chat/messages", chatHandler.HandleSendMessage)

	// Subscription API
	billingProvider, err := billing.NewProvider(s.config.BillingMode, s.config.Stripe)
	if err != nil {
		log.Fatalf("FATAL billing: failed to initialize provider: %v", err)
	}
	subsService := subscriptions.NewService(s.store, s.store, billingProvider, delay)
	subsHandler := subscriptions.NewHandler(subsService)
	s.mux.HandleFunc("POST /v1/subscription/upgrade", subsHandler.HandleUpgrade)
	s.mux.HandleFunc("POST /v1/subscription/cancel", subsHandler.HandleCancel)
	s.mux.HandleFunc("GET /v1/subscription/features", subsHandler.HandleListFeatures)
	s.mux.HandleFunc("GET /v1/subscription/features/{id}/access", subsHandler.HandleCheckAccess)

	// Reports API
	reportsService := reports.NewService(s.store, s.store, s.store, s.store, delay)
	reportsHandler := reports.NewHandler(reportsService)
	s.mux.HandleFunc("POST /v1/reports/progress", reportsHandler.HandleGenerate)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
	})
}

// Handler returns the middleware-wrapped root handler.
// Chain (outermost first): CORS -> Rate Limit -> Router.
func (s *Server) Handler() http.Handler {
	var handler http.Handler = s.mux
	handler = RateLimitMiddleware(s.config, handler)
	handler = CORSMiddleware(s.config, handler)
	return handler
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)

	log.Printf("Server listening on http://localhost%s", addr)
	log.Printf("Health check: http://localhost%s/healthz", addr)

	return http.ListenAndServe(addr, s.Handler())
}
