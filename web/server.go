package web

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"worldcup-service/config"
	"worldcup-service/logger"
	"worldcup-service/metrics"
	"worldcup-service/services"
)

type Server struct {
	config     *config.Config
	stats      *services.StatsService
	wsHub      *Hub
	httpServer *http.Server
	upgrader   websocket.Upgrader
}

func NewServer(cfg *config.Config, stats *services.StatsService, hub *Hub) *Server {
	return &Server{
		config: cfg,
		stats:  stats,
		wsHub:  hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // local dashboard, no origin restriction
			},
		},
	}
}

func (s *Server) Start() error {
	router := mux.NewRouter()
	router.Use(s.metricsMiddleware)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
	api.HandleFunc("/tournaments", s.handleListTournaments).Methods("GET")
	api.HandleFunc("/tournaments/{year}", s.handleTournamentSummary).Methods("GET")
	api.HandleFunc("/tournaments/{year}/matches", s.handleTournamentMatches).Methods("GET")
	api.HandleFunc("/tournaments/{year}/golden-boot", s.handleGoldenBoot).Methods("GET")
	api.HandleFunc("/teams", s.handleListTeams).Methods("GET")
	api.HandleFunc("/teams/{team}/journey", s.handleTeamJourney).Methods("GET")
	api.HandleFunc("/head-to-head", s.handleHeadToHead).Methods("GET")
	api.HandleFunc("/placements", s.handlePlacements).Methods("GET")
	api.HandleFunc("/map", s.handleMapData).Methods("GET")
	api.HandleFunc("/flags/{team}", s.handleFlag).Methods("GET")

	router.Handle("/metrics", promhttp.Handler())

	router.HandleFunc("/ws", s.handleWebSocket)

	router.PathPrefix("/").Handler(http.FileServer(http.Dir(s.config.StaticDir)))

	c := cors.New(cors.Options{
		AllowedOrigins:   s.config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	handler := c.Handler(router)

	s.httpServer = &http.Server{
		Addr:         ":" + s.config.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		logger.Errorf("Server shutdown error: %v", err)
	}
}

// statusRecorder captures the status code for the request metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := r.URL.Path
		if current := mux.CurrentRoute(r); current != nil {
			if tpl, err := current.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		metrics.HTTPRequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(rec.status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

// handleWebSocket upgrades the connection and hands the client to the hub.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Errorf("WebSocket upgrade error: %v", err)
		return
	}

	client := newClient(s.wsHub, conn)
	client.hub.register <- client

	go client.writePump()
	go client.readPump()
}
