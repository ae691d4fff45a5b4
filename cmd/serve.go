package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agroplan/agro-advisor/internal/planner"
	"github.com/agroplan/agro-advisor/internal/soilcheck"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API for planning requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		env, err := initEngine()
		if err != nil {
			return err
		}

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           newRouter(env),
			ReadHeaderTimeout: 5 * time.Second,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func newRouter(env *engine) http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/plan", handlePlan(env))
		r.Get("/requirements/{crop}", handleRequirements(env))
		r.Get("/market", handleMarket(env))
		r.Get("/soil", handleSoil(env))
	})

	return r
}

// requestID tags each request so log lines from one request correlate.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r)
	})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		zap.L().Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("request_id", w.Header().Get("X-Request-Id")),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}

func handlePlan(env *engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req planner.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		report, err := env.Planner.Plan(r.Context(), req)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

func handleRequirements(env *engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		crop := chi.URLParam(r, "crop")
		req, ok := env.Requirements.For(crop)
		if !ok {
			writeError(w, http.StatusNotFound, fmt.Sprintf("no requirement entry for crop %q", crop))
			return
		}
		writeJSON(w, http.StatusOK, req)
	}
}

func handleMarket(env *engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		crop := r.URL.Query().Get("crop")
		if crop == "" {
			writeError(w, http.StatusBadRequest, "crop query parameter is required")
			return
		}
		state := r.URL.Query().Get("state")

		ma := planner.ScoreMarket(env.Data.Market, crop, state)
		writeJSON(w, http.StatusOK, map[string]any{
			"crop":       crop,
			"state":      state,
			"assessment": ma,
		})
	}
}

func handleSoil(env *engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := r.URL.Query().Get("state")
		if state == "" {
			writeError(w, http.StatusBadRequest, "state query parameter is required")
			return
		}

		profile, ok := env.Data.Soil.ProfileFor(state)
		if !ok {
			writeError(w, http.StatusNotFound, fmt.Sprintf("no soil profile for state %q", state))
			return
		}

		crop := r.URL.Query().Get("crop")
		if crop == "" {
			writeJSON(w, http.StatusOK, profile)
			return
		}

		res, ok := soilcheck.Check(crop, *profile)
		if !ok {
			writeError(w, http.StatusNotFound, fmt.Sprintf("no ideal ranges tabulated for crop %q", crop))
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("write response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
