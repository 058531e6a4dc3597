package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/dispute"
	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/letter"
	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/model"
	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		env, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: newRouter(env, cfg.Server.AllowedOrigins),
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

func newRouter(env *environment, allowedOrigins []string) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/parse", handleParse(env))
	r.Get("/reports", handleListReports(env))
	r.Post("/disputes/validate", handleValidateDispute())
	r.Post("/letters/score", handleScoreLetter())

	return r
}

func handleParse(env *environment) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Document string `json:"document"`
			Vendor   string `json:"vendor,omitempty"`
			Source   string `json:"source,omitempty"`
			Save     bool   `json:"save,omitempty"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Document == "" {
			writeError(w, http.StatusBadRequest, "document is required")
			return
		}
		if max := cfg.Parser.MaxDocumentBytes; max > 0 && len(req.Document) > max {
			req.Document = req.Document[:max]
		}

		var vendor model.Vendor
		var data *model.ParsedCreditData
		if req.Vendor != "" {
			parser, err := env.Registry.Get(model.Vendor(req.Vendor))
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			vendor = parser.Vendor()
			data = parser.Parse(req.Document)
		} else {
			var err error
			vendor, data, err = env.Registry.ParseAuto(req.Document)
			if err != nil {
				writeError(w, http.StatusInternalServerError, err.Error())
				return
			}
		}

		rec := &model.ReportRecord{Vendor: vendor, Source: req.Source, Data: data}
		if req.Save {
			saved, err := env.Store.SaveReport(r.Context(), vendor, req.Source, data)
			if err != nil {
				zap.L().Error("save report", zap.Error(err))
				writeError(w, http.StatusInternalServerError, "failed to save report")
				return
			}
			rec = saved
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

func handleListReports(env *environment) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := store.ReportFilter{
			Vendor: model.Vendor(r.URL.Query().Get("vendor")),
		}
		records, err := env.Store.ListReports(r.Context(), filter)
		if err != nil {
			zap.L().Error("list reports", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to list reports")
			return
		}
		writeJSON(w, http.StatusOK, records)
	}
}

func handleValidateDispute() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ReasonCodes []string `json:"reason_codes"`
			EvidenceIDs []string `json:"evidence_ids"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if len(req.ReasonCodes) == 0 {
			writeError(w, http.StatusBadRequest, "reason_codes is required")
			return
		}

		writeJSON(w, http.StatusOK, struct {
			dispute.ValidationResult
			RiskLevel    dispute.RiskTier             `json:"risk_level"`
			Requirements dispute.EvidenceRequirements `json:"requirements"`
		}{
			ValidationResult: dispute.ValidateEvidence(req.ReasonCodes, req.EvidenceIDs),
			RiskLevel:        dispute.RiskLevelForCodes(req.ReasonCodes),
			Requirements:     dispute.RequiredEvidence(req.ReasonCodes),
		})
	}
}

func handleScoreLetter() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Analyses      []letter.Analysis `json:"analyses"`
			HasEvidence   bool              `json:"has_evidence"`
			EvidenceCount int               `json:"evidence_count"`
			Round         int               `json:"round"`
			Methodology   string            `json:"methodology"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		score := letter.CalculateStrength(req.Analyses, req.HasEvidence, req.EvidenceCount, req.Round, req.Methodology)
		writeJSON(w, http.StatusOK, score)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
