package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/screening-cli/internal/ingest"
	"github.com/sells-group/screening-cli/internal/model"
	"github.com/sells-group/screening-cli/internal/pipeline"
	"github.com/sells-group/screening-cli/internal/report"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the PDF upload and screening server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		extractor, err := ingest.NewExtractor(cfg.Ingest)
		if err != nil {
			return err
		}
		pipe := pipeline.New(cfg)

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: newRouter(extractor, pipe),
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			_ = srv.Shutdown(ctx)
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

// newRouter wires the chi router: request logging, panic recovery, CORS,
// upload rate limiting, and the two endpoints.
func newRouter(extractor ingest.Extractor, pipe *pipeline.Pipeline) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(logRequests)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST"},
	}))

	limiter := rate.NewLimiter(rate.Limit(cfg.Server.RateLimit), cfg.Server.RateBurst)

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.With(rateLimit(limiter)).Post("/screen", screenHandler(extractor, pipe))

	return r
}

// logRequests logs one line per request with status and duration.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		next.ServeHTTP(ww, req)
		zap.L().Info("request",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(req.Context())),
		)
	})
}

// rateLimit rejects requests beyond the configured upload rate.
func rateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if !limiter.Allow() {
				writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "too many requests"})
				return
			}
			next.ServeHTTP(w, req)
		})
	}
}

// screenResponse is the JSON envelope for a successful screening run.
type screenResponse struct {
	RunID   string                `json:"run_id"`
	Count   int                   `json:"count"`
	Results []model.CompanyRecord `json:"results"`
	Report  string                `json:"report,omitempty"`
	Stats   pipeline.RunStats     `json:"stats"`
}

// screenHandler accepts a multipart PDF upload plus weight form values,
// runs the pipeline synchronously under the request context, and returns
// the ranked records. All user-facing error strings live here; the
// pipeline itself only ever returns data.
func screenHandler(extractor ingest.Extractor, pipe *pipeline.Pipeline) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		maxBytes := int64(cfg.Server.MaxUploadMB) << 20
		req.Body = http.MaxBytesReader(w, req.Body, maxBytes)

		if err := req.ParseMultipartForm(maxBytes); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "no file selected"})
			return
		}

		file, header, err := req.FormFile("pdf")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "no file selected"})
			return
		}
		defer file.Close()

		if !strings.EqualFold(filepath.Ext(header.Filename), ".pdf") {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "only PDF files allowed"})
			return
		}

		tmpPath, err := saveUpload(file)
		if err != nil {
			zap.L().Error("serve: save upload", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to store upload"})
			return
		}
		defer os.Remove(tmpPath)

		text, err := extractor.ExtractText(req.Context(), tmpPath)
		if err != nil {
			zap.L().Error("serve: extract text",
				zap.String("file", header.Filename),
				zap.Error(err),
			)
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "could not read PDF text"})
			return
		}

		weights := weightsFromForm(req)
		limit := 0
		if v := req.FormValue("limit"); v != "" {
			if n, convErr := strconv.Atoi(v); convErr == nil {
				limit = n
			}
		}

		result := pipe.Run(text, weights, limit)

		resp := screenResponse{
			RunID:   result.RunID,
			Count:   len(result.Records),
			Results: result.Records,
			Stats:   result.Stats,
		}
		if req.FormValue("report") == "markdown" || req.URL.Query().Get("report") == "markdown" {
			resp.Report = report.Markdown(result.Records, weights)
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// weightsFromForm reads the weight form values, defaulting each to 1, and
// the repeated industry selections.
func weightsFromForm(req *http.Request) model.Weights {
	w := model.DefaultWeights()
	w.Revenue = formWeight(req, "revenue_weight")
	w.Growth = formWeight(req, "growth_weight")
	w.Profitability = formWeight(req, "profitability_weight")
	w.Industry = formWeight(req, "industry_weight")
	w.Size = formWeight(req, "size_weight")
	w.SelectedIndustries = req.Form["industry"]
	return w.Normalize()
}

func formWeight(req *http.Request, key string) float64 {
	v := req.FormValue(key)
	if v == "" {
		return 1
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 1
	}
	return f
}

// saveUpload spools the uploaded file to a temp path for the extractor,
// which works on files rather than streams.
func saveUpload(src io.Reader) (string, error) {
	tmp, err := os.CreateTemp("", "screening-*.pdf")
	if err != nil {
		return "", eris.Wrap(err, "create temp file")
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, src); err != nil {
		os.Remove(tmp.Name())
		return "", eris.Wrap(err, "spool upload")
	}
	return tmp.Name(), nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
