package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathcost/grid"
	"github.com/katalvlaran/pathcost/pathstate"
	"github.com/katalvlaran/pathcost/report"
	"github.com/katalvlaran/pathcost/sweep"
	"github.com/katalvlaran/pathcost/textgrid"
)

// Route paths.
const (
	URISolve   = "/solve"
	URISession = "/ws"
	URIMetrics = "/metrics"
	URIHealth  = "/healthz"
)

const (
	transportHTTP = "http"
	transportWS   = "ws"

	shutdownTimeout = 5 * time.Second
)

// Server routes solve requests to the sweep.
type Server struct {
	cfg      Config
	log      logrus.FieldLogger
	router   *way.Router
	upgrader *websocket.Upgrader
	registry *prometheus.Registry
	metrics  *metrics
}

// New validates cfg and wires the routes.
func New(cfg Config, log logrus.FieldLogger) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	reg := prometheus.NewRegistry()
	s := &Server{
		cfg:      cfg,
		log:      log,
		upgrader: &websocket.Upgrader{},
		registry: reg,
		metrics:  newMetrics(reg),
	}
	s.routes()

	return s, nil
}

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("POST", URISolve, s.HandleSolve())
	s.router.HandleFunc("GET", URISession, s.HandleSession())
	s.router.Handle("GET", URIMetrics, promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	s.router.HandleFunc("GET", URIHealth, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok\n")
	})
}

// Handler returns the routed handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on cfg.Addr until ctx is done, then shuts down.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Warnf("shutdown: %v", err)
		}
	}()

	s.log.WithField("addr", s.cfg.Addr).Info("listening")
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		<-done
		return nil
	}

	return err
}

// HandleSolve answers POST /solve.
func (s *Server) HandleSolve() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format, err := requestFormat(r)
		if err != nil {
			writeError(w, report.FormatText, http.StatusBadRequest, err)
			return
		}
		cfg, err := s.requestConfig(r)
		if err != nil {
			writeError(w, format, http.StatusBadRequest, err)
			return
		}

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
		if err != nil {
			var tooBig *http.MaxBytesError
			if errors.As(err, &tooBig) {
				writeError(w, format, http.StatusRequestEntityTooLarge, err)
				return
			}
			writeError(w, format, http.StatusBadRequest, err)
			return
		}

		res, err := s.solve(transportHTTP, string(body), cfg)
		if err != nil {
			writeError(w, format, statusFor(err), err)
			return
		}
		if format == report.FormatJSON {
			w.Header().Set("Content-Type", "application/json")
		} else {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		}
		if err := report.Write(w, res, format); err != nil {
			s.log.Warnf("HandleSolve write: %v", err)
		}
	}
}

// sessionReply is one websocket answer; exactly one field is set.
type sessionReply struct {
	Result *report.Document `json:"result,omitempty"`
	Error  string           `json:"error,omitempty"`
}

// HandleSession upgrades GET /ws and solves one grid per text message
// until the client goes away.
func (s *Server) HandleSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := s.log.WithField("remote", r.RemoteAddr)
		con, err := s.upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Warnf("HandleSession websocket upgrade err %v", err)
			return
		}
		defer con.Close()
		con.SetReadLimit(s.cfg.MaxBodyBytes)
		log.Info("HandleSession started")

		for {
			messageType, data, err := con.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					log.Warnf("HandleSession read: %v", err)
				}
				break
			}

			var reply sessionReply
			if messageType != websocket.TextMessage {
				reply.Error = "expected a text message"
			} else if res, err := s.solve(transportWS, string(data), s.cfg); err != nil {
				reply.Error = err.Error()
			} else {
				doc := report.NewDocument(res)
				reply.Result = &doc
			}
			if err := con.WriteJSON(reply); err != nil {
				log.Warnf("HandleSession write: %v", err)
				break
			}
		}
		log.Info("HandleSession ended")
	}
}

// solve runs one request through parse, grid and sweep, recording metrics
// and a log entry.
func (s *Server) solve(transport, text string, cfg Config) (pathstate.Result, error) {
	start := time.Now()
	log := s.log.WithField("transport", transport)

	res, rows, cols, err := run(text, cfg)
	elapsed := time.Since(start)
	log = log.WithFields(logrus.Fields{"rows": rows, "cols": cols, "elapsed": elapsed})
	if err != nil {
		s.metrics.observe(transport, outcomeError, elapsed, rows*cols)
		log.WithError(err).Warn("solve rejected")
		return pathstate.Result{}, err
	}

	outcome := outcomeFailure
	if res.Success {
		outcome = outcomeSuccess
	}
	s.metrics.observe(transport, outcome, elapsed, rows*cols)
	log.WithFields(logrus.Fields{"total": res.TotalCost, "success": res.Success}).Debug("solved")

	return res, nil
}

func run(text string, cfg Config) (res pathstate.Result, rows, cols int, err error) {
	table, err := textgrid.ParseString(text)
	if err != nil {
		return res, 0, 0, err
	}
	g, err := grid.New(table)
	if err != nil {
		return res, 0, 0, err
	}
	res, err = sweep.Find(g, cfg.options()...)

	return res, g.Rows(), g.Cols(), err
}

// requestConfig applies ?threshold= and ?truncate= over the server config.
func (s *Server) requestConfig(r *http.Request) (Config, error) {
	cfg := s.cfg
	q := r.URL.Query()
	if v := q.Get("threshold"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("threshold %q: %w", v, err)
		}
		cfg.Threshold = n
	}
	if v := q.Get("truncate"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("truncate %q: %w", v, err)
		}
		cfg.Truncate = b
	}

	return cfg, nil
}

// requestFormat picks ?format= first, then the Accept header.
func requestFormat(r *http.Request) (report.Format, error) {
	if v := r.URL.Query().Get("format"); v != "" {
		return report.ParseFormat(v)
	}
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		return report.FormatJSON, nil
	}

	return report.FormatText, nil
}

// statusFor maps input errors to 400 and everything else to 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, textgrid.ErrEmptyInput),
		errors.Is(err, textgrid.ErrBadNumber),
		errors.Is(err, textgrid.ErrSyntax),
		errors.Is(err, grid.ErrMalformedInput),
		errors.Is(err, sweep.ErrEmptyGrid):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, format report.Format, code int, err error) {
	if format == report.FormatJSON {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(sessionReply{Error: err.Error()})
		return
	}
	http.Error(w, err.Error(), code)
}
