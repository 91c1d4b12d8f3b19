package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/aretw0/symdq"
	"github.com/aretw0/symdq/pkg/cas"
	"github.com/aretw0/symdq/pkg/chain"
	"github.com/aretw0/symdq/pkg/dualquat"
	"github.com/aretw0/symdq/pkg/ports"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// Engine is the subset of *symdq.Engine the server needs.
type Engine interface {
	Screw(ctx context.Context, p symdq.ScrewParams) (*symdq.Result, error)
	Transform(ctx context.Context, m symdq.Motion, point symdq.Vector3) (*symdq.PointResult, error)
	Norm(ctx context.Context, m symdq.Motion) (*symdq.Result, error)
	IsUnit(ctx context.Context, m symdq.Motion) (*symdq.UnitResult, error)
	Add(ctx context.Context, operands ...symdq.Operand) (*symdq.OperandResult, error)
	Multiply(ctx context.Context, operands ...symdq.Operand) (*symdq.OperandResult, error)
	SaveChain(ctx context.Context, doc *chain.Document) error
	LoadChain(ctx context.Context, name string) (*chain.Document, error)
	ListChains(ctx context.Context) ([]string, error)
	DeleteChain(ctx context.Context, name string) error
	EvaluateChain(ctx context.Context, name string) (*symdq.ChainResult, error)
	ChainTwist(ctx context.Context, name, variable string) (*symdq.Result, error)
}

var _ Engine = (*symdq.Engine)(nil)

// TransformRequest is the body of POST /v1/transform.
type TransformRequest struct {
	Motion symdq.Motion  `json:"motion"`
	Point  symdq.Vector3 `json:"point"`
}

// OperandsRequest is the body of POST /v1/add and POST /v1/mul.
type OperandsRequest struct {
	Operands []symdq.Operand `json:"operands"`
}

// TwistRequest is the body of POST /v1/chains/{name}/twist.
type TwistRequest struct {
	Variable string `json:"variable"`
}

// ChainList is the response of GET /v1/chains.
type ChainList struct {
	Chains []string `json:"chains"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Server exposes an Engine over JSON.
type Server struct {
	Engine  Engine
	metrics http.Handler
	logger  *slog.Logger
}

// Option configures the handler.
type Option func(*Server)

// WithMetrics mounts h at GET /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// WithLogger sets the logger used for request failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates the HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	s := &Server{Engine: engine, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	r.Get("/healthz", s.GetHealth)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}

	r.Route("/v1", func(r chi.Router) {
		r.Get("/info", s.GetInfo)
		r.Post("/screw", s.Screw)
		r.Post("/transform", s.Transform)
		r.Post("/unit", s.IsUnit)
		r.Post("/norm", s.Norm)
		r.Post("/add", s.Add)
		r.Post("/mul", s.Multiply)

		r.Get("/chains", s.ListChains)
		r.Route("/chains/{name}", func(r chi.Router) {
			r.Put("/", s.PutChain)
			r.Get("/", s.GetChain)
			r.Delete("/", s.DeleteChain)
			r.Post("/evaluate", s.EvaluateChain)
			r.Post("/twist", s.Twist)
		})
	})
	return r
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Screw handles POST /v1/screw.
func (s *Server) Screw(w http.ResponseWriter, r *http.Request) {
	var body symdq.ScrewParams
	if !s.decode(w, r, &body) {
		return
	}
	res, err := s.Engine.Screw(r.Context(), body)
	s.respond(w, r, res, err)
}

// Transform handles POST /v1/transform.
func (s *Server) Transform(w http.ResponseWriter, r *http.Request) {
	var body TransformRequest
	if !s.decode(w, r, &body) {
		return
	}
	res, err := s.Engine.Transform(r.Context(), body.Motion, body.Point)
	s.respond(w, r, res, err)
}

// IsUnit handles POST /v1/unit.
func (s *Server) IsUnit(w http.ResponseWriter, r *http.Request) {
	var body symdq.Motion
	if !s.decode(w, r, &body) {
		return
	}
	res, err := s.Engine.IsUnit(r.Context(), body)
	s.respond(w, r, res, err)
}

// Norm handles POST /v1/norm.
func (s *Server) Norm(w http.ResponseWriter, r *http.Request) {
	var body symdq.Motion
	if !s.decode(w, r, &body) {
		return
	}
	res, err := s.Engine.Norm(r.Context(), body)
	s.respond(w, r, res, err)
}

// Add handles POST /v1/add.
func (s *Server) Add(w http.ResponseWriter, r *http.Request) {
	var body OperandsRequest
	if !s.decode(w, r, &body) {
		return
	}
	res, err := s.Engine.Add(r.Context(), body.Operands...)
	s.respond(w, r, res, err)
}

// Multiply handles POST /v1/mul.
func (s *Server) Multiply(w http.ResponseWriter, r *http.Request) {
	var body OperandsRequest
	if !s.decode(w, r, &body) {
		return
	}
	res, err := s.Engine.Multiply(r.Context(), body.Operands...)
	s.respond(w, r, res, err)
}

// ListChains handles GET /v1/chains.
func (s *Server) ListChains(w http.ResponseWriter, r *http.Request) {
	names, err := s.Engine.ListChains(r.Context())
	if names == nil {
		names = []string{}
	}
	s.respond(w, r, ChainList{Chains: names}, err)
}

// PutChain handles PUT /v1/chains/{name}. The body is a chain document in
// JSON or YAML; the name in the path wins over the one in the document.
func (s *Server) PutChain(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, err)
		return
	}
	doc, err := chain.ParseDocument(data)
	if err != nil {
		s.respond(w, r, nil, err)
		return
	}
	doc.Name = chi.URLParam(r, "name")
	if err := s.Engine.SaveChain(r.Context(), doc); err != nil {
		s.respond(w, r, nil, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetChain handles GET /v1/chains/{name}.
func (s *Server) GetChain(w http.ResponseWriter, r *http.Request) {
	doc, err := s.Engine.LoadChain(r.Context(), chi.URLParam(r, "name"))
	s.respond(w, r, doc, err)
}

// DeleteChain handles DELETE /v1/chains/{name}.
func (s *Server) DeleteChain(w http.ResponseWriter, r *http.Request) {
	if err := s.Engine.DeleteChain(r.Context(), chi.URLParam(r, "name")); err != nil {
		s.respond(w, r, nil, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// EvaluateChain handles POST /v1/chains/{name}/evaluate.
func (s *Server) EvaluateChain(w http.ResponseWriter, r *http.Request) {
	res, err := s.Engine.EvaluateChain(r.Context(), chi.URLParam(r, "name"))
	s.respond(w, r, res, err)
}

// Twist handles POST /v1/chains/{name}/twist.
func (s *Server) Twist(w http.ResponseWriter, r *http.Request) {
	var body TwistRequest
	if !s.decode(w, r, &body) {
		return
	}
	res, err := s.Engine.ChainTwist(r.Context(), chi.URLParam(r, "name"), body.Variable)
	s.respond(w, r, res, err)
}

// GetHealth handles GET /healthz.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles GET /v1/info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":     "symdq-http",
		"version": symdq.Version,
	})
}

// -- Helpers --

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		s.fail(w, r, http.StatusBadRequest, err)
		return false
	}
	return true
}

func (s *Server) respond(w http.ResponseWriter, r *http.Request, v any, err error) {
	if err != nil {
		s.fail(w, r, StatusFor(err), err)
		return
	}
	s.writeJSON(w, http.StatusOK, v)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	} else {
		s.logger.DebugContext(r.Context(), "request rejected", "path", r.URL.Path, "status", status, "error", err)
	}
	s.writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}

// StatusFor maps engine errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ports.ErrChainNotFound):
		return http.StatusNotFound
	case errors.Is(err, symdq.ErrInvalidInput),
		errors.Is(err, symdq.ErrUnknownDomain),
		errors.Is(err, chain.ErrInvalidDocument),
		errors.Is(err, ports.ErrInvalidName),
		errors.Is(err, cas.ErrSyntax),
		errors.Is(err, cas.ErrDivision),
		errors.Is(err, cas.ErrTooLarge):
		return http.StatusBadRequest
	case errors.Is(err, dualquat.ErrInvalidScrew),
		errors.Is(err, dualquat.ErrOperand),
		errors.Is(err, dualquat.ErrNotDifferentiable),
		errors.Is(err, cas.ErrUnbound):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
