package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/symdq"
	"github.com/aretw0/symdq/pkg/chain"
)

// Engine is the subset of *symdq.Engine exposed as MCP tools.
type Engine interface {
	Screw(ctx context.Context, p symdq.ScrewParams) (*symdq.Result, error)
	Transform(ctx context.Context, m symdq.Motion, point symdq.Vector3) (*symdq.PointResult, error)
	IsUnit(ctx context.Context, m symdq.Motion) (*symdq.UnitResult, error)
	EvaluateChain(ctx context.Context, name string) (*symdq.ChainResult, error)
	EvaluateDocument(ctx context.Context, doc *chain.Document) (*symdq.ChainResult, error)
	ChainTwist(ctx context.Context, name, variable string) (*symdq.Result, error)
	DocumentTwist(ctx context.Context, doc *chain.Document, variable string) (*symdq.Result, error)
}

var _ Engine = (*symdq.Engine)(nil)

// TransformArgs are the arguments of transform_point.
type TransformArgs struct {
	Motion symdq.Motion  `mapstructure:"motion"`
	Point  symdq.Vector3 `mapstructure:"point"`
}

// MotionArgs are the arguments of is_unit.
type MotionArgs struct {
	Motion symdq.Motion `mapstructure:"motion"`
}

// ChainArgs select a stored chain by name or pass a document inline.
type ChainArgs struct {
	Name     string         `mapstructure:"name"`
	Document map[string]any `mapstructure:"document"`
	Variable string         `mapstructure:"variable"`
}

// Server wraps the symdq Engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("symdq-mcp", symdq.Version),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops when
// ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		slog.Info("Shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

var stringItems = mcp.Items(map[string]any{"type": "string"})

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("from_screw",
		mcp.WithDescription("Build the unit dual quaternion of a screw motion: rotation theta about the line with unit direction l and moment m, translation d along l."),
		mcp.WithArray("l", mcp.Required(), stringItems, mcp.Description("Unit axis direction, three expressions")),
		mcp.WithArray("m", mcp.Required(), stringItems, mcp.Description("Axis moment p x l, three expressions")),
		mcp.WithString("theta", mcp.Required(), mcp.Description("Rotation angle expression")),
		mcp.WithString("d", mcp.Description("Translation along the axis (default 0)")),
		mcp.WithOutputSchema[symdq.Result](),
	), mcp.NewStructuredToolHandler(s.handleFromScrew))

	s.mcpServer.AddTool(mcp.NewTool("transform_point",
		mcp.WithDescription("Apply a rigid motion, given as {dual: {real, dual}} or {screw: {l, m, theta, d}}, to a point."),
		mcp.WithObject("motion", mcp.Required(), mcp.Description("The motion")),
		mcp.WithArray("point", mcp.Required(), stringItems, mcp.Description("Point, three expressions")),
		mcp.WithOutputSchema[symdq.PointResult](),
	), mcp.NewStructuredToolHandler(s.handleTransform))

	s.mcpServer.AddTool(mcp.NewTool("is_unit",
		mcp.WithDescription("Report whether a dual quaternion has unit norm."),
		mcp.WithObject("motion", mcp.Required(), mcp.Description("{dual: {real, dual}} or {screw: {l, m, theta, d}}")),
		mcp.WithOutputSchema[symdq.UnitResult](),
	), mcp.NewStructuredToolHandler(s.handleIsUnit))

	s.mcpServer.AddTool(mcp.NewTool("evaluate_chain",
		mcp.WithDescription("Compose a kinematic chain, stored by name or passed inline as a document."),
		mcp.WithString("name", mcp.Description("Name of a stored chain")),
		mcp.WithObject("document", mcp.Description("Inline chain document (name, domain, bindings, links)")),
		mcp.WithOutputSchema[symdq.ChainResult](),
	), mcp.NewStructuredToolHandler(s.handleEvaluateChain))

	s.mcpServer.AddTool(mcp.NewTool("chain_twist",
		mcp.WithDescription("Differentiate a chain with respect to one joint variable and return its twist."),
		mcp.WithString("name", mcp.Description("Name of a stored chain")),
		mcp.WithObject("document", mcp.Description("Inline chain document")),
		mcp.WithString("variable", mcp.Required(), mcp.Description("Joint variable")),
		mcp.WithOutputSchema[symdq.Result](),
	), mcp.NewStructuredToolHandler(s.handleChainTwist))
}

// decodeArgs converts loosely typed tool arguments; numbers are accepted
// where expressions are expected.
func decodeArgs(args map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(args); err != nil {
		return fmt.Errorf("%w: %v", symdq.ErrInvalidInput, err)
	}
	return nil
}

func (s *Server) handleFromScrew(ctx context.Context, _ mcp.CallToolRequest, args map[string]any) (symdq.Result, error) {
	var p symdq.ScrewParams
	if err := decodeArgs(args, &p); err != nil {
		return symdq.Result{}, err
	}
	res, err := s.engine.Screw(ctx, p)
	if err != nil {
		return symdq.Result{}, fmt.Errorf("from_screw failed: %w", err)
	}
	return *res, nil
}

func (s *Server) handleTransform(ctx context.Context, _ mcp.CallToolRequest, args map[string]any) (symdq.PointResult, error) {
	var a TransformArgs
	if err := decodeArgs(args, &a); err != nil {
		return symdq.PointResult{}, err
	}
	res, err := s.engine.Transform(ctx, a.Motion, a.Point)
	if err != nil {
		return symdq.PointResult{}, fmt.Errorf("transform_point failed: %w", err)
	}
	return *res, nil
}

func (s *Server) handleIsUnit(ctx context.Context, _ mcp.CallToolRequest, args map[string]any) (symdq.UnitResult, error) {
	var a MotionArgs
	if err := decodeArgs(args, &a); err != nil {
		return symdq.UnitResult{}, err
	}
	res, err := s.engine.IsUnit(ctx, a.Motion)
	if err != nil {
		return symdq.UnitResult{}, fmt.Errorf("is_unit failed: %w", err)
	}
	return *res, nil
}

// document resolves the inline document of a, or nil when a names a
// stored chain.
func (a ChainArgs) document() (*chain.Document, error) {
	switch {
	case a.Document != nil && a.Name == "":
		return chain.DecodeDocument(a.Document)
	case a.Document == nil && a.Name != "":
		return nil, nil
	}
	return nil, &symdq.InputError{Field: "name", Err: fmt.Errorf("exactly one of name or document must be set")}
}

func (s *Server) handleEvaluateChain(ctx context.Context, _ mcp.CallToolRequest, args map[string]any) (symdq.ChainResult, error) {
	var a ChainArgs
	if err := decodeArgs(args, &a); err != nil {
		return symdq.ChainResult{}, err
	}
	doc, err := a.document()
	if err != nil {
		return symdq.ChainResult{}, err
	}
	var res *symdq.ChainResult
	if doc != nil {
		res, err = s.engine.EvaluateDocument(ctx, doc)
	} else {
		res, err = s.engine.EvaluateChain(ctx, a.Name)
	}
	if err != nil {
		return symdq.ChainResult{}, fmt.Errorf("evaluate_chain failed: %w", err)
	}
	return *res, nil
}

func (s *Server) handleChainTwist(ctx context.Context, _ mcp.CallToolRequest, args map[string]any) (symdq.Result, error) {
	var a ChainArgs
	if err := decodeArgs(args, &a); err != nil {
		return symdq.Result{}, err
	}
	doc, err := a.document()
	if err != nil {
		return symdq.Result{}, err
	}
	var res *symdq.Result
	if doc != nil {
		res, err = s.engine.DocumentTwist(ctx, doc, a.Variable)
	} else {
		res, err = s.engine.ChainTwist(ctx, a.Name, a.Variable)
	}
	if err != nil {
		return symdq.Result{}, fmt.Errorf("chain_twist failed: %w", err)
	}
	return *res, nil
}
