package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/symdq"
	"github.com/aretw0/symdq/internal/logging"
	"github.com/aretw0/symdq/internal/presentation/tui"
	"github.com/aretw0/symdq/pkg/adapters/file"
	"github.com/aretw0/symdq/pkg/adapters/redis"
	"github.com/aretw0/symdq/pkg/ports"
	"github.com/aretw0/symdq/pkg/scalar"
)

// app holds the persistent flags shared by every command.
type app struct {
	domain      string
	tolerance   float64
	logLevel    string
	storeDir    string
	redisAddr   string
	redisPrefix string
	bindings    map[string]string
	plain       bool
	jsonOut     bool

	logger *slog.Logger
	closer io.Closer
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "symdq",
		Short: "symdq is a symbolic and numeric dual-quaternion calculator",
		Long: `symdq builds and manipulates dual quaternions over symbolic expressions or
float64 values: screw motions, point transforms, unit checks and kinematic chains.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(a.logLevel)
			if err != nil {
				return err
			}
			a.logger = logging.New(level)
			slog.SetDefault(a.logger)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.closer != nil {
				return a.closer.Close()
			}
			return nil
		},
	}

	// Persistent flags (available to all commands)
	pf := root.PersistentFlags()
	pf.StringVar(&a.domain, "domain", symdq.DomainSymbolic, "Scalar domain: 'symbolic' or 'numeric'")
	pf.Float64Var(&a.tolerance, "tolerance", scalar.DefaultTolerance, "Equality tolerance of the numeric domain")
	pf.StringVar(&a.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	pf.StringVar(&a.storeDir, "store", file.DefaultPath, "Directory of the chain store")
	pf.StringVar(&a.redisAddr, "redis", "", "Redis address; when set, chains are stored in redis instead of --store")
	pf.StringVar(&a.redisPrefix, "redis-prefix", redis.DefaultPrefix, "Key prefix of the redis chain store")
	pf.StringToStringVar(&a.bindings, "bind", nil, "Numeric symbol values, e.g. --bind x=2,l1=pi/4")
	pf.BoolVar(&a.plain, "plain", false, "Print plain markdown without terminal styling")
	pf.BoolVar(&a.jsonOut, "json", false, "Print results as JSON")

	root.AddCommand(
		newVersionCmd(),
		newScrewCmd(a),
		newTransformCmd(a),
		newUnitCmd(a),
		newNormCmd(a),
		newArithCmd(a, symdq.OpAdd),
		newArithCmd(a, symdq.OpMultiply),
		newChainCmd(a),
		newServeCmd(a),
		newMCPCmd(a),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func (a *app) store() (ports.ChainStore, error) {
	if a.redisAddr == "" {
		return file.New(a.storeDir), nil
	}
	s := redis.New(a.redisAddr, os.Getenv("SYMDQ_REDIS_PASSWORD"), 0, redis.WithPrefix(a.redisPrefix))
	a.closer = s
	return s, nil
}

func (a *app) engine(opts ...symdq.Option) (*symdq.Engine, error) {
	bindings, err := a.parseBindings()
	if err != nil {
		return nil, err
	}
	st, err := a.store()
	if err != nil {
		return nil, err
	}
	base := []symdq.Option{
		symdq.WithDomain(a.domain),
		symdq.WithTolerance(a.tolerance),
		symdq.WithBindings(bindings),
		symdq.WithStore(st),
		symdq.WithLogger(a.logger),
	}
	return symdq.New(append(base, opts...)...)
}

// parseBindings evaluates each --bind value, so constants such as pi/4
// are accepted.
func (a *app) parseBindings() (map[string]float64, error) {
	if len(a.bindings) == 0 {
		return nil, nil
	}
	f := scalar.NewFloat()
	out := make(map[string]float64, len(a.bindings))
	for k, v := range a.bindings {
		x, err := f.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("--bind %s: %w", k, err)
		}
		out[k] = x
	}
	return out, nil
}

// emit prints v as JSON or its markdown rendering.
func (a *app) emit(cmd *cobra.Command, v any, markdown string) error {
	out := cmd.OutOrStdout()
	if a.jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	render := tui.NewRenderer(a.plain || !isTerminal(out))
	s, err := render(markdown)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, s)
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
