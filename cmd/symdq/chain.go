package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/symdq"
	"github.com/aretw0/symdq/internal/presentation/graph"
	"github.com/aretw0/symdq/internal/presentation/tui"
	"github.com/aretw0/symdq/pkg/chain"
)

func newChainCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chain",
		Short: "Manage and evaluate kinematic chains",
		Long: `Kinematic chains are YAML documents listing DH, screw, rotate and translate
links. Commands taking CHAIN accept either a stored chain name or a path to a
document file.`,
	}
	cmd.AddCommand(
		newChainEvalCmd(a),
		newChainTwistCmd(a),
		newChainSaveCmd(a),
		newChainShowCmd(a),
		newChainGraphCmd(a),
		newChainListCmd(a),
		newChainDeleteCmd(a),
	)
	return cmd
}

// readDocument parses a chain file. A document without a name is named
// after the file.
func readDocument(path string) (*chain.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := chain.ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if doc.Name == "" {
		doc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return doc, nil
}

// resolve returns the document at ref when ref is a file, and nil when
// ref should be looked up in the store.
func resolve(ref string) (*chain.Document, error) {
	info, err := os.Stat(ref)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", ref)
	}
	return readDocument(ref)
}

func newChainEvalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eval CHAIN",
		Short: "Compose a chain and print its dual quaternion and rigid-motion readouts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := a.engine()
			if err != nil {
				return err
			}
			doc, err := resolve(args[0])
			if err != nil {
				return err
			}
			var res *symdq.ChainResult
			if doc != nil {
				res, err = eng.EvaluateDocument(cmd.Context(), doc)
			} else {
				res, err = eng.EvaluateChain(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}
			return a.emit(cmd, res, tui.ChainMarkdown(res))
		},
	}
}

func newChainTwistCmd(a *app) *cobra.Command {
	var variable string
	cmd := &cobra.Command{
		Use:   "twist CHAIN",
		Short: "Differentiate a chain with respect to a joint variable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := a.engine()
			if err != nil {
				return err
			}
			doc, err := resolve(args[0])
			if err != nil {
				return err
			}
			var res *symdq.Result
			if doc != nil {
				res, err = eng.DocumentTwist(cmd.Context(), doc, variable)
			} else {
				res, err = eng.ChainTwist(cmd.Context(), args[0], variable)
			}
			if err != nil {
				return err
			}
			return a.emit(cmd, res, tui.DualMarkdown("Twist d/d"+variable, res))
		},
	}
	cmd.Flags().StringVar(&variable, "var", "", "Joint variable to differentiate by")
	_ = cmd.MarkFlagRequired("var")
	return cmd
}

func newChainSaveCmd(a *app) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "save FILE",
		Short: "Validate a chain document and store it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(args[0])
			if err != nil {
				return err
			}
			if name != "" {
				doc.Name = name
			}
			eng, err := a.engine()
			if err != nil {
				return err
			}
			if err := eng.SaveChain(cmd.Context(), doc); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved chain %q\n", doc.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Store under this name instead of the document's")
	return cmd
}

func newChainShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Print a stored chain document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := a.engine()
			if err != nil {
				return err
			}
			doc, err := eng.LoadChain(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			data, err := doc.Marshal()
			if err != nil {
				return err
			}
			return a.emit(cmd, doc, "```yaml\n"+string(data)+"```\n")
		},
	}
}

func newChainGraphCmd(a *app) *cobra.Command {
	var variable string
	cmd := &cobra.Command{
		Use:   "graph CHAIN",
		Short: "Print a Mermaid flowchart of a chain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := resolve(args[0])
			if err != nil {
				return err
			}
			if doc == nil {
				eng, err := a.engine()
				if err != nil {
					return err
				}
				if doc, err = eng.LoadChain(cmd.Context(), args[0]); err != nil {
					return err
				}
			}
			var overlay *graph.Overlay
			if variable != "" {
				overlay = &graph.Overlay{Variable: variable}
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(doc, overlay))
			return err
		},
	}
	cmd.Flags().StringVar(&variable, "var", "", "Highlight the links driven by this joint variable")
	return cmd
}

func newChainListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored chains",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := a.engine()
			if err != nil {
				return err
			}
			names, err := eng.ListChains(cmd.Context())
			if err != nil {
				return err
			}
			if names == nil {
				names = []string{}
			}
			var b strings.Builder
			b.WriteString("## Chains\n\n")
			if len(names) == 0 {
				b.WriteString("_none_\n")
			}
			for _, n := range names {
				fmt.Fprintf(&b, "- %s\n", n)
			}
			return a.emit(cmd, names, b.String())
		},
	}
}

func newChainDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Remove a stored chain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := a.engine()
			if err != nil {
				return err
			}
			if err := eng.DeleteChain(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted chain %q\n", args[0])
			return nil
		},
	}
}
