package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/symdq"
	"github.com/aretw0/symdq/pkg/ports"
)

const wristYAML = `name: wrist
links:
  - rotate: {axis: [0, 0, 1], angle: theta}
  - translate: [l1, 0, 0]
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--store", filepath.Join(t.TempDir(), "chains")}, args...))
	err := root.Execute()
	return out.String(), err
}

func runIn(t *testing.T, store string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--store", store}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "symdq version "+symdq.Version+"\n", out)
}

func TestScrewCommand(t *testing.T) {
	out, err := run(t, "--json", "screw", "--l", "0,0,1", "--m", "0,-x,0", "--theta", "theta")
	require.NoError(t, err)

	var res symdq.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "cos(1/2*theta)", res.Real[0])

	out, err = run(t, "--plain", "screw", "--l", "0,0,1", "--theta", "theta")
	require.NoError(t, err)
	assert.Contains(t, out, "## Screw motion")
	assert.Contains(t, out, "`sin(1/2*theta)`")

	_, err = run(t, "screw", "--l", "0,1", "--theta", "theta")
	assert.ErrorContains(t, err, "--l needs 3 components")
}

func TestTransformAndUnitCommands(t *testing.T) {
	out, err := run(t, "--json", "--domain", "numeric", "transform",
		"--l", "0,0,1", "--theta", "pi", "--point", "1,0,0")
	require.NoError(t, err)
	var pt symdq.PointResult
	require.NoError(t, json.Unmarshal([]byte(out), &pt))
	assert.Equal(t, "numeric", pt.Domain)

	out, err = run(t, "--json", "unit", "--real", "a,b,c,d")
	require.NoError(t, err)
	var unit symdq.UnitResult
	require.NoError(t, json.Unmarshal([]byte(out), &unit))
	assert.False(t, unit.Unit)

	_, err = run(t, "unit")
	assert.ErrorContains(t, err, "either --real or --l is required")
}

func TestArithCommands(t *testing.T) {
	out, err := run(t, "--json", "mul", "2", "0,1,0,0", "0,1,0,0")
	require.NoError(t, err)
	var res symdq.OperandResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, &symdq.Quat{"-2", "0", "0", "0"}, res.Quaternion)

	out, err = run(t, "--json", "add", "1", "a,b,c,d,x,y,z,w")
	require.NoError(t, err)
	res = symdq.OperandResult{}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "dual quaternion", res.Kind)

	_, err = run(t, "add", "1,2")
	assert.ErrorContains(t, err, "want 1, 4 or 8 components")
}

func TestChainCommands(t *testing.T) {
	dir := t.TempDir()
	store := filepath.Join(dir, "store")
	doc := filepath.Join(dir, "wrist.yaml")
	require.NoError(t, os.WriteFile(doc, []byte(wristYAML), 0o644))

	out, err := runIn(t, store, "chain", "save", doc)
	require.NoError(t, err)
	assert.Equal(t, "saved chain \"wrist\"\n", out)

	out, err = runIn(t, store, "--json", "chain", "list")
	require.NoError(t, err)
	assert.JSONEq(t, `["wrist"]`, out)

	out, err = runIn(t, store, "--json", "--domain", "numeric", "--bind", "theta=0,l1=3", "chain", "eval", "wrist")
	require.NoError(t, err)
	var res symdq.ChainResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "3", res.Translation[0])

	out, err = runIn(t, store, "--json", "chain", "twist", doc, "--var", "theta")
	require.NoError(t, err)
	var tw symdq.Result
	require.NoError(t, json.Unmarshal([]byte(out), &tw))
	assert.Equal(t, symdq.Quat{"0", "0", "0", "1"}, tw.Real)

	out, err = runIn(t, store, "chain", "graph", "wrist", "--var", "theta")
	require.NoError(t, err)
	assert.Contains(t, out, "class f1 joint;")

	out, err = runIn(t, store, "--plain", "chain", "show", "wrist")
	require.NoError(t, err)
	assert.Contains(t, out, "name: wrist")

	_, err = runIn(t, store, "chain", "delete", "wrist")
	require.NoError(t, err)

	_, err = runIn(t, store, "chain", "eval", "wrist")
	assert.ErrorIs(t, err, ports.ErrChainNotFound)
}

func TestBadFlags(t *testing.T) {
	_, err := run(t, "--log-level", "loud", "version")
	assert.Error(t, err)

	_, err = run(t, "--domain", "complex", "screw", "--l", "0,0,1", "--theta", "t")
	assert.ErrorIs(t, err, symdq.ErrUnknownDomain)

	_, err = run(t, "--bind", "x=(", "--domain", "numeric", "screw", "--l", "0,0,1", "--theta", "t")
	assert.ErrorContains(t, err, "--bind x")
}
