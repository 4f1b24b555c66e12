// Copyright (c) 2023 Colin McRae

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanielRobertNicoud/dupont-contraction/formerr"
)

func execute(args ...string) (string, string, error) {
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestTreesCmd(t *testing.T) {
	out, _, err := execute("trees", "--arity", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "2 binary trees of arity 3")
	assert.Contains(t, out, "[0, [1, 2]]")
	assert.Contains(t, out, "[[0, 1], 2]")

	out, _, err = execute("trees", "-a", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "5 binary trees of arity 4")
	assert.Contains(t, out, "[[0, 1], [2, 3]]")

	_, _, err = execute("trees", "--arity", "0")
	assert.True(t, errors.Is(err, formerr.ErrInvalidArgumentType))
}

func TestAInfinityCmd(t *testing.T) {
	out, errOut, err := execute("ainfinity", "-n", "2", "--form", "0|1", "--form", "1|2")
	require.NoError(t, err)
	assert.Equal(t, "l2 = \\frac{1}{6}\\omega_{0|1|2}\n", out)
	assert.Empty(t, errOut)

	out, _, err = execute("ainfinity", "-g", "cubical", "-n", "2", "--form", "1,0", "--form", "1,0", "--form", "2,0")
	require.NoError(t, err)
	assert.Equal(t, "l3 = \\frac{7}{288}\\omega_{1|2,\\emptyset}\n", out)

	// Verbosity 4 traces the two trees of arity 3
	_, errOut, err = execute("ainfinity", "-v", "4", "-g", "cubical", "-n", "2",
		"--form", "1,0", "--form", "2,0", "--form", "2,1")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(errOut, "signed tree"))
	assert.Contains(t, errOut, "dupont")

	_, _, err = execute("ainfinity", "-n", "2")
	assert.True(t, errors.Is(err, formerr.ErrInvalidArgumentType))
	_, _, err = execute("ainfinity", "-g", "toroidal", "--form", "0")
	assert.True(t, errors.Is(err, formerr.ErrInvalidArgumentType))
	_, _, err = execute("ainfinity", "-n", "1", "--form", "0|2")
	assert.True(t, errors.Is(err, formerr.ErrInvalidForm))
	_, _, err = execute("ainfinity", "-v", "11", "--form", "0")
	assert.True(t, errors.Is(err, formerr.ErrInvalidArgumentType))
}

func TestProductsCmd(t *testing.T) {
	out, _, err := execute("products", "-g", "cubical", "-n", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Binary products on the cubical of dimension 1")
	assert.Contains(t, out, "\\omega_{\\emptyset,0}")
	assert.Contains(t, out, "\\frac{1}{2}\\omega_{1,\\emptyset}")

	out, _, err = execute("products", "-n", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "\\frac{1}{2}\\omega_{0|1}")

	_, _, err = execute("products", "-g", "cubical", "-n", "0")
	assert.True(t, errors.Is(err, formerr.ErrInvalidArgumentType))
}

func TestMatrixCmd(t *testing.T) {
	out, _, err := execute("matrix", "-g", "cubical", "-n", "1", "-k", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "d from degree 0 to 1 on the cubical of dimension 1")
	assert.Contains(t, out, "\\omega_{1,\\emptyset}")
	assert.Contains(t, out, "-1")
	assert.Contains(t, out, "rank 1, cohomology of degree 0 has dimension 1")

	// Three edges bound one triangle and the complex is acyclic in degree 1
	out, _, err = execute("matrix", "-n", "2", "-k", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "rank 1, cohomology of degree 1 has dimension 0")

	out, _, err = execute("matrix", "-g", "cubical", "-n", "3", "-k", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "cohomology of degree 1 has dimension 0")

	_, _, err = execute("matrix", "-g", "cubical", "-n", "1", "-k", "1")
	assert.True(t, errors.Is(err, formerr.ErrInvalidArgumentType))
}

func TestExampleCmd(t *testing.T) {
	out, _, err := execute("example")
	require.NoError(t, err)
	assert.Contains(t, out, "p(i(omega) t_1)")
	assert.Contains(t, out, "\\omega_{0|1|2}")

	_, _, err = execute("example", "extra")
	assert.Error(t, err)
}

func TestRunCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "worksheet.yaml")
	worksheet := `
geometry: cubical
dimension: 2
forms:
  a:
    terms: {"1,0": 1}
  b:
    terms: {"2,0": 1}
operations:
  - name: l2
    op: ainfinity
    forms: [a, b]
  - name: reversed
    op: ainfinity
    forms: [b, a]
`
	require.NoError(t, os.WriteFile(path, []byte(worksheet), 0o600))

	out, _, err := execute("run", path)
	require.NoError(t, err)
	assert.Contains(t, out, "\\frac{1}{4}\\omega_{1|2,\\emptyset}")
	assert.Contains(t, out, "-\\frac{1}{4}\\omega_{1|2,\\emptyset}")
	assert.Contains(t, out, "reversed")

	_, _, err = execute("run", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	_, _, err = execute("run")
	assert.Error(t, err)
}
