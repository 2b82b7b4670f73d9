// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/affinetree/request"
	"github.com/katalvlaran/affinetree/segtree"
)

const scenario = "3 1\nTranslate 5 0\nRotate 90\nScale 2 2\nQ 1 0 0 2\n"

// execute runs the root command with args and stdin, returning stdout and logs.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	c := New(strings.NewReader(stdin), &out, &logs, LogInfo)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return out.String(), logs.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRun_Stdin(t *testing.T) {
	out, logs, err := execute(t, scenario, "run")
	require.NoError(t, err)
	assert.Equal(t, "(1,0): 0.00000 12.00000\n", out)
	assert.Contains(t, logs, "built composition tree")
}

func TestRun_FileAndFlags(t *testing.T) {
	path := writeFile(t, "in.txt", "3 1\nTranslate 5 0\nRotate 90\nScale 2 2\nQ 1 0 1 3\n")

	out, _, err := execute(t, "", "run", "--index-base", "1", "--precision", "2", "--strategy", "iterative", path)
	require.NoError(t, err)
	assert.Equal(t, "(1,0): 0.00 12.00\n", out)
}

func TestRun_ConfigFile(t *testing.T) {
	cfg := writeFile(t, "affinetree.toml", "index_base = 1\nprecision = 1\nstrategy = \"Iterative\"\nlog_level = \"error\"\n")
	in := "3 1\nTranslate 5 0\nRotate 90\nScale 2 2\nQ 1 0 1 3\n"

	out, logs, err := execute(t, in, "run", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "(1,0): 0.0 12.0\n", out)
	assert.NotContains(t, logs, "built composition tree", "log_level=error silences info")

	// flags override the file
	out, _, err = execute(t, in, "run", "--config", cfg, "--precision", "3")
	require.NoError(t, err)
	assert.Equal(t, "(1,0): 0.000 12.000\n", out)
}

func TestRun_Errors(t *testing.T) {
	_, _, err := execute(t, "1 0\nShear 1 1\n", "run")
	assert.ErrorIs(t, err, request.ErrUnknownOp)

	_, _, err = execute(t, scenario, "run", "--index-base", "7")
	assert.ErrorIs(t, err, request.ErrBadConfig)

	_, _, err = execute(t, scenario, "run", "--strategy", "sideways")
	assert.Error(t, err)

	_, _, err = execute(t, "", "run", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	s, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultSettings(), s)

	path := writeFile(t, "ok.toml", "reject_non_finite = true\nstrategy = \"iterative\"\n")
	s, err = loadConfig(path)
	require.NoError(t, err)
	assert.True(t, s.request.RejectNonFinite)
	assert.Equal(t, segtree.Iterative, s.strategy)
	assert.Nil(t, s.logLevel)

	_, err = loadConfig(writeFile(t, "unknown.toml", "colour = \"red\"\n"))
	assert.ErrorContains(t, err, "unknown keys")

	_, err = loadConfig(writeFile(t, "bad.toml", "precision = 99\n"))
	assert.ErrorIs(t, err, request.ErrBadConfig)

	_, err = loadConfig(writeFile(t, "syntax.toml", "precision = \n"))
	assert.Error(t, err)

	_, err = loadConfig(writeFile(t, "level.toml", "log_level = \"loud\"\n"))
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	out, _, err := execute(t, "", "apply", "--point", "1,0",
		"--op", "Translate 5 0", "--op", "Rotate 90", "--op", "Scale 2 2")
	require.NoError(t, err)
	assert.Equal(t, "(1,0): 0.00000 12.00000\n", out)

	out, _, err = execute(t, "", "apply", "--point", "3, 4")
	require.NoError(t, err)
	assert.Equal(t, "(3,4): 3.00000 4.00000\n", out, "no ops is the identity")

	_, _, err = execute(t, "", "apply", "--op", "Warp 1")
	assert.ErrorIs(t, err, request.ErrUnknownOp)

	_, _, err = execute(t, "", "apply", "--point", "1;2")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "affinetree dev\n", out)
}

// TestVerbose covers --verbose and its precedence over the config log_level.
func TestVerbose(t *testing.T) {
	_, logs, err := execute(t, scenario, "run")
	require.NoError(t, err)
	assert.NotContains(t, logs, "DEBU", "info is the default level")

	_, logs, err = execute(t, scenario, "--verbose", "run")
	require.NoError(t, err)
	assert.Contains(t, logs, "DEBU")
	assert.Contains(t, logs, "query")

	quiet := writeFile(t, "quiet.toml", "log_level = \"error\"\n")
	_, logs, err = execute(t, scenario, "run", "-v", "--config", quiet)
	require.NoError(t, err)
	assert.Contains(t, logs, "query", "--verbose wins over log_level")

	loud := writeFile(t, "loud.toml", "log_level = \"debug\"\n")
	_, logs, err = execute(t, scenario, "run", "--config", loud)
	require.NoError(t, err)
	assert.Contains(t, logs, "DEBU", "log_level applies without --verbose")
}
