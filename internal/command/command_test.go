package command_test

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/seqkit/internal/command"
	"github.com/katalvlaran/seqkit/internal/config"
	"github.com/katalvlaran/seqkit/kmerge"
	"github.com/katalvlaran/seqkit/lis"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFormat, "")

	var stdout, stderr bytes.Buffer
	root := command.Root()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func TestMerge_Defaults(t *testing.T) {
	out, _, err := run(t, "merge")
	require.NoError(t, err)
	assert.Equal(t, "1 2 3 4 5 6 7 8 9\n", out)
}

func TestMerge_CustomQueues(t *testing.T) {
	out, _, err := run(t, "merge", "--queue=-5, 0, 10", "--queue=", "--queue=-1 3", "--stable")
	require.NoError(t, err)
	assert.Equal(t, "-5 -1 0 3 10\n", out)
}

func TestMerge_Errors(t *testing.T) {
	_, _, err := run(t, "merge", "-q", "1,x,y")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token 1")
	assert.Contains(t, err.Error(), "token 2")

	_, _, err = run(t, "merge", "-q", "3,1", "--validate")
	assert.True(t, errors.Is(err, kmerge.ErrUnsortedInput), "got %v", err)
}

func TestMerge_Logging(t *testing.T) {
	_, logs, err := run(t, "--log-level", "info", "--log-format", "json", "merge")
	require.NoError(t, err)
	assert.Contains(t, logs, `"elements":9`)
	assert.Contains(t, logs, `"queues":3`)
}

func TestMerge_EmitTrace(t *testing.T) {
	_, logs, err := run(t, "--log-level", "trace", "--log-format", "json", "merge", "-q", "10,30", "-q", "20")
	require.NoError(t, err)
	assert.Contains(t, logs, `"msg":"emit"`)
	for _, v := range []string{"10", "20", "30"} {
		assert.Contains(t, logs, `"value":`+v)
	}
}

func TestLIS_Defaults(t *testing.T) {
	out, _, err := run(t, "lis")
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)
}

func TestLIS_ShowPatience(t *testing.T) {
	out, _, err := run(t, "lis", "--nums", "2,3,1,2,0,8,9,1,3,7", "-m", "patience", "--show")
	require.NoError(t, err)
	assert.Equal(t, "4\n0 1 3 7\n", out)
}

func TestLIS_Empty(t *testing.T) {
	out, _, err := run(t, "lis", "--nums", "")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func TestLIS_Errors(t *testing.T) {
	_, _, err := run(t, "lis", "--method", "greedy")
	assert.True(t, errors.Is(err, lis.ErrUnknownMethod), "got %v", err)

	_, _, err = run(t, "lis", "--nums", "1,2,three")
	assert.Error(t, err)
}

func TestRoot_BadConfig(t *testing.T) {
	_, _, err := run(t, "--log-format", "xml", "lis")
	assert.True(t, errors.Is(err, config.ErrBadLogFormat), "got %v", err)
}

func TestLIS_LongInputFallsBack(t *testing.T) {
	n := lis.MaxMemoizedLen + 1
	tokens := make([]string, n)
	for i := range tokens {
		tokens[i] = strconv.Itoa(i)
	}

	out, logs, err := run(t, "lis", "--nums", strings.Join(tokens, ","))
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(n)+"\n", out)
	assert.Contains(t, logs, "level=warning")
	assert.Contains(t, logs, "method=patience")
}

// execute runs command.Execute with args and returns the exit code and stderr.
func execute(t *testing.T, args ...string) (int, string) {
	t.Helper()
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFormat, "")

	var stdout, stderr bytes.Buffer
	code := command.Execute(context.Background(), args, &stdout, &stderr)

	return code, stderr.String()
}

func TestExecute(t *testing.T) {
	code, logs := execute(t, "lis")
	assert.Equal(t, 0, code)
	assert.Empty(t, logs)

	code, logs = execute(t, "--log-format", "json", "lis", "--method", "greedy")
	assert.Equal(t, 1, code)
	assert.Contains(t, logs, `"level":"error"`)
	assert.Contains(t, logs, `"msg":"failed to execute root command"`)
	assert.Contains(t, logs, "unknown method")

	// An invalid configuration has no configured logger to report with.
	code, logs = execute(t, "--log-format", "xml", "lis")
	assert.Equal(t, 1, code)
	assert.Contains(t, logs, "level=error")
	assert.Contains(t, logs, "log format must be text or json")
}
