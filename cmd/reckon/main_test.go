package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JackWReid/reckon/internal/calc"
	"github.com/JackWReid/reckon/internal/store"
)

// run executes the root command against a private data file.
func run(t *testing.T, data string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--data", data}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestEvalPrintsFormattedResult(t *testing.T) {
	data := filepath.Join(t.TempDir(), "storage.json")
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"eval", "2+3"}, "5\n"},
		{[]string{"eval", "12345", "*", "10"}, "12,3450\n"},
		{[]string{"eval", "--degrees", "sin(30"}, "0.5\n"},
		{[]string{"eval", "5!"}, "120\n"},
		{[]string{"eval", "--", "-2^2"}, "-4\n"},
		{[]string{"eval", "comb(10,3)"}, "120\n"},
	}
	for _, tt := range tests {
		out, err := run(t, data, tt.args...)
		require.NoError(t, err, "%v", tt.args)
		assert.Equal(t, tt.want, out, "%v", tt.args)
	}
}

func TestEvalRecordsHistory(t *testing.T) {
	data := filepath.Join(t.TempDir(), "storage.json")
	_, err := run(t, data, "eval", "sqrt(16")
	require.NoError(t, err)

	kv, err := store.OpenFile(data)
	require.NoError(t, err)
	h := store.NewPrefs(kv).LoadHistory()
	require.Len(t, h, 1)
	assert.Equal(t, "sqrt(16)", h[0].Expression)
	assert.Equal(t, "4", h[0].Result)
}

func TestEvalNoSave(t *testing.T) {
	data := filepath.Join(t.TempDir(), "storage.json")
	_, err := run(t, data, "--no-save", "eval", "1+1")
	require.NoError(t, err)

	out, err := run(t, data, "history")
	require.NoError(t, err)
	assert.Equal(t, "No history\n", out, "--no-save should not record history")
}

func TestEvalErrors(t *testing.T) {
	data := filepath.Join(t.TempDir(), "storage.json")

	_, err := run(t, data, "eval", "3+")
	assert.ErrorIs(t, err, calc.ErrIncompleteExpression)

	_, err = run(t, data, "eval", "sqr(4)")
	var ee *calc.EvaluationError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "sqrt", ee.Suggestion)

	_, err = run(t, data, "eval")
	assert.Error(t, err, "eval without an expression should fail")
}

func TestHistoryTable(t *testing.T) {
	data := filepath.Join(t.TempDir(), "storage.json")
	for _, expr := range []string{"1+1", "2*21", "10/4"} {
		_, err := run(t, data, "eval", expr)
		require.NoError(t, err, expr)
	}

	out, err := run(t, data, "history")
	require.NoError(t, err)
	for _, want := range []string{"EXPRESSION", "RESULT", "10/4", "2.5", "2*21", "42", "1+1"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "10/4"), strings.Index(out, "1+1"), "history should list newest first")

	out, err = run(t, data, "history", "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "10/4")
	assert.NotContains(t, out, "1+1")
}

func TestHistoryClear(t *testing.T) {
	data := filepath.Join(t.TempDir(), "storage.json")
	_, err := run(t, data, "eval", "7*6")
	require.NoError(t, err)

	out, err := run(t, data, "history", "--clear")
	require.NoError(t, err)
	assert.Equal(t, "History cleared\n", out)

	out, _ = run(t, data, "history")
	assert.Equal(t, "No history\n", out)
}

func TestHistoryPath(t *testing.T) {
	data := filepath.Join(t.TempDir(), "storage.json")

	out, err := run(t, data, "history", "--path")
	require.NoError(t, err)
	assert.Equal(t, data+"\n", out)

	out, err = run(t, data, "--no-save", "history", "--path")
	require.NoError(t, err)
	assert.Equal(t, "memory (--no-save)\n", out)
}

func TestThemeCommand(t *testing.T) {
	data := filepath.Join(t.TempDir(), "storage.json")

	out, err := run(t, data, "theme")
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)

	out, err = run(t, data, "theme", "DARK")
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)

	out, _ = run(t, data, "theme")
	assert.Equal(t, "dark\n", out, "theme should persist")

	_, err = run(t, data, "theme", "sepia")
	assert.Error(t, err, "unknown theme should fail")
}

func TestFormatWhen(t *testing.T) {
	assert.Equal(t, "-", formatWhen(0))
	assert.Len(t, formatWhen(1700000000000), len("2006-01-02 15:04"))
}
