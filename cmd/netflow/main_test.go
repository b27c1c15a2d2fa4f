package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_MaxFlowScenario(t *testing.T) {
	input := "4 4\n0 1 10\n1 3 5\n0 2 10\n2 3 10\n0 3\n"
	var stdout, stderr bytes.Buffer

	code := run(strings.NewReader(input), &stdout, &stderr, nil)
	require.Equal(t, 0, code)
	require.Equal(t, "Maximum flow: 15\n", stdout.String())
	require.Empty(t, stderr.String())
}

func TestRun_EdmondsKarpFlag(t *testing.T) {
	input := "4 4\n0 1 10\n1 3 5\n0 2 10\n2 3 10\n0 3\n"
	var stdout, stderr bytes.Buffer

	code := run(strings.NewReader(input), &stdout, &stderr, []string{"-algo", "edmonds-karp"})
	require.Equal(t, 0, code)
	require.Equal(t, "Maximum flow: 15\n", stdout.String())
}

func TestRun_GomoryHuMode(t *testing.T) {
	input := "4 3\n0 1 10\n1 2 5\n2 3 15\n"
	var stdout, stderr bytes.Buffer

	code := run(strings.NewReader(input), &stdout, &stderr, []string{"-gomoryhu"})
	require.Equal(t, 0, code)
	require.Len(t, strings.Split(strings.TrimSpace(stdout.String()), "\n"), 3)
}

func TestRun_ParseFailureExitsNonZero(t *testing.T) {
	input := "not a number\n"
	var stdout, stderr bytes.Buffer

	code := run(strings.NewReader(input), &stdout, &stderr, nil)
	require.Equal(t, 1, code)
	require.NotEmpty(t, stderr.String())
}

func TestRun_TimeoutBoundsStdinReadOnly(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	var stdout, stderr bytes.Buffer

	code := run(pr, &stdout, &stderr, []string{"-timeout", "10ms"})
	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "stdin read")
}

func TestRun_UnknownAlgorithmRejected(t *testing.T) {
	input := "2 1\n0 1 5\n0 1\n"
	var stdout, stderr bytes.Buffer

	code := run(strings.NewReader(input), &stdout, &stderr, []string{"-algo", "bogus"})
	require.Equal(t, 1, code)
}
