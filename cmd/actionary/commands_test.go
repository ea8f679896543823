package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	t    *testing.T
	dir  string
	file string
}

func newHarness(t *testing.T) *harness {
	dir := t.TempDir()
	return &harness{t: t, dir: dir, file: filepath.Join(dir, "tasks.json")}
}

func (h *harness) run(args ...string) (string, error) {
	h.t.Helper()
	var out bytes.Buffer
	env := map[string]string{"ACTIONARY_DATA_DIR": h.dir}
	g := &Globals{
		Out:    &out,
		Getenv: func(k string) string { return env[k] },
	}
	full := append([]string{
		"--config", filepath.Join(h.dir, "config.toml"),
		"--file", h.file,
	}, args...)
	err := run(full, g)
	return out.String(), err
}

func TestAddAndList(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("add", "Buy", "milk")
	require.NoError(t, err)
	assert.Contains(t, out, "Added: Buy milk")

	_, err = h.run("add", "Call", "**mom**")
	require.NoError(t, err)

	out, err = h.run("list", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "  1. [ ] To-Do       Buy milk")
	assert.Contains(t, out, "  2. [ ] To-Do       Call **mom**")
}

func TestAddBlankFails(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("add", "  ")
	assert.Error(t, err)
}

func TestListEmpty(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("list")
	require.NoError(t, err)
	assert.Contains(t, out, "No tasks.")
}

func TestNumbersFollowDisplayOrder(t *testing.T) {
	h := newHarness(t)
	for _, text := range []string{"A", "B", "C"} {
		_, err := h.run("add", text)
		require.NoError(t, err)
	}

	// Completing A moves it below B and C
	_, err := h.run("done", "1")
	require.NoError(t, err)

	out, err := h.run("list", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "  1. [ ] To-Do       B")
	assert.Contains(t, out, "  3. [x] Completed   A")

	// Number 3 is A, stored first
	out, err = h.run("tag", "3", "blocked")
	require.NoError(t, err)
	assert.Contains(t, out, "Tagged Blocked: A")

	out, err = h.run("rm", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted: B")

	out, err = h.run("list", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "  1. [ ] To-Do       C")
	assert.Contains(t, out, "  2. [ ] Blocked     A")
}

func TestInvalidArguments(t *testing.T) {
	h := newHarness(t)
	_, err := h.run("add", "A")
	require.NoError(t, err)

	_, err = h.run("done", "5")
	assert.Error(t, err)

	_, err = h.run("tag", "1", "someday")
	assert.Error(t, err)

	_, err = h.run("--backend", "redis", "list")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("version")
	require.NoError(t, err)
	assert.Equal(t, "actionary v"+version+"\n", out)
}
