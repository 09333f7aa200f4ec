package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/princemuel/jiraffe/internal/domain"
)

func TestInteractiveCreateNavigateQuit(t *testing.T) {
	c, store := newTestContainer()

	// Create an epic, open it, go back, quit.
	script := strings.Join([]string{
		"c",
		"Payments",
		"Billing work",
		"1",
		"p",
		"q",
	}, "\n") + "\n"

	var out bytes.Buffer
	err := runInteractive(c, strings.NewReader(script), &out)
	require.NoError(t, err)

	state, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, "Payments", state.Epics[1].Name)
	assert.Contains(t, out.String(), "EPICS")
	assert.Contains(t, out.String(), "Billing work")
}

func TestInteractiveIgnoresJunkInput(t *testing.T) {
	c, store := newTestContainer()

	var out bytes.Buffer
	err := runInteractive(c, strings.NewReader("j983f2j\nq\n"), &out)
	require.NoError(t, err)

	state, err := store.Read()
	require.NoError(t, err)
	assert.Empty(t, state.Epics)
}

func TestInteractiveEndsOnEOF(t *testing.T) {
	c, _ := newTestContainer()

	var out bytes.Buffer
	err := runInteractive(c, strings.NewReader(""), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "EPICS")
}

func TestInteractiveReportsReadFailure(t *testing.T) {
	c, store := newTestContainer()
	store.ReadErr = domain.ErrCorruptState

	var out bytes.Buffer
	err := runInteractive(c, strings.NewReader("\n"), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Error:")
	assert.Contains(t, out.String(), "Press Enter to continue...")
}
