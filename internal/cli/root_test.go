package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/princemuel/jiraffe/internal/app"
	"github.com/princemuel/jiraffe/internal/domain"
	"github.com/princemuel/jiraffe/internal/testutil"
)

func newTestContainer() (*app.Container, *testutil.MemStore) {
	store := testutil.NewMemStore()
	return app.NewWithDeps(store, store, nil), store
}

func execute(t *testing.T, c *app.Container, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand(c, "test")
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestInitCommand(t *testing.T) {
	c, _ := newTestContainer()

	out, err := execute(t, c, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized jiraffe store")
}

func TestEpicNewCommand(t *testing.T) {
	c, store := newTestContainer()

	out, err := execute(t, c, "epic", "new", "--name", "Payments", "--description", "Billing work")
	require.NoError(t, err)
	assert.Contains(t, out, "Created epic #1")

	state, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, "Payments", state.Epics[1].Name)
	assert.Equal(t, "Billing work", state.Epics[1].Description)
	assert.Equal(t, domain.StatusOpen, state.Epics[1].Status)
}

func TestEpicNewRequiresName(t *testing.T) {
	c, _ := newTestContainer()

	_, err := execute(t, c, "epic", "new")
	require.Error(t, err)
}

func TestEpicListCommand(t *testing.T) {
	c, _ := newTestContainer()

	_, err := execute(t, c, "epic", "new", "--name", "Payments")
	require.NoError(t, err)

	out, err := execute(t, c, "epic", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "Payments")
	assert.Contains(t, out, "OPEN")
}

func TestEpicStatusCommand(t *testing.T) {
	c, store := newTestContainer()

	_, err := execute(t, c, "epic", "new", "--name", "Payments")
	require.NoError(t, err)

	out, err := execute(t, c, "epic", "status", "1", "in-progress")
	require.NoError(t, err)
	assert.Contains(t, out, "Epic #1 is now IN PROGRESS")

	state, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, state.Epics[1].Status)
}

func TestEpicStatusRejectsUnknown(t *testing.T) {
	c, _ := newTestContainer()

	_, err := execute(t, c, "epic", "new", "--name", "Payments")
	require.NoError(t, err)

	_, err = execute(t, c, "epic", "status", "1", "done")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown status")
}

func TestEpicDeleteCascades(t *testing.T) {
	c, store := newTestContainer()

	_, err := execute(t, c, "epic", "new", "--name", "Payments")
	require.NoError(t, err)
	_, err = execute(t, c, "story", "new", "--epic", "1", "--name", "Invoices")
	require.NoError(t, err)

	out, err := execute(t, c, "epic", "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted epic #1")

	state, err := store.Read()
	require.NoError(t, err)
	assert.Empty(t, state.Epics)
	assert.Empty(t, state.Stories)
}

func TestEpicDeleteMissing(t *testing.T) {
	c, _ := newTestContainer()

	_, err := execute(t, c, "epic", "delete", "42")
	require.ErrorIs(t, err, domain.ErrEpicNotFound)
}

func TestStoryCommands(t *testing.T) {
	c, store := newTestContainer()

	_, err := execute(t, c, "epic", "new", "--name", "Payments")
	require.NoError(t, err)

	out, err := execute(t, c, "story", "new", "--epic", "1", "--name", "Invoices")
	require.NoError(t, err)
	assert.Contains(t, out, "Created story #2 in epic #1")

	out, err = execute(t, c, "story", "status", "2", "resolved")
	require.NoError(t, err)
	assert.Contains(t, out, "Story #2 is now RESOLVED")

	out, err = execute(t, c, "story", "delete", "2", "--epic", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted story #2")

	state, err := store.Read()
	require.NoError(t, err)
	assert.Empty(t, state.Stories)
	assert.Empty(t, state.Epics[1].Stories)
}

func TestStoryNewRejectsMissingEpic(t *testing.T) {
	c, _ := newTestContainer()

	_, err := execute(t, c, "story", "new", "--epic", "7", "--name", "Invoices")
	require.ErrorIs(t, err, domain.ErrEpicNotFound)
}

func TestListCommandShowsTree(t *testing.T) {
	c, _ := newTestContainer()

	_, err := execute(t, c, "epic", "new", "--name", "Payments")
	require.NoError(t, err)
	_, err = execute(t, c, "story", "new", "--epic", "1", "--name", "Invoices")
	require.NoError(t, err)

	out, err := execute(t, c, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Payments")
	assert.Contains(t, out, "Invoices")
}

func TestExportJSON(t *testing.T) {
	c, _ := newTestContainer()

	_, err := execute(t, c, "epic", "new", "--name", "Payments")
	require.NoError(t, err)

	out, err := execute(t, c, "export")
	require.NoError(t, err)
	assert.Contains(t, out, `"last_item_id": 1`)
	assert.Contains(t, out, `"Payments"`)
}

func TestExportYAML(t *testing.T) {
	c, _ := newTestContainer()

	_, err := execute(t, c, "epic", "new", "--name", "Payments")
	require.NoError(t, err)

	out, err := execute(t, c, "export", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "last_item_id: 1")
	assert.Contains(t, out, "Payments")
}

func TestExportUnknownFormat(t *testing.T) {
	c, _ := newTestContainer()

	_, err := execute(t, c, "export", "--format", "toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestStatusFromArg(t *testing.T) {
	tests := []struct {
		arg     string
		want    domain.Status
		wantErr bool
	}{
		{arg: "open", want: domain.StatusOpen},
		{arg: "OPEN", want: domain.StatusOpen},
		{arg: "in-progress", want: domain.StatusInProgress},
		{arg: "IN_PROGRESS", want: domain.StatusInProgress},
		{arg: "inprogress", want: domain.StatusInProgress},
		{arg: "resolved", want: domain.StatusResolved},
		{arg: "closed", want: domain.StatusClosed},
		{arg: "done", wantErr: true},
		{arg: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := statusFromArg(tt.arg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
