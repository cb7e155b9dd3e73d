package cli

import (
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/alexanderramin/rendezvous/internal/domain"
	"github.com/alexanderramin/rendezvous/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args, capturing stdout because the
// handlers print with fmt.Print.
func execute(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	pr, pw, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = pw

	root := NewRootCmd(app)
	root.SetOut(pw)
	root.SetErr(pw)
	root.SetArgs(args)
	root.SilenceUsage = true
	root.SilenceErrors = true

	var buf strings.Builder
	done := make(chan struct{})
	go func() {
		io.Copy(&buf, pr)
		close(done)
	}()

	execErr := root.Execute()

	pw.Close()
	os.Stdout = origStdout
	<-done

	return buf.String(), execErr
}

// memRunRepo is an in-memory RunRepo for command tests.
type memRunRepo struct {
	runs []*domain.BatchRun
}

func (m *memRunRepo) Create(ctx context.Context, r *domain.BatchRun) error {
	m.runs = append(m.runs, r)
	return nil
}

func (m *memRunRepo) GetByID(ctx context.Context, id string) (*domain.BatchRun, error) {
	for _, r := range m.runs {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memRunRepo) ListRecent(ctx context.Context, limit int) ([]*domain.BatchRun, error) {
	if len(m.runs) < limit {
		limit = len(m.runs)
	}
	return m.runs[:limit], nil
}

func testApp(repo repository.RunRepo) *App {
	return &App{
		History:       func() (repository.RunRepo, error) { return repo, nil },
		IsInteractive: func() bool { return false },
	}
}

func TestSimulateCmd(t *testing.T) {
	out, err := execute(t, testApp(nil), "simulate",
		"--time", "14", "--budget", "8000", "--mood", "7", "--weather", "sunny")
	require.NoError(t, err)

	assert.Contains(t, out, "PLAN: OPTIMAL")
	assert.Contains(t, out, "restaurant")
	assert.Contains(t, out, "SUCCESS")
}

func TestSimulateCmd_ExplicitPlan(t *testing.T) {
	out, err := execute(t, testApp(nil), "simulate",
		"--plan", "weather", "--weather", "stormy")
	require.NoError(t, err)

	assert.Contains(t, out, "PLAN: WEATHER")
	assert.Contains(t, out, "station")
}

func TestSimulateCmd_RejectsBadInput(t *testing.T) {
	_, err := execute(t, testApp(nil), "simulate", "--weather", "snowy")
	assert.Error(t, err)

	_, err = execute(t, testApp(nil), "simulate", "--mood", "11")
	assert.Error(t, err)

	_, err = execute(t, testApp(nil), "simulate", "--plan", "bogus")
	assert.Error(t, err)
}

func TestPlansCmd(t *testing.T) {
	out, err := execute(t, testApp(nil), "plans")
	require.NoError(t, err)

	for _, name := range []string{"sequence", "optimal", "safe", "weather", "risk-averse", "perfect-evening"} {
		assert.Contains(t, out, name)
	}
}

func TestBatchCmd(t *testing.T) {
	out, err := execute(t, testApp(nil), "batch")
	require.NoError(t, err)

	assert.Contains(t, out, "BATCH: OPTIMAL")
	assert.Contains(t, out, "success rate")
	assert.Contains(t, out, "62%")
}

func TestBatchCmd_Record(t *testing.T) {
	repo := &memRunRepo{}
	out, err := execute(t, testApp(repo), "batch", "--record")
	require.NoError(t, err)

	assert.Contains(t, out, "recorded as")
	require.Len(t, repo.runs, 1)
	assert.Equal(t, "optimal", repo.runs[0].Plan)
	assert.Equal(t, 8, repo.runs[0].Scenarios)
	assert.Equal(t, 62, repo.runs[0].SuccessPct)
	assert.NotEmpty(t, repo.runs[0].ID)
}

func TestBatchCmd_History(t *testing.T) {
	repo := &memRunRepo{}
	_, err := execute(t, testApp(repo), "batch", "--record")
	require.NoError(t, err)

	out, err := execute(t, testApp(repo), "batch", "--history", "5")
	require.NoError(t, err)

	assert.Contains(t, out, "RECORDED RUNS")
	assert.Contains(t, out, "optimal")
}
