package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"framecheck.dev/pkg/framecheck/internal/domain"
	domainmocks "framecheck.dev/pkg/framecheck/internal/domain/mocks"
	m "framecheck.dev/pkg/framecheck/internal/model"
)

func newAnalyzeTestCmd(t *testing.T) (*domainmocks.MockWorkflow, func(args ...string) error) {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newAnalyzeCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	return mockWorkflow, func(args ...string) error {
		cmd.SetArgs(append([]string{"analyze"}, args...))
		return cmd.Execute()
	}
}

func TestAnalyzeCmd_DefaultArgs(t *testing.T) {
	mockWorkflow, run := newAnalyzeTestCmd(t)

	mockWorkflow.On("Analyze", mock.Anything, mock.MatchedBy(func(args domain.AnalyzeArgs) bool {
		return len(args.Datasets) == 1 &&
			args.Datasets[0] == m.Path("sites.yaml") &&
			args.Threads == 1 &&
			args.Save &&
			!args.Detailed
	})).Return(nil)

	require.NoError(t, run("sites.yaml"))
}

func TestAnalyzeCmd_FlagsArePassedThrough(t *testing.T) {
	mockWorkflow, run := newAnalyzeTestCmd(t)

	mockWorkflow.On("Analyze", mock.Anything, mock.MatchedBy(func(args domain.AnalyzeArgs) bool {
		return len(args.Datasets) == 2 &&
			args.Threads == 4 &&
			args.Reports == m.Path("./runs") &&
			args.Detailed &&
			!args.Save
	})).Return(nil)

	require.NoError(t, run("--parallel", "4", "--detail", "--no-save", "-o", "./runs", "a.yaml", "b.json"))
}

func TestAnalyzeCmd_WatchUsesWatchWorkflow(t *testing.T) {
	mockWorkflow, run := newAnalyzeTestCmd(t)

	mockWorkflow.On("Watch", mock.Anything, mock.MatchedBy(func(args domain.AnalyzeArgs) bool {
		return len(args.Datasets) == 1 && args.Datasets[0] == m.Path("./datasets")
	})).Return(nil)

	require.NoError(t, run("--watch", "./datasets"))
}

func TestAnalyzeCmd_RequiresDataset(t *testing.T) {
	_, run := newAnalyzeTestCmd(t)

	require.Error(t, run())
}

func TestAnalyzeCmd_RejectsNegativeParallelism(t *testing.T) {
	_, run := newAnalyzeTestCmd(t)

	require.Error(t, run("--parallel", "-1", "sites.yaml"))
}

func TestAnalyzeCmd_PropagatesWorkflowError(t *testing.T) {
	mockWorkflow, run := newAnalyzeTestCmd(t)

	mockWorkflow.On("Analyze", mock.Anything, mock.Anything).Return(m.ErrInvalidOrigin)

	require.ErrorIs(t, run("sites.yaml"), m.ErrInvalidOrigin)
}
