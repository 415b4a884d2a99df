package domain

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mendoc-dev/mendoc/internal/adapter"
	adaptermocks "github.com/mendoc-dev/mendoc/internal/adapter/mocks"
	m "github.com/mendoc-dev/mendoc/internal/model"
)

func newTestOrchestrator(fs *adaptermocks.MockSourceFSAdapter, harness *adaptermocks.MockHarnessAdapter) Orchestrator {
	return NewOrchestrator(fs, harness, adapter.NewLocalDocFileAdapter(testSyntax()), testSyntax(), testFeatures())
}

func TestOrchestrator_FixFile_RewritesWrongOutput(t *testing.T) {
	// Arrange
	mockFS := new(adaptermocks.MockSourceFSAdapter)
	mockHarness := new(adaptermocks.MockHarnessAdapter)

	src := joinLines(
		"def add(a, b):",
		`    """`,
		"    >>> add(2, 2)",
		"    5",
		`    """`,
		"    return a + b",
		"",
	)

	report := joinLines(
		reportSeparator,
		`File "src/demo.py", line 3, in demo.add`,
		"Failed example:",
		"    add(2, 2)",
		"Expected:",
		"    5",
		"Got:",
		"    4",
		"",
	)

	var written []byte

	mockFS.EXPECT().ReadFile(m.Path("src/demo.py")).Return([]byte(src), nil)
	mockHarness.EXPECT().RunFile(mock.Anything, m.Path("src/demo.py"), m.RunOptions{Long: true, Environment: "sage"}).Return(report, nil)
	mockFS.EXPECT().HashFile(m.Path("src/demo.py")).Return("hash1", nil)
	mockFS.EXPECT().WriteFile(m.Path("src/demo.py.fixed"), mock.Anything, mock.Anything).
		Run(func(path m.Path, content []byte, perm os.FileMode) {
			written = content
		}).Return(nil)

	orch := newTestOrchestrator(mockFS, mockHarness)

	// Act
	fix, warnings, err := orch.FixFile(context.Background(), "src/demo.py", FixOptions{Long: true, Environment: "sage"})

	// Assert
	require.NoError(t, err)
	assert.True(t, fix.Changed)
	assert.Equal(t, m.Path("src/demo.py.fixed"), fix.Output)
	assert.Equal(t, "hash1", fix.Hash)
	assert.Empty(t, warnings)

	require.Len(t, fix.Blocks, 1)
	assert.Equal(t, 3, fix.Blocks[0].Line)
	assert.Equal(t, m.BlockWrongOutput, fix.Blocks[0].Kind)
	assert.Equal(t, m.OutcomeUpdated, fix.Blocks[0].Outcome)

	want := joinLines(
		"def add(a, b):",
		`    """`,
		"    >>> add(2, 2)",
		"    4",
		`    """`,
		"    return a + b",
		"",
	)
	assert.Equal(t, want, string(written))

	mockFS.AssertExpectations(t)
	mockHarness.AssertExpectations(t)
}

func TestOrchestrator_FixFile_OverwriteWritesInPlace(t *testing.T) {
	// Arrange
	mockFS := new(adaptermocks.MockSourceFSAdapter)
	mockHarness := new(adaptermocks.MockHarnessAdapter)

	src := joinLines(">>> f()", "1", "")
	report := joinLines(
		reportSeparator,
		`File "demo.py", line 1, in demo`,
		"Expected:",
		"    1",
		"Got:",
		"    2",
		"",
	)

	mockFS.EXPECT().ReadFile(m.Path("demo.py")).Return([]byte(src), nil)
	mockHarness.EXPECT().RunFile(mock.Anything, m.Path("demo.py"), mock.Anything).Return(report, nil)
	mockFS.EXPECT().HashFile(m.Path("demo.py")).Return("hash1", nil)
	mockFS.EXPECT().WriteFile(m.Path("demo.py"), mock.Anything, mock.Anything).Return(nil)

	orch := newTestOrchestrator(mockFS, mockHarness)

	// Act
	fix, _, err := orch.FixFile(context.Background(), "demo.py", FixOptions{Overwrite: true})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, m.Path("demo.py"), fix.Output)
	mockFS.AssertExpectations(t)
}

func TestOrchestrator_FixFile_ExplicitOutputWins(t *testing.T) {
	// Arrange
	mockFS := new(adaptermocks.MockSourceFSAdapter)
	mockHarness := new(adaptermocks.MockHarnessAdapter)

	src := joinLines(">>> f()", "1", "")

	// No failures reported; the explicit output still forces a write.
	mockFS.EXPECT().ReadFile(m.Path("demo.py")).Return([]byte(src), nil)
	mockHarness.EXPECT().RunFile(mock.Anything, m.Path("demo.py"), mock.Anything).Return("", nil)
	mockFS.EXPECT().HashFile(m.Path("demo.py")).Return("hash1", nil)
	mockFS.EXPECT().WriteFile(m.Path("out.py"), []byte(src), mock.Anything).Return(nil)

	orch := newTestOrchestrator(mockFS, mockHarness)

	// Act
	fix, _, err := orch.FixFile(context.Background(), "demo.py", FixOptions{Overwrite: true, Output: "out.py"})

	// Assert
	require.NoError(t, err)
	assert.False(t, fix.Changed)
	assert.Equal(t, m.Path("out.py"), fix.Output)
	mockFS.AssertExpectations(t)
}

func TestOrchestrator_FixFile_NoChangesNoWrite(t *testing.T) {
	// Arrange
	mockFS := new(adaptermocks.MockSourceFSAdapter)
	mockHarness := new(adaptermocks.MockHarnessAdapter)

	src := joinLines(">>> f()", "1", "")

	mockFS.EXPECT().ReadFile(m.Path("demo.py")).Return([]byte(src), nil)
	mockHarness.EXPECT().RunFile(mock.Anything, m.Path("demo.py"), mock.Anything).Return("", nil)
	mockFS.EXPECT().HashFile(m.Path("demo.py")).Return("", errors.New("file vanished"))

	orch := newTestOrchestrator(mockFS, mockHarness)

	// Act
	fix, warnings, err := orch.FixFile(context.Background(), "demo.py", FixOptions{})

	// Assert
	require.NoError(t, err)
	assert.False(t, fix.Changed)
	assert.Empty(t, fix.Output)
	assert.Empty(t, fix.Hash)
	assert.Empty(t, fix.Blocks)
	assert.Empty(t, warnings)
	mockFS.AssertExpectations(t)
}

func TestOrchestrator_FixFile_ReportsDriftWarning(t *testing.T) {
	// Arrange
	mockFS := new(adaptermocks.MockSourceFSAdapter)
	mockHarness := new(adaptermocks.MockHarnessAdapter)

	// The file records different output than the report claims it expected.
	src := joinLines(">>> f()", "answer is 2", "")
	report := joinLines(
		reportSeparator,
		`File "demo.py", line 1, in demo`,
		"Expected:",
		"    answer is 1",
		"Got:",
		"    answer is 3",
		"",
	)

	mockFS.EXPECT().ReadFile(m.Path("demo.py")).Return([]byte(src), nil)
	mockHarness.EXPECT().RunFile(mock.Anything, m.Path("demo.py"), mock.Anything).Return(report, nil)
	mockFS.EXPECT().HashFile(m.Path("demo.py")).Return("hash1", nil)

	orch := newTestOrchestrator(mockFS, mockHarness)

	// Act
	fix, warnings, err := orch.FixFile(context.Background(), "demo.py", FixOptions{})

	// Assert
	require.NoError(t, err)
	assert.False(t, fix.Changed)

	require.Len(t, fix.Blocks, 1)
	assert.Equal(t, m.OutcomeSkipped, fix.Blocks[0].Outcome)

	require.Len(t, warnings, 1)
	assert.Equal(t, "recorded output does not match the harness report", warnings[0].Title)
	assert.Equal(t, 1, warnings[0].Line)

	mockFS.AssertExpectations(t)
}

func TestOrchestrator_FixFile_ReadError(t *testing.T) {
	// Arrange
	mockFS := new(adaptermocks.MockSourceFSAdapter)
	mockHarness := new(adaptermocks.MockHarnessAdapter)

	mockFS.EXPECT().ReadFile(m.Path("demo.py")).Return(nil, errors.New("permission denied"))

	orch := newTestOrchestrator(mockFS, mockHarness)

	// Act
	_, _, err := orch.FixFile(context.Background(), "demo.py", FixOptions{})

	// Assert
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestOrchestrator_FixFile_HarnessError(t *testing.T) {
	// Arrange
	mockFS := new(adaptermocks.MockSourceFSAdapter)
	mockHarness := new(adaptermocks.MockHarnessAdapter)

	mockFS.EXPECT().ReadFile(m.Path("demo.py")).Return([]byte(">>> f()\n"), nil)
	mockHarness.EXPECT().RunFile(mock.Anything, m.Path("demo.py"), mock.Anything).Return("", errors.New("interpreter missing"))

	orch := newTestOrchestrator(mockFS, mockHarness)

	// Act
	_, _, err := orch.FixFile(context.Background(), "demo.py", FixOptions{})

	// Assert
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "harness run failed")
}

func TestOrchestrator_FixFile_WriteError(t *testing.T) {
	// Arrange
	mockFS := new(adaptermocks.MockSourceFSAdapter)
	mockHarness := new(adaptermocks.MockHarnessAdapter)

	src := joinLines(">>> f()", "1", "")
	report := joinLines(
		reportSeparator,
		`File "demo.py", line 1, in demo`,
		"Expected:",
		"    1",
		"Got:",
		"    2",
		"",
	)

	mockFS.EXPECT().ReadFile(m.Path("demo.py")).Return([]byte(src), nil)
	mockHarness.EXPECT().RunFile(mock.Anything, m.Path("demo.py"), mock.Anything).Return(report, nil)
	mockFS.EXPECT().HashFile(m.Path("demo.py")).Return("hash1", nil)
	mockFS.EXPECT().WriteFile(m.Path("demo.py.fixed"), mock.Anything, mock.Anything).Return(errors.New("disk full"))

	orch := newTestOrchestrator(mockFS, mockHarness)

	// Act
	_, _, err := orch.FixFile(context.Background(), "demo.py", FixOptions{})

	// Assert
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write")
}

func TestOrchestrator_NewOrchestrator(t *testing.T) {
	// Arrange
	mockFS := new(adaptermocks.MockSourceFSAdapter)
	mockHarness := new(adaptermocks.MockHarnessAdapter)

	// Act
	orch := newTestOrchestrator(mockFS, mockHarness)

	// Assert
	require.NotNil(t, orch)
	assert.Implements(t, (*Orchestrator)(nil), orch)
}
