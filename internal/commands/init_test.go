package commands_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/budgetreport/internal/accounts"
	"github.com/cleared-dev/budgetreport/internal/budget"
	"github.com/cleared-dev/budgetreport/internal/model"
)

func TestInit_CreatesStructure(t *testing.T) {
	dir := t.TempDir()
	out, _, err := run(t, "init", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized budget report project")

	for _, d := range []string{"accounts", "budgets", "logs"} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir(), "%s should be a directory", d)
	}

	_, err = os.Stat(filepath.Join(dir, ".git"))
	assert.ErrorIs(t, err, os.ErrNotExist, "git is opt-in")
}

func TestInit_UnknownTemplate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "project")
	_, _, err := run(t, "init", dir, "--template", "houshold")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown chart template")

	_, err = os.Stat(dir)
	assert.ErrorIs(t, err, os.ErrNotExist, "nothing created")
}

func TestInit_Config(t *testing.T) {
	dir := t.TempDir()
	_, _, err := run(t, "init", dir, "--budget", "Family")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "budgetreport.yaml"))
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "budget: Family")
	assert.Contains(t, contents, "period: automatic")
	assert.Contains(t, contents, "decimal_places: 2")
}

func TestInit_Categories(t *testing.T) {
	dir := newProject(t)

	svc, err := accounts.Load(dir)
	require.NoError(t, err)
	assert.Len(t, svc.All(), 17, "household chart has 17 categories")
	assert.Len(t, svc.ByKind(model.KindIncome), 3)
}

func TestInit_StarterBudget(t *testing.T) {
	dir := newProject(t)

	svc, err := budget.Load(dir, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Household"}, svc.Names())

	rent := model.CategoryKey{FullName: "Home:Rent", Kind: model.KindExpense}
	got, ok := svc.Amount("Household", rent, 2025, 6)
	require.True(t, ok)
	assert.Equal(t, int64(150000), got)

	home := model.CategoryKey{FullName: "Home", Kind: model.KindExpense}
	_, ok = svc.Amount("Household", home, 2025, 6)
	assert.False(t, ok, "rollup categories are not budgeted")
}

func TestInit_GitRepo(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	dir := t.TempDir()
	_, _, err := run(t, "init", dir, "--git")
	require.NoError(t, err)

	// .git directory should exist.
	_, err = os.Stat(filepath.Join(dir, ".git"))
	require.NoError(t, err, ".git should exist")

	// git log should have an init commit.
	log := exec.Command("git", "log", "--format=%s", "-1")
	log.Dir = dir
	out, err := log.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "init: Household budget")

	// Verify author.
	authorLog := exec.Command("git", "log", "--format=%an <%ae>", "-1")
	authorLog.Dir = dir
	out, err = authorLog.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "Budget Report <budgetreport@localhost>")
}

func TestTxnAdd_CommitsWhenGitEnabled(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	dir := t.TempDir()
	_, _, err := run(t, "init", dir, "--git", "--year", "2025")
	require.NoError(t, err)

	_, _, err = run(t, "txn", "add", "--dir", dir, "--", "2025-03-01", "Home:Rent", "-800")
	require.NoError(t, err)

	log := exec.Command("git", "log", "--format=%s", "-1")
	log.Dir = dir
	out, err := log.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "txn: 2025-03-01 Home:Rent (expense)")
}
