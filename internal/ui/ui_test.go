package ui

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wahlandcase/release-helper/internal/models"
)

func TestMain(m *testing.M) {
	DisableColor()
	os.Exit(m.Run())
}

func TestCommitCard(t *testing.T) {
	c := models.NewCommit("abc123", "Fix bug (#12)", "janedoe", "https://github.com/o/r/pull/12")

	want := "Fix bug (#12)\n" +
		"  sha    abc123\n" +
		"  author janedoe\n" +
		"  link   https://github.com/o/r/pull/12"
	assert.Equal(t, want, CommitCard(c))
}

func TestCommitList(t *testing.T) {
	commits := []models.Commit{
		models.NewCommit("a", "A", "x", "l1"),
		models.NewCommit("b", "B", "y", "l2"),
	}

	assert.Equal(t, CommitCard(commits[0])+"\n\n"+CommitCard(commits[1]), CommitList(commits))
	assert.Equal(t, "", CommitList(nil))
}

func TestSectionHeader(t *testing.T) {
	assert.Equal(t, "─── o/r "+strings.Repeat("─", 22), SectionHeader("o/r", ColorCyan))
}

func TestHeader_DryRun(t *testing.T) {
	h := Header("dotnet", "dotnet-docker", "nightly", "2026-08-17", "1a2b3c4", true)

	assert.Contains(t, h, "dotnet/dotnet-docker")
	assert.Contains(t, h, "nightly since 2026-08-17 until 1a2b3c4")
	assert.Contains(t, h, "DRY RUN MODE")

	assert.NotContains(t, Header("o", "r", "main", "d", "u", false), "DRY RUN")
}

func TestBranchColor(t *testing.T) {
	assert.Equal(t, ColorMagenta, BranchColor("nightly"))
	assert.Equal(t, ColorRed, BranchColor("main"))
	assert.Equal(t, ColorYellow, BranchColor("release/9.0"))
	assert.Equal(t, ColorWhite, BranchColor("feature"))
}

func TestCount(t *testing.T) {
	assert.Equal(t, "1 commit", Count(1, ColorGreen))
	assert.Equal(t, "3 commits", Count(3, ColorGreen))
}
