package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinks_PullRequest(t *testing.T) {
	links := Links{}
	fallback := "https://host/commit/abc"

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"single reference", "Fix bug (#1234)", "https://github.com/dotnet/dotnet-docker/pull/1234"},
		{"first reference wins", "Fix bug (#1234) and (#5678)", "https://github.com/dotnet/dotnet-docker/pull/1234"},
		{"no reference", "Fix bug", fallback},
		{"bare hash is not a reference", "Fix bug #1234", fallback},
		{"empty parens", "Fix bug (#)", fallback},
		{"reference mid message", "Revert (#42) because of flakiness", "https://github.com/dotnet/dotnet-docker/pull/42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := links.PullRequest(tt.message, fallback, "dotnet", "dotnet-docker")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLinks_CustomHost(t *testing.T) {
	links := Links{WebURL: "https://github.example.com/"}

	assert.Equal(t, "https://github.example.com/o/r/pull/7", links.PullRequest("x (#7)", "", "o", "r"))
	assert.Equal(t, "https://github.example.com/o/r/commit/abc", links.Commit("o", "r", "abc"))
}

func TestPullRequestNumber_DigitsOnly(t *testing.T) {
	n, ok := PullRequestNumber("Update images (#6120)")
	assert.True(t, ok)
	assert.Equal(t, "6120", n)

	_, ok = PullRequestNumber("Update images")
	assert.False(t, ok)
}

func TestResolveAuthor(t *testing.T) {
	assert.Equal(t, "Jane Doe", ResolveAuthor("", "Jane Doe"))
	assert.Equal(t, "janedoe", ResolveAuthor("janedoe", "Jane Doe"))
	assert.Equal(t, "janedoe", ResolveAuthor("janedoe", ""))
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "subject", FirstLine("subject\n\nbody"))
	assert.Equal(t, "subject", FirstLine("subject\r\nbody"))
	assert.Equal(t, "", FirstLine("\n\nbody"))
	assert.Equal(t, "only", FirstLine("only"))
}
