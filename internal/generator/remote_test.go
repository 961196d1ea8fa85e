package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danielolaszy/flowcmd/pkg/models"
)

func TestNormalizeRepositoryLocation(t *testing.T) {
	tests := []struct {
		name     string
		location string
		useSSH   bool
		alias    string
		expected string
	}{
		{
			name:     "HTTPS to SSH with account alias",
			location: "https://github.com/User/Repo.git",
			useSSH:   true,
			alias:    "work",
			expected: "git@github.com-work:User/Repo.git",
		},
		{
			name:     "HTTP without suffix to SSH",
			location: "http://github.com/User/Repo",
			useSSH:   true,
			expected: "git@github.com:User/Repo.git",
		},
		{
			name:     "SSH stays SSH and gains alias",
			location: "git@github.com:User/Repo.git",
			useSSH:   true,
			alias:    "personal",
			expected: "git@github.com-personal:User/Repo.git",
		},
		{
			name:     "SSH without alias is untouched",
			location: "git@github.com:User/Repo.git",
			useSSH:   true,
			expected: "git@github.com:User/Repo.git",
		},
		{
			name:     "Non-github HTTPS host passes through malformed",
			location: "https://gitlab.com/User/Repo.git",
			useSSH:   true,
			alias:    "work",
			expected: "git@gitlab.com/User/Repo.git",
		},
		{
			name:     "Aliased SSH to HTTPS",
			location: "git@github.com-team:User/Repo.git",
			expected: "https://github.com/User/Repo.git",
		},
		{
			name:     "SSH without suffix to HTTPS",
			location: "git@github.com:User/Repo",
			expected: "https://github.com/User/Repo.git",
		},
		{
			name:     "Bare owner/repo path",
			location: "User/Repo",
			expected: "https://github.com/User/Repo.git",
		},
		{
			name:     "Bare path with suffix",
			location: "User/Repo.git",
			expected: "https://github.com/User/Repo.git",
		},
		{
			name:     "HTTPS is left unchanged",
			location: "https://github.com/User/Repo",
			expected: "https://github.com/User/Repo",
		},
		{
			name:     "Alias is ignored in HTTPS mode",
			location: "https://github.com/User/Repo.git",
			alias:    "work",
			expected: "https://github.com/User/Repo.git",
		},
		{
			name:     "Non-github SSH host is prefixed",
			location: "git@gitlab.com:User/Repo.git",
			expected: "https://github.com/git@gitlab.com:User/Repo.git",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := models.FormState{
				RepositoryLocation: tt.location,
				UseSSHTransport:    tt.useSSH,
				SSHAccountAlias:    tt.alias,
			}
			assert.Equal(t, tt.expected, NormalizeRepositoryLocation(form))
		})
	}
}

func TestCloneCommandTargetsNormalizedLocation(t *testing.T) {
	form := models.FormState{
		RepositoryLocation: "https://github.com/User/Repo.git",
		UseSSHTransport:    true,
		SSHAccountAlias:    "work",
	}
	assert.Equal(t, "git clone git@github.com-work:User/Repo.git", Generate(form)[0].CommandText)

	form = models.FormState{RepositoryLocation: "git@github.com-team:User/Repo.git"}
	assert.Equal(t, "git clone https://github.com/User/Repo.git", Generate(form)[0].CommandText)
}

func TestApplySSHAccountAliasOnlyMatchesGithub(t *testing.T) {
	assert.Equal(t, "git@bitbucket.org:User/Repo.git", ApplySSHAccountAlias("git@bitbucket.org:User/Repo.git", "work"))
	assert.Equal(t, "git@github.com-work:a/b.git", ApplySSHAccountAlias("git@github.com:a/b.git", "work"))
}
