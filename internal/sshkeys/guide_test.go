package sshkeys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeygenCommand(t *testing.T) {
	cmd := KeygenCommand(Identity{Alias: "team", Email: "dev@example.com", KeyName: "id_ed25519_team"})
	assert.Equal(t, `ssh-keygen -t ed25519 -C "dev@example.com" -f ~/.ssh/id_ed25519_team`, cmd)
}

func TestConfigBlock(t *testing.T) {
	expected := `Host github.com-team
    HostName github.com
    User git
    IdentityFile ~/.ssh/id_ed25519_team

Host github.com-personal
    HostName github.com
    User git
    IdentityFile ~/.ssh/id_ed25519_personal`

	assert.Equal(t, expected, ConfigBlock(DefaultIdentities()))
}

func TestGuide(t *testing.T) {
	identities := DefaultIdentities()
	identities[0].Email = "team@example.com"
	identities[1].Email = "me@example.com"

	guide := Guide(identities)
	require.Len(t, guide, 8)

	var ids []string
	for _, c := range guide {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{
		"keygen-team", "keygen-personal",
		"edit-config", "config",
		"cat-team", "cat-personal",
		"test-team", "test-personal",
	}, ids)

	assert.Equal(t, "cat ~/.ssh/id_ed25519_personal.pub", guide[5].Text)
	assert.Equal(t, "ssh -T git@github.com-team", guide[6].Text)
	assert.Equal(t, SectionTest, guide[7].Section)
}

func TestGuideEmptyIdentities(t *testing.T) {
	guide := Guide(nil)
	require.Len(t, guide, 2)
	assert.Equal(t, "", guide[1].Text)
}
