// Package sshkeys builds the commands for setting up one SSH key per GitHub
// account, so remotes like git@github.com-<alias>: resolve to the right identity.
package sshkeys

import (
	"fmt"
	"strings"
)

// Identity is one GitHub account with its own key.
type Identity struct {
	// Alias is appended to the host, e.g. "team" -> github.com-team
	Alias string

	Email string

	// KeyName is the private key file name under ~/.ssh
	KeyName string
}

// DefaultIdentities returns the team and personal identities with their
// default key names and no email.
func DefaultIdentities() []Identity {
	return []Identity{
		{Alias: "team", KeyName: "id_ed25519_team"},
		{Alias: "personal", KeyName: "id_ed25519_personal"},
	}
}

// Section groups guide entries for display.
type Section string

const (
	SectionGenerate Section = "generate"
	SectionConfig   Section = "config"
	SectionPublish  Section = "publish"
	SectionTest     Section = "test"
)

// GuideCommand is one copyable entry of the guide.
type GuideCommand struct {
	ID      string  `json:"id" yaml:"id"`
	Section Section `json:"section" yaml:"section"`
	Text    string  `json:"text" yaml:"text"`
}

// KeygenCommand returns the ssh-keygen invocation for id.
func KeygenCommand(id Identity) string {
	return fmt.Sprintf(`ssh-keygen -t ed25519 -C "%s" -f ~/.ssh/%s`, id.Email, id.KeyName)
}

// ConfigBlock returns the ~/.ssh/config Host entries for identities.
func ConfigBlock(identities []Identity) string {
	blocks := make([]string, 0, len(identities))
	for _, id := range identities {
		blocks = append(blocks, strings.Join([]string{
			"Host github.com-" + id.Alias,
			"    HostName github.com",
			"    User git",
			"    IdentityFile ~/.ssh/" + id.KeyName,
		}, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}

// Guide returns every entry of the SSH setup guide in the order it should be
// followed. Inputs are interpolated verbatim.
func Guide(identities []Identity) []GuideCommand {
	var out []GuideCommand

	for _, id := range identities {
		out = append(out, GuideCommand{ID: "keygen-" + id.Alias, Section: SectionGenerate, Text: KeygenCommand(id)})
	}

	out = append(out,
		GuideCommand{ID: "edit-config", Section: SectionConfig, Text: "nano ~/.ssh/config"},
		GuideCommand{ID: "config", Section: SectionConfig, Text: ConfigBlock(identities)},
	)

	for _, id := range identities {
		out = append(out, GuideCommand{ID: "cat-" + id.Alias, Section: SectionPublish, Text: "cat ~/.ssh/" + id.KeyName + ".pub"})
	}
	for _, id := range identities {
		out = append(out, GuideCommand{ID: "test-" + id.Alias, Section: SectionTest, Text: "ssh -T git@github.com-" + id.Alias})
	}

	return out
}
