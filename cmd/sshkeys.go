package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/danielolaszy/flowcmd/internal/sshkeys"
)

var sectionTitles = map[sshkeys.Section]string{
	sshkeys.SectionGenerate: "1. Generate SSH keys",
	sshkeys.SectionConfig:   "2. Configure ~/.ssh/config",
	sshkeys.SectionPublish:  "3. Add the public keys to GitHub",
	sshkeys.SectionTest:     "4. Test the connections",
}

// sshKeysCmd prints the commands for using two GitHub accounts over SSH.
var sshKeysCmd = &cobra.Command{
	Use:   "ssh-keys",
	Short: "Print the commands for setting up one SSH key per GitHub account",
	Long: `Print the commands for setting up a team and a personal SSH key.

Each account gets a Host alias (github.com-<alias>) in ~/.ssh/config. Pass the
alias to 'flowcmd generate --ssh -a <alias>' to clone with the right key.

Example:
  flowcmd ssh-keys --team-email me@company.com --personal-email me@example.com`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outputFormat(cmd)
		if err != nil {
			return err
		}

		identities := sshkeys.DefaultIdentities()
		flagNames := []struct {
			alias, email, key string
		}{
			{"team-alias", "team-email", "team-key"},
			{"personal-alias", "personal-email", "personal-key"},
		}
		for i, names := range flagNames {
			if identities[i].Alias, err = cmd.Flags().GetString(names.alias); err != nil {
				return err
			}
			if identities[i].Email, err = cmd.Flags().GetString(names.email); err != nil {
				return err
			}
			if identities[i].KeyName, err = cmd.Flags().GetString(names.key); err != nil {
				return err
			}
		}

		guide := sshkeys.Guide(identities)

		out := cmd.OutOrStdout()
		if format != formatText {
			return writeStructured(out, format, guide)
		}
		return writeGuide(out, guide)
	},
}

func init() {
	defaults := sshkeys.DefaultIdentities()
	f := sshKeysCmd.Flags()
	f.String("team-alias", defaults[0].Alias, "Host alias suffix for the team account")
	f.String("team-email", "", "Email for the team key comment")
	f.String("team-key", defaults[0].KeyName, "Key file name for the team account")
	f.String("personal-alias", defaults[1].Alias, "Host alias suffix for the personal account")
	f.String("personal-email", "", "Email for the personal key comment")
	f.String("personal-key", defaults[1].KeyName, "Key file name for the personal account")
	addOutputFlag(sshKeysCmd)
}

func writeGuide(w io.Writer, guide []sshkeys.GuideCommand) error {
	var current sshkeys.Section
	for _, c := range guide {
		if c.Section != current {
			if current != "" {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			current = c.Section
			if _, err := fmt.Fprintln(w, "# "+sectionTitles[c.Section]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, c.Text); err != nil {
			return err
		}
	}
	return nil
}
