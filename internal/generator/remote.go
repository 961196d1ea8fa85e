package generator

import (
	"regexp"
	"strings"

	"github.com/danielolaszy/flowcmd/pkg/models"
)

// Only github.com is recognised by these rewrites. Other hosts go through
// whichever branch they happen to match, unchanged otherwise.
const (
	githubHost      = "github.com"
	githubSSHPrefix = "git@github.com:"
	githubHTTPSBase = "https://github.com/"
	gitSuffix       = ".git"
)

var githubSSHPattern = regexp.MustCompile(`git@github\.com(-[^:]+)?:`)

// NormalizeRepositoryLocation rewrites the repository location into the
// remote form selected by form.UseSSHTransport.
func NormalizeRepositoryLocation(form models.FormState) string {
	location := form.RepositoryLocation

	if form.UseSSHTransport {
		if hasHTTPScheme(location) {
			location = ToSSHShorthand(location)
		}
		return ApplySSHAccountAlias(location, form.SSHAccountAlias)
	}

	return ToHTTPS(location)
}

// ToSSHShorthand converts an HTTP(S) URL such as https://github.com/User/Repo.git
// into git@github.com:User/Repo.git.
func ToSSHShorthand(location string) string {
	rest := strings.TrimPrefix(strings.TrimPrefix(location, "https://"), "http://")
	rest = strings.Replace(rest, githubHost+"/", githubHost+":", 1)
	rest = strings.TrimSuffix(rest, gitSuffix)
	return "git@" + rest + gitSuffix
}

// ApplySSHAccountAlias rewrites git@github.com: to git@github.com-<alias>: so
// the SSH client picks the matching Host entry. An empty alias is a no-op.
func ApplySSHAccountAlias(location, alias string) string {
	if alias == "" {
		return location
	}
	return strings.Replace(location, githubSSHPrefix, "git@github.com-"+alias+":", 1)
}

// ToHTTPS converts an SSH remote (with or without an account alias) or a bare
// owner/repo path into an https://github.com URL ending in exactly one .git.
// Locations that already carry an HTTP(S) scheme are returned unchanged.
func ToHTTPS(location string) string {
	if loc := githubSSHPattern.FindStringIndex(location); loc != nil {
		converted := location[:loc[0]] + githubHTTPSBase + location[loc[1]:]
		return ensureGitSuffix(strings.TrimSuffix(converted, gitSuffix))
	}
	if !hasHTTPScheme(location) {
		return ensureGitSuffix(githubHTTPSBase + location)
	}
	return location
}

func hasHTTPScheme(location string) bool {
	return strings.HasPrefix(location, "https://") || strings.HasPrefix(location, "http://")
}

func ensureGitSuffix(location string) string {
	if strings.HasSuffix(location, gitSuffix) {
		return location
	}
	return location + gitSuffix
}
