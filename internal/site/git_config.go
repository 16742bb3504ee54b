package site

import "fmt"

// GitConfig identifies the repository the site documents
type GitConfig struct {
	User   string
	Repo   string
	Branch string
}

var DefaultGitConfig = GitConfig{
	User:   "mattbratos",
	Repo:   "warhol",
	Branch: "main",
}

func (g GitConfig) GithubUrl() string {
	return fmt.Sprintf("https://github.com/%s/%s", g.User, g.Repo)
}

// BlobUrl returns the GitHub url of a file path in the configured branch
func (g GitConfig) BlobUrl(path string) string {
	return fmt.Sprintf("%s/blob/%s/%s", g.GithubUrl(), g.Branch, path)
}
