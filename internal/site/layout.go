package site

const DefaultTitle = "warhol"

type NavOptions struct {
	Title string `json:"title"`
}

// LayoutOptions is the navigation chrome shared by every page
type LayoutOptions struct {
	Nav       NavOptions `json:"nav"`
	GithubUrl string     `json:"githubUrl"`
}

func NewLayoutOptions(title string, git GitConfig) LayoutOptions {
	return LayoutOptions{
		Nav: NavOptions{
			Title: title,
		},
		GithubUrl: git.GithubUrl(),
	}
}

func BaseOptions() LayoutOptions {
	return NewLayoutOptions(DefaultTitle, DefaultGitConfig)
}
