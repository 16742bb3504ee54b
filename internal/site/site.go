package site

import "strings"

const DefaultContentPath = "www/internal/render/templates/pages"

// Site combines the site identity with the page models derived from it
type Site struct {
	Title       string
	Git         GitConfig
	ContentPath string // repository path of the page templates, used for edit links
}

func DefaultSite() *Site {
	return &Site{
		Title:       DefaultTitle,
		Git:         DefaultGitConfig,
		ContentPath: DefaultContentPath,
	}
}

func (s *Site) Layout() LayoutOptions {
	return NewLayoutOptions(s.Title, s.Git)
}

func (s *Site) Home() HomePage {
	return NewHomePage()
}

func (s *Site) EditUrl(doc DocPage) string {
	contentPath := strings.Trim(s.ContentPath, "/")
	return s.Git.BlobUrl(contentPath + "/" + doc.Template + ".tmpl")
}
