package render

import "github.com/mattbratos/warhol/www/internal/site"

type PageData struct {
	Title       string
	Description string
	Path        string
	Version     string

	Layout site.LayoutOptions
	Docs   []site.DocPage

	// at most one of these is set
	Home *site.HomePage
	Doc  *DocData
}

type DocData struct {
	site.DocPage
	EditUrl string
}
