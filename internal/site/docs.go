package site

const docsPathPrefix = "/docs/"

type DocPage struct {
	Slug        string
	Title       string
	Description string
	Template    string
}

func (d DocPage) Path() string {
	return docsPathPrefix + d.Slug
}

// display order, also the sidebar order
var docPages = []DocPage{
	{
		Slug:        "getting-started",
		Title:       "Getting Started",
		Description: "Install warhol, configure an API key and generate your first image.",
		Template:    "docs-getting-started",
	},
	{
		Slug:        "cli",
		Title:       "CLI reference",
		Description: "Every warhol command and flag.",
		Template:    "docs-cli",
	},
	{
		Slug:        "profiles",
		Title:       "Style and character profiles",
		Description: "The YAML formats of style and character profiles.",
		Template:    "docs-profiles",
	},
}

func DocPages() []DocPage {
	pages := make([]DocPage, len(docPages))
	copy(pages, docPages)
	return pages
}

func FindDocPage(slug string) (DocPage, bool) {
	for _, page := range docPages {
		if page.Slug == slug {
			return page, true
		}
	}
	return DocPage{}, false
}
