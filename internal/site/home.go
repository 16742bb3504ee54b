package site

const (
	GettingStartedPath = "/docs/getting-started"
	CliReferencePath   = "/docs/cli"

	homeDescription = "A CLI for generating images in a consistent visual style."
)

type Link struct {
	Label string
	Href  string
}

// HomePage is the view model of the landing page, its content does not follow the configured site title
type HomePage struct {
	Heading        string
	Description    string
	GettingStarted Link
	CliReference   Link
}

func NewHomePage() HomePage {
	return HomePage{
		Heading:     DefaultTitle,
		Description: homeDescription,
		GettingStarted: Link{
			Label: "Getting Started",
			Href:  GettingStartedPath,
		},
		CliReference: Link{
			Label: "CLI reference",
			Href:  CliReferencePath,
		},
	}
}
