package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
)

const (
	layoutTemplate = "layout"
	baseGlob       = "templates/*.tmpl"
	pagesGlob      = "templates/pages/*.tmpl"
)

// Renderer renders the embedded page templates into the shared layout.
// Each page owns a clone of the base templates, since every page defines its own "content"
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	return newRendererFromFS(templateFS)
}

func newRendererFromFS(fsys fs.FS) (*Renderer, error) {
	base, err := template.New("root").ParseFS(fsys, baseGlob)
	if err != nil {
		return nil, fmt.Errorf("parse base templates failed: %v", err)
	}

	pageFiles, err := fs.Glob(fsys, pagesGlob)
	if err != nil {
		return nil, err
	}
	if len(pageFiles) == 0 {
		return nil, fmt.Errorf("no page template found")
	}

	r := &Renderer{
		pages: make(map[string]*template.Template),
	}
	for _, pageFile := range pageFiles {
		name := strings.TrimSuffix(path.Base(pageFile), ".tmpl")
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if t, err = t.ParseFS(fsys, pageFile); err != nil {
			return nil, fmt.Errorf("parse page template %s failed: %v", name, err)
		}
		if t.Lookup("content") == nil {
			return nil, fmt.Errorf("page template %s does not define content", name)
		}
		r.pages[name] = t
	}
	return r, nil
}

func (r *Renderer) HasPage(name string) bool {
	_, ok := r.pages[name]
	return ok
}

func (r *Renderer) Render(name string, data *PageData) ([]byte, error) {
	t, ok := r.pages[name]
	if !ok {
		return nil, fmt.Errorf("unknown page %q", name)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, layoutTemplate, data); err != nil {
		return nil, fmt.Errorf("render page %s failed: %v", name, err)
	}
	return buf.Bytes(), nil
}
