package render

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"github.com/sitecms/internal/logger"
	"github.com/sitecms/internal/service"
)

// GroupResolver looks up a content group by kind and slug.
type GroupResolver interface {
	Resolve(kind service.Kind, slug string) (service.ResolvedGroup, error)
}

// Fragments renders menus and tab blocks into HTML using the loaded templates.
// Templates can call it through the show_menu and show_tabs functions.
type Fragments struct {
	resolver  GroupResolver
	templates *template.Template
}

// NewFragments creates a Fragments renderer. SetTemplates must be called
// before anything is rendered.
func NewFragments(resolver GroupResolver) *Fragments {
	return &Fragments{resolver: resolver}
}

// SetTemplates attaches the parsed template set.
func (f *Fragments) SetTemplates(t *template.Template) {
	f.templates = t
}

// Templates returns the attached template set.
func (f *Fragments) Templates() *template.Template {
	return f.templates
}

// ShowMenu renders the menu identified by slug.
func (f *Fragments) ShowMenu(slug, templateName string, request map[string]interface{}) (template.HTML, error) {
	return f.Render(service.KindMenu, slug, templateName, request)
}

// ShowTabs renders the tab block identified by slug.
func (f *Fragments) ShowTabs(slug, templateName string, request map[string]interface{}) (template.HTML, error) {
	return f.Render(service.KindTab, slug, templateName, request)
}

// Render resolves a group and executes its template. A missing group renders
// the template's empty state.
func (f *Fragments) Render(kind service.Kind, slug, templateName string, request map[string]interface{}) (template.HTML, error) {
	// 先校验模板名，避免无效请求访问数据库
	if _, err := TemplatePath(kind, templateName); err != nil {
		return "", err
	}

	resolved, err := f.resolver.Resolve(kind, slug)
	if err != nil {
		return "", err
	}
	if !resolved.Found() {
		logger.Debug().Str("kind", string(kind)).Str("slug", slug).Msg("content group not found, rendering empty state")
	}

	view, err := BuildView(resolved, templateName, request)
	if err != nil {
		return "", err
	}
	return f.Execute(view)
}

// Execute runs the template selected by view.
func (f *Fragments) Execute(view View) (template.HTML, error) {
	if f.templates == nil {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, view.TemplatePath)
	}
	tmpl := f.templates.Lookup(view.TemplatePath)
	if tmpl == nil {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, view.TemplatePath)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view.Context); err != nil {
		return "", fmt.Errorf("execute %s: %w", view.TemplatePath, err)
	}
	return template.HTML(buf.String()), nil
}

// RenderPage executes a full page template into memory so a failing
// show_menu/show_tabs call surfaces as an error instead of a truncated page.
func (f *Fragments) RenderPage(name string, data interface{}) ([]byte, error) {
	if f.templates == nil || f.templates.Lookup(name) == nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}

	var buf bytes.Buffer
	if err := f.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("execute %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// FuncMap exposes the fragment helpers to templates:
//
//	{{show_menu "main"}}
//	{{show_menu "main" "menu-footer" .request}}
//	{{show_tabs "features" "" .request}}
//	{{if is_active .URL $.request.path}}...{{end}}
func (f *Fragments) FuncMap() template.FuncMap {
	return template.FuncMap{
		"show_menu": func(slug string, args ...interface{}) (template.HTML, error) {
			name, request := fragmentArgs(args)
			return f.ShowMenu(slug, name, request)
		},
		"show_tabs": func(slug string, args ...interface{}) (template.HTML, error) {
			name, request := fragmentArgs(args)
			return f.ShowTabs(slug, name, request)
		},
		"is_active": func(link string, current interface{}) bool {
			if current == nil {
				return false
			}
			return IsActive(link, fmt.Sprint(current))
		},
	}
}

func fragmentArgs(args []interface{}) (string, map[string]interface{}) {
	var name string
	var request map[string]interface{}
	if len(args) > 0 {
		if s, ok := args[0].(string); ok {
			name = s
		}
	}
	if len(args) > 1 {
		if m, ok := args[1].(map[string]interface{}); ok {
			request = m
		}
	}
	return name, request
}

// IsActive reports whether link points at the current path. The root link only
// matches the root; other links also match their sub paths. Fragment-only and
// off-site links are never active.
func IsActive(link, current string) bool {
	link = strings.TrimSpace(link)
	if link == "" || strings.HasPrefix(link, "#") {
		return false
	}
	u, err := url.Parse(link)
	if err != nil || u.Host != "" || u.Path == "" {
		return false
	}

	current = strings.TrimSpace(current)
	if cu, err := url.Parse(current); err == nil {
		current = cu.Path
	}
	if current == "" {
		return false
	}

	linkPath := u.Path
	if linkPath == "/" {
		return current == "/"
	}
	linkPath = strings.TrimSuffix(linkPath, "/")
	return current == linkPath || strings.HasPrefix(current, linkPath+"/")
}
