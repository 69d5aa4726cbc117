// Package render turns resolved content groups into template paths and
// rendering contexts, and renders them as HTML fragments.
package render

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/sitecms/internal/service"
)

const (
	MenuNamespace = "menu/"
	TabsNamespace = "tabs/"

	DefaultMenuTemplate = "menu-default"
	DefaultTabsTemplate = "tabs-default"

	templateSuffix = ".html"
)

var (
	// ErrPathTraversal is returned for template names outside the safe character set.
	ErrPathTraversal = errors.New("template name rejected")
	// ErrTemplateNotFound is returned when no template is registered under the built path.
	ErrTemplateNotFound = errors.New("template not found")

	templateNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)
)

// View is what the templating engine needs: which template, and with what data.
type View struct {
	TemplatePath string
	Context      map[string]interface{}
}

// TemplatePath maps a kind and template name onto "<namespace><name>.html".
// An empty name selects the kind's default template.
func TemplatePath(kind service.Kind, templateName string) (string, error) {
	var namespace, fallback string
	switch kind {
	case service.KindMenu:
		namespace, fallback = MenuNamespace, DefaultMenuTemplate
	case service.KindTab:
		namespace, fallback = TabsNamespace, DefaultTabsTemplate
	default:
		return "", fmt.Errorf("unknown content kind %q", kind)
	}

	if templateName == "" {
		templateName = fallback
	}
	if !templateNamePattern.MatchString(templateName) {
		return "", fmt.Errorf("%w: %q", ErrPathTraversal, templateName)
	}
	return namespace + templateName + templateSuffix, nil
}

// BuildView produces the template path and context for a resolved group.
// A group that was not found still yields a renderable view with an empty
// item list. request is passed through for link highlighting.
func BuildView(resolved service.ResolvedGroup, templateName string, request map[string]interface{}) (View, error) {
	path, err := TemplatePath(resolved.Kind, templateName)
	if err != nil {
		return View{}, err
	}
	if request == nil {
		request = map[string]interface{}{}
	}

	items := resolved.Items
	if items == nil {
		items = []service.ItemView{}
	}

	var group interface{}
	if resolved.Group != nil {
		group = resolved.Group
	}

	ctx := map[string]interface{}{
		"template_name": path,
		"request":       request,
	}
	switch resolved.Kind {
	case service.KindMenu:
		ctx["menu"] = group
		ctx["menu_items"] = items
	case service.KindTab:
		ctx["tab"] = group
		ctx["tabs"] = items
	}

	return View{TemplatePath: path, Context: ctx}, nil
}
