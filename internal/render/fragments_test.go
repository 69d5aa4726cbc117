package render

import (
	"errors"
	"html/template"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/sitecms/internal/service"
)

type stubResolver struct {
	groups map[string]service.ResolvedGroup
	err    error
	calls  int
}

func (s *stubResolver) Resolve(kind service.Kind, slug string) (service.ResolvedGroup, error) {
	s.calls++
	if s.err != nil {
		return service.ResolvedGroup{}, s.err
	}
	if g, ok := s.groups[string(kind)+":"+slug]; ok {
		return g, nil
	}
	return service.ResolvedGroup{Kind: kind, Slug: slug, Items: []service.ItemView{}}, nil
}

func testTemplates() fstest.MapFS {
	return fstest.MapFS{
		"menu/menu-default.html": {Data: []byte(
			`{{if .menu}}<ul>{{range .menu_items}}<li{{if is_active .URL $.request.path}} class="active"{{end}}>{{.Title}}</li>{{end}}</ul>{{else}}empty{{end}}`)},
		"tabs/tabs-default.html": {Data: []byte(
			`{{if .tab}}{{range .tabs}}<div>{{.Content}}</div>{{end}}{{end}}`)},
		"index.html": {Data: []byte(`<body>{{show_menu "main" "" .request}}|{{show_tabs "missing"}}</body>`)},
		"README.md":  {Data: []byte(`not a template`)},
	}
}

func newTestFragments(t *testing.T, resolver GroupResolver) *Fragments {
	t.Helper()
	f := NewFragments(resolver)
	tmpl, err := LoadTemplates(testTemplates(), f.FuncMap())
	if err != nil {
		t.Fatalf("load templates: %v", err)
	}
	f.SetTemplates(tmpl)
	return f
}

func mainMenu() service.ResolvedGroup {
	return service.ResolvedGroup{
		Kind:  service.KindMenu,
		Slug:  "main",
		Group: &service.GroupView{ID: 1, Name: "Main", Slug: "main"},
		Items: []service.ItemView{
			{ID: 1, Title: "Home", URL: "/"},
			{ID: 2, Title: "About", URL: "/about"},
		},
	}
}

func TestLoadTemplatesNamesByPath(t *testing.T) {
	f := newTestFragments(t, &stubResolver{})
	tmpl := f.Templates()
	for _, name := range []string{"menu/menu-default.html", "tabs/tabs-default.html", "index.html"} {
		if tmpl.Lookup(name) == nil {
			t.Fatalf("template %s not loaded", name)
		}
	}
	if tmpl.Lookup("README.md") != nil {
		t.Fatalf("non-html files must be skipped")
	}
}

func TestLoadTemplatesErrors(t *testing.T) {
	if _, err := LoadTemplates(fstest.MapFS{}, nil); err == nil {
		t.Fatalf("expected an empty template dir to fail")
	}
	if _, err := LoadTemplates(fstest.MapFS{"bad.html": {Data: []byte(`{{if}}`)}}, nil); err == nil {
		t.Fatalf("expected a parse error")
	}
}

func TestShowMenuHighlightsActiveLink(t *testing.T) {
	resolver := &stubResolver{groups: map[string]service.ResolvedGroup{"menu:main": mainMenu()}}
	f := newTestFragments(t, resolver)

	html, err := f.ShowMenu("main", "", map[string]interface{}{"path": "/about/team"})
	if err != nil {
		t.Fatalf("show menu: %v", err)
	}
	if want := template.HTML(`<ul><li>Home</li><li class="active">About</li></ul>`); html != want {
		t.Fatalf("expected %q, got %q", want, html)
	}
}

func TestShowMenuMissingRendersEmptyState(t *testing.T) {
	f := newTestFragments(t, &stubResolver{})

	html, err := f.ShowMenu("nope", "", nil)
	if err != nil {
		t.Fatalf("show menu: %v", err)
	}
	if html != "empty" {
		t.Fatalf("expected empty state, got %q", html)
	}
}

func TestShowTabsKeepsSanitizedMarkup(t *testing.T) {
	resolver := &stubResolver{groups: map[string]service.ResolvedGroup{
		"tabs:features": {
			Kind:  service.KindTab,
			Slug:  "features",
			Group: &service.GroupView{ID: 3, Name: "Features", Slug: "features"},
			Items: []service.ItemView{{ID: 1, Title: "One", Content: template.HTML("<b>bold</b>")}},
		},
	}}
	f := newTestFragments(t, resolver)

	html, err := f.ShowTabs("features", "", nil)
	if err != nil {
		t.Fatalf("show tabs: %v", err)
	}
	if html != "<div><b>bold</b></div>" {
		t.Fatalf("sanitized markup should render unescaped, got %q", html)
	}
}

func TestRenderRejectsUnsafeTemplateBeforeLookup(t *testing.T) {
	resolver := &stubResolver{}
	f := newTestFragments(t, resolver)

	if _, err := f.ShowMenu("main", "../index", nil); !errors.Is(err, ErrPathTraversal) {
		t.Fatalf("expected ErrPathTraversal, got %v", err)
	}
	if resolver.calls != 0 {
		t.Fatalf("resolver should not be called, got %d calls", resolver.calls)
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	f := newTestFragments(t, &stubResolver{})

	if _, err := f.ShowMenu("main", "sidebar", nil); !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
}

func TestRenderPropagatesResolverErrors(t *testing.T) {
	f := newTestFragments(t, &stubResolver{err: errors.New("db down")})

	if _, err := f.ShowTabs("features", "", nil); err == nil {
		t.Fatalf("expected resolver error to propagate")
	}
}

func TestTemplateFuncsInsidePage(t *testing.T) {
	resolver := &stubResolver{groups: map[string]service.ResolvedGroup{"menu:main": mainMenu()}}
	f := newTestFragments(t, resolver)

	var sb strings.Builder
	err := f.Templates().ExecuteTemplate(&sb, "index.html", map[string]interface{}{
		"request": map[string]interface{}{"path": "/"},
	})
	if err != nil {
		t.Fatalf("execute index: %v", err)
	}
	if want := `<body><ul><li class="active">Home</li><li>About</li></ul>|</body>`; sb.String() != want {
		t.Fatalf("expected %q, got %q", want, sb.String())
	}
}

func TestIsActive(t *testing.T) {
	tests := []struct {
		link    string
		current string
		want    bool
	}{
		{link: "/", current: "/", want: true},
		{link: "/", current: "/about", want: false},
		{link: "/about", current: "/about", want: true},
		{link: "/about/", current: "/about", want: true},
		{link: "/about", current: "/about/team", want: true},
		{link: "/about", current: "/aboutus", want: false},
		{link: "/about?x=1", current: "/about?y=2", want: true},
		{link: "#contacts", current: "/", want: false},
		{link: "https://example.com/", current: "/", want: false},
		{link: "", current: "/", want: false},
		{link: "/about", current: "", want: false},
	}
	for _, tt := range tests {
		if got := IsActive(tt.link, tt.current); got != tt.want {
			t.Fatalf("IsActive(%q, %q) = %v, want %v", tt.link, tt.current, got, tt.want)
		}
	}
}
