package service

import (
	"errors"
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Main Menu", want: "main-menu"},
		{in: "  Main  Menu!! ", want: "main-menu"},
		{in: "Café Menü", want: "cafe-menu"},
		{in: "footer_links 2", want: "footer-links-2"},
		{in: "Главное", want: ""},
		{in: strings.Repeat("a", 60), want: strings.Repeat("a", 50)},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, in := range []string{"menu", "menus", "MENU"} {
		if k, ok := ParseKind(in); !ok || k != KindMenu {
			t.Errorf("ParseKind(%q) = %q, %v", in, k, ok)
		}
	}
	for _, in := range []string{"tab", "tabs"} {
		if k, ok := ParseKind(in); !ok || k != KindTab {
			t.Errorf("ParseKind(%q) = %q, %v", in, k, ok)
		}
	}
	if _, ok := ParseKind("page"); ok {
		t.Error("expected error for unknown kind")
	}
}

func TestValidateInputUsesSlugRule(t *testing.T) {
	for _, slug := range []string{"bad slug", "a/b", "дом"} {
		err := validateInput(MenuInput{Name: "Main", Slug: slug})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("slug %q: expected ValidationError, got %v", slug, err)
		}
		if verr.Field != "slug" || !strings.Contains(verr.Message, "letters, digits") {
			t.Fatalf("slug %q: unexpected error %+v", slug, verr)
		}
	}
	if err := validateInput(MenuInput{Name: "Main", Slug: "main_menu-2"}); err != nil {
		t.Fatalf("valid slug rejected: %v", err)
	}
}
