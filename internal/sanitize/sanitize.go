// Package sanitize cleans rich-text HTML against a configured allow-list.
package sanitize

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/sitecms/internal/config"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// GlobalAttributes is the attribute map key that applies to every allowed tag.
const GlobalAttributes = "*"

var markdownEngine = goldmark.New(
	goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
	goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
)

// Sanitizer holds a policy compiled once from the startup configuration.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// New compiles the allow-list from cfg.
func New(cfg config.SanitizerConfig) *Sanitizer {
	return &Sanitizer{policy: buildPolicy(cfg.AllowedTags, cfg.AllowedAttributes)}
}

// Clean strips everything outside the allow-list. A nil Sanitizer strips all markup.
func (s *Sanitizer) Clean(raw string) string {
	if s == nil || s.policy == nil {
		return Clean(raw, nil, nil)
	}
	return s.policy.Sanitize(raw)
}

// Clean removes every element not in allowedTags and every attribute not
// permitted for its element. Text content of removed elements is kept, except
// for script and style bodies. Empty allow-lists strip all markup.
func Clean(raw string, allowedTags []string, allowedAttrs map[string][]string) string {
	return buildPolicy(allowedTags, allowedAttrs).Sanitize(raw)
}

// RenderMarkdown converts markdown to HTML. The result is not yet sanitized.
func RenderMarkdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func buildPolicy(allowedTags []string, allowedAttrs map[string][]string) *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	// link attributes must parse and be relative or http(s)/mailto
	p.RequireParseableURLs(true)
	p.AllowRelativeURLs(true)
	p.AllowURLSchemes("mailto", "http", "https")

	tags := normalize(allowedTags)
	if len(tags) == 0 {
		return p
	}
	allowed := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		allowed[tag] = struct{}{}
	}

	p.AllowElements(tags...)
	p.AllowNoAttrs().OnElements(tags...)

	for tag, attrs := range allowedAttrs {
		names := normalize(attrs)
		if len(names) == 0 {
			continue
		}
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == GlobalAttributes {
			p.AllowAttrs(names...).Globally()
			continue
		}
		// OnElements would implicitly allow the element itself.
		if _, ok := allowed[tag]; !ok {
			continue
		}
		p.AllowAttrs(names...).OnElements(tag)
	}

	return p
}

func normalize(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
