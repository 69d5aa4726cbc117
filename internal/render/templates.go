package render

import (
	"fmt"
	"html/template"
	"io/fs"
	"path"
)

// LoadTemplates parses every *.html file under fsys. Each template is named
// by its slash separated path relative to the root, e.g. "menu/menu-default.html".
// funcs must be registered before parsing, so fragment helpers are passed in here.
func LoadTemplates(fsys fs.FS, funcs template.FuncMap) (*template.Template, error) {
	root := template.New("").Funcs(funcs)

	count := 0
	err := fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(name) != templateSuffix {
			return nil
		}

		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("read template %s: %w", name, err)
		}
		if _, err := root.New(name).Parse(string(data)); err != nil {
			return fmt.Errorf("parse template %s: %w", name, err)
		}
		count++
		return nil
	})
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, fmt.Errorf("no templates found")
	}
	return root, nil
}
