package mvc

import "path"

// Resolver builds template paths.
type Resolver struct {
	// directory of templates, like "views" or "/WEB-INF/views"
	Base string

	// extension of templates, with leading dot.
	Ext string
}

func DefaultResolver() Resolver {
	return Resolver{Base: "views", Ext: ".html"}
}

// Path returns "<Base>/<controller>/<view><Ext>".
func (r Resolver) Path(controller string, view string) string {
	return path.Join(r.Base, controller, view) + r.Ext
}
