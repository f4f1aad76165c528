package components

import "github.com/tobbylie/blog/internal/ui"

const linkBase = "font-medium text-sky-700 underline-offset-4 hover:underline"

// linkClass layers the caller's classes over the defaults. The link to the
// current page drops its hover underline.
func linkClass(p LinkProps) string {
	if p.Current {
		return ui.Class(linkBase, p.Class, "hover:no-underline")
	}
	return ui.Class(linkBase, p.Class)
}
