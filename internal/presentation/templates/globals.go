package templates

import _ "embed"

//go:embed globals.css
var globalStylesheet string

// GlobalStylesheet returns the fixed design-system stylesheet shipped with every site
func GlobalStylesheet() string {
	return globalStylesheet
}
