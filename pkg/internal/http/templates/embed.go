package templates

import "embed"

//go:embed layouts partials posts core auth about
var FS embed.FS
