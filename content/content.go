// Package content holds the bundled catalog text, one YAML file per language.
//
// Each file declares its language, its UI labels and the ordered list of
// index profiles. The order of indices is the selection menu order and the
// order of a composition mapping is its authoring order.
package content

import "embed"

//go:embed *.yaml
var FS embed.FS
