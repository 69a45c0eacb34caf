// Package web carries the embedded HTML templates served by the rate
// handlers.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
