// Package web holds the embedded landing page served at the API root.
package web

import _ "embed"

//go:embed index.html
var Index []byte
