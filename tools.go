//go:build tools
// +build tools

package tools

// Tool dependencies tracked in go.mod.

import (
	_ "github.com/pressly/goose/v3/cmd/goose"
	_ "github.com/swaggo/swag/cmd/swag"
)
