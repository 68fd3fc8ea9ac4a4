//go:build tools

// Code generators run through go generate are pinned here so go.mod tracks them.
package board

import (
	_ "go.uber.org/mock/mockgen"
)
