// Package assets maps stored asset filenames to publicly retrievable
// URLs. Resolution is pure string work against a base origin fixed at
// startup; nothing here checks that an asset actually exists.
package assets

import (
	"fmt"
	"strings"
)

type Resolver struct {
	base string
}

func NewResolver(baseOrigin string) Resolver {
	return Resolver{base: strings.TrimRight(baseOrigin, "/")}
}

func (r Resolver) Resolve(filename string) string {
	return fmt.Sprintf("%s/uploads/%s", r.base, filename)
}
