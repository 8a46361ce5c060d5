package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	r := NewResolver("http://localhost:8080")
	assert.Equal(t, "http://localhost:8080/uploads/lampadas.svg", r.Resolve("lampadas.svg"))
}

func TestResolveTrimsTrailingSlash(t *testing.T) {
	r := NewResolver("https://cdn.example.com/")
	assert.Equal(t, "https://cdn.example.com/uploads/a.jpg", r.Resolve("a.jpg"))
}
