package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenCache(t *testing.T) {
	c := newTokenCache(2)
	assert.False(t, c.verified("a", "tok-a"))

	c.remember("a", "tok-a")
	assert.True(t, c.verified("a", "tok-a"))
	assert.False(t, c.verified("a", "tok-b"))

	c.remember("b", "tok-b")
	c.remember("c", "tok-c")
	assert.Equal(t, 2, c.len())
	assert.False(t, c.verified("a", "tok-a"), "oldest entry is evicted")

	c.forget("c")
	assert.False(t, c.verified("c", "tok-c"))
	assert.True(t, c.verified("b", "tok-b"))
}
