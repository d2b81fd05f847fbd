package main

import (
	"sync"

	"github.com/golang/groupcache/lru"
)

const verifiedTokenEntries = 1024

// tokenCache remembers the token last verified for each client id, so a
// signed-in browser pays for the bcrypt comparison once per login rather
// than on every request.
type tokenCache struct {
	mu    sync.Mutex
	cache *lru.Cache
}

func newTokenCache(size int) *tokenCache {
	return &tokenCache{cache: lru.New(size)}
}

func (c *tokenCache) verified(clientID, token string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.cache.Get(clientID)
	return ok && v.(string) == token
}

func (c *tokenCache) remember(clientID, token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Add(clientID, token)
}

func (c *tokenCache) forget(clientID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Remove(clientID)
}

func (c *tokenCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Len()
}
