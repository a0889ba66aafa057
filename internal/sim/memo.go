package sim

import (
	"encoding/hex"
	"fmt"
	"time"

	cache "github.com/go-pkgz/expirable-cache/v3"
	"github.com/goccy/go-json"
	"golang.org/x/crypto/blake2b"

	"github.com/udisondev/ttkbench/internal/model"
)

// Memo caches aggregate results by a fingerprint of everything that
// determines them: armed weapon, request, ammo tier, trial count and seed.
//
// Thread-safe: the underlying cache is synchronized.
type Memo struct {
	c cache.Cache[string, model.AggregateStat]
}

// NewMemo creates an LRU memo holding at most maxKeys results for ttl each.
// ttl <= 0 keeps entries until evicted.
func NewMemo(maxKeys int, ttl time.Duration) *Memo {
	c := cache.NewCache[string, model.AggregateStat]().WithLRU()
	if maxKeys > 0 {
		c = c.WithMaxKeys(maxKeys)
	}
	if ttl > 0 {
		c = c.WithTTL(ttl)
	}
	return &Memo{c: c}
}

// Get returns a cached result.
func (m *Memo) Get(key string) (model.AggregateStat, bool) {
	return m.c.Get(key)
}

// Put stores a result under key with the memo's default ttl.
func (m *Memo) Put(key string, s model.AggregateStat) {
	m.c.Set(key, s, 0)
}

// Len returns the number of cached results.
func (m *Memo) Len() int {
	return m.c.Len()
}

// Purge drops every cached result.
func (m *Memo) Purge() {
	m.c.Purge()
}

type memoInput struct {
	Weapon  *model.ArmedWeapon `json:"w"`
	Request *model.Request     `json:"r"`
	Ammo    model.AmmoTag      `json:"a"`
	Trials  int                `json:"n"`
	Seed    uint32             `json:"s"`
}

// MemoKey fingerprints one aggregation with BLAKE2b-256.
func MemoKey(w *model.ArmedWeapon, req *model.Request, tag model.AmmoTag, trials int, seed uint32) (string, error) {
	b, err := json.Marshal(memoInput{Weapon: w, Request: req, Ammo: tag, Trials: trials, Seed: seed})
	if err != nil {
		return "", fmt.Errorf("encoding memo key: %w", err)
	}
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}
