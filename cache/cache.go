// Package cache keeps loaded vocabularies in memory so the shell and
// batch solver don't re-read and re-normalize a word list for every
// puzzle that uses it.
package cache

import (
	"sync"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"

	"github.com/domino14/crossgen/wordlist"
)

type cache struct {
	sync.Mutex
	vocabularies map[string][]string
	fingerprints map[string]uint64
}

// GlobalVocabCache is our global vocabulary cache, of course.
var GlobalVocabCache *cache

func init() {
	GlobalVocabCache = &cache{
		vocabularies: map[string][]string{},
		fingerprints: map[string]uint64{},
	}
}

func fingerprint(words []string) uint64 {
	h := xxhash.New()
	for _, w := range words {
		h.Write([]byte(w))
		h.Write([]byte{0})
	}
	return h.Sum64()
}

func (c *cache) load(src string) error {
	log.Debug().Str("src", src).Msg("loading vocabulary into cache")
	words, err := wordlist.Load(src)
	if err != nil {
		return err
	}
	fp := fingerprint(words)
	if prev, ok := c.fingerprints[src]; ok && prev != fp {
		log.Info().Str("src", src).Uint64("old", prev).Uint64("new", fp).
			Msg("word list contents changed since last load")
	}
	c.vocabularies[src] = words
	c.fingerprints[src] = fp
	return nil
}

func (c *cache) get(src string) ([]string, error) {
	c.Lock()
	defer c.Unlock()
	if words, ok := c.vocabularies[src]; ok {
		log.Debug().Str("src", src).Msg("vocabulary cache hit")
		return words, nil
	}
	if err := c.load(src); err != nil {
		return nil, err
	}
	return c.vocabularies[src], nil
}

// Vocabulary returns the word list at src (a path or URL), loading it
// on first use. Callers must not mutate the returned slice.
func Vocabulary(src string) ([]string, error) {
	return GlobalVocabCache.get(src)
}

// Evict forgets a cached list so the next Vocabulary call re-reads it.
func Evict(src string) {
	GlobalVocabCache.Lock()
	defer GlobalVocabCache.Unlock()
	delete(GlobalVocabCache.vocabularies, src)
}
