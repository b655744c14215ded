// Package wordlist loads the candidate vocabulary for a fill from a
// newline-delimited list on disk or over HTTP.
package wordlist

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
)

var upper = cases.Upper(language.Und)

// Load reads a word list from a local path or an http(s) URL. Words
// are uppercased and deduplicated; their first-seen order is kept, so
// repeated loads of the same list feed the solver identically.
func Load(src string) ([]string, error) {
	var data []byte
	var err error
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		data, err = fetch(src)
	} else {
		data, err = os.ReadFile(src)
	}
	if err != nil {
		return nil, err
	}
	words, err := Parse(data)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("src", src).Int("words", len(words)).Msg("loaded word list")
	return words, nil
}

// Parse splits raw list bytes into normalized words. Lists that are
// not valid UTF-8 are assumed to be Latin-1, the common legacy
// encoding for older lexicon files.
func Parse(data []byte) ([]string, error) {
	if !utf8.Valid(data) {
		decoded, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), data)
		if err != nil {
			return nil, fmt.Errorf("decoding latin-1 word list: %w", err)
		}
		data = decoded
	}
	var words []string
	for _, line := range strings.Split(string(data), "\n") {
		w := strings.TrimSpace(line)
		if w == "" {
			continue
		}
		words = append(words, upper.String(w))
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return lo.Uniq(words), nil
}

func fetch(url string) ([]byte, error) {
	var data []byte
	err := retry.Do(func() error {
		resp, err := http.Get(url)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("fetching %s: status %d", url, resp.StatusCode)
		}
		data, err = io.ReadAll(resp.Body)
		return err
	}, retry.Attempts(3))
	if err != nil {
		return nil, err
	}
	return data, nil
}
