package wordlist

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

func TestParseNormalizes(t *testing.T) {
	is := is.New(t)
	words, err := Parse([]byte("cat\nDog\n\n  bird  \ncat\n"))
	is.NoErr(err)
	is.Equal(words, []string{"CAT", "DOG", "BIRD"})
}

func TestParseEmpty(t *testing.T) {
	is := is.New(t)
	_, err := Parse([]byte("\n\n  \n"))
	is.True(err != nil)
}

func TestParseLatin1(t *testing.T) {
	is := is.New(t)
	// "café" in Latin-1; not valid UTF-8
	words, err := Parse([]byte{'c', 'a', 'f', 0xe9, '\n'})
	is.NoErr(err)
	is.Equal(words, []string{"CAFÉ"})
}

func TestLoadFromFile(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "words.txt")
	is.NoErr(os.WriteFile(path, []byte("alpha\nbeta\n"), 0o644))
	words, err := Load(path)
	is.NoErr(err)
	is.Equal(words, []string{"ALPHA", "BETA"})
}

func TestLoadFromHTTPRetries(t *testing.T) {
	is := is.New(t)
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, "alpha\nbeta\n")
	}))
	defer srv.Close()

	words, err := Load(srv.URL)
	is.NoErr(err)
	is.Equal(words, []string{"ALPHA", "BETA"})
	is.Equal(calls, 3) // two failures, then the successful fetch
}

func TestLoadFromHTTPGivesUp(t *testing.T) {
	is := is.New(t)
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := Load(srv.URL)
	is.True(err != nil)
	is.Equal(calls, 3) // attempts are bounded
}

func TestLoadMissingFile(t *testing.T) {
	is := is.New(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	is.True(err != nil)
}
