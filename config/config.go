package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config carries all the knobs for the filler. Values come from an
// optional crossgen.yaml in the working directory, overridden by
// CROSSGEN_* environment variables.
type Config struct {
	Debug          bool
	WordList       string
	RandomTieBreak bool
	Seed           uint64
	HistoryFile    string
}

func defaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("wordlist", "./data/words.txt")
	v.SetDefault("randomtiebreak", false)
	v.SetDefault("seed", 0)
	v.SetDefault("historyfile", "/tmp/crossgen_readline.tmp")
}

// Load reads the configuration. A missing config file is fine; the
// defaults plus environment cover everything.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("crossgen")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("crossgen")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "", "_", ""))
	v.AutomaticEnv()
	defaults(v)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	return &Config{
		Debug:          v.GetBool("debug"),
		WordList:       v.GetString("wordlist"),
		RandomTieBreak: v.GetBool("randomtiebreak"),
		Seed:           v.GetUint64("seed"),
		HistoryFile:    v.GetString("historyfile"),
	}, nil
}
