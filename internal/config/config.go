// Package config loads the small set of TOML-sourced knobs the
// compiler shell (cmd/fstc) accepts, in the style of the teacher's TQW
// file loader: a plain struct with "toml" tags, decoded with
// BurntSushi/toml. The core packages (symbol, fst, construct, eval)
// take no configuration of their own and never import this package;
// configuration is purely a concern of the outer driver.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the full set of knobs the fstc shell reads from disk.
type Config struct {
	// Determinize holds the state-count limit the shell applies to each
	// compiled expression's result.
	Determinize Determinize `toml:"determinize"`

	// Print holds formatting knobs for FST.String() output.
	Print Print `toml:"print"`
}

// Determinize bounds the size of the FSTs the shell prints.
type Determinize struct {
	// MaxStates is the largest number of states an evaluated
	// expression's final FST may have; the shell reports an error
	// instead of printing a larger result. The check runs after
	// evaluation has finished, so it does not bound the work or memory
	// of the subset construction itself. Zero means no limit.
	MaxStates int `toml:"max_states"`
}

// Print controls FST.String() rendering as surfaced through the shell.
type Print struct {
	// WrapWidth is the column at which arc lines are wrapped. Zero
	// falls back to the package default used by fst.FST.String().
	WrapWidth int `toml:"wrap_width"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Determinize: Determinize{MaxStates: 100000},
		Print:       Print{WrapWidth: 76},
	}
}

// Load reads and decodes the TOML file at path. A missing file is not
// an error; Default() is returned instead, mirroring the teacher's
// tolerance of an absent, optional resource file.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
