package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"

	"github.com/bitboardgames/tictacgo/internal/engine"
)

var cfgFile = "tictacgo/config.json"

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

// Symbols are the glyphs used to draw the board. Runes are stored as
// their numeric code points in JSON.
type Symbols struct {
	First  rune `json:"first"`
	Second rune `json:"second"`
	Empty  rune `json:"empty"`
}

type Config struct {
	ListenAddr string  `json:"listen_addr"`
	Symbols    Symbols `json:"symbols"`
}

// Init loads the config from the XDG config directory, falling back to
// defaults when no file exists.
func Init() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		readCfgFile(absPath, &config)
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Symbols.First, c.Symbols.Second, c.Symbols.Empty} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if c.Symbols.First == c.Symbols.Second {
		return &InvalidConfig{"player symbols must differ"}
	}
	return nil
}

// Marks converts the configured symbols into the engine's glyph set.
func (c *Config) Marks() engine.Marks {
	return engine.Marks{
		First:  c.Symbols.First,
		Second: c.Symbols.Second,
		Empty:  c.Symbols.Empty,
	}
}

func (c *Config) Save() {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		panic(err)
	}
	saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		panic(err)
	}
	err = os.WriteFile(filePath, jsonData, perm)
	if err != nil {
		panic(err)
	}
}

func readCfgFile(filePath string, a interface{}) {
	configReader, err := os.ReadFile(filePath)
	if err == nil {
		err = json.Unmarshal(configReader, &a)
		if err != nil {
			panic(err)
		}
	}
}
