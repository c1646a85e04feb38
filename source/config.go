package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"ctsample/ctbig"
)

// Config selects a stream and, optionally, a modulus for a sampling run.
type Config struct {
	Kind    Kind
	Seed    uint64
	Modulus string // big-endian hex, empty for the caller's default
}

// LoadConfig reads a JSON config. Keys may be capitalised or lower case;
// the seed may be a number or a decimal / 0x-prefixed hex string.
func LoadConfig(path string) (Config, error) {
	cfg := Config{Kind: ChaCha20}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	var raw map[string]any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if v, ok := lookup(raw, "kind"); ok {
		s, ok := v.(string)
		if !ok {
			return cfg, fmt.Errorf("kind must be a string in %s", path)
		}
		if cfg.Kind, err = ParseKind(s); err != nil {
			return cfg, err
		}
	}
	if v, ok := lookup(raw, "seed"); ok {
		switch t := v.(type) {
		case json.Number:
			if cfg.Seed, err = parseSeed(t.String()); err != nil {
				return cfg, err
			}
		case string:
			if cfg.Seed, err = parseSeed(t); err != nil {
				return cfg, err
			}
		default:
			return cfg, fmt.Errorf("seed must be a number or string in %s", path)
		}
	}
	if v, ok := lookup(raw, "modulus"); ok {
		s, ok := v.(string)
		if !ok {
			return cfg, fmt.Errorf("modulus must be a hex string in %s", path)
		}
		cfg.Modulus = s
		if _, err := cfg.ModulusUint(); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func lookup(raw map[string]any, key string) (any, bool) {
	if v, ok := raw[key]; ok {
		return v, true
	}
	v, ok := raw[strings.ToUpper(key[:1])+key[1:]]
	return v, ok
}

func parseSeed(s string) (uint64, error) {
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s, base = s[2:], 16
	}
	v, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid seed: %w", err)
	}
	return v, nil
}

// Open returns the configured stream.
func (c Config) Open() (io.Reader, error) {
	return New(c.Kind, c.Seed)
}

// ModulusUint parses the configured modulus; a missing or zero modulus is an
// error.
func (c Config) ModulusUint() (ctbig.NonZeroUint, error) {
	if c.Modulus == "" {
		return ctbig.NonZeroUint{}, fmt.Errorf("no modulus configured")
	}
	u, err := ctbig.FromHex(c.Modulus)
	if err != nil {
		return ctbig.NonZeroUint{}, fmt.Errorf("modulus: %w", err)
	}
	m, ok := ctbig.NewNonZero(u)
	if !ok {
		return ctbig.NonZeroUint{}, fmt.Errorf("modulus: %w", ctbig.ErrZeroModulus)
	}
	return m, nil
}
