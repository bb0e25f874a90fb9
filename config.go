package hashtable

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// Hasher names accepted in Config.Hasher.
const (
	HasherPolynomial = "polynomial"
	HasherXX         = "xxhash"
)

const (
	// DefaultSize is the bucket count used by Create.
	DefaultSize = 53
	// MaxSize bounds the slot slice allocated by New.
	MaxSize = 1 << 28

	minPrimeBase = 128
)

// Config describes a table. Zero fields fall back to DefaultConfig when merged.
type Config struct {
	Size   int    `json:"size,omitempty"`
	Hasher string `json:"hasher,omitempty"`
	PrimeA uint64 `json:"prime_a,omitempty"`
	PrimeB uint64 `json:"prime_b,omitempty"`
}

// DefaultConfig returns the 53-bucket polynomial configuration.
func DefaultConfig() Config {
	return Config{
		Size:   DefaultSize,
		Hasher: HasherPolynomial,
		PrimeA: DefaultPrimeA,
		PrimeB: DefaultPrimeB,
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Size > 0 {
		c.Size = source.Size
	}
	if source.Hasher != "" {
		c.Hasher = source.Hasher
	}
	if source.PrimeA > 0 {
		c.PrimeA = source.PrimeA
	}
	if source.PrimeB > 0 {
		c.PrimeB = source.PrimeB
	}
}

// Validate reports whether c can build a table with full probe coverage.
func (c Config) Validate() error {
	if c.Size < 1 || c.Size > MaxSize {
		return errors.Wrapf(ErrInvalidConfig, "size %d outside [1, %d]", c.Size, MaxSize)
	}
	if c.Size > 1 && !isPrime(c.Size) {
		return errors.Wrapf(ErrInvalidConfig, "size %d is not prime", c.Size)
	}

	switch c.Hasher {
	case HasherPolynomial:
		if c.PrimeA <= minPrimeBase || c.PrimeB <= minPrimeBase {
			return errors.Wrapf(ErrInvalidConfig, "polynomial bases %d, %d must exceed %d",
				c.PrimeA, c.PrimeB, minPrimeBase)
		}
		if c.PrimeA == c.PrimeB {
			return errors.Wrapf(ErrInvalidConfig, "polynomial bases must differ, both are %d", c.PrimeA)
		}
	case HasherXX:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown hasher %q", c.Hasher)
	}
	return nil
}

func (c Config) hasher() Hasher {
	if c.Hasher == HasherXX {
		return XXHasher{}
	}
	return PolynomialHasher{PrimeA: c.PrimeA, PrimeB: c.PrimeB}
}

// LoadConfig reads a JSON config file, merges it with defaults, and validates
// the result.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	var loaded Config
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}

	cfg.Merge(&loaded)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
