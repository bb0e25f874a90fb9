package hashtable

import (
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
)

type slotState uint8

const (
	slotEmpty slotState = iota
	slotTombstone
	slotOccupied
)

// slot is one bucket. key and value are only meaningful when Occupied.
type slot struct {
	state slotState
	key   string
	value string
}

// Table is a fixed-size hash table using open addressing with double hashing
type Table struct {
	slots      []slot
	size       int
	count      int
	tombstones int
	hasher     Hasher
	logger     *slog.Logger
	destroyed  bool
}

// Stats is a point-in-time summary of slot usage.
type Stats struct {
	Size       int
	Count      int
	Tombstones int
	LoadFactor float64
}

// Option configures a Table.
type Option func(*Table)

// WithLogger sets the logger used for lifecycle and capacity events.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Table) {
		t.logger = logger
	}
}

// WithHasher overrides the hasher selected by Config.Hasher.
func WithHasher(h Hasher) Option {
	return func(t *Table) {
		t.hasher = h
	}
}

// Create returns an empty table with the default configuration.
func Create() *Table {
	t, err := New(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return t
}

// New creates an empty table with cfg.Size buckets.
func New(cfg Config, opts ...Option) (*Table, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	t := &Table{
		slots:  make([]slot, cfg.Size),
		size:   cfg.Size,
		hasher: cfg.hasher(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}

	t.logger.Debug("hash table created", "size", t.size, "hasher", cfg.Hasher)
	return t, nil
}

// Destroy releases every entry and the slot array. Calling it again is a no-op.
func (t *Table) Destroy() {
	if t.destroyed {
		return
	}
	t.logger.Debug("hash table destroyed", "size", t.size, "count", t.count)

	for i := range t.slots {
		t.slots[i] = slot{}
	}
	t.slots = nil
	t.count = 0
	t.tombstones = 0
	t.destroyed = true
}

// Insert adds key with value, or replaces the value of an existing key.
func (t *Table) Insert(key, value string) error {
	if t.destroyed {
		return errors.Wrapf(ErrDestroyed, "insert %q", key)
	}

	hashA, hashB := t.hasher.Hash(key, t.size)
	free := -1

probe:
	for attempt := 0; attempt < t.size; attempt++ {
		idx := probeIndex(hashA, hashB, attempt, t.size)
		s := &t.slots[idx]

		switch s.state {
		case slotEmpty:
			if free < 0 {
				free = idx
			}
			break probe
		case slotTombstone:
			// Reuse the first tombstone, but keep looking for a live copy of key.
			if free < 0 {
				free = idx
			}
		case slotOccupied:
			if s.key == key {
				s.value = strings.Clone(value)
				return nil
			}
		}
	}

	if free < 0 {
		t.logger.Warn("hash table full",
			"key", key, "size", t.size, "count", t.count, "tombstones", t.tombstones)
		return errors.Wrapf(ErrCapacityExceeded, "insert %q into %d buckets", key, t.size)
	}

	if t.slots[free].state == slotTombstone {
		t.tombstones--
	}
	t.slots[free] = slot{
		state: slotOccupied,
		key:   strings.Clone(key),
		value: strings.Clone(value),
	}
	t.count++
	return nil
}

// Search returns the value stored for key.
func (t *Table) Search(key string) (string, bool) {
	idx := t.lookup(key)
	if idx < 0 {
		return "", false
	}
	return t.slots[idx].value, true
}

// Delete removes key, leaving a tombstone in its slot. It reports whether the
// key was present.
func (t *Table) Delete(key string) bool {
	idx := t.lookup(key)
	if idx < 0 {
		return false
	}

	t.slots[idx] = slot{state: slotTombstone}
	t.count--
	t.tombstones++
	return true
}

// lookup returns the slot index holding key, or -1. It stops at the first
// Empty slot and walks past Tombstones.
func (t *Table) lookup(key string) int {
	if t.destroyed {
		return -1
	}

	hashA, hashB := t.hasher.Hash(key, t.size)
	for attempt := 0; attempt < t.size; attempt++ {
		idx := probeIndex(hashA, hashB, attempt, t.size)
		s := &t.slots[idx]

		switch s.state {
		case slotEmpty:
			return -1
		case slotOccupied:
			if s.key == key {
				return idx
			}
		}
	}
	return -1
}

// Len returns the number of live entries.
func (t *Table) Len() int {
	return t.count
}

// Size returns the fixed bucket count.
func (t *Table) Size() int {
	return t.size
}

func (t *Table) Stats() Stats {
	return Stats{
		Size:       t.size,
		Count:      t.count,
		Tombstones: t.tombstones,
		LoadFactor: float64(t.count) / float64(t.size),
	}
}
