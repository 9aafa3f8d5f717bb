package config

import (
	"context"
	"fmt"

	"github.com/cognicore/ruscorpora/pkg/ruscorpora/normalize"
	"github.com/cognicore/ruscorpora/pkg/ruscorpora/store"
	"github.com/cognicore/ruscorpora/pkg/ruscorpora/store/memstore"
	"github.com/cognicore/ruscorpora/pkg/ruscorpora/store/sqlite"
)

// MemoryStore selects the in-memory store in Loader.StorePath.
const MemoryStore = ":memory:"

// Loader loads configuration files and constructs components
type Loader struct {
	OptionsPath string
	// StorePath is a SQLite database path, MemoryStore, or empty for none.
	StorePath string
	// Override, when set, adjusts the loaded options (command-line flags).
	Override func(*normalize.Options)
}

// Components holds all loaded configuration components
type Components struct {
	Options    normalize.Options
	Normalizer *normalize.Normalizer
	Store      store.Store
}

// Close releases the store, if any.
func (c *Components) Close() error {
	if c.Store == nil {
		return nil
	}
	return c.Store.Close()
}

// Load reads the options file and opens the store
func (l *Loader) Load(ctx context.Context) (*Components, error) {
	opts := normalize.DefaultOptions()
	if l.OptionsPath != "" {
		loaded, err := LoadOptions(l.OptionsPath)
		if err != nil {
			return nil, fmt.Errorf("load options: %w", err)
		}
		opts = loaded
	}
	if l.Override != nil {
		l.Override(&opts)
		if err := opts.Validate(); err != nil {
			return nil, err
		}
	}

	comp := &Components{
		Options:    opts,
		Normalizer: normalize.New(opts),
	}

	switch l.StorePath {
	case "":
	case MemoryStore:
		comp.Store = memstore.New()
	default:
		st, err := sqlite.Open(ctx, l.StorePath)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		comp.Store = st
	}

	return comp, nil
}
