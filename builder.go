package authcore

import (
	"errors"

	"github.com/anoylabs/authcore/storage"
)

// Builder assembles a Manager. Construction is allocation-only; no tier I/O
// happens until the first Manager operation.
type Builder struct {
	config  Config
	local   storage.Tier
	session storage.Tier
	sink    AuditSink
	built   bool
}

// New returns a Builder preloaded with the default configuration.
func New() *Builder {
	return &Builder{config: defaultConfig()}
}

// WithConfig replaces the configuration. Zero fields keep their defaults.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithLocalTier sets the long-lived storage tier. Required.
func (b *Builder) WithLocalTier(tier storage.Tier) *Builder {
	b.local = tier
	return b
}

// WithSessionTier sets the short-lived storage tier. Defaults to an
// in-process [storage.MemoryTier].
func (b *Builder) WithSessionTier(tier storage.Tier) *Builder {
	b.session = tier
	return b
}

// WithAuditSink sets the audit event receiver. Defaults to [NoOpSink].
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.sink = sink
	return b
}

// Build validates the configuration and returns the Manager. A Builder is
// single-use.
func (b *Builder) Build() (*Manager, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	b.config.applyDefaults()
	if err := b.config.validate(); err != nil {
		return nil, err
	}
	if b.local == nil {
		return nil, errors.New("long-lived storage tier is required")
	}
	if b.session == nil {
		b.session = storage.NewMemoryTier()
	}

	adapter, err := storage.NewAdapter(b.local, b.session, b.config.Storage.KeyPrefix)
	if err != nil {
		return nil, err
	}

	b.built = true
	return &Manager{
		config:  b.config,
		adapter: adapter,
		audit:   newAuditDispatcher(b.config.Audit, b.sink),
		metrics: newMetrics(),
	}, nil
}
