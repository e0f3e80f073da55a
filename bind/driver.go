// Package bind implements marker-driven service registration: it walks every
// module in a type catalog, scans each one for marked types (through a
// per-module cache), derives a binding per marked type and appends it to a
// service registry, skipping pairs the registry already holds.
//
// The typical host calls it once during startup:
//
//	reg := registry.NewDo(injector)
//	if _, err := bind.RegisterAll(reg); err != nil {
//		log.Fatal().Err(err).Msg("auto-registration failed")
//	}
//
// RegisterAll is idempotent: a second call with the same catalog adds
// nothing.
package bind

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/omarluq/autobind/catalog"
	"github.com/omarluq/autobind/registry"
	"github.com/omarluq/autobind/scan"
)

// Option configures a Driver.
type Option func(*Driver)

// WithPolicy selects the abstraction-derivation policy.
// The default is PolicyMarker.
func WithPolicy(p Policy) Option {
	return func(d *Driver) { d.policy = p }
}

// WithWorkers bounds the number of modules scanned in parallel.
// Values below one fall back to GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(d *Driver) {
		if n > 0 {
			d.workers = n
		}
	}
}

// Driver runs marker-driven registration over one catalog.
type Driver struct {
	catalog catalog.Catalog
	scanner *scan.Scanner
	cache   *scan.Cache
	policy  Policy
	workers int

	// regMu serializes check-then-insert so two workers discovering the
	// same (abstraction, concrete) pair cannot both insert it. Scans run
	// outside this section.
	regMu sync.Mutex
}

// New creates a driver over the given catalog and scan cache.
func New(cat catalog.Catalog, cache *scan.Cache, opts ...Option) *Driver {
	d := &Driver{
		catalog: cat,
		scanner: scan.NewScanner(cat),
		cache:   cache,
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// RegisterAll scans every module in the catalog and appends the derived
// bindings to reg, returning the same registry.
//
// Modules are processed independently and in parallel. A module whose scan
// fails contributes nothing but does not stop the others; RegisterAll still
// returns the registry together with the per-module errors, aggregated.
func (d *Driver) RegisterAll(reg registry.Registry) (registry.Registry, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}

	modules := d.catalog.Modules()
	log := logger().With().Str("scan_id", uuid.NewString()).Logger()
	log.Info().
		Int("modules", len(modules)).
		Str("policy", d.policy.String()).
		Msg("registration started")

	var (
		g     errgroup.Group
		errMu sync.Mutex
		merr  *multierror.Error
	)
	g.SetLimit(d.workers)

	for _, m := range modules {
		g.Go(func() error {
			res, err := d.cache.GetOrCompute(m, d.scanner.Scan)
			if err != nil {
				errMu.Lock()
				merr = multierror.Append(merr, fmt.Errorf("module %q: %w", m, err))
				errMu.Unlock()
				log.Warn().Str("module", m.String()).Err(err).Msg("module scan failed")
				return nil
			}

			for _, mt := range res.Marked {
				b := derive(d.policy, mt, res.Interfaces)
				if err := d.insertOnce(reg, b); err != nil {
					errMu.Lock()
					merr = multierror.Append(merr, fmt.Errorf("module %q: %w", m, err))
					errMu.Unlock()
				}
			}
			return nil
		})
	}

	// Workers never return errors through the group; failures are
	// aggregated per module above.
	_ = g.Wait()

	log.Info().
		Int("bindings", len(reg.Bindings())).
		Msg("registration finished")

	return reg, merr.ErrorOrNil()
}

// insertOnce appends the binding unless its (abstraction, concrete) pair is
// already present. The check and the insert run under one lock to keep
// repeated and concurrent registration idempotent.
func (d *Driver) insertOnce(reg registry.Registry, b registry.Binding) error {
	d.regMu.Lock()
	defer d.regMu.Unlock()

	log := logger()
	if reg.Contains(b.Abstraction, b.Concrete) {
		log.Debug().Str("binding", b.Key()).Msg("binding already present, skipping")
		return nil
	}
	if err := reg.Insert(b); err != nil {
		return err
	}
	log.Debug().
		Str("binding", b.Key()).
		Str("lifetime", b.Lifetime.String()).
		Msg("binding registered")
	return nil
}

// defaultCache memoizes scans for the package-level RegisterAll across
// repeated calls.
var defaultCache = scan.NewCache()

// RegisterAll runs registration over the process-wide default catalog.
// Hosts that construct their own catalog should build a Driver instead.
func RegisterAll(reg registry.Registry, opts ...Option) (registry.Registry, error) {
	return New(catalog.Default(), defaultCache, opts...).RegisterAll(reg)
}
