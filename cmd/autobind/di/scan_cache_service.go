package di

import (
	"github.com/samber/do/v2"

	"github.com/omarluq/autobind/scan"
)

// ScanCacheService wraps the per-module scan cache for DI.
type ScanCacheService struct {
	Cache *scan.Cache
}

// NewScanCache creates the scan cache. One cache serves the whole process;
// repeated registration runs reuse its memoized scans.
func NewScanCache(do.Injector) (*ScanCacheService, error) {
	return &ScanCacheService{Cache: scan.NewCache()}, nil
}
