package di

import "github.com/samber/do/v2"

// RegisterSingletons registers all service providers as singletons.
// Services are registered in dependency order:
// 1. Config (no dependencies)
// 2. Logger (depends on Config)
// 3. ScanCache (no dependencies)
// 4. Registry (publishes into the container itself)
// 5. Driver (depends on Config, ScanCache).
func RegisterSingletons(i do.Injector) {
	do.Provide(i, NewConfig)
	do.Provide(i, NewLogger)
	do.Provide(i, NewScanCache)
	do.Provide(i, NewRegistry)
	do.Provide(i, NewDriver)
}
