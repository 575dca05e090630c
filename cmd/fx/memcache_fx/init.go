package memcache_fx

import (
	"go.uber.org/fx"

	mem "dreamtrip/pkg/memcache"
)

var Module = fx.Provide(provideRequestCounterStore)

func provideRequestCounterStore() mem.RequestCounterStore {
	return mem.NewRequestCounters()
}
