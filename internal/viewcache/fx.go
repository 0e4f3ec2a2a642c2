package viewcache

import (
	"time"

	"go.uber.org/fx"
)

const defaultTTL = 30 * time.Second

func Provide() *Cache {
	return New(defaultTTL)
}

var Module = fx.Module("viewcache",
	fx.Provide(Provide),
)
