package clock

import "go.uber.org/fx"

// Module provides the system clock pinned to the configured invoice timezone.
var Module = fx.Module("clock",
	fx.Provide(
		fx.Annotate(NewSystemClock, fx.As(new(Clock))),
	),
)
