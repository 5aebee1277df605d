package session

import (
	"go.uber.org/fx"
)

// Module provides the visitor store and runs its janitor with the app lifecycle
var Module = fx.Module("session",
	fx.Provide(
		NewFactory,
		NewStore,
	),
	fx.Invoke(RegisterLifecycle),
)

// RegisterLifecycle starts and stops the eviction loop
func RegisterLifecycle(lc fx.Lifecycle, store *Store) {
	lc.Append(fx.Hook{
		OnStart: store.Start,
		OnStop:  store.Stop,
	})
}
