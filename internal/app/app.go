// Package app wires the API with fx. The caller supplies config.Config.
package app

import (
	"log/slog"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var Module = fx.Options(
	InfraModule,
	RepositoryModule,
	ServiceModule,
	HandlerModule,
	fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
		return &fxevent.SlogLogger{Logger: log.With("component", "fx")}
	}),
)
