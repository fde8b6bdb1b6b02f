// Package shutdown provides graceful shutdown and reload signals.
//
// This package handles process signals for long-running commands:
//
//   - SIGINT and SIGTERM run the registered shutdown hooks
//   - SIGHUP runs the registered reload hooks
//   - a context or Trigger ends the wait without a signal
//
// Usage:
//
//	h := shutdown.NewHandler(10 * time.Second)
//	h.OnShutdown(srv.Shutdown)
//	h.OnReload(reloadConfig)
//	err := h.Wait(ctx)
package shutdown
