// Package pipeline runs the generator stages in order:
// acquire, enumerate, reconcile, override, resolve, emit, write.
//
// A fatal failure stops the run and is reported as a *StageError naming
// the stage. Everything else is collected as diagnostics.
package pipeline
