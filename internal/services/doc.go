// Package services contains the reconciliation driver, composing the
// manifest model, deactivation orchestrator and version resolver into the
// single fixed-order workflow the CLI exposes.
package services
