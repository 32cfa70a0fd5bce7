// Package descriptor creates and updates flow deactivation descriptors.
//
// A descriptor is a small per-flow XML document whose activeVersionNumber
// field tells the deployment system which version runs; 0 means none. The
// Deactivator guarantees each flow named for deletion has a descriptor
// carrying that sentinel, creating minimal documents where none exist and
// editing existing ones without disturbing their other fields.
package descriptor
