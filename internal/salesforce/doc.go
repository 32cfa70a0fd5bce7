// Package salesforce wraps the Salesforce CLI subprocess behind the
// capability interfaces the core depends on.
//
// QueryService answers batched flow version lookups through
// `sf data query --use-tooling-api --json`; RetrieveService materializes
// descriptor files through `sf project retrieve start`. Both go through
// the CommandRunner abstraction so tests can substitute a fake runner and
// never spawn a real process.
package salesforce
