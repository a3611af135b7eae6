// Package event broadcasts tool controller notifications to external
// listeners: completed tool switches and replacements of the enabled tool
// set. Emission is synchronous and ordered by registration; handlers
// receive defensive copies of slice payloads. Subscriptions are revoked
// through the closure returned at subscribe time.
package event
