// Package middleware groups the Fiber middleware used by the serve mode:
// rayid assigns request identifiers for log correlation, auth guards the
// API behind the configured key.
package middleware
