//go:build hwydebug

package hwy

// debugChecks enables alignment and lane index checks.
const debugChecks = true
