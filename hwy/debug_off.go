//go:build !hwydebug

package hwy

const debugChecks = false
