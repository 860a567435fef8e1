// Package core contains the plumbing shared by the repeater: functional run
// options (logger, metrics, name) and the channel helper used to wait for a
// single completion. It does not define any control flow of its own.
package core
