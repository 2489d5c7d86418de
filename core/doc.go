// Package core contains the command dispatch core of the demo.
//
// Allowed here:
// - the Command variants, the State model and the handler that applies one to the other
// - the session that holds the single pending command between frames
// - command-line verbs and key registries shared by hosts
//
// Not allowed here:
// - rendering, styles or terminal handling
// - configuration loading and logger construction
package core
