// Package grid implements the 2048 grid engine: an N×N matrix of tile ranks,
// the directional collapse/merge move, random tile spawning and terminal-state
// detection.
//
// Tiles are stored as ranks, not displayed values. A tile of rank r shows 2^r,
// so merging two equal tiles is rank+1. All four directions share one
// "collapse toward index 0" routine; a Direction only changes which physical
// cell a logical (row, column) pair resolves to.
//
// The package performs no I/O. Randomness comes from a Source so games can be
// seeded or scripted in tests.
package grid
