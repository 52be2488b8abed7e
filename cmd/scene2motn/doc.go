// Package main hosts the scene2motn CLI.
//
// The Cobra command tree loads configuration once, resolves the scene file
// (defaulting to the newest one in the configured scene directory) and hands
// it to the export engine. Commands only parse flags and print results; the
// export itself lives in internal/engine.
package main
