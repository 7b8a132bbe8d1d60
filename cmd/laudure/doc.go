// Package main hosts the laudure CLI entrypoint and command graph.
//
// The Cobra-based command tree exposes the three enrichment stages
// individually, a run command that chains them, and configuration
// scaffolding. It centralizes configuration resolution, client construction,
// and structured logging setup so subcommands can focus on user experience
// instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
