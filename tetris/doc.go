// Package tetris implements the game state of a single-player falling block
// puzzle: the piece catalog, the board of locked cells, the active piece and
// the engine that drives spawning, gravity, locking, line clears, scoring and
// level progression.
//
// The engine has no internal concurrency and never blocks. A presentation
// layer owns an Engine, feeds it input commands and elapsed time, and renders
// the state it exposes.
package tetris

//go:generate go run golang.org/x/tools/cmd/stringer -type=Shape,State,EventKind,Direction -output=enum_string.go
