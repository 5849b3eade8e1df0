// Package asciipath walks routes drawn as ASCII diagrams.
//
// 🚀 What is asciipath?
//
//	A small library and CLI that follows a route from its start marker '@'
//	to its end marker 'x', collecting the letters it passes on the way:
//		• asciimap  : parsing, rectangular grids, bounds checks, components
//		• pathfinder: cursor, direction policy, Walk and WalkText
//		• samples   : a catalogue of known maps with their expected answers
//		• report    : text, JSON, YAML and table output
//		• config    : defaults, config file, .env and PATHWALK_* variables
//		• server    : an HTTP API around WalkText
//		• cmd/pathwalk: the command-line front end
//
// ✨ Rules of the road
//
//   - '-' and '|' carry the route straight on, '+' and letters may turn it
//   - the walk never reverses and prefers to keep its last direction
//   - on '@' the first valid direction in the order up, right, down, left wins
//   - a letter is collected once per position, however often it is crossed
//
// Quick ASCII example:
//
//	@---A---+
//	        |
//	x-B-+   C
//	    |   |
//	    +---+
//
//	walks "@---A---+|C|+---+|+-B-x" and collects "ACB".
//
//	go install github.com/katalvlaran/asciipath/cmd/pathwalk@latest
package asciipath
