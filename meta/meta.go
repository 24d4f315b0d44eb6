// meta/meta.go
package meta

// DIFFICULTY defines the default minimax depth of the AI.
const DIFFICULTY = 4

// GO_ROUTINES defines the number of goroutines for the root of the search.
const GO_ROUTINES = 1

// GAMES defines the number of games per experiment match-up.
const GAMES = 10

// MAX_TURNS bounds the number of turns of a single game.
const MAX_TURNS = 128

// OUTPUT_DIR is where experiment records are written.
const OUTPUT_DIR = "experiments"

// ENV_PREFIX prefixes environment overrides, e.g. SMARTHORSES_DIFFICULTY.
const ENV_PREFIX = "SMARTHORSES"
