// Package cmd provides the CLI entry points for the XOR distance exercise.
//
// # Commands
//
// xor-delivery: Runs the food delivery scenario end to end, either over the
// fixed demo farm set or as a randomized self check.
//
//	go run ./cmd/xor-delivery demo --position=10 --count=10
//	go run ./cmd/xor-delivery selfcheck --trials=1000 --points=2000 --workers=8
//
// The demo ranks farms around a customer position and then recovers the
// position from nothing but the ranking, showing that a closest-farm list is
// as sensitive as the position itself. The self check round trips random
// positions over random farm sets and exits non-zero on any mismatch.
package cmd
