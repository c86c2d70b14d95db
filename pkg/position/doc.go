// Package position defines the contract between flyout controllers and a
// positioning engine.
//
// The geometric work itself (computing coordinates, handling collisions,
// flipping across the anchor when space runs out) belongs to the engine.
// Controllers only attach a target to an anchor once, flip the reactive
// listener flag as visibility changes, and request recomputation. The
// [Null] engine satisfies the contract with no-ops for hosts that position
// panels themselves or not at all.
package position
