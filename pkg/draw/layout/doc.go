// Package layout computes pixel-exact bracket geometry from a draw's flat
// match list: a coordinate per match, an axis-aligned box per match card,
// connector lines joining feeders to their parents, and the overall canvas
// size. It never renders pixels; outputs are handed to a renderer.
//
// # Engines
//
// Two position strategies exist behind the [Engine] interface:
//
//   - [CenteredEngine]: round 0 evenly spaced, later rounds centered on the
//     midpoint of their two feeders. Produces the classic symmetric bracket
//     shape and adapts to missing feeders via a documented fallback.
//   - [SlotEngine]: positions derived purely from round index and position
//     using geometric doubling. O(1) per match and independent of sibling
//     resolution order, used for large draws.
//
// The strategy is selected by a configurable draw-size threshold
// ([Config.LargeDrawSize]). The two engines can produce visually different
// shapes for the same draw near the boundary; no reconciliation is
// attempted, the threshold is simply configuration.
//
// # Purity
//
// Every function here is a pure function of the draw and the [Config].
// There are no error paths: missing feeders, position gaps and irregular
// branching degrade to approximate placement, never to a panic or error.
// Callers memoize results keyed on draw content (see pkg/pipeline).
package layout
