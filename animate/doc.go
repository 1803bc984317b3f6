// Package animate drives overflow animation on the character display.
//
// Frames are precomputed once per refresh cycle and replayed cyclically on a
// fixed tick until the refresh duration is used up. Two styles are supported:
//   - Paging: successive non-overlapping width-sized chunks of the text
//   - Scrolling: a one-character-advancing sliding window over the text
package animate
