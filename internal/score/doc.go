// Package score computes how well a candidate subtitle fits a target video.
//
// Callers hand Compute the match kinds an external matcher already found
// (series, season, hash, ...) together with the subtitle, the video variant,
// and a weight source. The calculator validates hash matches against the
// surrounding metadata, expands strong identifiers into the matches they imply,
// applies the hearing-impaired preference, and sums weights into a score and a
// score that ignores the hash.
//
// Everything here is pure and safe for concurrent use. Custom profile matching
// plugs in through the optional ProfileHook capability of a WeightSource.
package score
