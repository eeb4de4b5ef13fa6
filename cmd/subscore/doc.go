// Command subscore scores subtitle candidates against a video from the command
// line and manages custom score profiles.
//
// Typical usage:
//
//	subscore score --video episode --match series,season,episode,source,hash --hash-verifiable
//	subscore framerate 23.976 24
//	subscore profiles add bluray --score 25 --when 'regex=blu-?ray' --require provider=opensubtitles
//	subscore weights --video movie
package main
