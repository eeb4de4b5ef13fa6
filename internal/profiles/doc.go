// Package profiles stores custom score profiles and applies them while scoring.
//
// A profile awards extra weight to subtitles whose provider, uploader,
// language, or release name satisfy its conditions. Profiles persist in a
// SQLite database; Scorer turns a set of profiles plus a base weight table into
// a score.WeightSource whose ApplyCustomProfiles hook tags matching subtitles
// with the profile's match kind ("profile:<name>").
//
// Schema changes bump schemaVersion in schema.go; users delete the database to
// adopt the new schema.
package profiles
