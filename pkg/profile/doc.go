// Package profile holds the data a portfolio page is composed from.
//
// A [Profile] bundles five record collections (highlights, experiences,
// passion areas, tech categories and resource links) with the copy for the
// hero, the section headers and the contact card. [Default] returns the
// built-in profile; [Load] reads an alternative one from a TOML or YAML file.
//
// Profiles are plain values. Nothing in this package mutates a profile after
// it is built, and [Default] returns a fresh copy on each call so the
// built-in literals can never be changed by a caller.
//
// # Invariants
//
// [Profile.Validate] enforces the display keys the page relies on:
//
//   - Highlight titles are unique
//   - Tech category names are unique
//   - Passion areas contain no duplicates
//   - Resource link hrefs are unique and are http(s) or mailto URLs
//
// Slice order is display order everywhere. Tech categories are an ordered
// slice rather than a map so that declaration order survives decoding.
package profile
