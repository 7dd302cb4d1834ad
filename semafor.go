// Package semafor extracts typed football records from the HNS "semafor"
// competition pages. The site exposes no API and no stable markup, so every
// extractor is a heuristic: it defines where to look, what counts as a match,
// which candidate wins, and whether a miss is fatal or degrades to an empty
// field.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/).
package semafor
