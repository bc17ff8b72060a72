// Package wikidoc turns open.mp wiki searches into paged, structured
// documentation views. It searches the wiki's hosted index, caches a
// user's filtered result set behind a short-lived session, extracts
// structured content from the selected page, and splits the rendered
// report into bounded pages for display.
//
// This package contains domain types, interfaces and the pure
// algorithms (hit filtering, chunking, rendering). Implementations live
// in subdirectories named after their primary dependency (e.g.
// goquery/, algolia/, mem/).
package wikidoc
