// Package pagescan turns raw HTML from a browsed web page into a bounded,
// structured, machine-readable extraction of its content. The page is chunked
// into size-bounded sub-documents, each chunk's text is extracted with tables
// and images repackaged as content-addressed side artifacts referenced by
// inline markers, and the sanitized text is handed to an external text
// processor whose JSON responses are aggregated into the final result.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, gemini/, sqlite/).
package pagescan
