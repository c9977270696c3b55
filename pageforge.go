// Package pageforge turns small structured business records into complete
// marketing pages, and recovers structured data (contact info, products,
// page category) from raw or legacy HTML when no structured data exists.
//
// The core is a bidirectional pipeline: heuristic, scored text-pattern
// extraction on one side and a placeholder-substitution template renderer on
// the other, plus a sparse field-level override layer that lets edits persist
// without mutating canonical section content.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, gemini/).
package pageforge
