// Package navigator turns captured web pages into navigable OPML outlines.
// It extracts hierarchical structure from marked-up HTML or plain text,
// stores page snapshots in a local archive, and re-projects the archive as
// a strictly valid OPML 2.0 document.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, trafilatura/).
package navigator
