// Package seofetch provides a compliant web content fetcher for SEO
// analysis. Given a URL it decides whether the page may be fetched,
// retrieves it under a declared identity, rejects pages that are not
// genuinely accessible, and extracts a normalized document structure.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, sqlite/).
package seofetch
