// Package entity provides typed entity extraction from raw message text.
//
// Extraction is regex-driven over a fixed, ordered pattern catalog covering
// dates, times, locations, emails, phone numbers, and bare numbers. Matched
// values are captured verbatim, with byte offsets into the original text;
// no normalization is performed ("tomorrow" stays "tomorrow").
//
// The extractor is stateless and safe for concurrent use. Text with no
// matches yields an empty result, never an error.
package entity
