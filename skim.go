// Package skim provides a web page summarizer. It fetches a page, extracts
// readable body text, asks a language model for a short title and up to three
// key points, and records the result for later retrieval.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, gemini/, goquery/).
package skim
