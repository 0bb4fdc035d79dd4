// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// DocumentKind identifies which side of the evaluation a document belongs to.
type DocumentKind string

const (
	// DocumentResume is the candidate document under evaluation.
	DocumentResume DocumentKind = "resume"
	// DocumentJobDescription is the target posting the resume is scored against.
	DocumentJobDescription DocumentKind = "job_description"
)

// Document is an immutable evaluation input: raw text plus its kind.
// The core assigns no persistent identity; storage is an external concern.
type Document struct {
	Kind DocumentKind `json:"kind"`
	Text string       `json:"text"`
}
