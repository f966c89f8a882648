package kv

import "fmt"

// MalformedAssignmentError reports a key=value token whose key or value
// half is empty.
type MalformedAssignmentError struct {
	Token string
}

// Error implements the error interface for MalformedAssignmentError.
func (e *MalformedAssignmentError) Error() string {
	return fmt.Sprintf("unbalanced key=value assignment %q", e.Token)
}

// SuspiciousTokenError reports a bare token ending in ":". That shape is
// almost always a failed YAML or JSON fragment, not an intended literal.
type SuspiciousTokenError struct {
	Token string
}

// Error implements the error interface for SuspiciousTokenError.
func (e *SuspiciousTokenError) Error() string {
	return fmt.Sprintf("token %q looks like truncated structured markup", e.Token)
}

// UnbalancedQuoteError reports input with an unterminated quoted section.
type UnbalancedQuoteError struct {
	Text string
}

// Error implements the error interface for UnbalancedQuoteError.
func (e *UnbalancedQuoteError) Error() string {
	return fmt.Sprintf("unbalanced quote in %q", e.Text)
}
