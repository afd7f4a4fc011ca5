package session

// WriteApprovalFunc decides whether a payload is persisted.
// approve is the tentative decision (always true when the hook is consulted).
type WriteApprovalFunc func(approve bool, token string, data []byte) bool

// ReadAcceptFunc receives the validator's tentative decision for a stored
// record. Returning false rejects the record; returning true cannot
// override a failed check.
type ReadAcceptFunc func(accept bool, record *Record, token string) bool

// GCProbabilityFunc receives the configured collection probability in
// percent and returns the one to use.
type GCProbabilityFunc func(probability int) int

// CleanStatementFunc may rewrite a delete statement before PGStore runs it.
// args are the positional arguments bound to the statement.
type CleanStatementFunc func(stmt string, reason CleanReason, args []any) string
