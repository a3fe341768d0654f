package model

// ExportSummary reports the outcome of a completed export run.
type ExportSummary struct {
	Path string
	Rows int64
}

// ImportSummary reports the outcome of a completed import run.
type ImportSummary struct {
	Path     string
	Read     int64
	Updated  int64
	Inserted int64
}

// DeleteOutcome enumerates the terminal states of a delete invocation.
type DeleteOutcome string

const (
	// DeleteAborted means the guarded header delete matched no row and
	// nothing was removed.
	DeleteAborted DeleteOutcome = "aborted"
	// DeleteCascadeDeleted means the user row and all its dependents were
	// removed.
	DeleteCascadeDeleted DeleteOutcome = "cascade_deleted"
)

// DeleteReceipt describes how a delete invocation terminated. Violation is
// set when Outcome is DeleteAborted.
type DeleteReceipt struct {
	UserID      string
	Outcome     DeleteOutcome
	PetsDeleted int64
	Violation   *FieldError
}
