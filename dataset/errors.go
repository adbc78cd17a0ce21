package dataset

import "fmt"

// MissingColumnError reports a required column absent from a loaded table.
type MissingColumnError struct {
	Column string
}

func (e MissingColumnError) Error() string {
	return fmt.Sprintf("dataset: missing column %q", e.Column)
}

// RowCountMismatchError reports a prediction count that does not line up with
// the identifiers it is being written against.
type RowCountMismatchError struct {
	IDs   int
	Preds int
}

func (e RowCountMismatchError) Error() string {
	return fmt.Sprintf("dataset: %d identifiers but %d predictions", e.IDs, e.Preds)
}
