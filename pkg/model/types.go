package model

// Action names an auditable file-custody operation.
type Action string

const (
	ActionBackup   Action = "backup"
	ActionRetrieve Action = "retrieve"
	ActionDelete   Action = "delete"
)

// Valid reports whether a is one of the known actions.
func (a Action) Valid() bool {
	switch a {
	case ActionBackup, ActionRetrieve, ActionDelete:
		return true
	}
	return false
}

// Audit status texts shared by all operations.
const (
	StatusSuccess         = "Success"
	StatusPathTraversal   = "Invalid input - path traversal detected"
	StatusFileNotExist    = "Invalid input - file does not exist"
	StatusCancelledByUser = "Cancelled by user"
)

// HashValue is a SHA-256 hash stored as hex string.
type HashValue string
