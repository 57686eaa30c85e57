package model

// BackupResult describes a completed backup.
type BackupResult struct {
	Source      string    `json:"source"`
	Destination string    `json:"destination"`
	Bytes       int       `json:"bytes"`
	SHA256      HashValue `json:"sha256"`
	// Overwrote is set when a file already existed at Destination.
	Overwrote bool `json:"overwrote"`
}

// RetrieveResult holds the content read back from a backup file.
type RetrieveResult struct {
	Path   string    `json:"path"`
	Bytes  int       `json:"bytes"`
	SHA256 HashValue `json:"sha256"`
	// Text is Data decoded as UTF-8 with invalid sequences replaced by U+FFFD.
	Text string `json:"content"`
	Data []byte `json:"-"`
}

// DeleteResult describes the outcome of a delete request.
type DeleteResult struct {
	Path      string `json:"path"`
	Deleted   bool   `json:"deleted"`
	Cancelled bool   `json:"cancelled"`
}
