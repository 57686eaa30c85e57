// Command safebackup backs up, retrieves and deletes single files, recording
// every attempt in an audit log.
package main

import "github.com/safebackup/safebackup/internal/cli"

func main() {
	cli.Execute()
}
