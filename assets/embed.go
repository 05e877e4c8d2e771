package assets

import (
	"embed"
	"io/fs"
	"strings"
)

//go:embed sql/*.sql banner.txt
var FS embed.FS

// Migrations returns the embedded schema scripts as a filesystem rooted
// at sql/, so the store can walk them without touching disk.
func Migrations() (fs.FS, error) {
	return fs.Sub(FS, "sql")
}

// Banner returns the ASCII art printed when the interactive UI starts.
func Banner() string {
	b, err := FS.ReadFile("banner.txt")
	if err != nil {
		return ""
	}
	return strings.TrimRight(string(b), "\n")
}
