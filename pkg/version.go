package pdfstamp

import "fmt"

var version = "2.0.0"

// PrintVersion prints the current version to stdout.
func PrintVersion() {
	fmt.Println(version)
}

// GetVersion returns the current version string.
func GetVersion() string {
	return version
}
