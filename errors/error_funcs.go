package errors

import (
	"os"
	"strings"
)

// OsExit is a variable for testing, so we can mock os.Exit.
var OsExit = os.Exit

// Exit exits the program with the specified exit code.
func Exit(exitCode int) {
	OsExit(exitCode)
}

// Format renders an error and its hints for the terminal.
//
//	Error: <message>
//	  Run: <hint>
func Format(err error) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Error: ")
	sb.WriteString(err.Error())
	for _, hint := range Hints(err) {
		sb.WriteString("\n  ")
		sb.WriteString(hint)
	}
	return sb.String()
}
