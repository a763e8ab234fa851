package ui

import (
	"fmt"
	"strings"

	"github.com/utkarsh5026/megadvc/pkg/options"
)

// FileStatus is how a path shows up in status output
type FileStatus int

const (
	StatusAdded FileStatus = iota
	StatusDeleted
	StatusMoved
	StatusStaged
	StatusToRemove
)

// String returns the label used in tables
func (s FileStatus) String() string {
	switch s {
	case StatusAdded:
		return "added"
	case StatusDeleted:
		return "deleted"
	case StatusMoved:
		return "moved"
	case StatusStaged:
		return "staged"
	case StatusToRemove:
		return "to remove"
	default:
		return "unknown"
	}
}

// FormatFileStatus formats a file path with the appropriate status icon and color
func FormatFileStatus(status FileStatus, path string) string {
	switch status {
	case StatusAdded:
		return fmt.Sprintf("  %s  %s", AddedStyle.Render(IconAdded), AddedStyle.Render(path))
	case StatusDeleted:
		return fmt.Sprintf("  %s  %s", DeletedStyle.Render(IconDeleted), DeletedStyle.Render(path))
	case StatusStaged:
		return fmt.Sprintf("  %s  %s", StagedStyle.Render(IconStaged), StagedStyle.Render(path))
	case StatusToRemove:
		return fmt.Sprintf("  %s  %s", ToRemoveStyle.Render(IconToRemove), ToRemoveStyle.Render(path))
	default:
		return path
	}
}

// FormatMove formats a file that changed location
func FormatMove(from, to string) string {
	return fmt.Sprintf("  %s  %s %s %s",
		MovedStyle.Render(IconMoved), MovedStyle.Render(from), Gray(IconMoved), MovedStyle.Render(to))
}

// SuccessMessage creates a success message with a checkmark icon
func SuccessMessage(message string, details ...string) string {
	var parts []string
	parts = append(parts, Green(IconCheck), Green(message))

	for _, detail := range details {
		parts = append(parts, Blue(detail))
	}

	return strings.Join(parts, " ")
}

// FormatOptions renders the repository options in a box
func FormatOptions(o *options.Options) string {
	var content strings.Builder

	content.WriteString(fmt.Sprintf("%s %s %s\n", Cyan(IconRemote), Gray("remote"), Blue(o.RemotePath())))
	content.WriteString(fmt.Sprintf("%s %s %s", Cyan(IconLocal), Gray("local "), Blue(o.LocalPath())))
	if len(o.IgnorePatterns()) > 0 {
		content.WriteString(fmt.Sprintf("\n%s %s %s", Cyan(IconSeparator), Gray("ignore"), Yellow(strings.Join(o.IgnorePatterns(), ", "))))
	}

	return Box(content.String())
}

// ErrorMessage formats an error message in red
func ErrorMessage(message string) string {
	return Red(message)
}

// WarningMessage formats a warning message in yellow
func WarningMessage(message string) string {
	return Yellow(message)
}

// InfoMessage formats an info message in blue
func InfoMessage(message string) string {
	return Blue(message)
}
