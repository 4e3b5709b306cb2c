package status

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/walteh/np/pkg/section"
)

// RegionFormatter defines how region changes and file results should be formatted
type RegionFormatter interface {
	// FormatRegionChange formats the outcome of one region rewrite
	FormatRegionChange(change section.Change) string

	// FormatFileResult formats what happened to the build file
	FormatFileResult(path string, modified, written bool) string

	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultRegionFormatter provides a default implementation of RegionFormatter
type DefaultRegionFormatter struct{}

// NewDefaultRegionFormatter creates a new DefaultRegionFormatter
func NewDefaultRegionFormatter() *DefaultRegionFormatter {
	return &DefaultRegionFormatter{}
}

// FormatRegionChange formats a region change with a status mark and entry counts
func (f *DefaultRegionFormatter) FormatRegionChange(change section.Change) string {
	mark := color.New(color.Faint).Sprint("✓")
	if change.Modified() {
		mark = color.New(color.FgGreen, color.Bold).Sprint("✓")
	}

	return fmt.Sprintf("%s %-8s %s (%s %s)",
		mark,
		change.Region.Name,
		entryCount(len(change.New)),
		color.GreenString("+%d", change.Added()),
		color.RedString("-%d", change.Removed()),
	)
}

// FormatFileResult formats the build file outcome with emojis
func (f *DefaultRegionFormatter) FormatFileResult(path string, modified, written bool) string {
	switch {
	case written:
		return fmt.Sprintf("📝 Updated %s", path)
	case modified:
		return fmt.Sprintf("🔍 Would update %s", path)
	default:
		return fmt.Sprintf("👍 Unchanged %s", path)
	}
}

// FormatError formats an error message with emoji
func (f *DefaultRegionFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ Error: %v", err)
}

func entryCount(n int) string {
	if n == 1 {
		return "1 entry"
	}
	return fmt.Sprintf("%d entries", n)
}
