// Package summary renders the end-of-run block printed to stdout: course
// name, toolchain, and the colored success/failure/skip counts.
package summary

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vk/coursebuild/internal/executor"
)

// Render formats the final run summary.
func Render(courseName, toolchainName string, tally executor.Tally) string {
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		Render(fmt.Sprintf("COURSE · %s", courseName))

	counts := []string{
		lipgloss.NewStyle().
			Foreground(lipgloss.Color("#50C878")).
			Render(fmt.Sprintf("%d succeeded", tally.Succeeded)),
		lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Render(fmt.Sprintf("%d failed", tally.Failed)),
		lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E8C547")).
			Render(fmt.Sprintf("%d skipped", tally.Skipped)),
	}

	body := strings.Join([]string{
		fmt.Sprintf("toolchain: %s", toolchainName),
		strings.Join(counts, "  ·  "),
	}, "\n")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Render(fmt.Sprintf("%s\n%s", head, body))
}
