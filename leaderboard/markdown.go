package leaderboard

import (
	"fmt"
	"strings"
)

// Markdown describes the entry as a markdown document: totals followed by
// the completion history.
func (e Entry) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# #%d %s\n\n", e.Rank, e.Username)
	fmt.Fprintf(&b, "Focused **%s** and finished **%d** tasks.\n\n", FormatMinutes(e.TotalMinutes), e.TotalTasks)

	history := e.History()
	if len(history) == 0 {
		b.WriteString("No tasks completed yet.\n")
		return b.String()
	}
	b.WriteString("## History\n\n")
	for _, item := range history {
		fmt.Fprintf(&b, "- %s\n", escapeMarkdown(item.String()))
	}
	return b.String()
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"#", `\#`,
)

func escapeMarkdown(text string) string {
	return markdownEscaper.Replace(text)
}
