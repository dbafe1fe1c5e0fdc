// Package markdown renders markdown documents for the terminal.
package markdown

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

type renderer interface {
	Render(string) (string, error)
}

var (
	rendererMu sync.Mutex
	renderers  = map[int]renderer{}
)

// Render formats markdown text for terminal output at the given width.
// Rendering failures fall back to the source text.
func Render(width int, input string) string {
	value := strings.ReplaceAll(input, "\r\n", "\n")
	value = strings.TrimRight(value, "\n")
	if strings.TrimSpace(value) == "" {
		return ""
	}

	rendered := value
	if r := markdownRenderer(max(width, 1)); r != nil {
		if formatted, err := safeRender(r, value); err == nil {
			rendered = formatted
		}
	}
	return strings.Trim(rendered, "\n")
}

func safeRender(r renderer, value string) (out string, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("render markdown: %v", recovered)
		}
	}()
	return r.Render(value)
}

func markdownRenderer(width int) renderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	if cached, ok := renderers[width]; ok {
		return cached
	}
	style := styles.ASCIIStyleConfig
	style.Item.BlockPrefix = "- "
	created, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	renderers[width] = created
	return created
}
