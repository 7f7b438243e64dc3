// Copyright 2026 The SkillShare Academy Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// markdownParserInstance is initialized once and reused. The parser
// configuration never changes and the goldmark Parser is safe to
// share; actual parsing creates per-call state via Parse(reader).
var (
	markdownParserInstance goldmark.Markdown
	markdownParserOnce     sync.Once
)

func getMarkdownParser() goldmark.Markdown {
	markdownParserOnce.Do(func() {
		markdownParserInstance = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		)
	})
	return markdownParserInstance
}

// renderMarkdown parses a course description and renders it as styled
// terminal output. Soft line breaks within paragraphs become spaces so
// hard-wrapped source text reflows at the current terminal width.
// Fenced code blocks are syntax-highlighted.
func renderMarkdown(input string, theme Theme, width int) string {
	if input == "" {
		return ""
	}
	source := []byte(input)
	document := getMarkdownParser().Parser().Parse(text.NewReader(source))

	// Force a 256-color profile: this output is always for terminal
	// display, so auto-detection (which sees no TTY under tests)
	// would strip all color.
	lipRenderer := lipgloss.NewRenderer(os.Stderr, termenv.WithProfile(termenv.ANSI256))
	lipRenderer.SetColorProfile(termenv.ANSI256)

	renderer := &markdownRenderer{
		source:      source,
		theme:       theme,
		width:       width,
		lipRenderer: lipRenderer,
	}
	ast.Walk(document, renderer.walk)

	return strings.TrimRight(renderer.output.String(), "\n")
}

// markdownRenderer walks a goldmark AST and produces styled terminal
// text. Paragraph inline content accumulates in a buffer and is
// word-wrapped as a unit when the paragraph closes.
type markdownRenderer struct {
	source []byte
	theme  Theme
	width  int

	output strings.Builder
	inline strings.Builder

	boldCount   int
	italicCount int

	listDepth   int
	listCounter []int // per-depth ordered list counter, 0 for bullets

	lipRenderer *lipgloss.Renderer
}

func (renderer *markdownRenderer) newStyle() lipgloss.Style {
	return renderer.lipRenderer.NewStyle()
}

func (renderer *markdownRenderer) contentWidth() int {
	width := renderer.width - 3*renderer.listDepth
	if width < 10 {
		width = 10
	}
	return width
}

func (renderer *markdownRenderer) indent() string {
	return strings.Repeat("   ", renderer.listDepth)
}

// flushInline word-wraps the accumulated inline content and writes it
// to the output with the current indentation.
func (renderer *markdownRenderer) flushInline(style lipgloss.Style, bullet string) {
	content := strings.TrimSpace(renderer.inline.String())
	renderer.inline.Reset()
	if content == "" {
		return
	}

	wrapped := ansi.Wrap(style.Render(content), renderer.contentWidth(), " ,.;-+|")
	prefix := renderer.indent()
	firstPrefix := prefix
	if bullet != "" && renderer.listDepth > 0 {
		firstPrefix = strings.Repeat("   ", renderer.listDepth-1) + bullet
		prefix = strings.Repeat(" ", ansi.StringWidth(firstPrefix))
	}
	for i, line := range strings.Split(wrapped, "\n") {
		if i == 0 {
			renderer.output.WriteString(firstPrefix + line + "\n")
		} else {
			renderer.output.WriteString(prefix + line + "\n")
		}
	}
}

func (renderer *markdownRenderer) inlineStyle() lipgloss.Style {
	style := renderer.newStyle().Foreground(renderer.theme.NormalText)
	if renderer.boldCount > 0 {
		style = style.Bold(true)
	}
	if renderer.italicCount > 0 {
		style = style.Italic(true)
	}
	return style
}

func (renderer *markdownRenderer) walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node := node.(type) {
	case *ast.Heading:
		if entering {
			renderer.inline.Reset()
		} else {
			style := renderer.newStyle().
				Foreground(renderer.theme.HeadingForeground).
				Bold(true)
			renderer.flushInline(style, "")
			renderer.output.WriteString("\n")
		}

	case *ast.Paragraph:
		if entering {
			renderer.inline.Reset()
		} else {
			bullet := ""
			if _, inList := node.Parent().(*ast.ListItem); inList {
				bullet = renderer.bullet()
			}
			renderer.flushInline(renderer.newStyle(), bullet)
			if renderer.listDepth == 0 {
				renderer.output.WriteString("\n")
			}
		}

	case *ast.TextBlock:
		// Tight list items use TextBlock instead of Paragraph.
		if entering {
			renderer.inline.Reset()
		} else {
			renderer.flushInline(renderer.newStyle(), renderer.bullet())
		}

	case *ast.List:
		if entering {
			counter := 0
			if node.IsOrdered() {
				counter = node.Start
			}
			renderer.listDepth++
			renderer.listCounter = append(renderer.listCounter, counter)
		} else {
			renderer.listDepth--
			renderer.listCounter = renderer.listCounter[:len(renderer.listCounter)-1]
			if renderer.listDepth == 0 {
				renderer.output.WriteString("\n")
			}
		}

	case *ast.FencedCodeBlock:
		if entering {
			renderer.writeCodeBlock(node)
			return ast.WalkSkipChildren, nil
		}

	case *ast.CodeBlock:
		if entering {
			renderer.writeRawCode(renderer.blockLines(node))
			return ast.WalkSkipChildren, nil
		}

	case *ast.Blockquote:
		// Rendered as faint text; the walk handles the children.
		if entering {
			renderer.inline.Reset()
		}

	case *ast.Emphasis:
		if entering {
			if node.Level >= 2 {
				renderer.boldCount++
			} else {
				renderer.italicCount++
			}
		} else {
			if node.Level >= 2 {
				renderer.boldCount--
			} else {
				renderer.italicCount--
			}
		}

	case *ast.CodeSpan:
		if entering {
			style := renderer.newStyle().
				Foreground(renderer.theme.CodeForeground).
				Background(renderer.theme.CodeBackground)
			renderer.inline.WriteString(style.Render(string(node.Text(renderer.source))))
			return ast.WalkSkipChildren, nil
		}

	case *ast.Link:
		if entering {
			style := renderer.newStyle().
				Foreground(renderer.theme.LinkForeground).
				Underline(true)
			renderer.inline.WriteString(style.Render(string(node.Text(renderer.source))))
			faint := renderer.newStyle().Foreground(renderer.theme.FaintText)
			renderer.inline.WriteString(faint.Render(" (" + string(node.Destination) + ")"))
			return ast.WalkSkipChildren, nil
		}

	case *ast.AutoLink:
		if entering {
			style := renderer.newStyle().
				Foreground(renderer.theme.LinkForeground).
				Underline(true)
			renderer.inline.WriteString(style.Render(string(node.URL(renderer.source))))
		}

	case *ast.Text:
		if entering {
			renderer.inline.WriteString(renderer.inlineStyle().Render(string(node.Segment.Value(renderer.source))))
			if node.SoftLineBreak() {
				renderer.inline.WriteString(" ")
			}
			if node.HardLineBreak() {
				renderer.inline.WriteString("\n")
			}
		}
	}

	return ast.WalkContinue, nil
}

// bullet returns the marker for the current list item and advances the
// ordered counter.
func (renderer *markdownRenderer) bullet() string {
	if renderer.listDepth == 0 {
		return ""
	}
	counter := renderer.listCounter[len(renderer.listCounter)-1]
	if counter > 0 {
		renderer.listCounter[len(renderer.listCounter)-1]++
		return fmt.Sprintf("%d. ", counter)
	}
	return "• "
}

func (renderer *markdownRenderer) blockLines(node interface {
	Lines() *text.Segments
}) string {
	var builder strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		builder.Write(segment.Value(renderer.source))
	}
	return builder.String()
}

// writeCodeBlock renders a fenced code block with syntax highlighting.
// Unknown languages fall back to unstyled code text.
func (renderer *markdownRenderer) writeCodeBlock(node *ast.FencedCodeBlock) {
	code := renderer.blockLines(node)
	language := string(node.Language(renderer.source))

	if language != "" {
		var buffer strings.Builder
		if err := quick.Highlight(&buffer, code, language, "terminal256", "monokai"); err == nil {
			renderer.writeIndentedBlock(buffer.String())
			return
		}
	}
	renderer.writeRawCode(code)
}

func (renderer *markdownRenderer) writeRawCode(code string) {
	style := renderer.newStyle().Foreground(renderer.theme.CodeForeground)
	renderer.writeIndentedBlock(style.Render(strings.TrimRight(code, "\n")))
}

func (renderer *markdownRenderer) writeIndentedBlock(block string) {
	prefix := renderer.indent() + "  "
	for _, line := range strings.Split(strings.TrimRight(block, "\n"), "\n") {
		renderer.output.WriteString(prefix + line + "\n")
	}
	renderer.output.WriteString("\n")
}
