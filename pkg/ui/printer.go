package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	IconSuccess   = "✅"
	IconError     = "❌"
	IconWarning   = "⚠️ "
	IconSearch    = "🔍"
	IconTip       = "💡"
	IconCelebrate = "🎉"
	IconRocket    = "🚀"

	// RuleWidth is the width of the separator printed by Rule.
	RuleWidth = 40

	newline           = "\n"
	iconMessageFormat = "%s %s"
)

// Printer writes icon-prefixed status lines. Only the message text is styled; the icons
// are emoji and print as-is.
type Printer struct {
	w      io.Writer
	styles styleSet
}

type styleSet struct {
	success lipgloss.Style
	err     lipgloss.Style
	warning lipgloss.Style
	heading lipgloss.Style
	muted   lipgloss.Style
}

// Option configures a Printer.
type Option func(*lipgloss.Renderer)

// WithoutColor forces plain output regardless of terminal detection.
func WithoutColor() Option {
	return func(r *lipgloss.Renderer) {
		r.SetColorProfile(termenv.Ascii)
	}
}

// NewPrinter creates a Printer for w. Colour support is detected from w.
func NewPrinter(w io.Writer, opts ...Option) *Printer {
	if w == nil {
		w = os.Stdout
	}
	r := lipgloss.NewRenderer(w)
	for _, opt := range opts {
		opt(r)
	}

	return &Printer{
		w: w,
		styles: styleSet{
			success: r.NewStyle().Foreground(lipgloss.Color("10")),
			err:     r.NewStyle().Foreground(lipgloss.Color("9")),
			warning: r.NewStyle().Foreground(lipgloss.Color("11")),
			heading: r.NewStyle().Bold(true),
			muted:   r.NewStyle().Foreground(lipgloss.Color("8")),
		},
	}
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}

func (p *Printer) status(icon string, style lipgloss.Style, text string) {
	// Render pads every line to the widest one, so only the first line is styled.
	first, rest, multiline := strings.Cut(text, newline)
	line := style.Render(first)
	if multiline {
		line += newline + rest
	}
	fmt.Fprintf(p.w, iconMessageFormat+newline, icon, line)
}

// Success prints "✅ text".
func (p *Printer) Success(text string) {
	p.status(IconSuccess, p.styles.success, text)
}

func (p *Printer) Successf(format string, a ...any) {
	p.Success(fmt.Sprintf(format, a...))
}

// Error prints "❌ text".
func (p *Printer) Error(text string) {
	p.status(IconError, p.styles.err, text)
}

func (p *Printer) Errorf(format string, a ...any) {
	p.Error(fmt.Sprintf(format, a...))
}

// Warning prints "⚠️  text".
func (p *Printer) Warning(text string) {
	p.status(IconWarning, p.styles.warning, text)
}

func (p *Printer) Warningf(format string, a ...any) {
	p.Warning(fmt.Sprintf(format, a...))
}

// Heading prints "🔍 text" in bold.
func (p *Printer) Heading(text string) {
	p.status(IconSearch, p.styles.heading, text)
}

// Banner prints "🚀 text" in bold.
func (p *Printer) Banner(text string) {
	p.status(IconRocket, p.styles.heading, text)
}

// Celebrate prints "🎉 text".
func (p *Printer) Celebrate(text string) {
	p.status(IconCelebrate, p.styles.success, text)
}

// Tip prints "💡 text".
func (p *Printer) Tip(text string) {
	p.status(IconTip, p.styles.heading, text)
}

// Hint prints a plain follow-up line, typically a remediation command.
func (p *Printer) Hint(text string) {
	fmt.Fprint(p.w, text+newline)
}

// Indented prints muted text under the previous line.
func (p *Printer) Indented(text string) {
	fmt.Fprint(p.w, "   "+p.styles.muted.Render(text)+newline)
}

// Rule prints a separator of RuleWidth '=' characters.
func (p *Printer) Rule() {
	fmt.Fprint(p.w, strings.Repeat("=", RuleWidth)+newline)
}

// Blank prints an empty line.
func (p *Printer) Blank() {
	fmt.Fprint(p.w, newline)
}

// Println prints text unchanged.
func (p *Printer) Println(text string) {
	fmt.Fprint(p.w, text+newline)
}
