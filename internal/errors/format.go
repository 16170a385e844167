package errors

import "strings"

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

// colorEnabled controls whether ANSI colors are used.
var colorEnabled = true

// DisableColors disables ANSI color output.
func DisableColors() {
	colorEnabled = false
}

// EnableColors enables ANSI color output.
func EnableColors() {
	colorEnabled = true
}

func color(code, text string) string {
	if !colorEnabled {
		return text
	}
	return code + text + colorReset
}

func red(text string) string    { return color(colorRed, text) }
func yellow(text string) string { return color(colorYellow, text) }
func cyan(text string) string   { return color(colorCyan, text) }
func gray(text string) string   { return color(colorGray, text) }
func bold(text string) string   { return color(colorBold, text) }

// Format renders the error for terminal display:
//
//	ERROR C020: route entry references unknown definition
//	  subject: pricing
//	  A locale entry names a key that has no definition; ...
//	  hint: Add the definition or remove the entry.
func (e *Error) Format() string {
	var b strings.Builder

	label := "ERROR "
	paint := red
	if e.Category == CategoryCompile {
		label = "WARN "
		paint = yellow
	}

	b.WriteString(paint(bold(label)))
	b.WriteString(bold(e.Code + ": "))
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Subject != "" {
		b.WriteString("  subject: ")
		b.WriteString(cyan(e.Subject))
		b.WriteString("\n")
	}
	if e.Detail != "" {
		b.WriteString("  ")
		b.WriteString(e.Detail)
		b.WriteString("\n")
	}
	if e.Wrapped != nil {
		b.WriteString("  cause: ")
		b.WriteString(e.Wrapped.Error())
		b.WriteString("\n")
	}
	if e.Hint != "" {
		b.WriteString("  ")
		b.WriteString(gray("hint: " + e.Hint))
		b.WriteString("\n")
	}

	return b.String()
}
