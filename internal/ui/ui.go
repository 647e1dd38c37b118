// internal/ui/ui.go
package ui

import (
	"fmt"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
	cyan   = color.New(color.FgCyan)
	bold   = color.New(color.Bold)
)

func status(c *color.Color, symbol, msg string) {
	fmt.Printf("  %s %s\n", c.Sprint(symbol), msg)
}

func Success(msg string) { status(green, "✓", msg) }

func Skip(msg string) { status(yellow, "⏭", msg) }

func Warn(msg string) { status(yellow, "⚠", msg) }

func Error(msg string) { status(red, "✗", msg) }

func Info(msg string) {
	fmt.Printf("  %s\n", cyan.Sprint(msg))
}

func Header(msg string) {
	fmt.Printf("\n  %s\n", bold.Sprint(msg))
}

func Result(msg string) {
	fmt.Printf("\n  %s\n\n", green.Sprint(msg))
}
