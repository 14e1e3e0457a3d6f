// Package printer writes styled status lines for CLI commands.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/colonyops/passport/internal/core/styles"
)

type ctxKey struct{}

// Printer writes human-oriented status lines. Machine output belongs on the
// command's root writer, not here.
type Printer struct {
	mu sync.Mutex
	w  io.Writer
}

// New returns a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// NewContext stores p in ctx.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the Printer stored in ctx, or one writing to stderr.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stderr)
}

func (p *Printer) line(prefix, format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	if prefix != "" {
		msg = prefix + " " + msg
	}
	_, _ = fmt.Fprintln(p.w, msg)
}

// Printf writes an unadorned line.
func (p *Printer) Printf(format string, args ...any) {
	p.line("", format, args...)
}

func (p *Printer) Successf(format string, args ...any) {
	p.line(styles.TextSuccessStyle.Render("✔"), format, args...)
}

func (p *Printer) Infof(format string, args ...any) {
	p.line(styles.TextPrimaryBoldStyle.Render("•"), format, args...)
}

func (p *Printer) Warnf(format string, args ...any) {
	p.line(styles.TextWarningStyle.Render("●"), format, args...)
}

func (p *Printer) Errorf(format string, args ...any) {
	p.line(styles.TextErrorStyle.Render("✘"), format, args...)
}

// Success writes a bold title followed by a muted detail.
func (p *Printer) Success(title, detail string) {
	p.line(styles.TextSuccessStyle.Render("✔"), "%s %s",
		styles.TextForegroundBoldStyle.Render(title), styles.TextMutedStyle.Render(detail))
}
