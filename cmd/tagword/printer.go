package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/chazu/tagword/vm"
)

// printer renders words and kinds for one word width.
type printer struct {
	w      io.Writer
	bits   int
	format string
	color  bool

	kindColors map[vm.Kind]*color.Color
	yes, no    *color.Color
	boxed      *color.Color
}

func newPrinter(w io.Writer, bits int, format string, useColor bool) *printer {
	p := &printer{
		w:      w,
		bits:   bits,
		format: format,
		color:  useColor,
		kindColors: map[vm.Kind]*color.Color{
			vm.KindNumber:    color.New(color.FgCyan),
			vm.KindBoolean:   color.New(color.FgYellow),
			vm.KindNull:      color.New(color.FgMagenta),
			vm.KindUndefined: color.New(color.FgMagenta),
			vm.KindCell:      color.New(color.FgBlue),
		},
		yes:   color.New(color.FgGreen),
		no:    color.New(color.FgRed),
		boxed: color.New(color.FgRed, color.Bold),
	}
	for _, c := range p.kindColors {
		setColor(c, useColor)
	}
	setColor(p.yes, useColor)
	setColor(p.no, useColor)
	setColor(p.boxed, useColor)
	return p
}

func setColor(c *color.Color, on bool) {
	if on {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
}

func (p *printer) word(w uint64) string {
	if p.format == "binary" {
		return fmt.Sprintf("%0*b", p.bits, w)
	}
	return fmt.Sprintf("%#0*x", p.bits/4+2, w)
}

func (p *printer) kind(k vm.Kind) string {
	return p.kindColors[k].Sprint(k.String())
}

func (p *printer) truth(b bool) string {
	if b {
		return p.yes.Sprint("true")
	}
	return p.no.Sprint("false")
}

func (p *printer) printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}
