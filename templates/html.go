// Package templates renders the estimator's HTML. Components are plain
// templ.Component values so handlers can render them exactly like generated
// templ code: full pages for normal requests, content fragments for HTMX.
package templates

import (
	"context"
	"encoding/json"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// htmlWriter accumulates the first write error so markup code can stay flat.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newHTMLWriter(ctx context.Context, w io.Writer) *htmlWriter {
	return &htmlWriter{ctx: ctx, w: w}
}

// raw writes trusted markup.
func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

// text writes escaped character data.
func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with the value escaped.
func (h *htmlWriter) attr(name, value string) {
	h.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

func (h *htmlWriter) attrInt(name string, value int) {
	h.attr(name, strconv.Itoa(value))
}

// flag writes a boolean attribute when on is true.
func (h *htmlWriter) flag(name string, on bool) {
	if on {
		h.raw(" " + name)
	}
}

// vals writes an hx-vals attribute carrying the given form values.
func (h *htmlWriter) vals(values map[string]string) {
	data, err := json.Marshal(values)
	if err != nil {
		if h.err == nil {
			h.err = err
		}
		return
	}
	h.attr("hx-vals", string(data))
}

func (h *htmlWriter) component(c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

// componentFunc adapts a markup function to templ.Component.
func componentFunc(fn func(h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		fn(h)
		return h.err
	})
}
