package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Attr is one HTML attribute. Boolean attributes render without a value.
type Attr struct {
	Key   string
	Value string
	Bool  bool
}

// A builds attributes from key/value pairs.
func A(pairs ...string) []Attr {
	attrs := make([]Attr, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		attrs = append(attrs, Attr{Key: pairs[i], Value: pairs[i+1]})
	}
	return attrs
}

// Flag is a boolean attribute that renders only when on.
func Flag(key string, on bool) Attr {
	return Attr{Key: key, Bool: on}
}

// With appends attributes.
func With(attrs []Attr, extra ...Attr) []Attr {
	return append(append([]Attr(nil), attrs...), extra...)
}

var voidElements = map[string]bool{
	"br": true, "hr": true, "img": true, "input": true, "link": true, "meta": true,
}

var urlAttributes = map[string]bool{
	"href": true, "src": true, "action": true, "formaction": true,
}

// El renders an element with escaped attributes and the given children.
func El(tag string, attrs []Attr, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<"+tag); err != nil {
			return err
		}
		if err := writeAttrs(w, attrs); err != nil {
			return err
		}
		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}
		if voidElements[tag] {
			return nil
		}
		for _, child := range children {
			if child == nil {
				continue
			}
			if err := child.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</"+tag+">")
		return err
	})
}

func writeAttrs(w io.Writer, attrs []Attr) error {
	var b strings.Builder
	for _, attr := range attrs {
		if attr.Key == "" {
			continue
		}
		if attr.Bool {
			b.WriteString(" " + attr.Key)
			continue
		}
		if attr.Value == "" && attr.Key != "value" && attr.Key != "alt" {
			continue
		}
		value := attr.Value
		if urlAttributes[attr.Key] {
			value = string(templ.URL(value))
		}
		b.WriteString(" " + attr.Key + `="` + templ.EscapeString(value) + `"`)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Text renders escaped text.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// Textf renders escaped formatted text.
func Textf(format string, args ...any) templ.Component {
	return Text(fmt.Sprintf(format, args...))
}

// Group renders children in order.
func Group(children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, child := range children {
			if child == nil {
				continue
			}
			if err := child.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// If renders c only when cond holds.
func If(cond bool, c templ.Component) templ.Component {
	if !cond {
		return nil
	}
	return c
}

// Each renders fn for every item.
func Each[T any](items []T, fn func(T) templ.Component) templ.Component {
	children := make([]templ.Component, 0, len(items))
	for _, item := range items {
		children = append(children, fn(item))
	}
	return Group(children...)
}

// Children renders the component passed through templ.WithChildren.
func Children() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return templ.GetChildren(ctx).Render(ctx, w)
	})
}

// Short element helpers.

func Div(class string, children ...templ.Component) templ.Component {
	return El("div", A("class", class), children...)
}

func Section(class string, children ...templ.Component) templ.Component {
	return El("section", A("class", class), children...)
}

func H1(text string) templ.Component { return El("h1", nil, Text(text)) }

func H2(text string) templ.Component { return El("h2", nil, Text(text)) }

func H3(text string) templ.Component { return El("h3", nil, Text(text)) }

func P(text string) templ.Component { return El("p", nil, Text(text)) }

func Link(href, class, label string) templ.Component {
	return El("a", A("href", href, "class", class), Text(label))
}

func Span(class, text string) templ.Component {
	return El("span", A("class", class), Text(text))
}
