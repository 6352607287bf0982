package templates

import (
	"strconv"

	"github.com/a-h/templ"
)

// Option is one choice in a select or radio group.
type Option struct {
	Value string
	Label string
}

// Form renders a POST form.
func Form(action string, children ...templ.Component) templ.Component {
	return El("form", A("method", "post", "action", action, "class", "form"), children...)
}

// Hidden renders a hidden input.
func Hidden(name, value string) templ.Component {
	return El("input", A("type", "hidden", "name", name, "value", value))
}

// Field renders a labelled input.
func Field(label, name, inputType, value string, required bool) templ.Component {
	return El("label", A("class", "field"),
		Span("field-label", label),
		El("input", With(A("type", inputType, "name", name, "value", value), Flag("required", required))),
	)
}

// TextArea renders a labelled textarea.
func TextArea(label, name, value string, required bool) templ.Component {
	return El("label", A("class", "field"),
		Span("field-label", label),
		El("textarea", With(A("name", name, "rows", "4"), Flag("required", required)), Text(value)),
	)
}

// Checkbox renders a labelled checkbox.
func Checkbox(label, name string, checked bool) templ.Component {
	return El("label", A("class", "checkbox"),
		El("input", With(A("type", "checkbox", "name", name, "value", "true"), Flag("checked", checked))),
		Text(" "+label),
	)
}

// Select renders a labelled select.
func Select(label, name string, options []Option, selected string) templ.Component {
	return El("label", A("class", "field"),
		Span("field-label", label),
		El("select", A("name", name), Each(options, func(o Option) templ.Component {
			return El("option", With(A("value", o.Value), Flag("selected", o.Value == selected)), Text(o.Label))
		})),
	)
}

// Radios renders a radio group.
func Radios(name string, options []Option, selected string) templ.Component {
	return El("fieldset", A("class", "radios"), Each(options, func(o Option) templ.Component {
		return El("label", A("class", "radio"),
			El("input", With(A("type", "radio", "name", name, "value", o.Value), Flag("checked", o.Value == selected))),
			Text(" "+o.Label),
		)
	}))
}

// Submit renders a submit button. Name and value are optional.
func Submit(label, name, value string) templ.Component {
	return El("button", A("type", "submit", "class", "button", "name", name, "value", value), Text(label))
}

// SubmitDisabled renders a submit button that may be disabled.
func SubmitDisabled(label, name, value string, disabled bool) templ.Component {
	return El("button", With(A("type", "submit", "class", "button", "name", name, "value", value), Flag("disabled", disabled)), Text(label))
}

// FieldError renders an inline validation message.
func FieldError(message string) templ.Component {
	if message == "" {
		return nil
	}
	return El("p", A("class", "form-error", "role", "alert"), Text(message))
}

// ProgressBar renders a percentage bar.
func ProgressBar(percent int64) templ.Component {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	value := strconv.FormatInt(percent, 10)
	return El("div", A("class", "progress", "role", "progressbar", "aria-valuenow", value, "aria-valuemin", "0", "aria-valuemax", "100"),
		El("div", A("class", "progress-fill", "style", "width: "+value+"%")),
	)
}

// Stat renders a labelled figure card.
func Stat(label, value string) templ.Component {
	return Div("stat", Span("stat-value", value), Span("stat-label", label))
}
