package donate

import (
	"context"
	"errors"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/lceo-rwanda/portal/internal/portal/donation"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/flash"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/formvalue"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/modulehandler"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/pagerender"
	"github.com/lceo-rwanda/portal/internal/services/web/routepath"
	"github.com/lceo-rwanda/portal/internal/services/web/templates"
)

const (
	actionNext    = "next"
	actionBack    = "back"
	actionRestart = "restart"
)

const tracerName = "github.com/lceo-rwanda/portal/donate"

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleDonate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	namespace := h.Namespace(r)
	wiz, err := h.service.load(ctx, namespace)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	if wiz.Completed() {
		if err := h.service.reset(ctx, namespace); err != nil {
			h.WriteError(w, r, err)
			return
		}
		wiz = donation.New()
	}
	if program := formvalue.Get(r, "program"); program != "" && wiz.State() == donation.StateProgramSelection && selectableProgram(program) {
		_ = wiz.Update(func(d *donation.Data) { d.Program = program })
		if err := h.service.save(ctx, namespace, wiz); err != nil {
			h.WriteError(w, r, err)
			return
		}
	}
	h.render(w, r, wiz, nil)
}

func (h handlers) handleDonatePost(w http.ResponseWriter, r *http.Request) {
	if err := h.ParseForm(r); err != nil {
		h.WriteError(w, r, err)
		return
	}
	ctx := r.Context()
	namespace := h.Namespace(r)
	if formvalue.Get(r, "action") == actionRestart {
		if err := h.service.reset(ctx, namespace); err != nil {
			h.WriteError(w, r, err)
			return
		}
		h.Redirect(w, r, routepath.Donate)
		return
	}

	wiz, err := h.service.load(ctx, namespace)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	if wiz.Completed() {
		h.render(w, r, wiz, nil)
		return
	}

	state := wiz.State()
	if err := wiz.Update(func(d *donation.Data) { applyStep(state, r, d) }); err != nil {
		h.WriteError(w, r, err)
		return
	}

	var toast *templates.Toast
	if formvalue.Get(r, "action") == actionBack {
		if err := wiz.Back(ctx); err != nil && !errors.Is(err, donation.ErrBackUnavailable) {
			h.WriteError(w, r, err)
			return
		}
	} else if err := wiz.Next(ctx); err != nil {
		key, blocked := guardKey(err)
		if !blocked {
			h.WriteError(w, r, err)
			return
		}
		toast = h.Toast(r, flash.Failure(key))
	}

	if err := h.service.save(ctx, namespace, wiz); err != nil {
		h.WriteError(w, r, err)
		return
	}
	if wiz.Completed() {
		h.recordCompletion(ctx, wiz.Data())
	}
	h.render(w, r, wiz, toast)
}

// applyStep copies the fields owned by state from the submitted form.
func applyStep(state donation.State, r *http.Request, d *donation.Data) {
	switch state {
	case donation.StateProgramSelection:
		d.Program = ""
		if program := formvalue.Get(r, "program"); selectableProgram(program) {
			d.Program = program
		}
	case donation.StateTypeSelection:
		if t, ok := donation.ParseType(formvalue.Get(r, "type")); ok {
			d.Type = t
		}
		if f, ok := donation.ParseFrequency(formvalue.Get(r, "frequency")); ok {
			d.Frequency = f
		}
	case donation.StateAmountAndDetails:
		if custom := formvalue.Get(r, "customAmount"); custom != "" {
			d.SetCustomAmount(custom)
		} else if amount, ok := suggestedAmount(formvalue.Get(r, "amount")); ok {
			d.ChooseSuggested(amount)
		} else {
			d.Amount, d.CustomAmount = "", ""
		}
		d.Anonymous = formvalue.Checked(r, "anonymous")
		d.Message = formvalue.Get(r, "message")
	case donation.StatePaymentInfo:
		d.PaymentMethod = ""
		if method, ok := donation.ParseMethod(formvalue.Get(r, "paymentMethod")); ok {
			d.PaymentMethod = method
		}
		d.Name = formvalue.Get(r, "name")
		d.Email = formvalue.Get(r, "email")
	}
}

func (h handlers) recordCompletion(ctx context.Context, data donation.Data) {
	amount := data.SelectedAmount()
	cadence := string(donation.TypeOneTime)
	if data.Recurring() {
		cadence = string(data.Frequency)
	}
	_, span := otel.Tracer(tracerName).Start(ctx, "donation.complete")
	span.SetAttributes(
		attribute.String("donation.program", data.Program),
		attribute.String("donation.cadence", cadence),
		attribute.String("donation.amount", amount.String()),
		attribute.String("donation.payment_method", string(data.PaymentMethod)),
	)
	span.End()
	h.Metrics().DonationCompleted(cadence, amount)
	h.Logger().InfoContext(ctx, "donation completed", "program", data.Program, "cadence", cadence, "amount", amount.String())
}

func (h handlers) render(w http.ResponseWriter, r *http.Request, wiz *donation.Wizard, toast *templates.Toast) {
	loc := h.Localizer(r)
	h.WritePage(w, r, pagerender.Page{
		Title: "Donate",
		Body:  wizardView(wiz, loc, h.Language(r)),
		Toast: toast,
	})
}
