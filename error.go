package bffsdk

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/vektah/gqlparser/v2/gqlerror"
)

// Classification codes the BFF attaches to business errors.
const (
	codeInvalidToken = "InvalidToken"
	codeForbidden    = "Forbidden"
)

// Reaction enumerates the UI reactions a classified error can trigger.
type Reaction int

const (
	// ReactionNone is the fallthrough for unknown codes. A generic error
	// notification exists upstream but is deliberately not wired to it.
	ReactionNone Reaction = iota
	// ReactionInvalidToken shows the singleton session-expired modal.
	ReactionInvalidToken
	// ReactionForbidden shows a permission-denied notification.
	ReactionForbidden
)

// classify maps an error's extensions.code to a reaction. It is total:
// every code maps somewhere, unknown ones to ReactionNone.
func classify(code string) Reaction {
	switch code {
	case codeInvalidToken:
		return ReactionInvalidToken
	case codeForbidden:
		return ReactionForbidden
	default:
		return ReactionNone
	}
}

// Notification carries the user-facing strings for a Forbidden reaction.
type Notification struct {
	Message     string
	Description string
	Err         *gqlerror.Error
}

// ReactorConfig injects the UI surfaces the classifier drives. Nil hooks
// fall back to logging, which keeps the classifier usable headless and
// resettable in tests.
type ReactorConfig struct {
	// ShowInvalidTokenModal displays the session-expired modal. The Reactor
	// guarantees it is invoked at most once until Dismiss or Confirm.
	ShowInvalidTokenModal func(err *gqlerror.Error)
	// ShowForbiddenNotification displays a permission-denied notification.
	// Invoked once per Forbidden error, never deduplicated.
	ShowForbiddenNotification func(n Notification)
	// Logout navigates to the logout path after the modal is confirmed.
	Logout func()
}

// Reactor routes classified GraphQL errors to UI reactions. The
// session-expired modal is process-wide singleton state with two states,
// absent and showing: show while showing is a no-op, and only Dismiss or
// Confirm re-arm it.
type Reactor struct {
	mu      sync.Mutex
	showing bool

	cfg ReactorConfig
}

// NewReactor returns a Reactor with the given UI hooks.
func NewReactor(cfg ReactorConfig) *Reactor {
	return &Reactor{cfg: cfg}
}

// OnResponse implements ResponseMiddleware against the clean
// success-with-errors shape.
func (r *Reactor) OnResponse(resp *Response) {
	if resp == nil {
		return
	}
	r.React(resp.Errors)
}

// OnError handles the thrown shape, where the error list arrives nested
// under a ClientError instead of on a response.
func (r *Reactor) OnError(err error) {
	var cerr *ClientError
	if errors.As(err, &cerr) && cerr.Response != nil {
		r.React(cerr.Response.Errors)
	}
}

// React dispatches each coded error to its reaction. Errors without an
// extensions.code are transport or validation noise: they are logged once,
// collectively, and never shown to the user.
func (r *Reactor) React(errs gqlerror.List) {
	if len(errs) == 0 {
		return
	}

	coded := make(gqlerror.List, 0, len(errs))
	for _, e := range errs {
		if _, ok := extensionCode(e); ok {
			coded = append(coded, e)
		}
	}
	if len(coded) == 0 {
		slog.Warn("uncaught errors", "errs", errs.Error())
		return
	}

	for _, e := range coded {
		r.react(e)
	}
}

// react handles a single error. Reactions are isolated: a panicking UI hook
// must not stop the remaining errors from being processed.
func (r *Reactor) react(e *gqlerror.Error) {
	defer func() {
		if p := recover(); p != nil {
			slog.Error("error reaction panicked", "panic", p, "err", e.Message)
		}
	}()

	code, _ := extensionCode(e)
	switch classify(code) {
	case ReactionInvalidToken:
		r.showSessionExpired(e)
	case ReactionForbidden:
		r.notifyForbidden(e)
	case ReactionNone:
		// Reserved. See ReactionNone.
	}
}

func (r *Reactor) showSessionExpired(e *gqlerror.Error) {
	r.mu.Lock()
	if r.showing {
		r.mu.Unlock()
		return
	}
	r.showing = true
	r.mu.Unlock()

	if r.cfg.ShowInvalidTokenModal != nil {
		r.cfg.ShowInvalidTokenModal(e)
		return
	}
	slog.Warn("session expired, confirm to log in again", "err", e.Message)
}

// Dismiss clears the session-expired modal so a later InvalidToken error
// can show it again.
func (r *Reactor) Dismiss() {
	r.mu.Lock()
	r.showing = false
	r.mu.Unlock()
}

// Confirm dismisses the modal and triggers the logout navigation.
func (r *Reactor) Confirm() {
	r.Dismiss()
	if r.cfg.Logout != nil {
		r.cfg.Logout()
	}
}

func (r *Reactor) notifyForbidden(e *gqlerror.Error) {
	n := Notification{
		Message:     "Current operation is not authorized",
		Description: ForbiddenDescription(e),
		Err:         e,
	}
	if r.cfg.ShowForbiddenNotification != nil {
		r.cfg.ShowForbiddenNotification(n)
		return
	}
	slog.Warn(n.Message, "description", n.Description)
}

// verbPhrases translates the RBAC verb from a Forbidden error into the
// phrase shown to the user.
var verbPhrases = map[string]string{
	"create": "create",
	"delete": "delete",
	"update": "update",
	"patch":  "update",
	"get":    "get",
	"list":   "list",
	"watch":  "watch",
}

// ForbiddenDescription renders the permission-denied text for an error,
// e.g. "The current user has no permission to delete Pod foo". Missing or
// unknown verbs fall back to a generic phrase; kind and name are appended
// only when present.
func ForbiddenDescription(e *gqlerror.Error) string {
	details := exceptionDetails(e)
	phrase, ok := verbPhrases[details.verb]
	if !ok {
		phrase = "operate"
	}
	desc := "The current user has no permission to " + phrase
	if details.kind != "" {
		desc += " " + details.kind
	}
	if details.name != "" {
		desc += " " + details.name
	}
	return desc
}

// extensionCode reports an error's classification code and whether one is
// present at all. A present but non-string code counts as classified (it
// just won't match any reaction).
func extensionCode(e *gqlerror.Error) (string, bool) {
	if e == nil || len(e.Extensions) == 0 {
		return "", false
	}
	raw, ok := e.Extensions["code"]
	if !ok {
		return "", false
	}
	code, _ := raw.(string)
	return code, true
}

type errDetails struct {
	name string
	kind string
	verb string
}

// exceptionDetails digs the structured RBAC details out of
// extensions.exception.details. Anything missing stays zero.
func exceptionDetails(e *gqlerror.Error) errDetails {
	var out errDetails
	if e == nil {
		return out
	}
	exception, _ := e.Extensions["exception"].(map[string]any)
	details, _ := exception["details"].(map[string]any)
	out.name, _ = details["name"].(string)
	out.kind, _ = details["kind"].(string)
	out.verb, _ = details["verb"].(string)
	return out
}
