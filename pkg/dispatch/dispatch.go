package dispatch

import (
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// DataStar detection constants.
const (
	dataStarAcceptHeader = "text/event-stream"
	dataStarQueryParam   = "datastar"
)

type state int

const (
	stateValidating state = iota
	stateDispatched
)

// Dispatcher routes a request to exactly one recovery outcome after a
// validation pass. It owns the response writer for the remainder of the
// request: the first outcome call writes the response and moves the
// dispatcher to its terminal state, and every later call returns
// ErrAlreadyDispatched without touching the connection.
type Dispatcher struct {
	w http.ResponseWriter
	r *http.Request

	mu    sync.Mutex
	state state
}

// New creates a dispatcher bound to a single request/response pair.
func New(w http.ResponseWriter, r *http.Request) *Dispatcher {
	return &Dispatcher{w: w, r: r}
}

// Dispatched reports whether an outcome has already been produced.
func (d *Dispatcher) Dispatched() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state == stateDispatched
}

// transition claims the terminal state. Only the first caller wins.
func (d *Dispatcher) transition() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == stateDispatched {
		return ErrAlreadyDispatched
	}
	d.state = stateDispatched
	return nil
}

// Forward hands the current request to another handler in-process, without a
// client round trip. The forwarded handler writes the response.
func (d *Dispatcher) Forward(h http.Handler) error {
	if h == nil {
		return ErrNilHandler
	}
	if err := d.transition(); err != nil {
		return err
	}
	h.ServeHTTP(d.w, d.r)
	return nil
}

// Redirect sends the client to url with status 303 (See Other). For DataStar
// requests it uses Server-Sent Events to trigger a client-side redirect
// instead of an HTTP redirect. The target must be relative or on the same
// host as the current request.
func (d *Dispatcher) Redirect(target string) error {
	return d.RedirectWithCode(target, http.StatusSeeOther)
}

// RedirectWithCode is Redirect with an explicit status code. Valid codes are
// 301, 302, 303, 307, and 308.
func (d *Dispatcher) RedirectWithCode(target string, code int) error {
	if !isValidRedirectURL(target, d.r) {
		return ErrUnsafeRedirect
	}
	if err := d.transition(); err != nil {
		return err
	}
	if isDataStar(d.r) {
		sse := datastar.NewSSE(d.w, d.r)
		return sse.Redirect(target)
	}
	http.Redirect(d.w, d.r, target, code)
	return nil
}

// RenderPage renders a page component with the given status code, typically
// the originating form re-rendered with its violations. For DataStar requests
// the component is patched into the DOM over SSE; otherwise it is written as
// a regular HTML response.
func (d *Dispatcher) RenderPage(component templ.Component, status int, opts ...datastar.PatchElementOption) error {
	if component == nil {
		return ErrNilComponent
	}
	if err := d.transition(); err != nil {
		return err
	}
	if isDataStar(d.r) {
		sse := datastar.NewSSE(d.w, d.r)
		return sse.PatchElementTempl(component, opts...)
	}
	d.w.Header().Set("Content-Type", "text/html; charset=utf-8")
	d.w.WriteHeader(status)
	return component.Render(d.r.Context(), d.w)
}

// isDataStar checks if the request was issued by a DataStar client.
func isDataStar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), dataStarAcceptHeader) {
		return true
	}
	return r.URL.Query().Has(dataStarQueryParam)
}

// isValidRedirectURL checks if a URL is safe to redirect to. Only relative
// URLs and same-host absolute URLs are allowed.
func isValidRedirectURL(urlStr string, r *http.Request) bool {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return false
	}
	return parsed.Host == "" || parsed.Host == r.Host
}
