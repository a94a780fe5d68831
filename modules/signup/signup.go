package signup

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/formguard/formguard"
	"github.com/formguard/formguard/pkg/constraint"
	"github.com/formguard/formguard/pkg/validator"
	"github.com/formguard/formguard/pkg/violation"
)

// Views holds the templ components the service renders. The module owns
// the flow; the application owns the markup.
type Views struct {
	SignupPage func(SignupPageParams) templ.Component
}

// SignupPageParams carries submitted values and collected violations
// back into the form template.
type SignupPageParams struct {
	Values     url.Values
	Violations violation.Set
}

// Service implements the signup flow: one schema declared at
// construction, validated on every submission, with the outcome
// dispatched as JSON for API clients and a re-rendered form otherwise.
type Service struct {
	guard      *formguard.Guard
	schema     *validator.Schema
	views      *Views
	successURL string
}

// NewService creates the signup service. The emailTaken lookup answers
// whether an email is already registered, typically a dbcheck-backed
// lookup against the users table.
func NewService(guard *formguard.Guard, emailTaken constraint.Lookup, views *Views, successURL string) *Service {
	return &Service{
		guard: guard,
		schema: validator.NewSchema().
			Field("email", constraint.Required(), constraint.Email(), constraint.Unique(emailTaken)).
			Field("password", constraint.Required(), constraint.MinLength(8)).
			Field("name", constraint.Size(2, 64)).
			Field("terms", constraint.Accepted()),
		views:      views,
		successURL: successURL,
	}
}

// Handle returns the module's router.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.Get("/", s.show)
	r.Post("/", s.submit)
	return r
}

func (s *Service) show(w http.ResponseWriter, r *http.Request) {
	page := s.views.SignupPage(SignupPageParams{Values: url.Values{}})
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = page.Render(r.Context(), w)
}

func (s *Service) submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	set, err := s.guard.Validate(r.Context(), s.schema, formDocument(r.PostForm))
	if err != nil {
		// Checker fault (e.g. the uniqueness lookup lost its database),
		// not a validation failure.
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	d := s.guard.Dispatch(w, r)
	if !set.HasErrors() {
		_ = d.Redirect(s.successURL)
		return
	}

	if wantsJSON(r) {
		_ = d.Status(set)
		return
	}
	_ = d.RenderPage(s.views.SignupPage(SignupPageParams{
		Values:     r.PostForm,
		Violations: set,
	}), http.StatusUnprocessableEntity)
}

// formDocument adapts url.Values to the validation document contract.
// Absent and blank fields both validate as nil, so non-required
// constraints pass vacuously on empty submissions; the terms checkbox
// maps to a bool since browsers omit unchecked checkboxes entirely.
func formDocument(form url.Values) validator.Document {
	return validator.DocumentFunc(func(field string) (any, bool) {
		if field == "terms" {
			return form.Get("terms") != "", true
		}
		if !form.Has(field) {
			return nil, false
		}
		if v := form.Get(field); v != "" {
			return v, true
		}
		return nil, true
	})
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}
