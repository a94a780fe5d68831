package signup

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/formguard/formguard"
	"github.com/formguard/formguard/pkg/messages"
)

type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures the module router. The resolver is optional;
// without it no locale negotiation middleware is installed and messages
// fall back to their literal defaults.
type RouterOptions struct {
	Signup   Mountable
	Resolver *messages.Resolver
}

// Router creates the signup module router with request-scoped violation
// collection and optional locale negotiation.
//
// Example:
//
//	svc := signup.NewService(guard, emailTaken, views, "/welcome")
//
//	r := chi.NewRouter()
//	r.Mount("/signup", signup.Router(signup.RouterOptions{
//	    Signup:   svc,
//	    Resolver: resolver,
//	}))
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	if opts.Resolver != nil {
		r.Use(messages.Middleware(opts.Resolver))
	}
	r.Use(formguard.Middleware)

	if opts.Signup != nil {
		r.Mount("/", opts.Signup.Handle())
	}

	return r
}
