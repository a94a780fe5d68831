package dispatch

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/formguard/formguard/pkg/violation"
)

// StatusBody is the JSON payload emitted by Status. Details carries
// error-severity messages grouped by category; warnings and infos are kept
// separate so clients can present them independently.
type StatusBody struct {
	Code      string              `json:"code"`
	Message   string              `json:"message"`
	Reference string              `json:"reference,omitempty"`
	Details   map[string][]string `json:"details,omitempty"`
	Warnings  map[string][]string `json:"warnings,omitempty"`
	Infos     map[string][]string `json:"infos,omitempty"`
}

// Status writes the violation set as a structured JSON response with status
// 422 (Unprocessable Entity). Each response carries a unique reference id
// for correlating client reports with server logs.
func (d *Dispatcher) Status(set violation.Set) error {
	return d.StatusWithCode(set, http.StatusUnprocessableEntity)
}

// StatusWithCode is Status with an explicit HTTP status code.
func (d *Dispatcher) StatusWithCode(set violation.Set, status int) error {
	if err := d.transition(); err != nil {
		return err
	}

	body := StatusBody{
		Code:      "validation_failed",
		Message:   http.StatusText(status),
		Reference: uuid.NewString(),
		Details:   set.Errors().Messages(),
		Warnings:  set.Warnings().Messages(),
		Infos:     set.Infos().Messages(),
	}

	d.w.Header().Set("Content-Type", "application/json; charset=utf-8")
	d.w.WriteHeader(status)
	return json.NewEncoder(d.w).Encode(body)
}
