package handler

import (
	"net/http"
	"strings"

	"github.com/amaumene/trigger/internal/domain"
	"github.com/amaumene/trigger/internal/service"
	log "github.com/sirupsen/logrus"
)

type HTTPHandler struct {
	triggerSvc *service.TriggerService
}

func NewHTTPHandler(triggerSvc *service.TriggerService) *HTTPHandler {
	return &HTTPHandler{
		triggerSvc: triggerSvc,
	}
}

// ServeHTTP must be mounted directly on the server. A ServeMux would clean
// the path before it reaches the secret comparison.
func (h *HTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	outcome, err := h.triggerSvc.Trigger(r.Context(), requestPath(r))
	h.logOutcome(r, outcome, err)
	w.WriteHeader(outcome.StatusCode())
}

// requestPath strips exactly one leading slash from the path as sent on the
// wire. Percent-encoding is left as is.
func requestPath(r *http.Request) string {
	return strings.TrimPrefix(rawPath(r), "/")
}

// rawPath returns the undecoded path of the request target. Absolute-form
// and asterisk targets fall back to the escaped form of the parsed URL.
func rawPath(r *http.Request) string {
	target := r.RequestURI
	if i := strings.IndexByte(target, '?'); i >= 0 {
		target = target[:i]
	}
	if strings.HasPrefix(target, "/") {
		return target
	}
	return r.URL.EscapedPath()
}

func (h *HTTPHandler) logOutcome(r *http.Request, outcome domain.Outcome, err error) {
	entry := log.WithFields(log.Fields{
		"component":   "handler",
		"remote_addr": r.RemoteAddr,
		"outcome":     outcome.String(),
	})

	switch {
	case err != nil && domain.IsConfigError(err):
		entry.WithField("error", err).Warn("trigger configuration incomplete")
	case err != nil:
		entry.WithField("error", err).Error("failed to run triggered command")
	case outcome == domain.OutcomeTriggered:
		entry.Info("command triggered")
	default:
		entry.Debug("request did not match secret path")
	}
}
