package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
	"github.com/vfg2006/sales-ledger-api/internal/session"
)

// ActionRequest escolhe uma opção do menu. Branch e Sale só valem para as
// opções de cadastro.
type ActionRequest struct {
	Selection string         `json:"selection"`
	Param     string         `json:"param,omitempty"`
	Branch    *domain.Branch `json:"branch,omitempty"`
	Sale      *domain.Sale   `json:"sale,omitempty"`
}

func GetMenu() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, session.Menu())
	}
}

func RunAction(dispatcher *session.Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ActionRequest
		if !decodeBody(w, r, &req) {
			return
		}

		action, err := session.ParseSelection(req.Selection, req.Param, session.Payload{
			Branch: req.Branch,
			Sale:   req.Sale,
		})
		if err != nil {
			handleServiceError(w, r, err, "Error parsing selection")
			return
		}

		logrus.WithField("action", action.Kind().String()).Info("INIT - RunAction")

		result, err := dispatcher.Dispatch(r.Context(), action)
		if err != nil {
			handleServiceError(w, r, err, "Error running action")
			return
		}
		writeJSON(w, r, http.StatusOK, result)
	}
}
