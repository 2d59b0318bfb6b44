package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-ledger-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-ledger-api/pkg/apiErrors"
	"github.com/vfg2006/sales-ledger-api/pkg/utils"
)

func BranchSales(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		branchID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if branchID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Branch ID is required", nil)
			return
		}

		report, err := service.BranchSales(r.Context(), branchID)
		if err != nil {
			handleServiceError(w, r, err, "Error analysing branch sales")
			return
		}
		writeJSON(w, r, http.StatusOK, report)
	}
}

func ProductPrice(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if productID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Product ID is required", nil)
			return
		}

		report, err := service.ProductPrice(r.Context(), productID)
		if err != nil {
			handleServiceError(w, r, err, "Error analysing product price")
			return
		}
		writeJSON(w, r, http.StatusOK, report)
	}
}

// WeeklySales aceita ?date=YYYY-MM-DD; sem data usa a semana corrente
func WeeklySales(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reference, err := utils.ParseDate(r.URL.Query().Get("date"), time.Now())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "date must be YYYY-MM-DD", nil)
			return
		}

		report, err := service.WeeklySales(r.Context(), reference)
		if err != nil {
			handleServiceError(w, r, err, "Error analysing weekly sales")
			return
		}
		writeJSON(w, r, http.StatusOK, report)
	}
}

func TotalSales(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := service.TotalSales(r.Context())
		if err != nil {
			handleServiceError(w, r, err, "Error analysing total sales")
			return
		}
		writeJSON(w, r, http.StatusOK, report)
	}
}

func AllBranchesSales(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := service.AllBranchesSales(r.Context())
		if err != nil {
			handleServiceError(w, r, err, "Error analysing branch totals")
			return
		}
		writeJSON(w, r, http.StatusOK, report)
	}
}
