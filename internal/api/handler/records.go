package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
	"github.com/vfg2006/sales-ledger-api/internal/usecases/recording"
)

func ListBranches(service recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		branches, err := service.ListBranches(r.Context())
		if err != nil {
			handleServiceError(w, r, err, "Error listing branches")
			return
		}
		writeJSON(w, r, http.StatusOK, branches)
	}
}

func CreateBranch(service recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateBranch")

		var req domain.Branch
		if !decodeBody(w, r, &req) {
			return
		}

		branch, err := service.AddBranch(r.Context(), req)
		if err != nil {
			handleServiceError(w, r, err, "Error adding branch")
			return
		}
		writeJSON(w, r, http.StatusCreated, branch)
	}
}

func ListProducts(service recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := service.ListProducts(r.Context())
		if err != nil {
			handleServiceError(w, r, err, "Error listing products")
			return
		}
		writeJSON(w, r, http.StatusOK, products)
	}
}

func CreateProduct(service recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateProduct")

		var req domain.Product
		if !decodeBody(w, r, &req) {
			return
		}

		product, err := service.AddProduct(r.Context(), req)
		if err != nil {
			handleServiceError(w, r, err, "Error adding product")
			return
		}
		writeJSON(w, r, http.StatusCreated, product)
	}
}

func ListSales(service recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sales, err := service.ListSales(r.Context())
		if err != nil {
			handleServiceError(w, r, err, "Error listing sales")
			return
		}
		writeJSON(w, r, http.StatusOK, sales)
	}
}

func CreateSale(service recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateSale")

		var req domain.Sale
		if !decodeBody(w, r, &req) {
			return
		}

		sale, err := service.AddSale(r.Context(), req)
		if err != nil {
			handleServiceError(w, r, err, "Error adding sale")
			return
		}
		writeJSON(w, r, http.StatusCreated, sale)
	}
}
