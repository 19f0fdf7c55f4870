package paymentshandler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jung-kurt/gofpdf"

	"sitecrew/internal/domain/payments"
	"sitecrew/internal/domain/workforce"
	"sitecrew/internal/transport/http/api"
	"sitecrew/internal/transport/http/shared"
)

type Handler struct {
	Service   *payments.Service
	Workforce *workforce.Store
}

func NewHandler(service *payments.Service, workforceStore *workforce.Store) *Handler {
	return &Handler{Service: service, Workforce: workforceStore}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payment", func(r chi.Router) {
		r.Get("/", h.handleListPayments)
		r.Post("/", h.handleCreatePayment)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.handleGetPayment)
			r.Get("/receipt", h.handleReceipt)
		})
	})
}

type jobPayload struct {
	EmployeeType string  `json:"employeeType"`
	StartDate    string  `json:"startDate"`
	TargetDate   string  `json:"targetDate"`
	Total        float64 `json:"total"`
}

type createPaymentPayload struct {
	SiteID     string       `json:"siteId"`
	EmployeeID string       `json:"employeeId"`
	Jobs       []jobPayload `json:"jobs"`
	PaymentBy  string       `json:"paymentBy"`
}

func (h *Handler) handleCreatePayment(w http.ResponseWriter, r *http.Request) {
	var payload createPaymentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if payload.SiteID == "" || payload.EmployeeID == "" {
		api.Error(w, http.StatusBadRequest, "siteId and employeeId are required")
		return
	}

	jobs := make([]payments.JobInput, 0, len(payload.Jobs))
	for _, job := range payload.Jobs {
		input := payments.JobInput{EmployeeType: job.EmployeeType, Total: job.Total}
		start, err := shared.ParseDate(job.StartDate)
		if err != nil {
			api.Error(w, http.StatusBadRequest, "invalid startDate in jobs")
			return
		}
		if !start.IsZero() {
			input.StartDate = &start
		}
		target, err := shared.ParseDate(job.TargetDate)
		if err != nil {
			api.Error(w, http.StatusBadRequest, "invalid targetDate in jobs")
			return
		}
		if !target.IsZero() {
			input.TargetDate = &target
		}
		jobs = append(jobs, input)
	}

	result, err := h.Service.CreatePayment(r.Context(), payments.CreatePaymentInput{
		SiteID:     payload.SiteID,
		EmployeeID: payload.EmployeeID,
		Jobs:       jobs,
		PaymentBy:  payload.PaymentBy,
	})
	if err != nil {
		api.InternalError(w)
		return
	}
	api.JSON(w, http.StatusCreated, result)
}

func (h *Handler) handleListPayments(w http.ResponseWriter, r *http.Request) {
	all, err := h.Service.ListPayments(r.Context())
	if err != nil {
		api.InternalError(w)
		return
	}
	api.JSON(w, http.StatusOK, all)
}

func (h *Handler) handleGetPayment(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.GetPaymentWithDetails(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, payments.ErrNotFound) {
			api.Error(w, http.StatusNotFound, "Payment not found")
			return
		}
		api.InternalError(w)
		return
	}
	api.JSON(w, http.StatusOK, result)
}

func (h *Handler) handleReceipt(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.GetPaymentWithDetails(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, payments.ErrNotFound) {
			api.Error(w, http.StatusNotFound, "Payment not found")
			return
		}
		api.InternalError(w)
		return
	}

	siteName := ""
	if site, err := h.Workforce.GetSite(r.Context(), result.Payment.SiteID); err == nil {
		siteName = site.LocationName
	}
	employeeName := ""
	if emp, err := h.Workforce.GetEmployee(r.Context(), result.Payment.EmployeeID); err == nil {
		employeeName = emp.EmployeeName
	}

	var buf bytes.Buffer
	if err := buildReceiptPDF(&buf, result, siteName, employeeName); err != nil {
		api.InternalError(w)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=payment-%s.pdf", result.Payment.ID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func buildReceiptPDF(buf *bytes.Buffer, result *payments.CreatePaymentResult, siteName, employeeName string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payment Receipt")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Payment: %s", result.Payment.ID))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Site: %s", siteName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", employeeName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Paid by: %s", result.Payment.PaymentBy))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Jobs")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	for _, detail := range result.PaymentDetails {
		period := ""
		if detail.StartDate != nil && detail.TargetDate != nil {
			period = fmt.Sprintf(" (%s to %s)", detail.StartDate.Format("2006-01-02"), detail.TargetDate.Format("2006-01-02"))
		}
		pdf.Cell(0, 8, fmt.Sprintf("%s%s: %.2f", detail.EmployeeType, period, detail.Total))
		pdf.Ln(7)
	}

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Final total: %.2f", result.Payment.FinalTotal))

	return pdf.Output(buf)
}
