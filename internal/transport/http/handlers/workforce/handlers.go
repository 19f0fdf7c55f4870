package workforcehandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sitecrew/internal/domain/workforce"
	"sitecrew/internal/transport/http/api"
	"sitecrew/internal/transport/http/shared"
)

type Handler struct {
	Store   *workforce.Store
	Service *workforce.Service
}

func NewHandler(store *workforce.Store) *Handler {
	return &Handler{Store: store, Service: workforce.NewService(store)}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employeeDetails", func(r chi.Router) {
		r.Get("/", h.handleListEmployees)
		r.Post("/", h.handleCreateEmployee)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.handleGetEmployee)
			r.Put("/", h.handleUpdateEmployee)
			r.Delete("/", h.handleDeleteEmployee)
		})
	})

	r.Route("/siteDetails", func(r chi.Router) {
		r.Get("/", h.handleListSites)
		r.Post("/", h.handleCreateSite)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.handleGetSite)
			r.Put("/", h.handleUpdateSite)
			r.Delete("/", h.handleDeleteSite)
		})
	})

	r.Route("/addEmployeeToSite", func(r chi.Router) {
		r.Get("/", h.handleListAssignments)
		r.Post("/", h.handleCreateAssignment)
		r.Route("/{id}", func(r chi.Router) {
			r.Put("/", h.handleUpdateAssignment)
			r.Delete("/", h.handleDeleteAssignment)
		})
	})

	r.Get("/sitesByEmployee/{employeeId}", h.handleSitesByEmployee)
}

func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Store.ListEmployees(r.Context())
	if err != nil {
		api.InternalError(w)
		return
	}
	api.JSON(w, http.StatusOK, employees)
}

func (h *Handler) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	emp, err := h.Store.GetEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, workforce.ErrNotFound) {
			api.Error(w, http.StatusNotFound, "Employee not found")
			return
		}
		api.InternalError(w)
		return
	}
	api.JSON(w, http.StatusOK, emp)
}

func (h *Handler) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	var payload workforce.Employee
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	emp, err := h.Store.CreateEmployee(r.Context(), payload)
	if err != nil {
		api.InternalError(w)
		return
	}
	api.JSON(w, http.StatusOK, emp)
}

func (h *Handler) handleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var payload workforce.Employee
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	emp, err := h.Store.UpdateEmployee(r.Context(), chi.URLParam(r, "id"), payload)
	if err != nil {
		if errors.Is(err, workforce.ErrNotFound) {
			// Update of a missing employee answers 200 with a null body,
			// unlike delete which answers 404.
			api.JSON(w, http.StatusOK, nil)
			return
		}
		api.InternalError(w)
		return
	}
	api.JSON(w, http.StatusOK, emp)
}

func (h *Handler) handleDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	emp, err := h.Store.DeleteEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, workforce.ErrNotFound) {
			api.Error(w, http.StatusNotFound, "Employee not found")
			return
		}
		api.InternalError(w)
		return
	}
	api.JSON(w, http.StatusOK, emp)
}

type sitePayload struct {
	LocationName string `json:"locationName"`
	Address      string `json:"address"`
	StartDate    string `json:"startDate"`
	TargetDate   string `json:"targetDate"`
}

func (p sitePayload) toSite(w http.ResponseWriter) (workforce.SiteDetail, bool) {
	site := workforce.SiteDetail{LocationName: p.LocationName, Address: p.Address}
	start, err := shared.ParseDate(p.StartDate)
	if err != nil {
		api.Error(w, http.StatusBadRequest, "invalid startDate")
		return site, false
	}
	if !start.IsZero() {
		site.StartDate = &start
	}
	target, err := shared.ParseDate(p.TargetDate)
	if err != nil {
		api.Error(w, http.StatusBadRequest, "invalid targetDate")
		return site, false
	}
	if !target.IsZero() {
		site.TargetDate = &target
	}
	return site, true
}

func (h *Handler) handleListSites(w http.ResponseWriter, r *http.Request) {
	sites, err := h.Store.ListSites(r.Context())
	if err != nil {
		api.InternalError(w)
		return
	}
	api.JSON(w, http.StatusOK, sites)
}

func (h *Handler) handleGetSite(w http.ResponseWriter, r *http.Request) {
	site, err := h.Store.GetSite(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, workforce.ErrNotFound) {
			api.Error(w, http.StatusNotFound, "SiteDetail not found")
			return
		}
		api.InternalError(w)
		return
	}
	api.JSON(w, http.StatusOK, site)
}

func (h *Handler) handleCreateSite(w http.ResponseWriter, r *http.Request) {
	var payload sitePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	site, ok := payload.toSite(w)
	if !ok {
		return
	}

	created, err := h.Store.CreateSite(r.Context(), site)
	if err != nil {
		api.InternalError(w)
		return
	}
	api.JSON(w, http.StatusOK, created)
}

func (h *Handler) handleUpdateSite(w http.ResponseWriter, r *http.Request) {
	var payload sitePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	site, ok := payload.toSite(w)
	if !ok {
		return
	}

	updated, err := h.Store.UpdateSite(r.Context(), chi.URLParam(r, "id"), site)
	if err != nil {
		if errors.Is(err, workforce.ErrNotFound) {
			api.JSON(w, http.StatusOK, nil)
			return
		}
		api.InternalError(w)
		return
	}
	api.JSON(w, http.StatusOK, updated)
}

func (h *Handler) handleDeleteSite(w http.ResponseWriter, r *http.Request) {
	site, err := h.Store.DeleteSite(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, workforce.ErrNotFound) {
			api.Error(w, http.StatusNotFound, "SiteDetail not found")
			return
		}
		api.InternalError(w)
		return
	}
	api.JSON(w, http.StatusOK, site)
}

type assignmentPayload struct {
	SiteID     string `json:"siteId"`
	EmployeeID string `json:"employeeId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
}

func (p assignmentPayload) toAssignment(w http.ResponseWriter) (workforce.SiteAssignment, bool) {
	var a workforce.SiteAssignment
	if p.SiteID == "" || p.EmployeeID == "" {
		api.Error(w, http.StatusBadRequest, "siteId and employeeId are required")
		return a, false
	}
	start, err := shared.ParseDate(p.StartDate)
	if err != nil || start.IsZero() {
		api.Error(w, http.StatusBadRequest, "invalid startDate")
		return a, false
	}
	end, err := shared.ParseDate(p.EndDate)
	if err != nil || end.IsZero() {
		api.Error(w, http.StatusBadRequest, "invalid endDate")
		return a, false
	}
	a = workforce.SiteAssignment{SiteID: p.SiteID, EmployeeID: p.EmployeeID, StartDate: start, EndDate: end}
	return a, true
}

func (h *Handler) handleListAssignments(w http.ResponseWriter, r *http.Request) {
	records, err := h.Store.ListAssignments(r.Context())
	if err != nil {
		api.InternalError(w)
		return
	}
	api.JSON(w, http.StatusOK, records)
}

func (h *Handler) handleCreateAssignment(w http.ResponseWriter, r *http.Request) {
	var payload assignmentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	assignment, ok := payload.toAssignment(w)
	if !ok {
		return
	}

	created, err := h.Store.CreateAssignment(r.Context(), assignment)
	if err != nil {
		api.InternalError(w)
		return
	}
	api.JSON(w, http.StatusOK, created)
}

func (h *Handler) handleUpdateAssignment(w http.ResponseWriter, r *http.Request) {
	var payload assignmentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	assignment, ok := payload.toAssignment(w)
	if !ok {
		return
	}

	updated, err := h.Store.UpdateAssignment(r.Context(), chi.URLParam(r, "id"), assignment)
	if err != nil {
		if errors.Is(err, workforce.ErrNotFound) {
			api.Error(w, http.StatusNotFound, "Record not found")
			return
		}
		api.InternalError(w)
		return
	}
	api.JSON(w, http.StatusOK, updated)
}

func (h *Handler) handleDeleteAssignment(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.Store.DeleteAssignment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, workforce.ErrNotFound) {
			api.Error(w, http.StatusNotFound, "Record not found")
			return
		}
		api.InternalError(w)
		return
	}
	api.JSON(w, http.StatusOK, deleted)
}

func (h *Handler) handleSitesByEmployee(w http.ResponseWriter, r *http.Request) {
	views, err := h.Service.SitesByEmployee(r.Context(), chi.URLParam(r, "employeeId"))
	if err != nil {
		api.InternalError(w)
		return
	}
	api.JSON(w, http.StatusOK, views)
}
