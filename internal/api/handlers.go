package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"configurateur-be/internal/auth"
	"configurateur-be/internal/catalog"
	"configurateur-be/internal/configurator"
	"configurateur-be/internal/logger"
	"configurateur-be/internal/metrics"
	"configurateur-be/internal/pricing"
	"configurateur-be/internal/project"
	"configurateur-be/internal/quote"
	"configurateur-be/internal/utils"

	"go.uber.org/zap"
)

// Env holds the handler dependencies: the immutable settings bundle and
// the services behind the two write paths.
type Env struct {
	Settings   *catalog.Settings
	Calc       *pricing.Calculator
	QuoteSvc   quote.Service
	ProjectSvc project.Service

	JWTSecret         string
	AdminEmail        string
	AdminPasswordHash string
}

func (e *Env) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.L().Error("failed to encode response", zap.Error(err))
	}
}

func (e *Env) writeError(w http.ResponseWriter, status int, msg string) {
	e.writeJSON(w, status, map[string]string{"error": msg})
}

// GET /api/settings
func (e *Env) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	metrics.SettingsFetches.Inc()
	e.writeJSON(w, http.StatusOK, e.Settings)
}

// GET /api/settings/options?product_type=slug
func (e *Env) HandleGetOptions(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("product_type")
	t := e.Settings.ProductTypeBySlug(slug)
	if t == nil {
		e.writeError(w, http.StatusNotFound, "unknown product type")
		return
	}

	e.writeJSON(w, http.StatusOK, catalog.ResolveOptions(e.Settings, t))
}

// POST /api/price — the authoritative price for a posted selection. The
// front end mirrors the computation for instant feedback but displays
// this result.
func (e *Env) HandleComputePrice(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var sel configurator.Selection
	if err := json.NewDecoder(r.Body).Decode(&sel); err != nil {
		e.writeError(w, http.StatusBadRequest, "bad json: "+err.Error())
		return
	}

	if t := e.Settings.ProductTypeBySlug(sel.ProductType); t != nil {
		sel.Dimensions = configurator.ClampDimensions(t, sel.Dimensions)
	}

	metrics.PriceComputations.Inc()
	e.writeJSON(w, http.StatusOK, e.Calc.Compute(sel))
}

type submitRequest struct {
	Selection configurator.Selection `json:"selection"`
	Contact   configurator.Contact   `json:"contact"`
}

type submitResponse struct {
	QuoteNumber string `json:"quoteNumber"`
}

// POST /api/quotes
func (e *Env) HandleSubmitQuote(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		e.writeError(w, http.StatusBadRequest, "bad json: "+err.Error())
		return
	}

	number, err := e.QuoteSvc.Submit(r.Context(), req.Selection, req.Contact)
	if err != nil {
		switch {
		case errors.Is(err, quote.ErrContactNameRequired),
			errors.Is(err, quote.ErrContactEmailRequired),
			errors.Is(err, quote.ErrProductTypeRequired),
			errors.Is(err, quote.ErrMaterialRequired):
			e.writeError(w, http.StatusBadRequest, err.Error())
		default:
			metrics.QuoteFailures.Inc()
			e.writeError(w, http.StatusBadGateway, "submission failed, please retry")
		}
		return
	}

	metrics.QuoteSubmissions.Inc()
	e.writeJSON(w, http.StatusCreated, submitResponse{QuoteNumber: number})
}

// GET /api/quotes/{number} — back-office lookup.
func (e *Env) HandleGetQuote(w http.ResponseWriter, r *http.Request) {
	if utils.GetUserRoleFromContext(r.Context()) != "admin" {
		e.writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	q, err := e.QuoteSvc.GetByNumber(r.Context(), r.PathValue("number"))
	if err != nil {
		if errors.Is(err, quote.ErrQuoteNotFound) {
			e.writeError(w, http.StatusNotFound, "quote not found")
			return
		}
		e.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	e.writeJSON(w, http.StatusOK, q)
}

type updateProjectRequest struct {
	Config configurator.Selection `json:"config"`
	Status *project.Status        `json:"status,omitempty"`
}

// PUT /api/projects/{id}
func (e *Env) HandleUpdateProject(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		e.writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	var req updateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		e.writeError(w, http.StatusBadRequest, "bad json: "+err.Error())
		return
	}

	userID, _ := utils.GetUserIDFromContext(r.Context())
	isAdmin := utils.GetUserRoleFromContext(r.Context()) == "admin"

	p, err := e.ProjectSvc.UpdateProject(r.Context(), project.UpdateParams{
		ProjectID: uint(id),
		UserID:    userID,
		Config:    req.Config,
		Status:    req.Status,
	}, isAdmin)
	if err != nil {
		e.writeProjectError(w, err)
		return
	}

	e.writeJSON(w, http.StatusOK, p)
}

// GET /api/projects/{id}
func (e *Env) HandleGetProject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		e.writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	userID, _ := utils.GetUserIDFromContext(r.Context())
	isAdmin := utils.GetUserRoleFromContext(r.Context()) == "admin"

	p, err := e.ProjectSvc.GetProject(r.Context(), uint(id), userID, isAdmin)
	if err != nil {
		e.writeProjectError(w, err)
		return
	}

	e.writeJSON(w, http.StatusOK, p)
}

func (e *Env) writeProjectError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, project.ErrProjectNotFound):
		e.writeError(w, http.StatusNotFound, "project not found")
	case errors.Is(err, project.ErrUnauthorized):
		e.writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, project.ErrInvalidStatus):
		e.writeError(w, http.StatusBadRequest, err.Error())
	default:
		e.writeError(w, http.StatusInternalServerError, "internal error")
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/login — back-office access. A single operator account is
// provisioned through the environment; on success the token is set as a
// cookie and returned in the body.
func (e *Env) HandleLogin(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		e.writeError(w, http.StatusBadRequest, "bad json: "+err.Error())
		return
	}

	if e.AdminEmail == "" || req.Email != e.AdminEmail ||
		!auth.CheckPasswordHash(req.Password, e.AdminPasswordHash) {
		e.writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := auth.GenerateJWT(e.JWTSecret, 1, auth.RoleAdmin, e.AdminEmail)
	if err != nil {
		logger.L().Error("failed to sign token", zap.Error(err))
		e.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	e.writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// GET /healthz
func (e *Env) HandleHealthz(w http.ResponseWriter, r *http.Request) {
	e.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GET /internal/stats
func (e *Env) HandleStats(w http.ResponseWriter, r *http.Request) {
	e.writeJSON(w, http.StatusOK, metrics.Collect())
}
