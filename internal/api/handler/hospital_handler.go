package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/medicore/hospital-system/internal/core/domain"
	"github.com/medicore/hospital-system/internal/core/ports"
)

// HospitalHandler serves the role-gated hospital endpoints. The record
// payloads are demo data; only the gating around them is the point.
type HospitalHandler struct {
	store ports.CredentialStore
}

func NewHospitalHandler(store ports.CredentialStore) *HospitalHandler {
	return &HospitalHandler{store: store}
}

// Index describes the service for unauthenticated discovery.
func (h *HospitalHandler) Index(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Hospital Authentication API",
		"endpoints": map[string]string{
			"POST /api/login":           "Login with email and password",
			"GET /api/profile":          "Get user profile (All roles)",
			"GET /api/admin/dashboard":  "Admin dashboard (Admin only)",
			"GET /api/medical-records":  "Medical records (Admin, Doctor)",
			"POST /api/prescribe":       "Prescribe medication (Doctor only)",
			"GET /api/my-records":       "View own records (Patient only)",
		},
		"test_credentials": map[string]map[string]string{
			"admin":   {"email": "admin@hospital.com", "password": "admin123"},
			"doctor":  {"email": "doctor@hospital.com", "password": "doctor123"},
			"patient": {"email": "patient@hospital.com", "password": "patient123"},
		},
	})
}

// Profile returns the caller's identity as carried by the token; no store
// lookup happens here.
//
// @Summary      Get user profile
// @Tags         hospital
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]string
// @Router       /api/profile [get]
func (h *HospitalHandler) Profile(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "user profile",
		"user": userView{
			ID:    claims.UserID,
			Email: claims.Email,
			Role:  string(claims.Role),
			Name:  claims.Name,
		},
	})
}

// Dashboard is admin-only and reports live account statistics.
//
// @Summary      Admin dashboard
// @Tags         hospital
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      403  {object}  map[string]any
// @Router       /api/admin/dashboard [get]
func (h *HospitalHandler) Dashboard(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "welcome to admin dashboard",
		"user":    claims.Name,
		"role":    string(claims.Role),
		"data": echo.Map{
			"total_users":    h.store.Count(),
			"total_doctors":  h.store.CountByRole(domain.RoleDoctor),
			"total_patients": h.store.CountByRole(domain.RolePatient),
			"system_status":  "operational",
		},
	})
}

// MedicalRecords is accessible to admins and doctors.
func (h *HospitalHandler) MedicalRecords(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":     "medical records access",
		"accessed_by": claims.Name,
		"role":        string(claims.Role),
		"records": []echo.Map{
			{"patient_id": 3, "name": "John Doe", "diagnosis": "Flu", "status": "Recovering"},
			{"patient_id": 4, "name": "Jane Smith", "diagnosis": "Diabetes", "status": "Stable"},
		},
	})
}

// Prescribe is doctor-only.
//
// @Summary      Prescribe medication
// @Tags         hospital
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      prescribeRequest  true  "Prescription details"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]any
// @Router       /api/prescribe [post]
func (h *HospitalHandler) Prescribe(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req prescribeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	dosage := req.Dosage
	if dosage == "" {
		dosage = "As prescribed"
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":   "prescription created successfully",
		"doctor":    claims.Name,
		"doctor_id": claims.UserID,
		"prescription": echo.Map{
			"patient_id": req.PatientID,
			"medication": req.Medication,
			"dosage":     dosage,
			"date":       time.Now().UTC().Format(time.RFC3339),
		},
	})
}

// MyRecords is patient-only.
func (h *HospitalHandler) MyRecords(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":    "your medical records",
		"patient":    claims.Name,
		"patient_id": claims.UserID,
		"records": echo.Map{
			"diagnoses":     []string{"Flu - 2024-11-10"},
			"prescriptions": []string{"Paracetamol 500mg"},
			"appointments":  []string{"Dr. Smith - 2024-11-20 10:00 AM"},
			"test_results":  "All normal",
		},
	})
}
