package handler

import "github.com/medicore/hospital-system/internal/core/domain"

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userView is the public projection of an account (no password hash).
type userView struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}

func newUserView(u *domain.User) userView {
	return userView{ID: u.ID, Email: u.Email, Role: string(u.Role), Name: u.Name}
}

type loginResponse struct {
	Message     string   `json:"message"`
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	User        userView `json:"user"`
}

type prescribeRequest struct {
	PatientID  int    `json:"patient_id" validate:"required"`
	Medication string `json:"medication" validate:"required"`
	Dosage     string `json:"dosage"`
}
