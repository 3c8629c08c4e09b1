package controllers

import (
	"github.com/shashiranjanraj/donorlink/app/services"
	"github.com/shashiranjanraj/donorlink/pkg/auth"
	"github.com/shashiranjanraj/donorlink/pkg/ctx"
)

// AuthController reads its credentials from the query string, matching the
// existing clients.
type AuthController struct {
	service *services.AuthService
}

func NewAuthController(hasher auth.PasswordHasher) *AuthController {
	return &AuthController{
		service: services.NewAuthService(hasher),
	}
}

func (c *AuthController) Authenticate(cx *ctx.Context) {
	in := struct {
		Email    string `query:"email" validate:"required,max=100"`
		Password string `query:"password" validate:"required,max=100"`
	}{Email: cx.Query("email"), Password: cx.Query("password")}
	if !cx.Valid(&in) {
		return
	}

	res, err := c.service.Authenticate(cx.Context(), in.Email, in.Password)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.SuccessMessage("Authentication successful", res)
}

func (c *AuthController) ForgotPassword(cx *ctx.Context) {
	in := struct {
		Email string `query:"email" validate:"required,max=100"`
	}{Email: cx.Query("email")}
	if !cx.Valid(&in) {
		return
	}

	code, err := c.service.ForgotPassword(cx.Context(), in.Email)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.SuccessMessage("Temporary password sent successfully", map[string]string{
		"temporaryPassword": code,
	})
}

func (c *AuthController) ChangePassword(cx *ctx.Context) {
	in := struct {
		Email       string `query:"email" validate:"required,max=100"`
		OldPassword string `query:"old_password" validate:"required,max=100"`
		NewPassword string `query:"new_password" validate:"required,max=72"`
	}{
		Email:       cx.Query("email"),
		OldPassword: cx.Query("old_password"),
		NewPassword: cx.Query("new_password"),
	}
	if !cx.Valid(&in) {
		return
	}

	if err := c.service.ChangePassword(cx.Context(), in.Email, in.OldPassword, in.NewPassword); err != nil {
		cx.Fail(err)
		return
	}
	cx.SuccessMessage("Password Changed successfully", nil)
}
