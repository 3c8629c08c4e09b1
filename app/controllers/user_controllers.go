package controllers

import (
	"strconv"

	"github.com/shashiranjanraj/donorlink/app/services"
	"github.com/shashiranjanraj/donorlink/pkg/auth"
	"github.com/shashiranjanraj/donorlink/pkg/ctx"
)

type UserController struct {
	users *services.UserService
	auth  *services.AuthService
}

func NewUserController(hasher auth.PasswordHasher) *UserController {
	return &UserController{
		users: services.NewUserService(),
		auth:  services.NewAuthService(hasher),
	}
}

func (c *UserController) Index(cx *ctx.Context) {
	users, err := c.users.AllUsers(cx.Context())
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success(users)
}

// Show serves GET /getUsersByTokenId?user_id=.
func (c *UserController) Show(cx *ctx.Context) {
	in := struct {
		UserID string `query:"user_id" validate:"required,number"`
	}{UserID: cx.Query("user_id")}
	if !cx.Valid(&in) {
		return
	}
	id, err := strconv.ParseUint(in.UserID, 10, 64)
	if err != nil {
		cx.ValidationError(map[string]string{"user_id": "The user_id must be a number."})
		return
	}

	user, err := c.users.UserByID(cx.Context(), uint(id))
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success(user)
}

func (c *UserController) Register(cx *ctx.Context) {
	var in services.RegisterInput
	if !cx.BindJSON(&in) {
		return
	}

	user, err := c.auth.Register(cx.Context(), in)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Created("User registered successfully", user)
}

func (c *UserController) Donors(cx *ctx.Context) {
	donors, err := c.users.Donors(cx.Context())
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success(donors)
}

func (c *UserController) Recipients(cx *ctx.Context) {
	recipients, err := c.users.Recipients(cx.Context())
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success(recipients)
}
