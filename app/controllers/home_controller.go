package controllers

import (
	"github.com/shashiranjanraj/donorlink/database/seeders"
	"github.com/shashiranjanraj/donorlink/pkg/auth"
	"github.com/shashiranjanraj/donorlink/pkg/ctx"
)

// HomeController answers GET /, seeding the reference data on the way.
type HomeController struct {
	hasher auth.PasswordHasher
}

func NewHomeController(hasher auth.PasswordHasher) *HomeController {
	return &HomeController{hasher: hasher}
}

func (c *HomeController) Index(cx *ctx.Context) {
	if err := seeders.RunCtx(cx.Context(), c.hasher); err != nil {
		cx.Fail(err)
		return
	}
	cx.SuccessMessage("Hello World", nil)
}
