package routes

import (
	"github.com/shashiranjanraj/donorlink/app/controllers"
	"github.com/shashiranjanraj/donorlink/pkg/auth"
	"github.com/shashiranjanraj/donorlink/pkg/ctx"
	"github.com/shashiranjanraj/donorlink/pkg/router"
)

// RegisterAPI mounts every public route. Paths keep the legacy camelCase
// names existing clients call.
func RegisterAPI(r *router.Router, hasher auth.PasswordHasher) {
	home := controllers.NewHomeController(hasher)
	users := controllers.NewUserController(hasher)
	authController := controllers.NewAuthController(hasher)
	catalog := controllers.NewCatalogController()
	donations := controllers.NewDonationController()

	r.Get("/", "home", ctx.Wrap(home.Index))

	r.Get("/getAllUsers", "users.index", ctx.Wrap(users.Index))
	r.Get("/getUsersByTokenId", "users.show", ctx.Wrap(users.Show))
	r.Post("/registerUser", "users.register", ctx.Wrap(users.Register))
	r.Get("/getDonors", "users.donors", ctx.Wrap(users.Donors))
	r.Get("/getRecipients", "users.recipients", ctx.Wrap(users.Recipients))

	r.Post("/authenticateUser", "auth.authenticate", ctx.Wrap(authController.Authenticate))
	r.Put("/forgotPassword", "auth.forgot", ctx.Wrap(authController.ForgotPassword))
	r.Put("/changePassword", "auth.change", ctx.Wrap(authController.ChangePassword))

	r.Get("/getOrgans", "catalog.organs", ctx.Wrap(catalog.Organs))
	r.Get("/getHospital", "catalog.hospitals", ctx.Wrap(catalog.Hospitals))

	r.Get("/previousContributions/{user_id}", "donations.contributions", ctx.Wrap(donations.Contributions))
	r.Put("/contribute/{user_id}/{organ_id}", "donations.contribute", ctx.Wrap(donations.Contribute))
	r.Get("/previousRequests/{user_id}", "donations.requests", ctx.Wrap(donations.Requests))
	r.Put("/request/{user_id}/{organ_id}", "donations.request", ctx.Wrap(donations.Request))
}
