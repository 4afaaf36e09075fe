// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtl "campushub_backend/internals/features/users/auth/controller"
	"campushub_backend/internals/middlewares"
)

// AuthRoutes are mounted outside the auth middleware. Login and register get
// their own tighter rate limits.
func AuthRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := authCtl.New(db, v)

	grp := r.Group("/auth")
	grp.Post("/google", middlewares.LoginRateLimiter(), ctl.GoogleLogin)
	grp.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	grp.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	grp.Post("/refresh", ctl.Refresh)
	grp.Post("/logout", ctl.Logout)
}
