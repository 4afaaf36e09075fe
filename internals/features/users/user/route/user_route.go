// file: internals/features/users/user/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userCtl "campushub_backend/internals/features/users/user/controller"
	userModel "campushub_backend/internals/features/users/user/model"
	ossHelper "campushub_backend/internals/helpers/oss"
	authMw "campushub_backend/internals/middlewares/auth"
)

func UserRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate, blob ossHelper.BlobService) {
	ctl := userCtl.New(db, v, blob)

	grp := r.Group("/users")
	grp.Get("/me", ctl.Me)
	grp.Patch("/me", ctl.UpdateProfile)
	grp.Post("/assign-role", authMw.OnlyRoles("Only admins can assign roles",
		userModel.RoleAdmin, userModel.RoleSuperAdmin), ctl.AssignRole)

	r.Get("/faculty", ctl.ListFaculty)
}
