// file: internals/features/school/classes/route/class_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classCtl "campushub_backend/internals/features/school/classes/controller"
	userModel "campushub_backend/internals/features/users/user/model"
	ossHelper "campushub_backend/internals/helpers/oss"
	authMw "campushub_backend/internals/middlewares/auth"
)

// ClassRoutes mounts /api/class. Reads are open to any signed-in user,
// create/delete are admin-only.
func ClassRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate, blob ossHelper.BlobService) {
	ctl := classCtl.New(db, v, blob)

	grp := r.Group("/class")
	grp.Get("/", ctl.List)
	grp.Get("/:classCode", ctl.GetByCode)

	admin := grp.Group("/", authMw.OnlyRoles("Only admins can manage classes",
		userModel.RoleAdmin, userModel.RoleSuperAdmin))
	admin.Post("/", ctl.Create)
	admin.Delete("/:id", ctl.Delete)
}
