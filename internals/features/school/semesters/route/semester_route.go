// file: internals/features/school/semesters/route/semester_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	semCtl "campushub_backend/internals/features/school/semesters/controller"
	userModel "campushub_backend/internals/features/users/user/model"
	authMw "campushub_backend/internals/middlewares/auth"
)

// SemesterRoutes mounts /api/sem. Mutations are restricted to CA/admin.
func SemesterRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := semCtl.New(db, v)

	grp := r.Group("/sem")
	grp.Get("/class/:classCode", ctl.GetByClass)
	grp.Get("/:id", ctl.GetByID)

	manage := grp.Group("/", authMw.OnlyRoles("Only class advisors and admins can manage semesters",
		userModel.RoleCA, userModel.RoleAdmin, userModel.RoleSuperAdmin))
	manage.Post("/", ctl.Create)
	manage.Patch("/:id", ctl.Update)
	manage.Delete("/:id", ctl.Delete)
}
