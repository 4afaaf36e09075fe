// file: internals/features/school/assignments/route/assignment_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assignCtl "campushub_backend/internals/features/school/assignments/controller"
	userModel "campushub_backend/internals/features/users/user/model"
	authMw "campushub_backend/internals/middlewares/auth"
)

func AssignmentRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := assignCtl.New(db, v)

	grp := r.Group("/assignments")
	grp.Get("/my/:semesterId", ctl.ResolveForCaller)
	grp.Get("/class/:classCode/:semesterId", ctl.ResolveByClass)
	grp.Get("/course/:courseId/:semesterId/:classId", ctl.ResolveSingle)

	manage := grp.Group("/", authMw.OnlyRoles("Only class advisors and admins can assign courses",
		userModel.RoleCA, userModel.RoleAdmin, userModel.RoleSuperAdmin))
	manage.Post("/", ctl.Create)
}
