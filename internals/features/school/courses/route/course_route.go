// file: internals/features/school/courses/route/course_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseCtl "campushub_backend/internals/features/school/courses/controller"
	userModel "campushub_backend/internals/features/users/user/model"
	authMw "campushub_backend/internals/middlewares/auth"
)

func CourseRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := courseCtl.New(db, v)

	grp := r.Group("/courses")
	grp.Get("/", ctl.List)
	grp.Get("/:courseId", ctl.GetByID)

	manage := grp.Group("/", authMw.OnlyRoles("Only class advisors and admins can manage courses",
		userModel.RoleCA, userModel.RoleAdmin, userModel.RoleSuperAdmin))
	manage.Post("/", ctl.Create)
	manage.Patch("/:courseId", ctl.Update)
	manage.Delete("/:courseId", ctl.Delete)
}
