// file: internals/features/school/timetables/route/timetable_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ttCtl "campushub_backend/internals/features/school/timetables/controller"
	userModel "campushub_backend/internals/features/users/user/model"
	authMw "campushub_backend/internals/middlewares/auth"
)

func TimetableRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ttCtl.New(db)

	grp := r.Group("/timetable")
	grp.Get("/:classId/:semesterId", ctl.Get)
	grp.Put("/", authMw.OnlyRoles("Only CR/CA or admins can edit the timetable",
		userModel.RoleCR, userModel.RoleCA, userModel.RoleAdmin, userModel.RoleSuperAdmin), ctl.Upsert)
}
