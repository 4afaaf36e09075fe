// file: internals/features/social/notices/route/notice_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	noticeCtl "campushub_backend/internals/features/social/notices/controller"
	userModel "campushub_backend/internals/features/users/user/model"
	ossHelper "campushub_backend/internals/helpers/oss"
	authMw "campushub_backend/internals/middlewares/auth"
)

func NoticeRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate, blob ossHelper.BlobService) {
	ctl := noticeCtl.New(db, v, blob)

	grp := r.Group("/notices")
	grp.Get("/class/:classId", ctl.ListByClass)
	grp.Post("/", authMw.OnlyRoles("Only CR/CA or admins can post notices",
		userModel.RoleCR, userModel.RoleCA, userModel.RoleAdmin, userModel.RoleSuperAdmin), ctl.Create)
	grp.Patch("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
