// file: internals/features/social/events/route/event_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventCtl "campushub_backend/internals/features/social/events/controller"
	userModel "campushub_backend/internals/features/users/user/model"
	ossHelper "campushub_backend/internals/helpers/oss"
	authMw "campushub_backend/internals/middlewares/auth"
)

func EventRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate, blob ossHelper.BlobService) {
	ctl := eventCtl.New(db, v, blob)

	grp := r.Group("/events")
	grp.Get("/", ctl.Timeline)
	grp.Post("/", authMw.OnlyRoles("Only CR/CA or admins can post events",
		userModel.RoleCR, userModel.RoleCA, userModel.RoleAdmin, userModel.RoleSuperAdmin), ctl.Create)
	grp.Delete("/:id", ctl.Delete)

	grp.Post("/:id/like", ctl.ToggleLike)

	grp.Get("/:id/comments", ctl.ListComments)
	grp.Post("/:id/comments", ctl.AddComment)
	grp.Delete("/:id/comments/:commentId", ctl.DeleteComment)
}
