// file: internals/features/school/archive/route/archive_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	archiveCtl "campushub_backend/internals/features/school/archive/controller"
	userModel "campushub_backend/internals/features/users/user/model"
	ossHelper "campushub_backend/internals/helpers/oss"
	authMw "campushub_backend/internals/middlewares/auth"
)

func ArchiveRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate, blob ossHelper.BlobService) {
	ctl := archiveCtl.New(db, v, blob)

	adminOnly := authMw.OnlyRoles("Only CR/CA or admins can manage this",
		userModel.RoleCR, userModel.RoleCA, userModel.RoleAdmin, userModel.RoleSuperAdmin)

	honors := r.Group("/honors")
	honors.Get("/class/:classId", ctl.ListHonors)
	honors.Post("/", adminOnly, ctl.CreateHonor)
	honors.Delete("/:id", adminOnly, ctl.DeleteHonor)

	pyqs := r.Group("/pyqs")
	pyqs.Get("/", ctl.ListPyqs)
	pyqs.Post("/", ctl.CreatePyq)
	pyqs.Delete("/:id", adminOnly, ctl.DeletePyq)

	links := r.Group("/links")
	links.Get("/class/:classId", ctl.ListLinks)
	links.Post("/", ctl.CreateLink)
	links.Delete("/:id", ctl.DeleteLink)

	assets := r.Group("/assets")
	assets.Get("/sem/:semesterId", ctl.ListAssets)
	assets.Post("/", adminOnly, ctl.CreateAsset)
	assets.Delete("/:id", adminOnly, ctl.DeleteAsset)
}
