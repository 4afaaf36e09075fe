// file: internals/features/school/materials/route/material_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	matCtl "campushub_backend/internals/features/school/materials/controller"
	ossHelper "campushub_backend/internals/helpers/oss"
)

// MaterialRoutes mounts the course-scoped material catalog:
// /api/courses/:courseId/materials/:semesterId/:type[/:id]
// Ownership checks happen in the controller, so any signed-in user can hit
// the mutation routes.
func MaterialRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate, blob ossHelper.BlobService) {
	ctl := matCtl.New(db, v, blob)

	grp := r.Group("/courses/:courseId/materials/:semesterId")

	// type-specific extras go first so the parametric routes don't shadow them
	grp.Post("/shared_note/:id/like", ctl.ToggleLike)
	grp.Delete("/syllabus/:id/files/:unit", ctl.DeleteSyllabusFile)

	grp.Get("/:type", ctl.List)
	grp.Post("/:type", ctl.Upload)
	grp.Put("/:type/:id", ctl.Update)
	grp.Delete("/:type/:id", ctl.Delete)
}
