// file: internals/route/index.go
package route

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	archiveRoute "campushub_backend/internals/features/school/archive/route"
	assignmentRoute "campushub_backend/internals/features/school/assignments/route"
	classRoute "campushub_backend/internals/features/school/classes/route"
	courseRoute "campushub_backend/internals/features/school/courses/route"
	materialRoute "campushub_backend/internals/features/school/materials/route"
	semesterRoute "campushub_backend/internals/features/school/semesters/route"
	timetableRoute "campushub_backend/internals/features/school/timetables/route"
	eventRoute "campushub_backend/internals/features/social/events/route"
	noticeRoute "campushub_backend/internals/features/social/notices/route"
	authRoute "campushub_backend/internals/features/users/auth/route"
	userRoute "campushub_backend/internals/features/users/user/route"
	ossHelper "campushub_backend/internals/helpers/oss"
	authMw "campushub_backend/internals/middlewares/auth"
)

// SetupRoutes mounts every feature under /api. Auth endpoints stay outside
// the token middleware; everything else requires a valid access token.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	v := validator.New()

	var blob ossHelper.BlobService
	if svc, err := ossHelper.NewOSSBlobServiceFromEnv("uploads"); err != nil {
		log.Printf("[WARN] object storage disabled: %v", err)
		blob = ossHelper.DisabledBlobService{}
	} else {
		blob = svc
	}

	api := app.Group("/api")

	authRoute.AuthRoutes(api, db, v)

	protected := api.Group("/", authMw.AuthMiddleware())

	classRoute.ClassRoutes(protected, db, v, blob)
	semesterRoute.SemesterRoutes(protected, db, v)
	courseRoute.CourseRoutes(protected, db, v)
	assignmentRoute.AssignmentRoutes(protected, db, v)
	materialRoute.MaterialRoutes(protected, db, v, blob)
	timetableRoute.TimetableRoutes(protected, db)
	archiveRoute.ArchiveRoutes(protected, db, v, blob)
	noticeRoute.NoticeRoutes(protected, db, v, blob)
	eventRoute.EventRoutes(protected, db, v, blob)
	userRoute.UserRoutes(protected, db, v, blob)
}
