package connection

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"fieldreport/controller/draft"
	"fieldreport/controller/gallery"
	"fieldreport/controller/report"
	"fieldreport/controller/share"
	"fieldreport/scheduler"
	"fieldreport/services"
)

func StartServer() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	router := gin.Default()

	FS, err := FirestoreConnection()
	if err != nil {
		log.Fatalf("Failed to initialize Firestore client: %v", err)
	}
	uploader, err := StorageConnection()
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	store := services.NewFirestoreReportStore(FS)
	sessions := services.NewDraftSessions()
	submitter := services.NewSubmitter(store, uploader)
	probe := services.NewHTTPLocationProbe(os.Getenv("GEOLOCATE_URL"))

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	router.Use(cors.Default())

	report.ReportController(router, store)
	draft.DraftController(router, sessions, store, submitter, probe)
	share.ShareController(router, store)
	gallery.GalleryController(router, store)

	scheduler.StartScheduler(store, uploader)

	router.Run()
}
