package scheduler

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"fieldreport/services"
)

// StartScheduler runs the nightly orphan scan. A submit that uploads images
// and then fails to persist leaves objects no report references; that is an
// accepted inconsistency, so the scan only reports them and never deletes.
func StartScheduler(store services.ReportStore, uploader *services.MinioUploader) {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc("0 0 3 * * *", func() {
		log.Println("Running orphan image scan...")
		ScanOrphans(store, uploader)
	})
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}

	c.Start()
	log.Println("Scheduler started")
}

// ScanOrphans logs every stored object whose URL no report references.
func ScanOrphans(store services.ReportStore, uploader *services.MinioUploader) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	reports, err := store.List(ctx)
	if err != nil {
		log.Printf("Orphan scan: failed to list reports: %v", err)
		return
	}
	keys, err := uploader.ListObjectKeys(ctx)
	if err != nil {
		log.Printf("Orphan scan: failed to list objects: %v", err)
		return
	}

	referenced := make(map[string]bool)
	for _, report := range reports {
		for _, entry := range report.Entries {
			referenced[entry.ImageURL] = true
		}
	}

	orphans := 0
	for _, key := range keys {
		url := uploader.ObjectURL(key)
		if !referenced[url] && strings.HasPrefix(key, "reports/") {
			log.Printf("Orphan scan: unreferenced object %s", key)
			orphans++
		}
	}
	log.Printf("Orphan scan finished: %d objects checked, %d unreferenced", len(keys), orphans)
}
