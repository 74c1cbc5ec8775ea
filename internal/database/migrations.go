package database

import (
	"fmt"
	"log"

	"github.com/yukikurage/taskmanager-api/internal/models"
	"gorm.io/gorm"
)

const (
	taskSlugIndex       = "idx_tasks_slug"
	taskSlugUniqueIndex = "uidx_tasks_slug"
)

// EnsureTaskSlugIndex makes tasks.slug carry exactly one index, unique or not.
// The wanted index is built before the other variant is dropped, so a failed
// switch (duplicate slugs when enabling uniqueness) leaves the old index in place.
func EnsureTaskSlugIndex(db *gorm.DB, unique bool) error {
	want, other := taskSlugIndex, taskSlugUniqueIndex
	kind := "INDEX"
	if unique {
		want, other = taskSlugUniqueIndex, taskSlugIndex
		kind = "UNIQUE INDEX"
	}

	migrator := db.Migrator()
	if !migrator.HasIndex(&models.Task{}, want) {
		sql := fmt.Sprintf("CREATE %s %s ON tasks (slug)", kind, want)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", want, err)
		}
		log.Printf("Created %s %s on tasks(slug)", kind, want)
	}

	if migrator.HasIndex(&models.Task{}, other) {
		if err := migrator.DropIndex(&models.Task{}, other); err != nil {
			return fmt.Errorf("failed to drop index %s: %w", other, err)
		}
		log.Printf("Dropped index %s", other)
	}

	return nil
}
