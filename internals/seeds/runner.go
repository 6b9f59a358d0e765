// file: internals/seeds/runner.go
package seeds

import (
	"log"

	"gorm.io/gorm"

	children "childcare_backend/internals/seeds/directory/children"
	nannies "childcare_backend/internals/seeds/directory/nannies"
)

func RunAllSeeds(db *gorm.DB) {
	log.Println("🌱 Running seeds...")

	//* Directory
	children.SeedChildrenFromJSON(db, "internals/seeds/directory/children/data_children.json")
	nannies.SeedNanniesFromJSON(db, "internals/seeds/directory/nannies/data_nannies.json")

	log.Println("🌱 Seeds done.")
}
