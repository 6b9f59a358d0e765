// file: internals/seeds/directory/nannies/seed_nannies.go
package nannies

import (
	"fmt"
	"log"
	"os"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"childcare_backend/internals/features/directory/model"
)

type NannySeed struct {
	NannyName         string  `json:"nanny_name"`
	NannyPhone        *string `json:"nanny_phone"`
	NannyAvailability string  `json:"nanny_availability"`
}

func ParseNannies(raw []byte) ([]model.NannyModel, error) {
	var seeds []NannySeed
	if err := sonic.Unmarshal(raw, &seeds); err != nil {
		return nil, fmt.Errorf("decode nannies seed: %w", err)
	}
	out := make([]model.NannyModel, 0, len(seeds))
	for i, s := range seeds {
		if s.NannyName == "" {
			return nil, fmt.Errorf("nannies seed #%d: nanny_name is empty", i)
		}
		if s.NannyAvailability == "" {
			s.NannyAvailability = model.NannyAvailable
		}
		if !model.IsValidAvailability(s.NannyAvailability) {
			return nil, fmt.Errorf("nannies seed %q: bad availability %q", s.NannyName, s.NannyAvailability)
		}
		out = append(out, model.NannyModel{
			NannyName:         s.NannyName,
			NannyPhone:        s.NannyPhone,
			NannyAvailability: s.NannyAvailability,
		})
	}
	return out, nil
}

func SeedNanniesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading:", filePath)

	raw, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Cannot read %s: %v", filePath, err)
		return
	}
	rows, err := ParseNannies(raw)
	if err != nil {
		log.Printf("❌ %v", err)
		return
	}
	if len(rows) == 0 {
		return
	}

	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
	if res.Error != nil {
		log.Printf("❌ Seeding nannies failed: %v", res.Error)
		return
	}
	log.Printf("✅ Nannies seeded: %d new of %d", res.RowsAffected, len(rows))
}
