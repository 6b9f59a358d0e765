// file: internals/seeds/directory/children/seed_children.go
package children

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"childcare_backend/internals/features/directory/model"
)

type ChildSeed struct {
	ChildName      string  `json:"child_name"`
	ChildBirthDate *string `json:"child_birth_date"` // YYYY-MM-DD
	ChildGuardian  *string `json:"child_guardian"`
	ChildIsActive  *bool   `json:"child_is_active"`
}

// ParseChildren decodes the seed file; active defaults to true and a birth date is required.
func ParseChildren(raw []byte) ([]model.ChildModel, error) {
	var seeds []ChildSeed
	if err := sonic.Unmarshal(raw, &seeds); err != nil {
		return nil, fmt.Errorf("decode children seed: %w", err)
	}
	out := make([]model.ChildModel, 0, len(seeds))
	for i, s := range seeds {
		if s.ChildName == "" {
			return nil, fmt.Errorf("children seed #%d: child_name is empty", i)
		}
		m := model.ChildModel{
			ChildName:     s.ChildName,
			ChildGuardian: s.ChildGuardian,
			ChildIsActive: s.ChildIsActive == nil || *s.ChildIsActive,
		}
		// (name, birth date) is the conflict key; a NULL date never conflicts
		if s.ChildBirthDate == nil || strings.TrimSpace(*s.ChildBirthDate) == "" {
			return nil, fmt.Errorf("children seed %q: child_birth_date is required", s.ChildName)
		}
		t, err := time.Parse("2006-01-02", strings.TrimSpace(*s.ChildBirthDate))
		if err != nil {
			return nil, fmt.Errorf("children seed %q: %w", s.ChildName, err)
		}
		d := datatypes.Date(t)
		m.ChildBirthDate = &d
		out = append(out, m)
	}
	return out, nil
}

func SeedChildrenFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading:", filePath)

	raw, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Cannot read %s: %v", filePath, err)
		return
	}
	rows, err := ParseChildren(raw)
	if err != nil {
		log.Printf("❌ %v", err)
		return
	}
	if len(rows) == 0 {
		return
	}

	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
	if res.Error != nil {
		log.Printf("❌ Seeding children failed: %v", res.Error)
		return
	}
	log.Printf("✅ Children seeded: %d new of %d", res.RowsAffected, len(rows))
}
