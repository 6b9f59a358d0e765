// file: internals/route/services.go
package routes

import (
	"gorm.io/gorm"

	dirRepo "childcare_backend/internals/features/directory/repository"
	appRepo "childcare_backend/internals/features/moderation/applications/repository"
	appService "childcare_backend/internals/features/moderation/applications/service"
	driftService "childcare_backend/internals/features/moderation/drift/service"
	ledgerRepo "childcare_backend/internals/features/scheduling/assignments/repository"
	ledgerService "childcare_backend/internals/features/scheduling/assignments/service"
	attendanceService "childcare_backend/internals/features/scheduling/attendance/service"
)

// Services is the process-wide object graph shared by every route group.
type Services struct {
	DB *gorm.DB // nil when running on memory stores

	Directory    dirRepo.Directory
	Ledger       *ledgerService.LedgerService
	RangeLoader  *ledgerService.RangeLoader
	Attendance   *attendanceService.AttendanceService
	Applications *appService.ApplicationService
	Drift        *driftService.Tracker
}

func NewServices(db *gorm.DB) *Services {
	s := build(dirRepo.NewGormDirectory(db), ledgerRepo.NewGormStore(db), appRepo.NewGormStore(db))
	s.DB = db
	return s
}

// NewMemoryServices wires the same graph on in-memory stores.
func NewMemoryServices() *Services {
	return build(dirRepo.NewMemoryDirectory(), ledgerRepo.NewMemoryStore(), appRepo.NewMemoryStore())
}

func build(dir dirRepo.Directory, ledgerStore ledgerRepo.Store, appStore appRepo.Store) *Services {
	ledger := ledgerService.NewLedgerService(ledgerStore, dir)
	apps := appService.NewApplicationService(appStore)

	tracker := driftService.NewTracker(driftService.SystemClock{})
	tracker.Register(appService.DriftSubject, apps)

	return &Services{
		Directory:    dir,
		Ledger:       ledger,
		RangeLoader:  ledgerService.NewRangeLoader(ledger),
		Attendance:   attendanceService.NewAttendanceService(ledger, dir),
		Applications: apps,
		Drift:        tracker,
	}
}
