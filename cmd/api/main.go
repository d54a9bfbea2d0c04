package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/hinatanotsu-agelab/timecard-management-app/internal/config"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/domain/organization"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/domain/shift"
	appHTTP "github.com/hinatanotsu-agelab/timecard-management-app/internal/handler/http"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/pkg/holiday"
	fsRepo "github.com/hinatanotsu-agelab/timecard-management-app/internal/repository/firestore"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/repository/memory"
	organizationService "github.com/hinatanotsu-agelab/timecard-management-app/internal/service/organization"
	payrollService "github.com/hinatanotsu-agelab/timecard-management-app/internal/service/payroll"
	shiftService "github.com/hinatanotsu-agelab/timecard-management-app/internal/service/shift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	var (
		orgRepo    organization.OrganizationRepository
		memberRepo organization.MemberRepository
		shiftRepo  shift.ShiftRepository
	)
	switch cfg.StoreDriver {
	case config.StoreDriverFirestore:
		client, err := fsRepo.NewClient(context.Background(), cfg.FirestoreProjectID)
		if err != nil {
			log.Fatal("Failed to initialize firestore:", err)
		}
		defer client.Close()

		orgRepo = fsRepo.NewOrganizationRepository(client)
		memberRepo = fsRepo.NewMemberRepository(client)
		shiftRepo = fsRepo.NewShiftRepository(client)
	case config.StoreDriverMemory:
		orgRepo = memory.NewOrganizationStore()
		memberRepo = memory.NewMemberStore()
		shiftRepo = memory.NewShiftStore()
	default:
		log.Fatal("Unsupported store driver: ", cfg.StoreDriver)
	}

	// No public holiday table is wired in yet, so the holiday premium applies
	// on weekends only (when HolidayIncludesWeekend is set).
	calendar := holiday.None

	orgSvc := organizationService.NewOrganizationService(orgRepo, memberRepo)
	shiftSvc := shiftService.NewShiftService(shiftRepo, orgRepo, memberRepo)
	payrollSvc := payrollService.NewPayrollService(shiftRepo, orgRepo, memberRepo, calendar)

	organizationHandler := appHTTP.NewOrganizationHandler(orgSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(cfg, organizationHandler, shiftHandler, payrollHandler)

	port := fmt.Sprintf(":%d", cfg.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
