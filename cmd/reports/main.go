// Command main runs the caregiver platform reporting batch and prints the
// results.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"carelink/internal/config"
	"carelink/internal/database"
	"carelink/internal/reports"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	report, err := reports.NewRunner(db).Run(ctx)
	if err != nil {
		log.Fatalf("Report run failed: %v", err)
	}

	fmt.Println("=== Caregiver Platform Report ===")

	fmt.Printf("\nPhone numbers updated: %d\n", report.PhoneRowsUpdated)
	fmt.Printf("Hourly rates updated: %d\n", report.RateRowsUpdated)
	fmt.Printf("Jobs deleted: %d\n", report.JobsDeleted)
	fmt.Printf("Street members deleted: %d\n", report.StreetMembersDeleted)

	fmt.Println("\nCaregiver and member names for accepted appointments:")
	for _, row := range report.AcceptedAppointments {
		fmt.Printf("  Caregiver: %s %s, Member: %s %s\n",
			row.CaregiverName, row.CaregiverSurname, row.MemberName, row.MemberSurname)
	}

	fmt.Println("\nJobs requiring someone soft-spoken:")
	for _, id := range report.SoftSpokenJobIDs {
		fmt.Printf("  Job ID: %d\n", id)
	}

	fmt.Println("\nWork hours of babysitter appointments:")
	for _, hours := range report.BabysitterHours {
		fmt.Printf("  Hours: %g\n", hours)
	}

	fmt.Println("\nAstana members with a 'no pets' rule seeking Elderly Care:")
	for _, m := range report.AstanaElderlyMembers {
		fmt.Printf("  Member: %s %s\n", m.GivenName, m.Surname)
	}

	fmt.Println("\nApplicant count per job:")
	for _, row := range report.ApplicantCounts {
		fmt.Printf("  Job ID: %d, Applicants: %d\n", row.JobID, row.ApplicantCount)
	}

	if report.TotalAcceptedHours != nil {
		fmt.Printf("\nTotal accepted hours: %g\n", *report.TotalAcceptedHours)
	} else {
		fmt.Println("\nTotal accepted hours: none")
	}
	if report.AveragePay != nil {
		fmt.Printf("Average pay: $%.2f\n", *report.AveragePay)
	} else {
		fmt.Println("Average pay: none")
	}

	fmt.Println("\nCaregivers earning above average:")
	for _, row := range report.AboveAverageCaregivers {
		fmt.Printf("  Caregiver: %s %s, Earnings: $%.2f\n",
			row.GivenName, row.Surname, row.TotalEarnings)
	}

	fmt.Println("\nCost per accepted appointment:")
	for _, row := range report.AppointmentCosts {
		fmt.Printf("  %s %s: %gh x $%g/h = $%.2f\n",
			row.GivenName, row.Surname, row.WorkHours, row.HourlyRate, row.TotalCost)
	}
	fmt.Printf("Overall total cost: $%.2f\n", report.OverallTotalCost)

	fmt.Println("\nJob application view:")
	for _, row := range report.ViewRows {
		applied := "n/a"
		if row.DateApplied != nil {
			applied = row.DateApplied.Format("2006-01-02")
		}
		fmt.Printf("  Job %d: %s %s <- %s %s (%s) - Applied: %s\n",
			row.JobID, row.MemberName, row.MemberSurname,
			row.CaregiverName, row.CaregiverSurname,
			row.RequiredCaregivingType, applied)
	}
}
