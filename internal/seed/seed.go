package seed

import (
	"fmt"

	"carelink/internal/middleware"
	"carelink/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumCaregivers int
	NumMembers    int
	ShouldClean   bool
}

// DefaultOptions returns a small demo dataset configuration.
func DefaultOptions() Options {
	return Options{
		NumCaregivers: 8,
		NumMembers:    6,
	}
}

// Run populates the database with a demo dataset: caregivers and members
// with their user accounts, addresses, job postings, applications, and
// appointments.
func Run(db *gorm.DB, opts Options) error {
	if opts.ShouldClean {
		if err := Clean(db); err != nil {
			return fmt.Errorf("cleaning database: %w", err)
		}
	}

	f := NewFactory(db)

	caregivers := make([]*models.Caregiver, 0, opts.NumCaregivers)
	for i := 0; i < opts.NumCaregivers; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("seeding caregiver user: %w", err)
		}
		caregiver, err := f.CreateCaregiver(user)
		if err != nil {
			return fmt.Errorf("seeding caregiver: %w", err)
		}
		caregivers = append(caregivers, caregiver)
	}

	members := make([]*models.Member, 0, opts.NumMembers)
	jobs := make([]*models.Job, 0, opts.NumMembers)
	for i := 0; i < opts.NumMembers; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("seeding member user: %w", err)
		}
		member, err := f.CreateMember(user)
		if err != nil {
			return fmt.Errorf("seeding member: %w", err)
		}
		if _, err := f.CreateAddress(member); err != nil {
			return fmt.Errorf("seeding address: %w", err)
		}
		job, err := f.CreateJob(member)
		if err != nil {
			return fmt.Errorf("seeding job: %w", err)
		}
		members = append(members, member)
		jobs = append(jobs, job)
	}

	// Every caregiver applies to one job and books one appointment.
	for i, caregiver := range caregivers {
		if len(jobs) == 0 {
			break
		}
		job := jobs[i%len(jobs)]
		if _, err := f.CreateJobApplication(caregiver, job); err != nil {
			return fmt.Errorf("seeding job application: %w", err)
		}
		member := members[i%len(members)]
		if _, err := f.CreateAppointment(caregiver, member); err != nil {
			return fmt.Errorf("seeding appointment: %w", err)
		}
	}

	middleware.Logger.Info("seed complete",
		"caregivers", len(caregivers),
		"members", len(members))
	return nil
}

// Clean removes all seeded rows, child tables first.
func Clean(db *gorm.DB) error {
	tables := []string{
		"appointments",
		"job_applications",
		"jobs",
		"addresses",
		"members",
		"caregivers",
		"users",
	}
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}
