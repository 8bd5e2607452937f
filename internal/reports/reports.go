// Package reports runs the platform's maintenance and analytics batch:
// targeted data fixes, a street-level purge, and a set of aggregate
// queries over appointments and job applications.
package reports

import (
	"context"
	"fmt"
	"time"

	"carelink/internal/database"
	"carelink/internal/middleware"
	"carelink/internal/observability"

	"gorm.io/gorm"
)

// AppointmentParties names the caregiver and member of an accepted appointment.
type AppointmentParties struct {
	CaregiverName    string  `json:"caregiver_name"`
	CaregiverSurname string  `json:"caregiver_surname"`
	MemberName       string  `json:"member_name"`
	MemberSurname    string  `json:"member_surname"`
}

// ApplicantCount is the number of applicants for a single job.
type ApplicantCount struct {
	JobID          uint  `json:"job_id"`
	ApplicantCount int64 `json:"applicant_count"`
}

// MemberName identifies a member by name.
type MemberName struct {
	GivenName string `json:"given_name"`
	Surname   string `json:"surname"`
}

// CaregiverEarnings is a caregiver's pay for one accepted appointment.
type CaregiverEarnings struct {
	GivenName     string  `json:"given_name"`
	Surname       string  `json:"surname"`
	TotalEarnings float64 `json:"total_earnings"`
}

// AppointmentCost is the derived cost of one accepted appointment.
type AppointmentCost struct {
	GivenName  string  `json:"given_name"`
	Surname    string  `json:"surname"`
	WorkHours  float64 `json:"work_hours"`
	HourlyRate float64 `json:"hourly_rate"`
	TotalCost  float64 `json:"total_cost"`
}

// ViewRow is one row of job_application_view.
type ViewRow struct {
	JobID                  uint       `json:"job_id"`
	MemberName             string     `json:"member_name"`
	MemberSurname          string     `json:"member_surname"`
	CaregiverName          string     `json:"caregiver_name"`
	CaregiverSurname       string     `json:"caregiver_surname"`
	RequiredCaregivingType string     `json:"required_caregiving_type"`
	DateApplied            *time.Time `json:"date_applied"`
}

// Report collects the results of a full batch run.
type Report struct {
	PhoneRowsUpdated       int64                `json:"phone_rows_updated"`
	RateRowsUpdated        int64                `json:"rate_rows_updated"`
	JobsDeleted            int64                `json:"jobs_deleted"`
	StreetMembersDeleted   int64                `json:"street_members_deleted"`
	AcceptedAppointments   []AppointmentParties `json:"accepted_appointments"`
	SoftSpokenJobIDs       []uint               `json:"soft_spoken_job_ids"`
	BabysitterHours        []float64            `json:"babysitter_hours"`
	AstanaElderlyMembers   []MemberName         `json:"astana_elderly_members"`
	ApplicantCounts        []ApplicantCount     `json:"applicant_counts"`
	TotalAcceptedHours     *float64             `json:"total_accepted_hours"`
	AveragePay             *float64             `json:"average_pay"`
	AboveAverageCaregivers []CaregiverEarnings  `json:"above_average_caregivers"`
	AppointmentCosts       []AppointmentCost    `json:"appointment_costs"`
	OverallTotalCost       float64              `json:"overall_total_cost"`
	ViewRows               []ViewRow            `json:"view_rows"`
}

// Runner executes the reporting batch against a database.
type Runner struct {
	db *gorm.DB
}

// NewRunner returns a Runner bound to the given database handle.
func NewRunner(db *gorm.DB) *Runner {
	return &Runner{db: db}
}

type step struct {
	name string
	fn   func(tx *gorm.DB, report *Report) error
}

// Run executes every step of the batch in order. Each step runs in its own
// transaction; the first failure aborts the remaining steps.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	report := &Report{}

	steps := []step{
		{"update phone number", r.updatePhoneNumber},
		{"raise hourly rates", r.raiseHourlyRates},
		{"delete jobs by poster", r.deleteJobsByPoster},
		{"purge street members", r.purgeStreetMembers},
		{"accepted appointment parties", r.acceptedAppointmentParties},
		{"soft-spoken job ids", r.softSpokenJobIDs},
		{"babysitter work hours", r.babysitterWorkHours},
		{"astana elderly care members", r.astanaElderlyCareMembers},
		{"applicant counts", r.applicantCounts},
		{"total accepted hours", r.totalAcceptedHours},
		{"average pay", r.averagePay},
		{"above-average caregivers", r.aboveAverageCaregivers},
		{"appointment costs", r.appointmentCosts},
		{"job application view", r.jobApplicationView},
	}

	for _, st := range steps {
		middleware.Logger.InfoContext(ctx, "report step starting", "step", st.name)
		start := time.Now()
		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return st.fn(tx, report)
		})
		observability.ReportStepDuration.WithLabelValues(st.name).
			Observe(time.Since(start).Seconds())
		if err != nil {
			observability.ReportStepFailures.WithLabelValues(st.name).Inc()
			middleware.Logger.ErrorContext(ctx, "report step failed", "step", st.name, "error", err)
			return report, fmt.Errorf("report step %q: %w", st.name, err)
		}
	}

	return report, nil
}

func (r *Runner) updatePhoneNumber(tx *gorm.DB, report *Report) error {
	res := tx.Exec(`
		UPDATE users
		SET phone_number = '+77773414141'
		WHERE given_name = 'Arman' AND surname = 'Armanov'`)
	if res.Error != nil {
		return res.Error
	}
	report.PhoneRowsUpdated = res.RowsAffected
	return nil
}

func (r *Runner) raiseHourlyRates(tx *gorm.DB, report *Report) error {
	res := tx.Exec(`
		UPDATE caregivers
		SET hourly_rate =
			CASE
				WHEN hourly_rate < 10 THEN hourly_rate + 0.3
				ELSE hourly_rate * 1.10
			END
		WHERE hourly_rate IS NOT NULL`)
	if res.Error != nil {
		return res.Error
	}
	report.RateRowsUpdated = res.RowsAffected
	return nil
}

func (r *Runner) deleteJobsByPoster(tx *gorm.DB, report *Report) error {
	res := tx.Exec(`
		DELETE FROM jobs
		WHERE member_user_id IN (
			SELECT member_user_id FROM members
			WHERE member_user_id IN (
				SELECT user_id FROM users
				WHERE given_name = 'Amina' AND surname = 'Aminova'
			)
		)`)
	if res.Error != nil {
		return res.Error
	}
	report.JobsDeleted = res.RowsAffected
	return nil
}

// purgeStreetMembers removes every member living on Kabanbay Batyr together
// with their dependent rows, child tables first so no foreign key is left
// dangling mid-transaction.
func (r *Runner) purgeStreetMembers(tx *gorm.DB, report *Report) error {
	const street = "Kabanbay Batyr"

	// Resolve the member ids up front; the address rows they come from are
	// themselves deleted partway through the purge.
	var memberIDs []uint
	if err := tx.Raw(`
		SELECT member_user_id FROM addresses WHERE street = ?`, street).
		Scan(&memberIDs).Error; err != nil {
		return err
	}
	if len(memberIDs) == 0 {
		return nil
	}

	if err := tx.Exec(`
		DELETE FROM appointments WHERE member_user_id IN ?`, memberIDs).Error; err != nil {
		return err
	}
	if err := tx.Exec(`
		DELETE FROM job_applications
		WHERE job_id IN (
			SELECT job_id FROM jobs WHERE member_user_id IN ?
		)`, memberIDs).Error; err != nil {
		return err
	}
	if err := tx.Exec(`
		DELETE FROM jobs WHERE member_user_id IN ?`, memberIDs).Error; err != nil {
		return err
	}
	if err := tx.Exec(`
		DELETE FROM addresses WHERE member_user_id IN ?`, memberIDs).Error; err != nil {
		return err
	}
	if err := tx.Exec(`
		DELETE FROM members WHERE member_user_id IN ?`, memberIDs).Error; err != nil {
		return err
	}
	res := tx.Exec(`DELETE FROM users WHERE user_id IN ?`, memberIDs)
	if res.Error != nil {
		return res.Error
	}
	report.StreetMembersDeleted = res.RowsAffected
	return nil
}

func (r *Runner) acceptedAppointmentParties(tx *gorm.DB, report *Report) error {
	return tx.Raw(`
		SELECT
			u_c.given_name AS caregiver_name,
			u_c.surname AS caregiver_surname,
			u_m.given_name AS member_name,
			u_m.surname AS member_surname
		FROM appointments a
		JOIN caregivers c ON a.caregiver_user_id = c.caregiver_user_id
		JOIN users u_c ON c.caregiver_user_id = u_c.user_id
		JOIN members m ON a.member_user_id = m.member_user_id
		JOIN users u_m ON m.member_user_id = u_m.user_id
		WHERE a.status = 'accepted'`).
		Scan(&report.AcceptedAppointments).Error
}

func (r *Runner) softSpokenJobIDs(tx *gorm.DB, report *Report) error {
	return tx.Raw(`
		SELECT job_id FROM jobs
		WHERE LOWER(other_requirements) LIKE '%soft-spoken%'`).
		Scan(&report.SoftSpokenJobIDs).Error
}

func (r *Runner) babysitterWorkHours(tx *gorm.DB, report *Report) error {
	return tx.Raw(`
		SELECT a.work_hours
		FROM appointments a
		JOIN caregivers c ON a.caregiver_user_id = c.caregiver_user_id
		WHERE c.caregiving_type = 'Babysitter'
		AND a.work_hours IS NOT NULL`).
		Scan(&report.BabysitterHours).Error
}

func (r *Runner) astanaElderlyCareMembers(tx *gorm.DB, report *Report) error {
	return tx.Raw(`
		SELECT u.given_name, u.surname
		FROM users u
		JOIN members m ON u.user_id = m.member_user_id
		WHERE u.city = 'Astana'
		AND LOWER(m.house_rules) LIKE '%no pets%'
		AND m.member_user_id IN (
			SELECT member_user_id FROM jobs
			WHERE required_caregiving_type = 'Elderly Care'
		)`).
		Scan(&report.AstanaElderlyMembers).Error
}

func (r *Runner) applicantCounts(tx *gorm.DB, report *Report) error {
	return tx.Raw(`
		SELECT j.job_id, COUNT(ja.caregiver_user_id) AS applicant_count
		FROM jobs j
		LEFT JOIN job_applications ja ON j.job_id = ja.job_id
		GROUP BY j.job_id
		ORDER BY j.job_id`).
		Scan(&report.ApplicantCounts).Error
}

func (r *Runner) totalAcceptedHours(tx *gorm.DB, report *Report) error {
	return tx.Raw(`
		SELECT SUM(work_hours)
		FROM appointments
		WHERE status = 'accepted'`).
		Scan(&report.TotalAcceptedHours).Error
}

func (r *Runner) averagePay(tx *gorm.DB, report *Report) error {
	return tx.Raw(`
		SELECT AVG(c.hourly_rate * a.work_hours)
		FROM appointments a
		JOIN caregivers c ON a.caregiver_user_id = c.caregiver_user_id
		WHERE a.status = 'accepted'`).
		Scan(&report.AveragePay).Error
}

func (r *Runner) aboveAverageCaregivers(tx *gorm.DB, report *Report) error {
	return tx.Raw(`
		SELECT u.given_name, u.surname, c.hourly_rate * a.work_hours AS total_earnings
		FROM appointments a
		JOIN caregivers c ON a.caregiver_user_id = c.caregiver_user_id
		JOIN users u ON c.caregiver_user_id = u.user_id
		WHERE a.status = 'accepted'
		AND c.hourly_rate * a.work_hours > (
			SELECT AVG(c2.hourly_rate * a2.work_hours)
			FROM appointments a2
			JOIN caregivers c2 ON a2.caregiver_user_id = c2.caregiver_user_id
			WHERE a2.status = 'accepted'
		)`).
		Scan(&report.AboveAverageCaregivers).Error
}

func (r *Runner) appointmentCosts(tx *gorm.DB, report *Report) error {
	if err := tx.Raw(`
		SELECT
			u.given_name,
			u.surname,
			a.work_hours,
			c.hourly_rate,
			c.hourly_rate * a.work_hours AS total_cost
		FROM appointments a
		JOIN caregivers c ON a.caregiver_user_id = c.caregiver_user_id
		JOIN users u ON c.caregiver_user_id = u.user_id
		WHERE a.status = 'accepted'
		AND a.work_hours IS NOT NULL AND c.hourly_rate IS NOT NULL`).
		Scan(&report.AppointmentCosts).Error; err != nil {
		return err
	}
	report.OverallTotalCost = 0
	for _, cost := range report.AppointmentCosts {
		report.OverallTotalCost += cost.TotalCost
	}
	return nil
}

func (r *Runner) jobApplicationView(tx *gorm.DB, report *Report) error {
	if err := database.CreateJobApplicationView(tx); err != nil {
		return err
	}
	return tx.Raw(`SELECT * FROM job_application_view ORDER BY job_id`).
		Scan(&report.ViewRows).Error
}
