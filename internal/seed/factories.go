// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"carelink/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		Email:              gofakeit.Email(),
		GivenName:          gofakeit.FirstName(),
		Surname:            gofakeit.LastName(),
		City:               gofakeit.City(),
		PhoneNumber:        gofakeit.Phone(),
		ProfileDescription: gofakeit.Sentence(8),
		Password:           string(hashed),
	}
	for _, override := range overrides {
		override(user)
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateCaregiver persists a caregiver profile for the given user.
func (f *Factory) CreateCaregiver(user *models.User, overrides ...func(*models.Caregiver)) (*models.Caregiver, error) {
	gender := models.Genders[f.rand.Intn(len(models.Genders))]
	rate := float64(gofakeit.Number(500, 3000)) / 100
	photo := fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID())
	caregiver := &models.Caregiver{
		CaregiverUserID: user.UserID,
		Photo:           &photo,
		Gender:          &gender,
		CaregivingType:  models.CaregivingTypes[f.rand.Intn(len(models.CaregivingTypes))],
		HourlyRate:      &rate,
	}
	for _, override := range overrides {
		override(caregiver)
	}
	if err := f.db.Create(caregiver).Error; err != nil {
		return nil, err
	}
	return caregiver, nil
}

// CreateMember persists a member profile for the given user.
func (f *Factory) CreateMember(user *models.User, overrides ...func(*models.Member)) (*models.Member, error) {
	rules := []string{"No pets", "No smoking", "No loud music", "Take shoes off at the door"}
	member := &models.Member{
		MemberUserID:         user.UserID,
		HouseRules:           rules[f.rand.Intn(len(rules))],
		DependentDescription: gofakeit.Sentence(6),
	}
	for _, override := range overrides {
		override(member)
	}
	if err := f.db.Create(member).Error; err != nil {
		return nil, err
	}
	return member, nil
}

// CreateAddress persists an address for the given member.
func (f *Factory) CreateAddress(member *models.Member, overrides ...func(*models.Address)) (*models.Address, error) {
	address := &models.Address{
		MemberUserID: member.MemberUserID,
		HouseNumber:  fmt.Sprintf("%d", gofakeit.Number(1, 200)),
		Street:       gofakeit.Street(),
		Town:         gofakeit.City(),
	}
	for _, override := range overrides {
		override(address)
	}
	if err := f.db.Create(address).Error; err != nil {
		return nil, err
	}
	return address, nil
}

// CreateJob persists a job posting for the given member.
func (f *Factory) CreateJob(member *models.Member, overrides ...func(*models.Job)) (*models.Job, error) {
	posted := f.daysAgo(gofakeit.Number(0, 60))
	job := &models.Job{
		MemberUserID:           member.MemberUserID,
		RequiredCaregivingType: models.CaregivingTypes[f.rand.Intn(len(models.CaregivingTypes))],
		OtherRequirements:      gofakeit.Sentence(5),
		DatePosted:             &posted,
	}
	for _, override := range overrides {
		override(job)
	}
	if err := f.db.Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// CreateJobApplication persists an application by the caregiver to the job.
func (f *Factory) CreateJobApplication(caregiver *models.Caregiver, job *models.Job, overrides ...func(*models.JobApplication)) (*models.JobApplication, error) {
	applied := f.daysAgo(gofakeit.Number(0, 30))
	application := &models.JobApplication{
		CaregiverUserID: caregiver.CaregiverUserID,
		JobID:           job.JobID,
		DateApplied:     &applied,
	}
	for _, override := range overrides {
		override(application)
	}
	if err := f.db.Create(application).Error; err != nil {
		return nil, err
	}
	return application, nil
}

// CreateAppointment persists an appointment between the caregiver and member.
func (f *Factory) CreateAppointment(caregiver *models.Caregiver, member *models.Member, overrides ...func(*models.Appointment)) (*models.Appointment, error) {
	date := f.daysAgo(-gofakeit.Number(1, 21))
	clock := fmt.Sprintf("%02d:%02d", gofakeit.Number(8, 19), f.rand.Intn(4)*15)
	hours := float64(gofakeit.Number(2, 16)) / 2
	appointment := &models.Appointment{
		CaregiverUserID: caregiver.CaregiverUserID,
		MemberUserID:    member.MemberUserID,
		AppointmentDate: &date,
		AppointmentTime: &clock,
		WorkHours:       &hours,
		Status:          models.AppointmentStatuses[f.rand.Intn(len(models.AppointmentStatuses))],
	}
	for _, override := range overrides {
		override(appointment)
	}
	if err := f.db.Create(appointment).Error; err != nil {
		return nil, err
	}
	return appointment, nil
}

func (f *Factory) daysAgo(days int) time.Time {
	return time.Now().AddDate(0, 0, -days).Truncate(24 * time.Hour)
}
