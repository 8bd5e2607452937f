package service

import (
	"context"
	"time"

	"carelink/internal/models"
	"carelink/internal/repository"
	"carelink/internal/validation"
)

const appointmentFKMessage = "Invalid caregiver or member ID. The selected records do not exist."

type AppointmentService struct {
	appointmentRepo repository.AppointmentRepository
}

// AppointmentInput carries the submitted form fields for an appointment.
type AppointmentInput struct {
	CaregiverUserID string
	MemberUserID    string
	AppointmentDate string
	AppointmentTime string
	WorkHours       string
	Status          string
}

func NewAppointmentService(appointmentRepo repository.AppointmentRepository) *AppointmentService {
	return &AppointmentService{appointmentRepo: appointmentRepo}
}

func (s *AppointmentService) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	return s.appointmentRepo.List(ctx)
}

func (s *AppointmentService) GetAppointmentByID(ctx context.Context, id uint) (*models.Appointment, error) {
	return s.appointmentRepo.GetByID(ctx, id)
}

func (s *AppointmentService) CreateAppointment(ctx context.Context, in AppointmentInput) (*models.Appointment, error) {
	fields, err := parseAppointmentFields(in)
	if err != nil {
		return nil, err
	}

	appointment := &models.Appointment{
		CaregiverUserID: fields.caregiverUserID,
		MemberUserID:    fields.memberUserID,
		AppointmentDate: fields.date,
		AppointmentTime: fields.clock,
		WorkHours:       fields.workHours,
		Status:          fields.status,
	}
	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, tailorWriteError(err, "", appointmentFKMessage)
	}
	return appointment, nil
}

// UpdateAppointment overwrites every editable field with the submitted
// values, including reassigning the caregiver and member.
func (s *AppointmentService) UpdateAppointment(ctx context.Context, id uint, in AppointmentInput) (*models.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	fields, err := parseAppointmentFields(in)
	if err != nil {
		return nil, err
	}

	appointment.CaregiverUserID = fields.caregiverUserID
	appointment.MemberUserID = fields.memberUserID
	appointment.AppointmentDate = fields.date
	appointment.AppointmentTime = fields.clock
	appointment.WorkHours = fields.workHours
	appointment.Status = fields.status

	if err := s.appointmentRepo.Update(ctx, appointment); err != nil {
		return nil, tailorWriteError(err, "", appointmentFKMessage)
	}
	// Reload so the returned appointment carries the reassigned parties.
	return s.appointmentRepo.GetByID(ctx, id)
}

func (s *AppointmentService) DeleteAppointment(ctx context.Context, id uint) error {
	return s.appointmentRepo.Delete(ctx, id)
}

type appointmentFields struct {
	caregiverUserID uint
	memberUserID    uint
	date            *time.Time
	clock           *string
	workHours       *float64
	status          string
}

func parseAppointmentFields(in AppointmentInput) (appointmentFields, error) {
	var fields appointmentFields

	caregiverUserID, err := validation.RequiredID("caregiver_user_id", in.CaregiverUserID)
	if err != nil {
		return fields, err
	}
	memberUserID, err := validation.RequiredID("member_user_id", in.MemberUserID)
	if err != nil {
		return fields, err
	}
	date, err := validation.OptionalDate(in.AppointmentDate)
	if err != nil {
		return fields, err
	}
	clock, err := validation.OptionalClock(in.AppointmentTime)
	if err != nil {
		return fields, err
	}
	workHours, err := validation.OptionalHours(in.WorkHours)
	if err != nil {
		return fields, err
	}
	status, err := validation.AppointmentStatus(in.Status)
	if err != nil {
		return fields, err
	}

	fields.caregiverUserID = caregiverUserID
	fields.memberUserID = memberUserID
	fields.date = date
	fields.clock = clock
	fields.workHours = workHours
	fields.status = status
	return fields, nil
}
