package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"carelink/internal/database"
	"carelink/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with foreign key
// enforcement on and the full schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every statement on the same in-memory DB.
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, database.Migrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{
		Email:     email,
		GivenName: "Arman",
		Surname:   "Armanov",
		City:      "Astana",
		Password:  "hashed",
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user
}

func assertRepoErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}

func TestUserRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("create and read back", func(t *testing.T) {
		user := createTestUser(t, db, "arman@example.kz")
		got, err := repo.GetByID(ctx, user.UserID)
		require.NoError(t, err)
		assert.Equal(t, "arman@example.kz", got.Email)
		assert.Equal(t, "Arman", got.GivenName)
	})

	t.Run("duplicate email is classified", func(t *testing.T) {
		err := repo.Create(ctx, &models.User{
			Email:     "arman@example.kz",
			GivenName: "Other",
			Surname:   "Person",
			Password:  "hashed",
		})
		assertRepoErrorCode(t, err, models.CodeDuplicate)
	})

	t.Run("get by email returns nil when absent", func(t *testing.T) {
		got, err := repo.GetByEmail(ctx, "nobody@example.kz")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("list is ordered by id", func(t *testing.T) {
		createTestUser(t, db, "aliya@example.kz")
		users, err := repo.List(ctx)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(users), 2)
		for i := 1; i < len(users); i++ {
			assert.Less(t, users[i-1].UserID, users[i].UserID)
		}
	})

	t.Run("delete missing row reports not found", func(t *testing.T) {
		err := repo.Delete(ctx, 9999)
		assertRepoErrorCode(t, err, models.CodeNotFound)
	})
}

func TestCaregiverRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewCaregiverRepository(db)
	ctx := context.Background()

	t.Run("create preloads the owning user on read", func(t *testing.T) {
		user := createTestUser(t, db, "caregiver@example.kz")
		rate := 12.5
		gender := "F"
		require.NoError(t, repo.Create(ctx, &models.Caregiver{
			CaregiverUserID: user.UserID,
			Gender:          &gender,
			CaregivingType:  models.CaregivingTypeElderlyCare,
			HourlyRate:      &rate,
		}))

		got, err := repo.GetByID(ctx, user.UserID)
		require.NoError(t, err)
		assert.Equal(t, models.CaregivingTypeElderlyCare, got.CaregivingType)
		assert.Equal(t, "caregiver@example.kz", got.User.Email)
	})

	t.Run("unknown user id is a foreign key violation", func(t *testing.T) {
		err := repo.Create(ctx, &models.Caregiver{
			CaregiverUserID: 9999,
			CaregivingType:  models.CaregivingTypeBabysitter,
		})
		assertRepoErrorCode(t, err, models.CodeForeignKey)
	})

	t.Run("second profile for the same user is a duplicate", func(t *testing.T) {
		user := createTestUser(t, db, "caregiver2@example.kz")
		require.NoError(t, repo.Create(ctx, &models.Caregiver{
			CaregiverUserID: user.UserID,
			CaregivingType:  models.CaregivingTypeBabysitter,
		}))
		err := repo.Create(ctx, &models.Caregiver{
			CaregiverUserID: user.UserID,
			CaregivingType:  models.CaregivingTypePlaymate,
		})
		assertRepoErrorCode(t, err, models.CodeDuplicate)
	})
}

func TestJobApplicationRepository(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	caregiverRepo := NewCaregiverRepository(db)
	memberRepo := NewMemberRepository(db)
	jobRepo := NewJobRepository(db)
	repo := NewJobApplicationRepository(db)

	seedJob := func(t *testing.T, tag string) (*models.Caregiver, *models.Job) {
		t.Helper()
		cu := createTestUser(t, db, fmt.Sprintf("cg-%s@example.kz", tag))
		caregiver := &models.Caregiver{
			CaregiverUserID: cu.UserID,
			CaregivingType:  models.CaregivingTypeBabysitter,
		}
		require.NoError(t, caregiverRepo.Create(ctx, caregiver))

		mu := createTestUser(t, db, fmt.Sprintf("mb-%s@example.kz", tag))
		member := &models.Member{MemberUserID: mu.UserID, HouseRules: "No pets"}
		require.NoError(t, memberRepo.Create(ctx, member))

		job := &models.Job{
			MemberUserID:           member.MemberUserID,
			RequiredCaregivingType: models.CaregivingTypeBabysitter,
		}
		require.NoError(t, jobRepo.Create(ctx, job))
		return caregiver, job
	}

	t.Run("duplicate composite key is classified", func(t *testing.T) {
		caregiver, job := seedJob(t, "dup")
		first := &models.JobApplication{CaregiverUserID: caregiver.CaregiverUserID, JobID: job.JobID}
		require.NoError(t, repo.Create(ctx, first))

		err := repo.Create(ctx, &models.JobApplication{
			CaregiverUserID: caregiver.CaregiverUserID,
			JobID:           job.JobID,
		})
		assertRepoErrorCode(t, err, models.CodeDuplicate)
	})

	t.Run("update moves the row to a new key", func(t *testing.T) {
		caregiver, job := seedJob(t, "move-a")
		otherCaregiver, otherJob := seedJob(t, "move-b")
		require.NoError(t, repo.Create(ctx, &models.JobApplication{
			CaregiverUserID: caregiver.CaregiverUserID,
			JobID:           job.JobID,
		}))

		err := repo.Update(ctx, caregiver.CaregiverUserID, job.JobID, &models.JobApplication{
			CaregiverUserID: otherCaregiver.CaregiverUserID,
			JobID:           otherJob.JobID,
		})
		require.NoError(t, err)

		_, err = repo.GetByKey(ctx, caregiver.CaregiverUserID, job.JobID)
		assertRepoErrorCode(t, err, models.CodeNotFound)

		moved, err := repo.GetByKey(ctx, otherCaregiver.CaregiverUserID, otherJob.JobID)
		require.NoError(t, err)
		assert.Equal(t, otherJob.JobID, moved.JobID)
	})

	t.Run("update of missing key reports not found", func(t *testing.T) {
		err := repo.Update(ctx, 9998, 9998, &models.JobApplication{
			CaregiverUserID: 9998,
			JobID:           9998,
		})
		assertRepoErrorCode(t, err, models.CodeNotFound)
	})

	t.Run("list preloads both sides", func(t *testing.T) {
		applications, err := repo.List(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, applications)
		assert.NotEmpty(t, applications[0].Caregiver.User.Email)
		assert.NotZero(t, applications[0].Job.JobID)
	})
}

func TestAppointmentRepository(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	caregiverRepo := NewCaregiverRepository(db)
	memberRepo := NewMemberRepository(db)
	repo := NewAppointmentRepository(db)

	cu := createTestUser(t, db, "appt-cg@example.kz")
	require.NoError(t, caregiverRepo.Create(ctx, &models.Caregiver{
		CaregiverUserID: cu.UserID,
		CaregivingType:  models.CaregivingTypePlaymate,
	}))
	mu := createTestUser(t, db, "appt-mb@example.kz")
	require.NoError(t, memberRepo.Create(ctx, &models.Member{MemberUserID: mu.UserID}))

	t.Run("status defaults to pending in the schema", func(t *testing.T) {
		appointment := &models.Appointment{
			CaregiverUserID: cu.UserID,
			MemberUserID:    mu.UserID,
		}
		require.NoError(t, repo.Create(ctx, appointment))

		got, err := repo.GetByID(ctx, appointment.AppointmentID)
		require.NoError(t, err)
		assert.Equal(t, models.AppointmentStatusPending, got.Status)
		assert.Equal(t, "appt-cg@example.kz", got.Caregiver.User.Email)
		assert.Equal(t, "appt-mb@example.kz", got.Member.User.Email)
	})

	t.Run("unknown member is a foreign key violation", func(t *testing.T) {
		err := repo.Create(ctx, &models.Appointment{
			CaregiverUserID: cu.UserID,
			MemberUserID:    9999,
		})
		assertRepoErrorCode(t, err, models.CodeForeignKey)
	})

	t.Run("delete missing row reports not found", func(t *testing.T) {
		err := repo.Delete(ctx, 9999)
		assertRepoErrorCode(t, err, models.CodeNotFound)
	})
}
