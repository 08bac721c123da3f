package repositories_test

import (
	"context"
	"testing"
	"time"

	"callbooking-service/internal/module/slot/models/entity"
	"callbooking-service/internal/module/slot/repositories"
	"callbooking-service/internal/pkg/errors"
	logpkg "callbooking-service/internal/pkg/log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	sqlxmock "github.com/zhashkevych/go-sqlxmock"
)

var (
	mock   sqlxmock.Sqlmock
	dbx    *sqlx.DB
	logger *otelzap.Logger
)

func setup() {
	dbx, mock, _ = sqlxmock.Newx()
	logger = logpkg.Setup()
}

func testSlot() *entity.Slot {
	start := time.Now().Add(24 * time.Hour)
	return &entity.Slot{
		ID:              uuid.New(),
		InfluencerID:    uuid.New(),
		StartTime:       start,
		EndTime:         start.Add(30 * time.Minute),
		DurationMinutes: 30,
		Price:           10000,
		Status:          entity.SlotStatusAvailable,
	}
}

func TestCreateSlot(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts when no overlap exists", func(t *testing.T) {
		setup()
		repo := repositories.New(dbx, logger, nil)
		slot := testSlot()

		mock.ExpectBegin()
		mock.ExpectExec("pg_advisory_xact_lock").
			WillReturnResult(sqlxmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT COUNT").
			WillReturnRows(sqlxmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectExec("INSERT INTO call_slots").
			WillReturnResult(sqlxmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.CreateSlot(ctx, slot)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("overlapping interval is a conflict", func(t *testing.T) {
		setup()
		repo := repositories.New(dbx, logger, nil)
		slot := testSlot()

		mock.ExpectBegin()
		mock.ExpectExec("pg_advisory_xact_lock").
			WillReturnResult(sqlxmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT COUNT").
			WillReturnRows(sqlxmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectRollback()

		err := repo.CreateSlot(ctx, slot)

		assert.Error(t, err)
		resp, ok := errors.FromError(err)
		assert.True(t, ok)
		assert.Equal(t, 409, resp.Code)
	})
}

func TestCancelSlot(t *testing.T) {
	ctx := context.Background()
	slotID := uuid.New()
	influencerID := uuid.New()

	t.Run("cancels an available slot", func(t *testing.T) {
		setup()
		repo := repositories.New(dbx, logger, nil)

		mock.ExpectExec("UPDATE call_slots SET status = 'cancelled'").
			WithArgs(slotID, influencerID).
			WillReturnResult(sqlxmock.NewResult(0, 1))

		err := repo.CancelSlot(ctx, slotID, influencerID)

		assert.NoError(t, err)
	})

	t.Run("booked slot cannot be cancelled", func(t *testing.T) {
		setup()
		repo := repositories.New(dbx, logger, nil)

		mock.ExpectExec("UPDATE call_slots SET status = 'cancelled'").
			WithArgs(slotID, influencerID).
			WillReturnResult(sqlxmock.NewResult(0, 0))

		err := repo.CancelSlot(ctx, slotID, influencerID)

		assert.Error(t, err)
		resp, ok := errors.FromError(err)
		assert.True(t, ok)
		assert.Equal(t, 409, resp.Code)
	})
}

func TestExpireSlot(t *testing.T) {
	ctx := context.Background()
	slotID := uuid.New()

	t.Run("expires only available slots", func(t *testing.T) {
		setup()
		repo := repositories.New(dbx, logger, nil)

		mock.ExpectExec("UPDATE call_slots SET status = 'expired'").
			WithArgs(slotID).
			WillReturnResult(sqlxmock.NewResult(0, 1))

		err := repo.ExpireSlot(ctx, slotID)

		assert.NoError(t, err)
	})

	t.Run("booked slot is left alone without error", func(t *testing.T) {
		setup()
		repo := repositories.New(dbx, logger, nil)

		mock.ExpectExec("UPDATE call_slots SET status = 'expired'").
			WithArgs(slotID).
			WillReturnResult(sqlxmock.NewResult(0, 0))

		err := repo.ExpireSlot(ctx, slotID)

		assert.NoError(t, err)
	})

	t.Run("rescheduled slot with a future end time is untouched", func(t *testing.T) {
		setup()
		repo := repositories.New(dbx, logger, nil)

		// the update must guard on end_time so a task enqueued before a
		// reschedule cannot expire the moved slot
		mock.ExpectExec(`(?s)UPDATE call_slots SET status = 'expired'.+end_time <= now\(\)`).
			WithArgs(slotID).
			WillReturnResult(sqlxmock.NewResult(0, 0))

		err := repo.ExpireSlot(ctx, slotID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
