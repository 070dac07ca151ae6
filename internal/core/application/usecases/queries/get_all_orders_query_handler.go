package queries

import (
	"context"
	"database/sql"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// orderViewSelect joins each order with its assignment and the natural keys of
// the allocated resources. Left joins keep orders visible before any
// scheduling step has run.
const orderViewSelect = `
	SELECT
		o.id,
		o.number,
		o.user_id,
		o.grade,
		o.quantity,
		o.total_price,
		o.address,
		o.status,
		o.delivery_date,
		o.approved_at,
		o.production_date,
		o.production_slot_start,
		o.production_slot_end,
		o.dispatch_date_time,
		o.expected_arrival_time,
		o.delivery_sequence,
		o.trip_planning,
		o.reschedule_reason,
		o.last_rescheduled_at,
		o.latest_notification,
		a.plant_allocation,
		a.priority_level,
		m.number,
		d.name,
		d.shift,
		bm.number,
		bd.name
	FROM orders o
	LEFT JOIN assignments a ON a.order_id = o.id
	LEFT JOIN drivers d ON d.id = a.driver_id
	LEFT JOIN transit_mixers m ON m.id = a.mixer_id
	LEFT JOIN drivers bd ON bd.id = a.backup_driver_id
	LEFT JOIN transit_mixers bm ON bm.id = a.backup_mixer_id
`

// GetAllOrdersQueryHandler reads the full order list from the database.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for the order list query.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by order number for
// consistent output.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(orderViewSelect + " ORDER BY o.number").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderViews(rows)
}

func scanOrderViews(rows *sql.Rows) ([]OrderView, error) {
	views := make([]OrderView, 0)

	for rows.Next() {
		var (
			id                uuid.UUID
			userID            sql.NullString
			deliverySequence  sql.NullString
			tripPlanning      sql.NullString
			rescheduleReason  sql.NullString
			notification      sql.NullString
			plantAllocation   sql.NullString
			priorityLevel     sql.NullString
			mixerNumber       sql.NullString
			driverName        sql.NullString
			driverShift       sql.NullString
			backupMixerNumber sql.NullString
			backupDriverName  sql.NullString
			view              OrderView
		)

		err := rows.Scan(
			&id,
			&view.Number,
			&userID,
			&view.Grade,
			&view.Quantity,
			&view.TotalPrice,
			&view.Address,
			&view.Status,
			&view.DeliveryDate,
			&view.ApprovedAt,
			&view.ProductionDate,
			&view.ProductionSlotStart,
			&view.ProductionSlotEnd,
			&view.DispatchDateTime,
			&view.ExpectedArrivalTime,
			&deliverySequence,
			&tripPlanning,
			&rescheduleReason,
			&view.LastRescheduledAt,
			&notification,
			&plantAllocation,
			&priorityLevel,
			&mixerNumber,
			&driverName,
			&driverShift,
			&backupMixerNumber,
			&backupDriverName,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		view.ID = orderID
		view.UserID = userID.String
		view.DeliverySequence = deliverySequence.String
		view.TripPlanning = tripPlanning.String
		view.RescheduleReason = rescheduleReason.String
		view.LatestNotification = notification.String
		view.PlantAllocation = plantAllocation.String
		view.PriorityLevel = priorityLevel.String
		view.MixerNumber = mixerNumber.String
		view.DriverName = driverName.String
		view.DriverShift = driverShift.String
		view.BackupMixerNumber = backupMixerNumber.String
		view.BackupDriverName = backupDriverName.String

		views = append(views, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
