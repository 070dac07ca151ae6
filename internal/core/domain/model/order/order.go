package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Notification texts stamped on the order by each scheduling operation.
const (
	noteProductionScheduled = "Production schedule updated by admin"
	noteDispatchScheduled   = "Dispatch schedule shared with dispatch team"
	noteVehicleAssigned     = "Vehicle and driver assigned successfully"
	noteRescheduled         = "Schedule updated due to rescheduling"
	noteDelivered           = "Order delivered"
)

// Order is the aggregate root for a concrete-delivery order. It owns the
// status lifecycle and every time-window field the conflict resolution
// depends on.
//
// Invariants:
//   - when both production slot bounds are set, end is strictly after start
//   - when both dispatch bounds are set, arrival is strictly after dispatch
//   - quantity is positive, total price is non-negative
//
// Status transitions are permissive: each operation sets the status it stands
// for and only gates the fields it requires.
type Order struct {
	id     kernel.UUID
	number string
	userID string

	grade      string
	quantity   float64
	totalPrice float64
	address    string
	status     Status

	deliveryDate *time.Time
	approvedAt   *time.Time

	productionDate      *time.Time
	productionSlotStart *time.Time
	productionSlotEnd   *time.Time

	dispatchDateTime    *time.Time
	expectedArrivalTime *time.Time
	deliverySequence    string
	tripPlanning        string

	rescheduleReason   string
	lastRescheduledAt  *time.Time
	latestNotification string

	isConstructed bool
}

// NewNumber generates a client-facing order number of the form ORD-XXXXXXXX.
// The suffix is the first eight hex digits of a random UUID, which is unique
// enough for the expected order volume.
func NewNumber() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "ORD-" + strings.ToUpper(raw[:8])
}

// NewOrder creates a new order in PendingApproval status.
// deliveryDate may be zero when the customer has not picked a date yet.
func NewOrder(
	id kernel.UUID,
	number string,
	grade string,
	quantity float64,
	totalPrice float64,
	address string,
	deliveryDate time.Time,
	userID string,
) (*Order, error) {
	o := &Order{
		status:        PendingApproval,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setGrade(grade),
		o.setQuantity(quantity),
		o.setTotalPrice(totalPrice),
		o.setAddress(address),
	); err != nil {
		return nil, err
	}

	if !deliveryDate.IsZero() {
		o.deliveryDate = &deliveryDate
	}
	o.userID = userID

	return o, nil
}

// RestoreOrder reconstructs an order from persistence without re-running the
// creation rules. The status must still be a defined lifecycle state.
func RestoreOrder(
	id kernel.UUID,
	number string,
	grade string,
	quantity float64,
	totalPrice float64,
	address string,
	status Status,
	userID string,
	deliveryDate *time.Time,
	approvedAt *time.Time,
	productionDate *time.Time,
	productionSlotStart *time.Time,
	productionSlotEnd *time.Time,
	dispatchDateTime *time.Time,
	expectedArrivalTime *time.Time,
	deliverySequence string,
	tripPlanning string,
	rescheduleReason string,
	lastRescheduledAt *time.Time,
	latestNotification string,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if number == "" {
		return nil, errs.NewValueIsRequiredError("order number")
	}

	return &Order{
		id:                  id,
		number:              number,
		grade:               grade,
		quantity:            quantity,
		totalPrice:          totalPrice,
		address:             address,
		status:              status,
		userID:              userID,
		deliveryDate:        deliveryDate,
		approvedAt:          approvedAt,
		productionDate:      productionDate,
		productionSlotStart: productionSlotStart,
		productionSlotEnd:   productionSlotEnd,
		dispatchDateTime:    dispatchDateTime,
		expectedArrivalTime: expectedArrivalTime,
		deliverySequence:    deliverySequence,
		tripPlanning:        tripPlanning,
		rescheduleReason:    rescheduleReason,
		lastRescheduledAt:   lastRescheduledAt,
		latestNotification:  latestNotification,
		isConstructed:       true,
	}, nil
}

// Validate ensures the Order was created via NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID        { return o.id }
func (o *Order) Number() string         { return o.number }
func (o *Order) UserID() string         { return o.userID }
func (o *Order) Grade() string          { return o.grade }
func (o *Order) Quantity() float64      { return o.quantity }
func (o *Order) TotalPrice() float64    { return o.totalPrice }
func (o *Order) Address() string        { return o.address }
func (o *Order) Status() Status         { return o.status }
func (o *Order) DeliveryDate() *time.Time        { return o.deliveryDate }
func (o *Order) ApprovedAt() *time.Time          { return o.approvedAt }
func (o *Order) ProductionDate() *time.Time      { return o.productionDate }
func (o *Order) ProductionSlotStart() *time.Time { return o.productionSlotStart }
func (o *Order) ProductionSlotEnd() *time.Time   { return o.productionSlotEnd }
func (o *Order) DispatchDateTime() *time.Time    { return o.dispatchDateTime }
func (o *Order) ExpectedArrivalTime() *time.Time { return o.expectedArrivalTime }
func (o *Order) DeliverySequence() string        { return o.deliverySequence }
func (o *Order) TripPlanning() string            { return o.tripPlanning }
func (o *Order) RescheduleReason() string        { return o.rescheduleReason }
func (o *Order) LastRescheduledAt() *time.Time   { return o.lastRescheduledAt }
func (o *Order) LatestNotification() string      { return o.latestNotification }

// DispatchWindow returns the order's dispatch window when both bounds are set.
// The second return value is false when the order has not been scheduled for
// dispatch yet.
func (o *Order) DispatchWindow() (kernel.TimeWindow, bool) {
	if o.dispatchDateTime == nil || o.expectedArrivalTime == nil {
		return kernel.TimeWindow{}, false
	}

	w, err := kernel.NewTimeWindow(*o.dispatchDateTime, *o.expectedArrivalTime)
	if err != nil {
		// Both setters guarantee ordering, so a stored window is always valid.
		return kernel.TimeWindow{}, false
	}
	return w, true
}

// Approve marks the order as accepted and stamps the approval time.
func (o *Order) Approve(now time.Time) {
	o.status = Approved
	o.approvedAt = &now
}

// Reject marks the order as rejected.
func (o *Order) Reject() {
	o.status = Rejected
}

// MarkDelivered marks a dispatched order as delivered.
func (o *Order) MarkDelivered() {
	o.status = Delivered
	o.latestNotification = noteDelivered
}

// ScheduleProduction records the production slot and moves the order to
// InProduction. All three fields are required and the slot end must be
// strictly after the slot start.
func (o *Order) ScheduleProduction(productionDate, slotStart, slotEnd time.Time) error {
	if productionDate.IsZero() {
		return errs.NewValueIsRequiredError("productionDate")
	}
	if slotStart.IsZero() {
		return errs.NewValueIsRequiredError("productionSlotStart")
	}
	if slotEnd.IsZero() {
		return errs.NewValueIsRequiredError("productionSlotEnd")
	}
	if !slotEnd.After(slotStart) {
		return errs.NewValueIsInvalidErrorWithCause("productionSlotEnd",
			fmt.Errorf("production slot end must be after start"))
	}

	o.productionDate = &productionDate
	o.productionSlotStart = &slotStart
	o.productionSlotEnd = &slotEnd
	o.status = InProduction
	o.latestNotification = noteProductionScheduled
	return nil
}

// ScheduleDispatch records the dispatch window and trip details and moves the
// order to Dispatched. The expected arrival must be strictly after dispatch.
func (o *Order) ScheduleDispatch(dispatchAt, arrivalAt time.Time, tripPlanning, deliverySequence string) error {
	if dispatchAt.IsZero() {
		return errs.NewValueIsRequiredError("dispatchDateTime")
	}
	if arrivalAt.IsZero() {
		return errs.NewValueIsRequiredError("expectedArrivalTime")
	}
	if strings.TrimSpace(tripPlanning) == "" {
		return errs.NewValueIsRequiredError("tripPlanning")
	}
	if strings.TrimSpace(deliverySequence) == "" {
		return errs.NewValueIsRequiredError("deliverySequence")
	}
	if !arrivalAt.After(dispatchAt) {
		return errs.NewValueIsInvalidErrorWithCause("expectedArrivalTime",
			fmt.Errorf("ETA must be after dispatch time"))
	}

	o.dispatchDateTime = &dispatchAt
	o.expectedArrivalTime = &arrivalAt
	o.tripPlanning = tripPlanning
	o.deliverySequence = deliverySequence
	o.status = Dispatched
	o.latestNotification = noteDispatchScheduled
	return nil
}

// MarkVehicleAssigned stamps the notification after a successful vehicle and
// driver allocation. The conflict check itself lives in the domain service.
func (o *Order) MarkVehicleAssigned() {
	o.latestNotification = noteVehicleAssigned
}

// ReschedulePatch carries the optional field updates of a reschedule request.
// Nil fields are left untouched.
type ReschedulePatch struct {
	ProductionDate      *time.Time
	ProductionSlotStart *time.Time
	ProductionSlotEnd   *time.Time
	DispatchDateTime    *time.Time
	ExpectedArrivalTime *time.Time
	TripPlanning        *string
	DeliverySequence    *string
	RescheduleReason    *string
}

// Reschedule applies a partial update and re-validates the slot ordering
// invariants against the resulting state, not just the supplied values.
// Nothing is mutated when validation fails.
func (o *Order) Reschedule(patch ReschedulePatch, now time.Time) error {
	productionStart := o.productionSlotStart
	productionEnd := o.productionSlotEnd
	dispatchAt := o.dispatchDateTime
	arrivalAt := o.expectedArrivalTime

	if patch.ProductionSlotStart != nil {
		productionStart = patch.ProductionSlotStart
	}
	if patch.ProductionSlotEnd != nil {
		productionEnd = patch.ProductionSlotEnd
	}
	if patch.DispatchDateTime != nil {
		dispatchAt = patch.DispatchDateTime
	}
	if patch.ExpectedArrivalTime != nil {
		arrivalAt = patch.ExpectedArrivalTime
	}

	if productionStart != nil && productionEnd != nil && !productionEnd.After(*productionStart) {
		return errs.NewValueIsInvalidErrorWithCause("productionSlotEnd",
			fmt.Errorf("production slot end must be after start"))
	}
	if dispatchAt != nil && arrivalAt != nil && !arrivalAt.After(*dispatchAt) {
		return errs.NewValueIsInvalidErrorWithCause("expectedArrivalTime",
			fmt.Errorf("ETA must be after dispatch time"))
	}

	if patch.ProductionDate != nil {
		o.productionDate = patch.ProductionDate
	}
	o.productionSlotStart = productionStart
	o.productionSlotEnd = productionEnd
	o.dispatchDateTime = dispatchAt
	o.expectedArrivalTime = arrivalAt
	if patch.TripPlanning != nil {
		o.tripPlanning = *patch.TripPlanning
	}
	if patch.DeliverySequence != nil {
		o.deliverySequence = *patch.DeliverySequence
	}
	if patch.RescheduleReason != nil {
		o.rescheduleReason = *patch.RescheduleReason
	}

	o.lastRescheduledAt = &now
	o.latestNotification = noteRescheduled
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if strings.TrimSpace(number) == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	o.number = number
	return nil
}

func (o *Order) setGrade(grade string) error {
	if strings.TrimSpace(grade) == "" {
		return errs.NewValueIsRequiredError("grade")
	}
	o.grade = grade
	return nil
}

func (o *Order) setQuantity(quantity float64) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%v is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setTotalPrice(totalPrice float64) error {
	if totalPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalPrice",
			fmt.Errorf("%v is negative", totalPrice))
	}
	o.totalPrice = totalPrice
	return nil
}

func (o *Order) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}
