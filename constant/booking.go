package constant

type contextKey string

const AdminIDKey contextKey = "admin_id"

type BookingType string

const (
	BookingTypeSingleDay       BookingType = "single_day"
	BookingTypeMultiDay        BookingType = "multi_day"
	BookingTypeFixedTime       BookingType = "fixed_time"
	BookingTypeOverlappingTime BookingType = "overlapping_time"
	BookingTypeDuration        BookingType = "duration"
)

// IsCounter reports whether the type consumes a shared capacity counter
// rather than inserting per-unit rows.
func (t BookingType) IsCounter() bool {
	switch t {
	case BookingTypeSingleDay, BookingTypeFixedTime, BookingTypeOverlappingTime:
		return true
	}
	return false
}

func (t BookingType) IsTimed() bool {
	return t == BookingTypeFixedTime || t == BookingTypeOverlappingTime || t == BookingTypeDuration
}

func (t BookingType) Valid() bool {
	switch t {
	case BookingTypeSingleDay, BookingTypeMultiDay, BookingTypeFixedTime, BookingTypeOverlappingTime, BookingTypeDuration:
		return true
	}
	return false
}

type RowStatus string

const (
	RowStatusActive   RowStatus = "active"
	RowStatusInactive RowStatus = "inactive"
)

type RowKind string

const (
	RowKindCounter RowKind = "counter"
	RowKindUnit    RowKind = "unit"
)

type LinkRole string

const (
	LinkRoleOwn     LinkRole = "own"
	LinkRoleOverlap LinkRole = "overlap"
	LinkRoleParent  LinkRole = "parent"
	LinkRoleUnit    LinkRole = "unit"
	// LinkRoleShared marks a global slot share that no own row records. Its
	// link points at no capacity row.
	LinkRoleShared  LinkRole = "shared"
)

type BookingStatus string

const (
	BookingStatusPending             BookingStatus = "pending"
	BookingStatusConfirmed           BookingStatus = "confirmed"
	BookingStatusPaid                BookingStatus = "paid"
	BookingStatusPendingConfirmation BookingStatus = "pending-confirmation"
	BookingStatusCancelled           BookingStatus = "cancelled"
)

// OrderStatus mirrors the order states reported by the commerce platform.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusOnHold     OrderStatus = "on-hold"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCOD        OrderStatus = "cod"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
	OrderStatusFailed     OrderStatus = "failed"
	OrderStatusTrash      OrderStatus = "trash"
)

// Releasing reports whether entering the status gives capacity back.
func (s OrderStatus) Releasing() bool {
	switch s {
	case OrderStatusCancelled, OrderStatusRefunded, OrderStatusFailed, OrderStatusTrash:
		return true
	}
	return false
}

// PaidEquivalent reports the statuses a failed order can be revived into.
func (s OrderStatus) PaidEquivalent() bool {
	switch s {
	case OrderStatusProcessing, OrderStatusCompleted, OrderStatusOnHold, OrderStatusCOD:
		return true
	}
	return false
}

type SyncDirection string

const (
	SyncDirectionReserve SyncDirection = "reserve"
	SyncDirectionRelease SyncDirection = "release"
)

const ViolationLimitedAvailability = "limited_availability"

const (
	EventBookingPlaced   = "booking.placed"
	EventBookingApproved = "booking.approved"
)
