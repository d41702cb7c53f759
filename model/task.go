package model

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/muhammadheryan/booking-capacity/constant"
)

// GlobalSlotTask carries a reservation or release that must be mirrored on
// every other time-enabled product exposing the same slot.
type GlobalSlotTask struct {
	TaskID      string                 `json:"task_id"`
	OrderID     uint64                 `json:"order_id"`
	BookingID   uint64                 `json:"booking_id"`
	ProductID   uint64                 `json:"product_id"`
	ParentID    uint64                 `json:"parent_id,omitempty"`
	Quantity    int64                  `json:"quantity"`
	BookingType constant.BookingType   `json:"booking_type"`
	Selection   Selection              `json:"selection"`
	Direction   constant.SyncDirection `json:"direction"`
	Attempt     int                    `json:"attempt"`
}

// IdempotencyKey identifies the application of the task to one peer product.
// Redeliveries of the same task produce the same key.
func (t *GlobalSlotTask) IdempotencyKey(peerID uint64) string {
	raw := fmt.Sprintf("%s:%d:%d:%s:%s:%d", t.TaskID, t.OrderID, t.ProductID, t.Selection.Key(), t.Direction, peerID)
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// Delta is the signed change applied to peer counters.
func (t *GlobalSlotTask) Delta() int64 {
	if t.Direction == constant.SyncDirectionRelease {
		return t.Quantity
	}
	return -t.Quantity
}

// PeerHold is what a global slot task took from one peer row on behalf of a
// booking. The matching release gives back no more than this.
type PeerHold struct {
	ID            uint64 `db:"id"`
	OrderID       uint64 `db:"order_id"`
	BookingID     uint64 `db:"booking_id"`
	PeerID        uint64 `db:"peer_product_id"`
	Selection     string `db:"selection"`
	CapacityRowID uint64 `db:"capacity_row_id"`
	Quantity      int64  `db:"quantity"`
}
