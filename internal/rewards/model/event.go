// Package model defines domain records for reward-event scanning.
package model

import "time"

// RewardEvent is one matching reward record extracted from a single frame.
// Created per frame and consumed immediately by the aggregation step.
type RewardEvent struct {
	// ObjectTimestamp is the timestamp embedded in the source object key.
	// Day bucketing keys off this value, not any in-message period.
	ObjectTimestamp time.Time
	// Device is the checksummed-base58 identifier derived from the message.
	Device string
	// DCTransfer is the data-credit transfer reward, 0 when absent.
	DCTransfer uint64
	// BasePoc and BoostedPoc are the proof-of-coverage sub-rewards.
	BasePoc    uint64
	BoostedPoc uint64
	// PeriodStart/PeriodEnd are the in-message reward period bounds in unix
	// seconds, 0 when the message does not carry them.
	PeriodStart int64
	PeriodEnd   int64
}

// TotalPoc returns the combined proof-of-coverage reward.
func (e RewardEvent) TotalPoc() uint64 {
	return e.BasePoc + e.BoostedPoc
}
