// Package extract partially decodes reward-share frames, pulling out only
// the reward amounts and the device key bytes.
package extract

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/btcsuite/btcd/btcutil/base58"

	"github.com/hotspotmetrics/rewardscan-backend/internal/rewards/keys"
	"github.com/hotspotmetrics/rewardscan-backend/internal/rewards/model"
	"github.com/hotspotmetrics/rewardscan-backend/internal/rewards/protowire"
	"github.com/hotspotmetrics/rewardscan-backend/pkg/safe"
)

// RewardShare is the partially decoded view of one frame: the fields this
// pipeline needs and nothing else.
type RewardShare struct {
	PeriodStart int64
	PeriodEnd   int64
	DCTransfer  uint64
	BasePoc     uint64
	BoostedPoc  uint64
	KeyBytes    []byte
	CbsdID      string
}

// DecodeRewardShare walks one frame by wire-type rules. Any malformation is
// returned wrapped in protowire.ErrMalformed so callers can skip the frame.
func DecodeRewardShare(frame []byte) (*RewardShare, error) {
	share := &RewardShare{}

	periods, err := protowire.VarintFields(frame, fieldPeriodStart, fieldPeriodEnd)
	if err != nil {
		return nil, fmt.Errorf("decode periods: %w", err)
	}
	if v, ok := periods[fieldPeriodStart]; ok {
		if share.PeriodStart, err = safe.Int64(v); err != nil {
			return nil, fmt.Errorf("period start: %w: %w", err, protowire.ErrMalformed)
		}
	}
	if v, ok := periods[fieldPeriodEnd]; ok {
		if share.PeriodEnd, err = safe.Int64(v); err != nil {
			return nil, fmt.Errorf("period end: %w: %w", err, protowire.ErrMalformed)
		}
	}

	gateway, err := protowire.SubMessage(frame, fieldGatewayReward)
	if err != nil {
		return nil, fmt.Errorf("extract gateway reward: %w", err)
	}
	if gateway != nil {
		if err := share.decodeGateway(gateway); err != nil {
			return nil, err
		}
	}

	radio, err := protowire.SubMessage(frame, fieldRadioReward)
	if err != nil {
		return nil, fmt.Errorf("extract radio reward: %w", err)
	}
	if radio != nil {
		if err := share.decodeRadio(radio); err != nil {
			return nil, err
		}
	}

	if len(share.KeyBytes) == 0 {
		share.KeyBytes = fallbackKeyBytes(frame)
	}
	return share, nil
}

func (s *RewardShare) decodeGateway(payload []byte) error {
	c := protowire.NewCursor(payload)
	for c.More() {
		num, wt, err := c.Tag()
		if err != nil {
			return fmt.Errorf("gateway reward: %w", err)
		}
		switch {
		case num == fieldGatewayKey && wt == protowire.TypeBytes:
			b, err := c.Bytes()
			if err != nil {
				return fmt.Errorf("gateway key: %w", err)
			}
			s.KeyBytes = b
		case num == fieldGatewayDCTransfer && wt == protowire.TypeVarint:
			v, err := c.Varint()
			if err != nil {
				return fmt.Errorf("dc transfer: %w", err)
			}
			s.DCTransfer = v
		default:
			if err := c.Skip(wt); err != nil {
				return fmt.Errorf("gateway reward field %d: %w", num, err)
			}
		}
	}
	return nil
}

func (s *RewardShare) decodeRadio(payload []byte) error {
	c := protowire.NewCursor(payload)
	for c.More() {
		num, wt, err := c.Tag()
		if err != nil {
			return fmt.Errorf("radio reward: %w", err)
		}
		switch {
		case num == fieldRadioKey && wt == protowire.TypeBytes:
			b, err := c.Bytes()
			if err != nil {
				return fmt.Errorf("radio key: %w", err)
			}
			if len(s.KeyBytes) == 0 {
				s.KeyBytes = b
			}
		case num == fieldRadioCbsdID && wt == protowire.TypeBytes:
			b, err := c.Bytes()
			if err != nil {
				return fmt.Errorf("cbsd id: %w", err)
			}
			s.CbsdID = string(b)
		case num == fieldRadioBasePoc && wt == protowire.TypeVarint:
			v, err := c.Varint()
			if err != nil {
				return fmt.Errorf("base poc: %w", err)
			}
			s.BasePoc = v
		case num == fieldRadioBoostedPoc && wt == protowire.TypeVarint:
			v, err := c.Varint()
			if err != nil {
				return fmt.Errorf("boosted poc: %w", err)
			}
			s.BoostedPoc = v
		default:
			if err := c.Skip(wt); err != nil {
				return fmt.Errorf("radio reward field %d: %w", num, err)
			}
		}
	}
	return nil
}

// fallbackKeyBytes returns the first top-level byte-valued field that is not
// one of the known reward sub-messages. Errors are swallowed: the frame
// already decoded, this is a best-effort identifier hunt.
func fallbackKeyBytes(frame []byte) []byte {
	c := protowire.NewCursor(frame)
	for c.More() {
		num, wt, err := c.Tag()
		if err != nil {
			return nil
		}
		if wt == protowire.TypeBytes && num != fieldGatewayReward && num != fieldRadioReward {
			b, err := c.Bytes()
			if err != nil {
				return nil
			}
			return b
		}
		if err := c.Skip(wt); err != nil {
			return nil
		}
	}
	return nil
}

// HasReward reports whether any reward component is non-zero.
func (s *RewardShare) HasReward() bool {
	return s.DCTransfer > 0 || s.BasePoc > 0 || s.BoostedPoc > 0
}

// Identifier converts the extracted key bytes to the checksummed string
// form, or "" when the frame carried no key bytes.
func (s *RewardShare) Identifier() string {
	if len(s.KeyBytes) == 0 {
		return ""
	}
	return keys.FromRawBytes(s.KeyBytes)
}

// LooseText is the stringified form used by the substring-matching fallback:
// every encoding of the key bytes plus the CBSD identifier.
func (s *RewardShare) LooseText() string {
	parts := make([]string, 0, 4)
	if len(s.KeyBytes) > 0 {
		parts = append(parts,
			hex.EncodeToString(s.KeyBytes),
			base64.StdEncoding.EncodeToString(s.KeyBytes),
			base58.Encode(s.KeyBytes),
		)
	}
	if s.CbsdID != "" {
		parts = append(parts, s.CbsdID)
	}
	return strings.Join(parts, " ")
}

// Event materializes a RewardEvent for the aggregation step.
func (s *RewardShare) Event(objectTime time.Time, device string) model.RewardEvent {
	return model.RewardEvent{
		ObjectTimestamp: objectTime,
		Device:          device,
		DCTransfer:      s.DCTransfer,
		BasePoc:         s.BasePoc,
		BoostedPoc:      s.BoostedPoc,
		PeriodStart:     s.PeriodStart,
		PeriodEnd:       s.PeriodEnd,
	}
}
