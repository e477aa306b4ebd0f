package extract

// Field numbers of the two message kinds this pipeline consumes. Adding a
// new field only needs a constant and a capture case here.
const (
	// reward-share top-level fields
	fieldPeriodStart   = 1
	fieldPeriodEnd     = 2
	fieldGatewayReward = 3
	fieldRadioReward   = 4

	// gateway-reward sub-message
	fieldGatewayKey        = 1
	fieldGatewayDCTransfer = 2

	// radio-reward sub-message
	fieldRadioKey        = 1
	fieldRadioCbsdID     = 2
	fieldRadioBasePoc    = 7
	fieldRadioBoostedPoc = 8
)
