package futures

// ClosureReason classifies why a market is suspended.
type ClosureReason string

const (
	ClosureReasonNone           ClosureReason = ""
	ClosureReasonSystemUpgrade  ClosureReason = "system-upgrade"
	ClosureReasonMarketClosure  ClosureReason = "market-closure"
	ClosureReasonCircuitBreaker ClosureReason = "circuit-breaker"
	ClosureReasonEmergency      ClosureReason = "emergency"
	ClosureReasonUnknown        ClosureReason = "unknown"
)

// ReasonFromCode maps a venue suspension code to its closure reason. Codes
// outside the known set classify as unknown; a missing code yields none.
func ReasonFromCode(code *int64) ClosureReason {
	if code == nil {
		return ClosureReasonNone
	}
	switch *code {
	case 1:
		return ClosureReasonSystemUpgrade
	case 2:
		return ClosureReasonMarketClosure
	case 3, 55, 65, 231:
		return ClosureReasonCircuitBreaker
	case 99999:
		return ClosureReasonEmergency
	default:
		return ClosureReasonUnknown
	}
}
