package validation

// Reason is the fixed taxonomy of invalidity causes. The core's obligation
// ends at producing a stable, typed reason; mapping it to a human message
// is a presentation concern.
type Reason string

const (
	// ReasonNone marks a valid verdict.
	ReasonNone Reason = ""

	// ReasonNotYetValid: now precedes the record's validAt.
	ReasonNotYetValid Reason = "NotYetValid"

	// ReasonExpired: now has reached the record's validUntil.
	ReasonExpired Reason = "Expired"

	// ReasonRevoked: now has reached the record's revokedAt.
	ReasonRevoked Reason = "Revoked"

	// ReasonInvalidInitiatorSignature: the initiator signature failed
	// verification under its key type.
	ReasonInvalidInitiatorSignature Reason = "InvalidInitiatorSignature"

	// ReasonInvalidApproverSignature: the approver signature failed
	// verification under its key type.
	ReasonInvalidApproverSignature Reason = "InvalidApproverSignature"

	// ReasonUnsupportedKeyType: a present signature is tagged with a
	// scheme this library does not verify. Fails closed.
	ReasonUnsupportedKeyType Reason = "UnsupportedKeyType"

	// ReasonChainQueryUnavailable: the key type requires chain access but
	// no chain query was supplied. Fails closed, not an exception.
	ReasonChainQueryUnavailable Reason = "ChainQueryUnavailable"
)

// Verdict is the outcome of validating one signed association record.
// Reason is set only when Valid is false.
type Verdict struct {
	Valid  bool   `json:"valid"`
	Reason Reason `json:"reason,omitempty"`
}

// Invalid builds a failing verdict with the given reason.
func Invalid(reason Reason) Verdict {
	return Verdict{Valid: false, Reason: reason}
}

// Ok is the valid verdict.
var Ok = Verdict{Valid: true}
