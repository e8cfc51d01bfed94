package models

// ActionKind enumerates what the hive tells a client after a submission.
type ActionKind int

const (
	// ActionNone means the client has nothing to do.
	ActionNone ActionKind = iota
	// ActionDeliverPayload hands the client resource data it was missing.
	ActionDeliverPayload
	// ActionRequestFetch asks the client to upload the resources named by
	// the attached digest.
	ActionRequestFetch
	// ActionForceUpdate tells the client to keep only the resources named by
	// the attached digest.
	ActionForceUpdate
)

func (k ActionKind) String() string {
	switch k {
	case ActionDeliverPayload:
		return "deliver_payload"
	case ActionRequestFetch:
		return "request_fetch"
	case ActionForceUpdate:
		return "force_update"
	default:
		return "none"
	}
}

// Action is the coordinator's answer to one submission. Body is owned by the
// receiver; the coordinator never retains it.
type Action struct {
	Kind ActionKind
	// Body is the payload (DeliverPayload) or digest (RequestFetch,
	// ForceUpdate). Empty for ActionNone.
	Body []byte
	// MediaType is the declared media type of a delivered payload.
	MediaType string
	// RequestedType is the payload media type the destination asked for;
	// set on RequestFetch when known.
	RequestedType string
}

// NoAction is the zero action.
func NoAction() Action {
	return Action{Kind: ActionNone}
}
