package display

type BoardType string

const (
	BoardToken     BoardType = "token"
	BoardOT        BoardType = "ot"
	BoardEmergency BoardType = "emergency"
	BoardGeneral   BoardType = "general"
)

func (t BoardType) IsValid() bool {
	switch t {
	case BoardToken, BoardOT, BoardEmergency, BoardGeneral:
		return true
	default:
		return false
	}
}

type ContentType string

const (
	ContentToken   ContentType = "token"
	ContentMessage ContentType = "message"
	ContentAlert   ContentType = "alert"
	ContentStatus  ContentType = "status"
)

func (t ContentType) IsValid() bool {
	switch t {
	case ContentToken, ContentMessage, ContentAlert, ContentStatus:
		return true
	default:
		return false
	}
}

type Mode string

const (
	ModeNormal    Mode = "normal"
	ModeEmergency Mode = "emergency"
)

func (m Mode) IsValid() bool {
	return m == ModeNormal || m == ModeEmergency
}
