package model

// Zone is one of the five campaign content categories.
type Zone string

const (
	ZoneBookclub  Zone = "bookclub"
	ZoneNarration Zone = "narration"
	ZoneListening Zone = "listening"
	ZoneWriting   Zone = "writing"
	ZoneReview    Zone = "review"
)

// AllZones lists every zone in navigation order.
var AllZones = []Zone{ZoneBookclub, ZoneNarration, ZoneListening, ZoneWriting, ZoneReview}
