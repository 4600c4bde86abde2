package robot

import (
	"fmt"
	"time"
)

// UIDWidth is the fixed width of a rendered message UID.
const UIDWidth = 20

// Header stamps every stateful reply.
type Header struct {
	UID       string    `json:"uid"`
	Timestamp time.Time `json:"timestamp"`
}

// sequencer hands out message UIDs. It is not safe for concurrent use; the
// owning Robot serialises access.
type sequencer struct {
	next uint64
}

func (s *sequencer) take() uint64 {
	uid := s.next
	s.next++
	return uid
}

// FormatUID renders a UID zero-padded to UIDWidth digits.
func FormatUID(uid uint64) string {
	return fmt.Sprintf("%0*d", UIDWidth, uid)
}

func newHeader(uid uint64, now time.Time) Header {
	return Header{UID: FormatUID(uid), Timestamp: now}
}
