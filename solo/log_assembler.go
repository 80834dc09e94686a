package solo

import "github.com/soloprotocol/divecan/internal/fifo"

// LogAssembler accumulates decrypted log bytes arriving in arbitrarily
// sized chunks (one per UploadSession.ReadBlock call) and hands complete
// 12-byte records off to a LogEntryIterator, since transfer block size
// has no relationship to the log's fixed record length.
type LogAssembler struct {
	buf         *fifo.Fifo
	currentKind byte
	scratch     [logEntryLen]byte
}

// NewLogAssembler allocates an assembler with room for capacity bytes of
// unconsumed, decrypted log data.
func NewLogAssembler(capacity int) *LogAssembler {
	return &LogAssembler{buf: fifo.New(capacity)}
}

// Feed appends a decrypted chunk to the assembler's internal buffer. It
// returns false if the chunk didn't fully fit (the caller must drain
// entries with Next before feeding more).
func (a *LogAssembler) Feed(chunk []byte) bool {
	n := a.buf.Write(chunk)
	return n == len(chunk)
}

// Next returns the next complete LogEntry once at least 12 bytes are
// buffered, or false if fewer than 12 bytes are currently available.
func (a *LogAssembler) Next() (LogEntry, bool) {
	if a.buf.Occupied() < logEntryLen {
		return LogEntry{}, false
	}
	a.buf.Read(a.scratch[:])

	if isSeparator(a.scratch[:]) {
		a.currentKind = a.scratch[10]
		return a.Next()
	}

	entry := LogEntry{Kind: a.currentKind}
	copy(entry.Payload[:], a.scratch[0:8])
	a.currentKind = a.scratch[10]
	return entry, true
}
