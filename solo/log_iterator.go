package solo

const logEntryLen = 12

// LogEntry is one decoded record from the persisted log: an 8-byte
// payload tagged with the "kind" latched by the most recent separator
// (or the default kind 0x00 if none has appeared yet).
type LogEntry struct {
	Kind    byte
	Payload [8]byte
}

// LogEntryIterator walks a decrypted log buffer 12 bytes at a time,
// treating all-0xFF and all-0x00 entries as separators that update the
// running "kind" without themselves producing a LogEntry.
type LogEntryIterator struct {
	remaining   []byte
	currentKind byte
}

// NewLogEntryIterator wraps a decrypted log buffer. log's length need not
// be a multiple of 12; a short trailing remainder is ignored.
func NewLogEntryIterator(log []byte) *LogEntryIterator {
	return &LogEntryIterator{remaining: log, currentKind: 0x00}
}

func isSeparator(entry []byte) bool {
	allFF, allZero := true, true
	for _, b := range entry {
		if b != 0xFF {
			allFF = false
		}
		if b != 0x00 {
			allZero = false
		}
	}
	return allFF || allZero
}

// Next returns the next LogEntry and true, or a zero value and false once
// the buffer is exhausted. Separator entries are consumed transparently.
func (it *LogEntryIterator) Next() (LogEntry, bool) {
	for len(it.remaining) >= logEntryLen {
		entry := it.remaining[:logEntryLen]
		it.remaining = it.remaining[logEntryLen:]

		if isSeparator(entry) {
			it.currentKind = entry[10]
			continue
		}

		result := LogEntry{Kind: it.currentKind}
		copy(result.Payload[:], entry[0:8])
		it.currentKind = entry[10]
		return result, true
	}
	return LogEntry{}, false
}
