package game

import "strings"

// MsgPriority controls the color of a line in the comms log.
type MsgPriority uint8

const (
	MsgInfo    MsgPriority = iota // neutral notices
	MsgOrder                      // orders issued to player groups
	MsgWarning                    // cancelled or rejected orders
)

// Message is a single entry in the comms log.
type Message struct {
	Text     string
	Priority MsgPriority
}

// MessageLog is a bounded FIFO of wrapped lines.
type MessageLog struct {
	Messages []Message
	maxSize  int
	width    int
}

// NewMessageLog creates a log that keeps the most recent maxSize lines,
// wrapping longer entries at width characters (0 disables wrapping).
func NewMessageLog(maxSize, width int) *MessageLog {
	return &MessageLog{
		Messages: make([]Message, 0, maxSize),
		maxSize:  maxSize,
		width:    width,
	}
}

// Add appends a message, evicting the oldest lines if full.
func (l *MessageLog) Add(text string, priority MsgPriority) {
	if l == nil || l.maxSize <= 0 {
		return
	}
	for _, line := range wrapText(text, l.width) {
		msg := Message{Text: line, Priority: priority}
		if len(l.Messages) >= l.maxSize {
			copy(l.Messages, l.Messages[1:])
			l.Messages[len(l.Messages)-1] = msg
		} else {
			l.Messages = append(l.Messages, msg)
		}
	}
}

// Recent returns the last n lines (or fewer if the log is shorter).
func (l *MessageLog) Recent(n int) []Message {
	if l == nil {
		return nil
	}
	n = min(n, len(l.Messages))
	return l.Messages[len(l.Messages)-n:]
}

// wrapText splits s into lines no longer than maxWidth. Words longer than
// maxWidth get a line of their own.
func wrapText(s string, maxWidth int) []string {
	if maxWidth <= 0 || len(s) <= maxWidth {
		return []string{s}
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var result []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > maxWidth {
			result = append(result, line)
			line = w
		} else {
			line += " " + w
		}
	}
	return append(result, line)
}
