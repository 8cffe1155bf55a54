package game

import "time"

const (
	msgShort = 1500 * time.Millisecond
	msgNorm  = 2000 * time.Millisecond
	msgLong  = 2500 * time.Millisecond
)

// Message is a short-lived line shown above a player or in the banner.
type Message struct {
	Text      string
	Remaining time.Duration
}

func (m *Message) Set(text string, d time.Duration) {
	m.Text = text
	m.Remaining = d
}

func (m Message) Active() bool { return m.Remaining > 0 && m.Text != "" }

func (m *Message) tick(delta time.Duration) {
	if m.Remaining <= 0 {
		return
	}
	m.Remaining -= delta
	if m.Remaining <= 0 {
		m.Remaining = 0
		m.Text = ""
	}
}
