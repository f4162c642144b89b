// Package tutorial implements the column-triggered hint queue shown while
// the player learns the controls.
package tutorial

// ID identifies a message for the lifetime of a Sequencer. IDs are never reused.
type ID uint64

// Message is a hint shown once the player enters its trigger column.
type Message struct {
	ID     ID
	Text   string
	Column int
}

// Sequencer holds pending messages and at most one active message.
// Messages are addressed by ID so dismissing one never shifts another.
type Sequencer struct {
	unlockColumn  int
	messages      []Message
	current       ID
	active        bool
	nextID        ID
	switchEnabled bool
}

// New creates a sequencer that enables dimension switching once the player
// reaches unlockColumn. The IDs of msgs are reassigned in order.
func New(unlockColumn int, msgs ...Message) *Sequencer {
	s := &Sequencer{unlockColumn: unlockColumn, nextID: 1}
	for _, m := range msgs {
		s.Add(m.Text, m.Column)
	}
	return s
}

// Add appends a message and returns its ID.
func (s *Sequencer) Add(text string, column int) ID {
	id := s.nextID
	s.nextID++
	s.messages = append(s.messages, Message{ID: id, Text: text, Column: column})
	return id
}

// Check is called each tick with the player's column. It enables switching
// at the unlock column and, when nothing is active, activates the first
// pending message for column. It reports whether a message is active.
func (s *Sequencer) Check(column int) bool {
	if column == s.unlockColumn {
		s.switchEnabled = true
	}
	if s.active {
		return true
	}
	for _, m := range s.messages {
		if m.Column == column {
			s.current = m.ID
			s.active = true
			return true
		}
	}
	return false
}

// Current returns the active message.
func (s *Sequencer) Current() (Message, bool) {
	if !s.active {
		return Message{}, false
	}
	i := s.find(s.current)
	if i < 0 {
		return Message{}, false
	}
	return s.messages[i], true
}

// Active reports whether a message is being shown.
func (s *Sequencer) Active() bool {
	_, ok := s.Current()
	return ok
}

// Dismiss removes the active message permanently and reports whether one
// was active.
func (s *Sequencer) Dismiss() bool {
	if !s.active {
		return false
	}
	s.active = false
	i := s.find(s.current)
	if i < 0 {
		return false
	}
	s.messages = append(s.messages[:i], s.messages[i+1:]...)
	return true
}

// SwitchEnabled reports whether dimension switching has been unlocked.
func (s *Sequencer) SwitchEnabled() bool {
	return s.switchEnabled
}

// Pending returns the number of messages not yet dismissed.
func (s *Sequencer) Pending() int {
	return len(s.messages)
}

func (s *Sequencer) find(id ID) int {
	for i, m := range s.messages {
		if m.ID == id {
			return i
		}
	}
	return -1
}
