package entity

// MessagePart is one chunk of a workout message.
// Text already carries the "(Part i/total)" header when Total > 1.
type MessagePart struct {
	Index int
	Total int
	Text  string
}

// Delivery records one part sent to one recipient
type Delivery struct {
	Recipient string
	PartIndex int
	ID        string // provider message id (Slack timestamp)
}

// Dispatch is the outcome of one pipeline run
type Dispatch struct {
	RunID      string
	Day        string
	Parts      []MessagePart
	Deliveries []Delivery
}

// Preview is a rendered message that was not sent
type Preview struct {
	Day   string
	Body  string
	Parts []MessagePart
}
