package scanner

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"
)

// fileMessage is the on-disk shape for exported mailboxes: a JSON array of
// messages, one object per email.
type fileMessage struct {
	ID      string `json:"id"`
	Subject string `json:"subject"`
	Sender  string `json:"sender"`
	Date    string `json:"date"`
	Snippet string `json:"snippet"`
	Body    string `json:"body"`
	HTML    string `json:"html"`
}

// LoadMessages reads an exported mailbox file. HTML-only bodies are reduced to
// plain text; messages come back newest first so ListRecent(n) takes a prefix.
func LoadMessages(path string) (SliceSource, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mailbox: %w", err)
	}
	var fms []fileMessage
	if err := json.Unmarshal(raw, &fms); err != nil {
		return nil, fmt.Errorf("parse mailbox %s: %w", path, err)
	}

	msgs := make(SliceSource, 0, len(fms))
	for _, fm := range fms {
		body := fm.Body
		if body == "" && fm.HTML != "" {
			body = StripHTML(fm.HTML)
		}
		var date time.Time
		if fm.Date != "" {
			if t, err := time.Parse(time.RFC3339, fm.Date); err == nil {
				date = t
			}
		}
		msgs = append(msgs, Message{
			ID:      fm.ID,
			Subject: fm.Subject,
			Sender:  fm.Sender,
			Date:    date,
			Snippet: fm.Snippet,
			Body:    body,
		})
	}
	sort.SliceStable(msgs, func(i, j int) bool { return msgs[i].Date.After(msgs[j].Date) })
	return msgs, nil
}
