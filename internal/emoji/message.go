package emoji

import (
	"encoding/json"
	"fmt"

	"github.com/slack-go/slack"
)

// ArchiveMessage is a message as stored in the archive. Only the parts the
// emoji scanner needs are decoded.
type ArchiveMessage struct {
	Timestamp string               `json:"ts,omitempty"`
	User      string               `json:"user,omitempty"`
	Text      string               `json:"text,omitempty"`
	Reactions []slack.ItemReaction `json:"reactions,omitempty"`
	Blocks    []Node               `json:"blocks,omitempty"`
	Replies   []ArchiveMessage     `json:"replies,omitempty"`
}

// Node is one element of a message block tree. Blocks, rich text sections
// and leaf elements all decode into the same shape; Type tells them apart.
type Node struct {
	Type     string `json:"type"`
	Name     string `json:"name,omitempty"`
	Elements []Node `json:"elements,omitempty"`
}

// UnmarshalJSON tolerates the odd shapes Slack uses in block payloads: a
// non-string "name" is ignored and non-object children are skipped.
func (n *Node) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type     string            `json:"type"`
		Name     json.RawMessage   `json:"name"`
		Elements []json.RawMessage `json:"elements"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	n.Type = raw.Type
	n.Name = ""
	if len(raw.Name) > 0 {
		var name string
		if err := json.Unmarshal(raw.Name, &name); err == nil {
			n.Name = name
		}
	}

	n.Elements = nil
	for _, el := range raw.Elements {
		if len(el) == 0 || el[0] != '{' {
			continue
		}
		var child Node
		if err := json.Unmarshal(el, &child); err != nil {
			return err
		}
		n.Elements = append(n.Elements, child)
	}
	return nil
}

// FromSlackMessage converts a message returned by the Slack API, whose
// blocks are typed, into an ArchiveMessage.
func FromSlackMessage(msg slack.Message) (ArchiveMessage, error) {
	out := ArchiveMessage{
		Timestamp: msg.Timestamp,
		User:      msg.User,
		Text:      msg.Text,
		Reactions: msg.Reactions,
	}
	if len(msg.Blocks.BlockSet) == 0 {
		return out, nil
	}

	data, err := json.Marshal(msg.Blocks)
	if err != nil {
		return ArchiveMessage{}, fmt.Errorf("failed to marshal blocks of %s: %w", msg.Timestamp, err)
	}
	if err := json.Unmarshal(data, &out.Blocks); err != nil {
		return ArchiveMessage{}, fmt.Errorf("failed to decode blocks of %s: %w", msg.Timestamp, err)
	}
	return out, nil
}
