package emoji

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/slack-go/slack"
)

func decodeMessages(t *testing.T, raw string) []ArchiveMessage {
	t.Helper()
	var messages []ArchiveMessage
	if err := json.Unmarshal([]byte(raw), &messages); err != nil {
		t.Fatalf("Failed to decode messages: %v", err)
	}
	return messages
}

func TestFindEmojis_BlocksAndReactions(t *testing.T) {
	messages := decodeMessages(t, `[{
		"blocks": [{"type": "rich_text", "elements": [{"type": "emoji", "name": "wave"}, {"type": "text"}]}],
		"reactions": [{"name": "thumbsup"}]
	}]`)

	got := FindEmojis(messages)
	want := []string{"thumbsup", "wave"}
	if !slices.Equal(got, want) {
		t.Errorf("emojis: got %v, want %v", got, want)
	}
}

func TestFindEmojis_NestedAndDuplicates(t *testing.T) {
	messages := decodeMessages(t, `[
		{
			"ts": "1700000000.000100",
			"blocks": [{
				"type": "rich_text",
				"elements": [
					{"type": "rich_text_list", "elements": [
						{"type": "rich_text_section", "elements": [
							{"type": "text", "text": "hi "},
							{"type": "emoji", "name": "wave::skin-tone-3", "skin_tone": 3}
						]}
					]},
					{"type": "rich_text_quote", "elements": [{"type": "emoji", "name": "tada"}]}
				]
			}, {
				"type": "section",
				"text": {"type": "mrkdwn", "text": "ignored :nope:"}
			}],
			"reactions": [{"name": "tada", "count": 2}, {"name": "eyes", "count": 1}]
		},
		{
			"ts": "1700000000.000200",
			"reactions": [{"name": "tada"}],
			"replies": [{
				"ts": "1700000000.000300",
				"blocks": [{"type": "rich_text", "elements": [{"type": "rich_text_section", "elements": [{"type": "emoji", "name": "rocket"}]}]}]
			}]
		}
	]`)

	got := FindEmojis(messages)
	want := []string{"eyes", "rocket", "tada", "wave::skin-tone-3"}
	if !slices.Equal(got, want) {
		t.Errorf("emojis: got %v, want %v", got, want)
	}
}

func TestFindEmojis_EmojiNodeWithoutName(t *testing.T) {
	messages := []ArchiveMessage{{
		Blocks: []Node{{Type: "emoji"}, {Type: "emoji", Name: "ok"}},
	}}

	got := FindEmojis(messages)
	if !slices.Equal(got, []string{"ok"}) {
		t.Errorf("emojis: got %v, want [ok]", got)
	}
}

func TestFindEmojis_Empty(t *testing.T) {
	if got := FindEmojis(nil); len(got) != 0 {
		t.Errorf("emojis: got %v, want none", got)
	}
}

func TestFindEmojis_DepthBound(t *testing.T) {
	deep := Node{Type: "emoji", Name: "too-deep"}
	for i := 0; i < maxBlockDepth+1; i++ {
		deep = Node{Type: "rich_text_section", Elements: []Node{deep}}
	}
	messages := []ArchiveMessage{{
		Blocks: []Node{deep, {Type: "emoji", Name: "shallow"}},
	}}

	got := FindEmojis(messages)
	if !slices.Equal(got, []string{"shallow"}) {
		t.Errorf("emojis: got %v, want [shallow]", got)
	}
}

func TestNodeUnmarshal_OddShapes(t *testing.T) {
	var n Node
	err := json.Unmarshal([]byte(`{"type": "x", "name": {"not": "a string"}, "elements": ["text", 3, {"type": "emoji", "name": "fire"}]}`), &n)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if n.Name != "" {
		t.Errorf("Name: got %q, want empty", n.Name)
	}
	if len(n.Elements) != 1 || n.Elements[0].Name != "fire" {
		t.Errorf("Elements: got %+v, want one fire emoji", n.Elements)
	}
}

func TestFromSlackMessage(t *testing.T) {
	var msg slack.Message
	err := json.Unmarshal([]byte(`{
		"type": "message",
		"ts": "1700000000.000100",
		"user": "U123",
		"text": "hello :wave:",
		"blocks": [{
			"type": "rich_text",
			"block_id": "b1",
			"elements": [{"type": "rich_text_section", "elements": [
				{"type": "text", "text": "hello "},
				{"type": "emoji", "name": "wave"}
			]}]
		}],
		"reactions": [{"name": "heart", "count": 1, "users": ["U456"]}]
	}`), &msg)
	if err != nil {
		t.Fatalf("Failed to decode slack message: %v", err)
	}

	archived, err := FromSlackMessage(msg)
	if err != nil {
		t.Fatalf("FromSlackMessage failed: %v", err)
	}
	if archived.Timestamp != "1700000000.000100" {
		t.Errorf("Timestamp: got %q", archived.Timestamp)
	}

	got := FindEmojis([]ArchiveMessage{archived})
	want := []string{"heart", "wave"}
	if !slices.Equal(got, want) {
		t.Errorf("emojis: got %v, want %v", got, want)
	}
}
