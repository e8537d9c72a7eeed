package emoji

import (
	"maps"
	"slices"
)

// maxBlockDepth bounds the block tree walk. Real payloads nest three or four
// levels deep.
const maxBlockDepth = 64

const nodeTypeEmoji = "emoji"

// FindEmojis returns the sorted set of emoji names used in messages, either
// as reactions or inside the block tree. Thread replies are included.
func FindEmojis(messages []ArchiveMessage) []string {
	set := make(map[string]struct{})
	for _, msg := range messages {
		collectMessage(msg, set)
	}
	return slices.Sorted(maps.Keys(set))
}

func collectMessage(msg ArchiveMessage, set map[string]struct{}) {
	for _, reaction := range msg.Reactions {
		if reaction.Name != "" {
			set[reaction.Name] = struct{}{}
		}
	}
	collectNodes(msg.Blocks, set, 0)
	for _, reply := range msg.Replies {
		collectMessage(reply, set)
	}
}

func collectNodes(nodes []Node, set map[string]struct{}, depth int) {
	if depth >= maxBlockDepth {
		return
	}
	for _, node := range nodes {
		if node.Type == nodeTypeEmoji && node.Name != "" {
			set[node.Name] = struct{}{}
		}
		if len(node.Elements) > 0 {
			collectNodes(node.Elements, set, depth+1)
		}
	}
}
