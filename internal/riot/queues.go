package riot

import (
	"fmt"
	"strings"
)

// Queue kinds keyed by queue id.
var queueNames = map[int]string{
	0:    "custom",
	400:  "normal_draft_fives",
	420:  "ranked_solo_fives",
	430:  "blind_fives",
	440:  "ranked_flex_fives",
	450:  "aram",
	490:  "quickplay_fives",
	700:  "clash",
	720:  "aram_clash",
	830:  "coop_ai_intro_fives",
	840:  "coop_ai_beginner_fives",
	850:  "coop_ai_intermediate_fives",
	900:  "all_random_urf",
	1020: "one_for_all",
	1300: "nexus_blitz",
	1700: "arena",
	1900: "pick_urf",
}

// QueueName classifies a match by its queue id. A missing or unmapped id is an error.
func QueueName(queueID *int) (string, error) {
	if queueID == nil {
		return "", fmt.Errorf("%w: match has no queue id", ErrUnknownQueue)
	}
	name, ok := queueNames[*queueID]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownQueue, *queueID)
	}
	return name, nil
}

// ParseRiotID splits "Name#TAG". A missing tag falls back to defaultTag.
func ParseRiotID(id, defaultTag string) (gameName, tagLine string) {
	gameName, tagLine, found := strings.Cut(strings.TrimSpace(id), "#")
	if !found || tagLine == "" {
		tagLine = defaultTag
	}
	return strings.TrimSpace(gameName), strings.TrimSpace(tagLine)
}
