package pubsub

import (
	"cloud.google.com/go/pubsub"
	"github.com/mauv0809/summoner-tracker/internal/player"
)

type client struct {
	client   *pubsub.Client
	teardown func() error
}

// EventType is the topic an event is published on.
type EventType string

const (
	EventRankChanged   EventType = "rank-changed"
	EventMatchIngested EventType = "match-ingested"
)

// MatchIngested is the payload of EventMatchIngested.
type MatchIngested struct {
	Username string             `msgpack:"username"`
	Match    player.MatchRecord `msgpack:"match"`
}
