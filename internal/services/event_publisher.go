package services

import (
	"context"

	"github.com/dandi-labs/dandi-dashboard/internal/models"
)

// EventSink receives API key events
type EventSink interface {
	Publish(ctx context.Context, event models.APIKeyEvent)
}

// FanOutPublisher forwards every event to each of its sinks in order
type FanOutPublisher struct {
	sinks []EventSink
}

// NewFanOutPublisher creates a publisher over the non-nil sinks
func NewFanOutPublisher(sinks ...EventSink) *FanOutPublisher {
	p := &FanOutPublisher{}
	for _, sink := range sinks {
		if sink != nil {
			p.sinks = append(p.sinks, sink)
		}
	}
	return p
}

// Publish forwards event to every sink
func (p *FanOutPublisher) Publish(ctx context.Context, event models.APIKeyEvent) {
	for _, sink := range p.sinks {
		sink.Publish(ctx, event)
	}
}
