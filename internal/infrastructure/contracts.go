package infrastructure

import (
	"context"
	"image"

	"github.com/andreyxaxa/Background-Remover/internal/entity"
)

//go:generate mockgen -source=contracts.go -destination=mocks/mock_infrastructure.go -package=mock_infrastructure

type (
	// BackgroundRemover returns img with background pixels made transparent.
	// Implementations must not retain img.
	BackgroundRemover interface {
		RemoveBackground(ctx context.Context, img image.Image) (image.Image, error)
		Name() string
	}

	EventPublisher interface {
		Publish(ctx context.Context, topic string, msg entity.Message) error
	}

	EventsSender interface {
		SendEvents(ctx context.Context, events []*entity.OutboxEvent) error
		Close() error
	}
)

// BackgroundRemoverFunc adapts a plain function to BackgroundRemover.
type BackgroundRemoverFunc func(ctx context.Context, img image.Image) (image.Image, error)

func (f BackgroundRemoverFunc) RemoveBackground(ctx context.Context, img image.Image) (image.Image, error) {
	return f(ctx, img)
}

func (f BackgroundRemoverFunc) Name() string {
	return "func"
}
