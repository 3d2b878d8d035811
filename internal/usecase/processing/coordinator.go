package processing

import (
	"context"
	"errors"
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/andreyxaxa/Background-Remover/internal/dto"
	"github.com/andreyxaxa/Background-Remover/internal/entity"
	"github.com/andreyxaxa/Background-Remover/internal/infrastructure"
	"github.com/andreyxaxa/Background-Remover/internal/repo"
	"github.com/andreyxaxa/Background-Remover/internal/usecase"
	"github.com/andreyxaxa/Background-Remover/pkg/imagecodec"
	"github.com/andreyxaxa/Background-Remover/pkg/logger"
	"github.com/andreyxaxa/Background-Remover/pkg/types/errs"
	"github.com/google/uuid"
)

const (
	_defaultSignedURLTTL = 5 * time.Minute
	_defaultTopic        = "image-processed"
	_defaultMaxPixels    = 40_000_000
)

// Coordinator runs Transform → Store → Publish for one request. It keeps no
// per-request state, so one instance serves any number of concurrent calls.
type Coordinator struct {
	remover   infrastructure.BackgroundRemover
	store     repo.ArtifactStore
	publisher infrastructure.EventPublisher
	records   usecase.MetadataUseCase

	logger logger.Interface

	signedURLTTL time.Duration
	topic        string
	maxPixels    int
	newID        func() uuid.UUID
	now          func() time.Time
}

func New(
	remover infrastructure.BackgroundRemover,
	store repo.ArtifactStore,
	publisher infrastructure.EventPublisher,
	records usecase.MetadataUseCase,
	l logger.Interface,
	opts ...Option,
) *Coordinator {
	c := &Coordinator{
		remover:      remover,
		store:        store,
		publisher:    publisher,
		records:      records,
		logger:       l,
		signedURLTTL: _defaultSignedURLTTL,
		topic:        _defaultTopic,
		maxPixels:    _defaultMaxPixels,
		newID:        uuid.New,
		now:          time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Coordinator) Process(ctx context.Context, req dto.ProcessingRequest) (*dto.ProcessingResult, error) {
	// 1. credential must be present before anything else happens
	if strings.TrimSpace(req.AuthToken) == "" {
		return nil, fmt.Errorf("Coordinator - Process: %w", errs.ErrUnauthenticated)
	}

	// 2. decode
	img, err := imagecodec.Decode(req.Data, imagecodec.MaxPixels(c.maxPixels))
	if err != nil {
		return nil, fmt.Errorf("Coordinator - Process - imagecodec.Decode: %w: %w", errs.ErrInvalidInput, err)
	}

	// 3. transform, no side effects so far
	out, err := c.transform(ctx, img)
	if err != nil {
		return nil, fmt.Errorf("Coordinator - Process - c.transform: %w: %w", errs.ErrTransformFailed, err)
	}

	// 4. canonical lossless encoding
	data, err := imagecodec.EncodePNG(out)
	if err != nil {
		return nil, fmt.Errorf("Coordinator - Process - imagecodec.EncodePNG: %w: %w", errs.ErrTransformFailed, err)
	}

	if err = ctx.Err(); err != nil {
		return nil, fmt.Errorf("Coordinator - Process: %w: %w", errs.ErrTransformFailed, err)
	}

	// 5. identifier + upload
	id := c.newID()
	key := entity.ArtifactKey(id, entity.PNGExtension)

	artifact := entity.StoredArtifact{
		Key:         key,
		Location:    c.store.Location(key),
		ContentType: entity.PNGContentType,
		Tags: map[string]string{
			"processed": "true",
			"processor": c.remover.Name(),
		},
	}

	err = c.store.Put(ctx, artifact.Key, data, artifact.ContentType, artifact.Tags)
	if err != nil {
		return nil, fmt.Errorf("Coordinator - Process - c.store.Put: %w: %w", errs.ErrStorageFailed, err)
	}

	// 6. retrieval handle; on failure the artifact stays orphaned
	expiresAt := c.now().Add(c.signedURLTTL)

	signedURL, err := c.store.SignedURL(ctx, artifact.Key, c.signedURLTTL)
	if err != nil {
		c.logger.Warn("Coordinator - Process - orphaned artifact %s: handle generation failed", artifact.Location)

		return nil, fmt.Errorf("Coordinator - Process - c.store.SignedURL: %w: %w", errs.ErrHandleGenerationFailed, err)
	}

	result := &dto.ProcessingResult{
		ImageID:     id,
		SignedURL:   signedURL,
		StoragePath: artifact.Location,
		ExpiresAt:   expiresAt,
	}

	// 7-8. best effort handoff to the metadata stage
	err = c.publish(ctx, entity.NewProcessingEvent(id, req.OriginalName, artifact.Location))
	if err != nil {
		return result, fmt.Errorf("Coordinator - Process - c.publish: %w: %w", errs.ErrEventPublishFailed, err)
	}

	return result, nil
}

func (c *Coordinator) transform(ctx context.Context, img image.Image) (out image.Image, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("background remover panic: %v", r)
		}
	}()

	out, err = c.remover.RemoveBackground(ctx, img)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, errors.New("background remover returned no image")
	}

	return out, nil
}

func (c *Coordinator) publish(ctx context.Context, event entity.ProcessingEvent) error {
	msg, err := event.Message()
	if err != nil {
		return err
	}

	return c.publisher.Publish(ctx, c.topic, msg)
}
