package users

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vitacoach/server/internal/blob"
	"github.com/vitacoach/server/internal/simulate"
	"github.com/vitacoach/server/internal/storage"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrUploadTooLarge = errors.New("upload too large")
)

var avatarExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Service owns the account profile operations.
type Service struct {
	storage        storage.UserStorage
	blobs          blob.Store
	delay          simulate.Delayer
	maxUploadBytes int
	now            func() time.Time
}

func NewService(st storage.UserStorage, blobs blob.Store, delay simulate.Delayer, maxUploadMB int) *Service {
	if maxUploadMB <= 0 {
		maxUploadMB = 10
	}
	return &Service{
		storage:        st,
		blobs:          blobs,
		delay:          delay,
		maxUploadBytes: maxUploadMB << 20,
		now:            time.Now,
	}
}

// GetCurrentUser returns the account record.
func (s *Service) GetCurrentUser(ctx context.Context) (storage.User, error) {
	if err := s.delay.Wait(ctx, simulate.LatencyGetUser); err != nil {
		return storage.User{}, err
	}

	return s.storage.GetUser(ctx)
}

// UpdateUser merges the set fields of req over the stored account record
// and returns the result. The merge is returned, not persisted: the
// stored profile stays the canonical baseline.
func (s *Service) UpdateUser(ctx context.Context, req UpdateUserRequest) (storage.User, error) {
	if err := s.delay.Wait(ctx, simulate.LatencyUpdateUser); err != nil {
		return storage.User{}, err
	}

	user, err := s.storage.GetUser(ctx)
	if err != nil {
		return storage.User{}, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return storage.User{}, fmt.Errorf("%w: name cannot be empty", ErrInvalidRequest)
		}
		user.Name = name
	}
	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if email == "" || !strings.Contains(email, "@") {
			return storage.User{}, fmt.Errorf("%w: invalid email", ErrInvalidRequest)
		}
		user.Email = email
	}
	if req.Age != nil {
		if *req.Age <= 0 {
			return storage.User{}, fmt.Errorf("%w: age must be positive", ErrInvalidRequest)
		}
		user.Age = *req.Age
	}
	if req.HeightCm != nil {
		if *req.HeightCm <= 0 {
			return storage.User{}, fmt.Errorf("%w: height must be positive", ErrInvalidRequest)
		}
		user.HeightCm = *req.HeightCm
	}
	if req.WeightKg != nil {
		if *req.WeightKg <= 0 {
			return storage.User{}, fmt.Errorf("%w: weight must be positive", ErrInvalidRequest)
		}
		user.WeightKg = *req.WeightKg
	}
	if req.ActivityLevel != nil {
		if !req.ActivityLevel.Valid() {
			return storage.User{}, fmt.Errorf("%w: unknown activity level %q", ErrInvalidRequest, *req.ActivityLevel)
		}
		user.ActivityLevel = *req.ActivityLevel
	}
	if req.Goals != nil {
		user.Goals = req.Goals
	}

	return user, nil
}

// UploadAvatar validates the image payload, stores it in the blob store
// and returns the URL of the stored avatar.
func (s *Service) UploadAvatar(ctx context.Context, data []byte) (string, error) {
	if err := s.delay.Wait(ctx, simulate.LatencyUploadAvatar); err != nil {
		return "", err
	}

	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty upload", ErrInvalidRequest)
	}
	if len(data) > s.maxUploadBytes {
		return "", fmt.Errorf("%w: %d bytes over limit", ErrUploadTooLarge, len(data)-s.maxUploadBytes)
	}

	contentType := http.DetectContentType(data)
	ext, ok := avatarExtensions[contentType]
	if !ok {
		return "", fmt.Errorf("%w: unsupported content type %q", ErrInvalidRequest, contentType)
	}

	key := "avatars/" + uuid.New().String() + ext
	url, err := s.blobs.PutObject(ctx, key, data, contentType)
	if err != nil {
		return "", fmt.Errorf("store avatar: %w", err)
	}

	return url, nil
}
