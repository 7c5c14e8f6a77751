package draftstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"lessonbook/internal/domain/booking"
	"lessonbook/internal/domain/instructor"
	"lessonbook/internal/infra"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisDraftStore keeps one draft per booking session under a session-scoped
// key, plus the one-shot resume flag under a sibling key. Entries expire with
// the configured TTL so abandoned drafts clean themselves up.
type RedisDraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDraftStore(client *redis.Client, ttl time.Duration) *RedisDraftStore {
	return &RedisDraftStore{
		client: client,
		ttl:    ttl,
	}
}

type slotRecord struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type instructorRecord struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	AvatarURL        string    `json:"avatar_url"`
	CreditsPerLesson int       `json:"credits_per_lesson"`
}

type draftRecord struct {
	ID          uuid.UUID        `json:"id"`
	Instructor  instructorRecord `json:"instructor"`
	Slots       []slotRecord     `json:"slots"`
	SummaryOpen bool             `json:"summary_open"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func draftKey(sessionID uuid.UUID) string {
	return "booking:draft:" + sessionID.String()
}

func resumeKey(sessionID uuid.UUID) string {
	return "booking:resume:" + sessionID.String()
}

func (s *RedisDraftStore) Load(ctx context.Context, sessionID uuid.UUID) (*booking.Draft, error) {
	raw, err := s.client.Get(ctx, draftKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to load draft", err, infra.KindKVFailure)
	}

	var rec draftRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, infra.WrapRepoErr("failed to decode draft", err, infra.KindKVFailure)
	}

	return recordToDraft(rec), nil
}

func (s *RedisDraftStore) Save(ctx context.Context, sessionID uuid.UUID, draft *booking.Draft) error {
	raw, err := json.Marshal(draftToRecord(draft))
	if err != nil {
		return infra.WrapRepoErr("failed to encode draft", err, infra.KindKVFailure)
	}

	if err := s.client.Set(ctx, draftKey(sessionID), raw, s.ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to save draft", err, infra.KindKVFailure)
	}
	return nil
}

func (s *RedisDraftStore) Clear(ctx context.Context, sessionID uuid.UUID) error {
	// The resume flag goes with the draft: a cleared draft must not reopen a
	// summary panel later.
	if err := s.client.Del(ctx, draftKey(sessionID), resumeKey(sessionID)).Err(); err != nil {
		return infra.WrapRepoErr("failed to clear draft", err, infra.KindKVFailure)
	}
	return nil
}

func (s *RedisDraftStore) MarkResume(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.client.Set(ctx, resumeKey(sessionID), "1", s.ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to mark resume flag", err, infra.KindKVFailure)
	}
	return nil
}

// ConsumeResume reads and deletes atomically so the flag fires exactly once.
func (s *RedisDraftStore) ConsumeResume(ctx context.Context, sessionID uuid.UUID) (bool, error) {
	err := s.client.GetDel(ctx, resumeKey(sessionID)).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to consume resume flag", err, infra.KindKVFailure)
	}
	return true, nil
}

func draftToRecord(d *booking.Draft) draftRecord {
	meta := d.Instructor()
	slots := d.Slots()

	rec := draftRecord{
		ID: d.ID(),
		Instructor: instructorRecord{
			ID:               meta.ID(),
			Name:             meta.Name(),
			AvatarURL:        meta.AvatarURL(),
			CreditsPerLesson: meta.CreditsPerLesson(),
		},
		Slots:       make([]slotRecord, len(slots)),
		SummaryOpen: d.SummaryOpen(),
		CreatedAt:   d.CreatedAt(),
		UpdatedAt:   d.UpdatedAt(),
	}
	for i, s := range slots {
		rec.Slots[i] = slotRecord{
			Date:      s.Date(),
			StartTime: s.StartTime(),
			EndTime:   s.EndTime(),
		}
	}
	return rec
}

func recordToDraft(rec draftRecord) *booking.Draft {
	slots := make([]booking.Slot, len(rec.Slots))
	for i, s := range rec.Slots {
		slots[i] = booking.ReconstructSlot(s.Date, s.StartTime, s.EndTime)
	}

	meta := instructor.ReconstructSnapshot(
		rec.Instructor.ID,
		rec.Instructor.Name,
		rec.Instructor.AvatarURL,
		rec.Instructor.CreditsPerLesson,
	)

	return booking.ReconstructDraft(rec.ID, meta, slots, rec.SummaryOpen, rec.CreatedAt, rec.UpdatedAt)
}
