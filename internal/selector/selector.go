package selector

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"jobprep/interview/internal/llm"
	"jobprep/interview/internal/metrics"
	"jobprep/interview/internal/models"
	"jobprep/interview/internal/repositories"
)

const (
	// TargetSetSize is the number of questions a session nominally gets.
	TargetSetSize = 5

	// DefaultGenerationAttempts bounds question-source calls per selection.
	DefaultGenerationAttempts = 2

	minNewPerCall     = 2
	maxNewPerCall     = 3
	focusTopicCount   = 3
	maxAvoidListSize  = 5
	generateBatchSize = 5
)

// ErrNoQuestions is returned only when generation failed on every attempt
// and the pool has nothing to fall back on.
var ErrNoQuestions = errors.New("no questions available: generation failed and pool is empty")

// Selector produces the question set for a new interview session: it asks
// the question source for fresh candidates, drops near-duplicates of the
// existing pool, persists the survivors, and blends them with low-usage
// questions sampled from the bank.
type Selector struct {
	bank     repositories.QuestionRepository
	source   llm.Provider
	rng      *rand.Rand
	logger   *zap.Logger
	attempts int
}

// Options tune selector behavior. Zero values fall back to defaults.
type Options struct {
	// GenerationAttempts caps question-source calls per selection call.
	GenerationAttempts int
	// Rand is the random source; tests inject a seeded one.
	Rand *rand.Rand
}

func New(bank repositories.QuestionRepository, source llm.Provider, logger *zap.Logger, opts Options) *Selector {
	attempts := opts.GenerationAttempts
	if attempts <= 0 {
		attempts = DefaultGenerationAttempts
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{
		bank:     bank,
		source:   source,
		rng:      rng,
		logger:   logger,
		attempts: attempts,
	}
}

// SelectQuestions assembles the question set for one session in the given
// pool: newly generated questions first, then sampled ones. The result may
// hold fewer than TargetSetSize entries when both the source and the pool
// run dry; an error is returned only for the pool-empty total-outage case
// or a failed bank read.
func (s *Selector) SelectQuestions(ctx context.Context, role, level, category string) ([]models.Candidate, error) {
	pool := repositories.PoolFilter{Role: role, Level: level, Category: category, ActiveOnly: true}

	existing, err := s.bank.Find(ctx, pool, 0)
	if err != nil {
		return nil, err
	}
	existingCount := len(existing)

	// every session introduces a little fresh content, even when the
	// bank is well stocked
	numNew := minNewPerCall + s.rng.Intn(maxNewPerCall-minNewPerCall+1)

	wantNew := numNew
	if existingCount < TargetSetSize-numNew {
		// pool too small to fill the rest by sampling; generation has
		// to cover the gap
		wantNew = TargetSetSize - existingCount
	}

	fresh := s.generate(ctx, pool, existing, wantNew)

	// ids of just-persisted questions; excluded from sampling so the set
	// never contains the same question twice
	var freshIDs []primitive.ObjectID
	if len(fresh) > 0 {
		now := time.Now().UTC()
		docs := make([]models.Question, len(fresh))
		for i, c := range fresh {
			docs[i] = c.ToQuestion(role, level, category, now)
		}
		if inserted, err := s.bank.InsertMany(ctx, docs); err != nil {
			// the generated questions are still returned to the caller;
			// the bank just missed this batch
			metrics.BankPersistFailures.Inc()
			s.logger.Error("failed to persist generated questions",
				zap.Error(err),
				zap.String("role", role),
				zap.String("level", level),
				zap.String("category", category))
		} else {
			metrics.QuestionsPersisted.Add(float64(len(inserted)))
			for _, q := range inserted {
				if !q.ID.IsZero() {
					freshIDs = append(freshIDs, q.ID)
				}
			}
		}
	}

	sampled := s.sampleExisting(ctx, pool, existingCount, TargetSetSize-len(fresh), freshIDs)

	out := make([]models.Candidate, 0, TargetSetSize)
	out = append(out, fresh...)
	for _, q := range sampled {
		out = append(out, q.AsCandidate())
	}
	if len(out) > TargetSetSize {
		out = out[:TargetSetSize]
	}

	if len(out) == 0 {
		return nil, ErrNoQuestions
	}

	s.logger.Info("question set assembled",
		zap.String("role", role),
		zap.String("level", level),
		zap.String("category", category),
		zap.Int("new", len(fresh)),
		zap.Int("sampled", len(sampled)),
		zap.Int("pool_size", existingCount))

	return out, nil
}

// generate runs the bounded retry loop against the question source and
// returns up to want candidates that survived duplicate detection.
func (s *Selector) generate(ctx context.Context, pool repositories.PoolFilter, existing []models.Question, want int) []models.Candidate {
	if want <= 0 {
		return nil
	}

	known := make([]content, 0, len(existing)+want)
	for _, q := range existing {
		known = append(known, normalizeQuestion(q))
	}

	avoid := make([]string, 0, maxAvoidListSize)
	for _, q := range sampleWithoutReplacement(existing, maxAvoidListSize, s.rng) {
		avoid = append(avoid, q.Question)
	}

	var kept []models.Candidate
	for attempt := 1; attempt <= s.attempts && len(kept) < want; attempt++ {
		req := &models.GenerateRequest{
			Role:        pool.Role,
			Level:       pool.Level,
			Category:    pool.Category,
			FocusTopics: sampleWithoutReplacement(models.TopicsForRole(pool.Role), focusTopicCount, s.rng),
			AvoidList:   avoid,
			BatchSize:   generateBatchSize,
		}

		candidates, err := s.source.GenerateQuestions(ctx, req)
		if err != nil {
			metrics.GenerationAttempts.WithLabelValues(outcomeLabel(err)).Inc()
			s.logger.Warn("question generation attempt failed",
				zap.Error(err),
				zap.Int("attempt", attempt),
				zap.String("role", pool.Role))
			continue
		}
		metrics.GenerationAttempts.WithLabelValues("ok").Inc()

		for _, c := range candidates {
			if len(kept) >= want {
				break
			}
			nc := normalizeCandidate(c)
			if nc.question == "" {
				continue
			}
			if duplicateOfAny(nc, known) {
				metrics.DuplicatesDiscarded.Inc()
				continue
			}
			kept = append(kept, c)
			known = append(known, nc)
		}
	}

	return kept
}

// sampleExisting pulls up to needed low-usage questions from the pool,
// starting from a randomized offset so repeated sessions do not always see
// the same slice, and marks them used.
func (s *Selector) sampleExisting(ctx context.Context, pool repositories.PoolFilter, existingCount, needed int, exclude []primitive.ObjectID) []models.Question {
	if needed <= 0 || existingCount == 0 {
		return nil
	}
	if needed > existingCount {
		needed = existingCount
	}

	offset := 0
	if maxOffset := existingCount - needed; maxOffset > 0 {
		offset = s.rng.Intn(maxOffset + 1)
	}

	sampled, err := s.bank.FindLeastUsed(ctx, pool, int64(needed), int64(offset), exclude)
	if err != nil {
		s.logger.Error("failed to sample existing questions", zap.Error(err))
		return nil
	}
	if len(sampled) == 0 {
		return nil
	}

	ids := make([]primitive.ObjectID, 0, len(sampled))
	for _, q := range sampled {
		if !q.ID.IsZero() {
			ids = append(ids, q.ID)
		}
	}
	if err := s.bank.IncrementUsage(ctx, ids); err != nil {
		s.logger.Error("failed to update usage counters", zap.Error(err))
	}
	metrics.QuestionsSampled.Add(float64(len(sampled)))

	return sampled
}

func outcomeLabel(err error) string {
	var perr *llm.ProviderError
	if errors.As(err, &perr) && perr.Code == llm.ErrCodeInvalidResponse {
		return "invalid"
	}
	return "error"
}
