package recommend

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"shifra-server/internal/assessment"
	stderrors "shifra-server/internal/common/errors"
	"shifra-server/internal/common/logger"
	"shifra-server/internal/common/metrics"
	"shifra-server/internal/common/observability"
	"shifra-server/internal/models"
)

// State is the fetcher's lifecycle for one recommendation run.
type State string

const (
	StateIdle      State = "IDLE"
	StateFetching  State = "FETCHING"
	StateSucceeded State = "SUCCEEDED"
	StateFallback  State = "FALLBACK"
)

// Outcome labels used on metrics.
const (
	OutcomeSucceeded = "succeeded"
	OutcomeFallback  = "fallback"
)

// TextGenerator is the slice of the Gemini client the fetcher needs.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Notifier publishes the ops notice when a fallback list is served.
// Satisfied by the SNS client wrapper.
type Notifier interface {
	Publish(ctx context.Context, input *sns.PublishInput) (*sns.PublishOutput, error)
}

// Result is one completed recommendation run.
type Result struct {
	Careers []models.RecommendedCareer
	State   State
	// Reason is the error category behind a fallback, empty on success.
	Reason string
}

// Fetcher runs the recommendation pipeline tail: prompt the model once,
// parse, and on any soft failure serve the pre-authored fallback list. It
// never returns an error for upstream problems; a run always yields a
// non-empty career list.
type Fetcher struct {
	generator TextGenerator
	fallbacks []assessment.FallbackCareer
	timeout   time.Duration
	log       logger.Logger
	obs       *observability.Observability

	notifier Notifier
	topicARN string
}

// NewFetcher creates a fetcher. notifier may be nil when the ops notice is
// disabled; obs may be nil in tests.
func NewFetcher(
	generator TextGenerator,
	fallbacks []assessment.FallbackCareer,
	timeout time.Duration,
	log logger.Logger,
	obs *observability.Observability,
	notifier Notifier,
	topicARN string,
) *Fetcher {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Fetcher{
		generator: generator,
		fallbacks: fallbacks,
		timeout:   timeout,
		log:       log,
		obs:       obs,
		notifier:  notifier,
		topicARN:  topicARN,
	}
}

// Fetch runs one recommendation attempt for the profile. The upstream call
// gets a single try under the configured timeout; there is no retry loop.
func (f *Fetcher) Fetch(ctx context.Context, userID int64, profile Profile) Result {
	start := time.Now()
	if f.obs != nil {
		spanCtx, span := f.obs.StartSpan(ctx, "recommend.fetch")
		defer span.End()
		ctx = spanCtx
	}

	careers, err := f.fetchOnce(ctx, profile)
	if err != nil {
		result := f.serveFallback(ctx, userID, profile, err)
		f.record(ctx, OutcomeFallback, time.Since(start))
		return result
	}

	sortByMatchDesc(careers)
	f.log.Info("recommendation fetch succeeded", map[string]interface{}{
		"user_id": userID,
		"careers": len(careers),
	})
	f.record(ctx, OutcomeSucceeded, time.Since(start))
	return Result{Careers: careers, State: StateSucceeded}
}

func (f *Fetcher) fetchOnce(ctx context.Context, profile Profile) ([]models.RecommendedCareer, error) {
	callCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	raw, err := f.generator.GenerateText(callCtx, BuildPrompt(profile))
	if err != nil {
		return nil, err
	}
	return ParseCareers(raw)
}

func (f *Fetcher) serveFallback(ctx context.Context, userID int64, profile Profile, cause error) Result {
	reason := fallbackReason(cause)

	careers := FallbackCareers(f.fallbacks, profile.FieldScores)
	sortByMatchDesc(careers)

	f.log.Warn("serving fallback recommendations", map[string]interface{}{
		"user_id": userID,
		"reason":  reason,
		"error":   cause.Error(),
	})
	metrics.RecommendationFallbacksTotal.WithLabelValues(reason).Inc()
	f.notify(ctx, userID, reason)

	return Result{Careers: careers, State: StateFallback, Reason: reason}
}

// notify publishes the fallback ops notice. Failures are logged and
// swallowed; the notice must never affect the user-facing result.
func (f *Fetcher) notify(ctx context.Context, userID int64, reason string) {
	if f.notifier == nil || f.topicARN == "" {
		return
	}

	payload, _ := json.Marshal(map[string]interface{}{
		"event":   "recommendation_fallback",
		"user_id": userID,
		"reason":  reason,
		"at":      time.Now().UTC().Format(time.RFC3339),
	})

	_, err := f.notifier.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(f.topicARN),
		Subject:  aws.String("Career recommendation fallback served"),
		Message:  aws.String(string(payload)),
	})
	if err != nil {
		f.log.Error("failed to publish fallback notice", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (f *Fetcher) record(ctx context.Context, outcome string, elapsed time.Duration) {
	metrics.RecommendationsTotal.WithLabelValues(outcome).Inc()
	if f.obs != nil {
		f.obs.RecordPipelineRun(ctx, outcome)
		f.obs.RecordPipelineDuration(ctx, elapsed, outcome)
	}
}

func fallbackReason(err error) string {
	switch stderrors.Normalize(err).Code {
	case stderrors.ErrCodeLLMTimeout:
		return "timeout"
	case stderrors.ErrCodeLLMMalformedResponse:
		return "malformed_response"
	case stderrors.ErrCodeUpstreamUnavailable:
		return "upstream_unavailable"
	default:
		return "unknown"
	}
}

func sortByMatchDesc(careers []models.RecommendedCareer) {
	sort.SliceStable(careers, func(i, j int) bool {
		return careers[i].MatchPercentage > careers[j].MatchPercentage
	})
}
