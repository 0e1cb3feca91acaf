package usecase

import (
	"context"
	"errors"
	"math"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	domainAnalytics "github.com/AzielCF/az-learn/domains/analytics"
	domainChat "github.com/AzielCF/az-learn/domains/chat"
	"github.com/AzielCF/az-learn/domains/remote"
	"github.com/AzielCF/az-learn/pkg/localcache"
	"github.com/AzielCF/az-learn/pkg/subjects"
)

const (
	activeChatsCollection   = "chats"
	archivedChatsCollection = "archived"
	messagesCollection      = "messages"

	// Upper bound for chats per source and messages per chat.
	analyticsBatchSize = 500
	// Concurrent per-chat message queries inside one source.
	analyticsChatFanout = 8

	commonQueryMinLength = 4
	commonQueryTop       = 10

	day = 24 * time.Hour
)

type analyticsService struct {
	store remote.Store
	cache *localcache.Store
	loc   *time.Location
	now   func() time.Time
}

// NewAnalyticsService buckets time of day in loc (UTC when nil).
func NewAnalyticsService(store remote.Store, cache *localcache.Store, loc *time.Location) domainAnalytics.IAnalyticsUsecase {
	if loc == nil {
		loc = time.UTC
	}
	return &analyticsService{store: store, cache: cache, loc: loc, now: time.Now}
}

func normalizeDays(days int) int {
	if days <= 0 {
		return domainAnalytics.DefaultRangeDays
	}
	return days
}

func (s *analyticsService) GetChatsAnalytics(ctx context.Context, userID string, days int) (domainAnalytics.Result, error) {
	if err := requireUser(userID); err != nil {
		return domainAnalytics.Result{}, err
	}
	days = normalizeDays(days)
	key := localcache.AnalyticsKey(string(domainAnalytics.VariantLive), userID, days)

	if cached, ok := localcache.Get[domainAnalytics.Result](ctx, s.cache, key); ok {
		return cached, nil
	}

	result, err := s.aggregate(ctx, userID, days)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("[ANALYTICS] Failed to load live analytics")
		return domainAnalytics.Result{}, err
	}
	s.cache.Set(ctx, key, result, localcache.LiveAnalyticsExpiry)
	return result, nil
}

func (s *analyticsService) GetHistoricalAnalytics(ctx context.Context, userID string, days int) (domainAnalytics.Result, error) {
	if err := requireUser(userID); err != nil {
		return domainAnalytics.Result{}, err
	}
	days = normalizeDays(days)
	key := localcache.AnalyticsKey(string(domainAnalytics.VariantHistorical), userID, days)

	var cached domainAnalytics.Result
	found, fresh := s.cache.Peek(ctx, key, &cached)
	if fresh {
		return cached, nil
	}

	result, err := s.aggregate(ctx, userID, days)
	if err != nil {
		if found {
			logrus.WithError(err).WithField("user_id", userID).Warn("[ANALYTICS] Serving stale historical analytics")
			return cached, nil
		}
		logrus.WithError(err).WithField("user_id", userID).Warn("[ANALYTICS] No historical analytics available")
		return emptyAnalytics(days), nil
	}
	s.cache.Set(ctx, key, result, localcache.HistoricalAnalyticsExpiry)
	return result, nil
}

// aggregate fetches active and archived messages side by side. A failing
// source contributes nothing; only when both fail is the aggregation an error.
func (s *analyticsService) aggregate(ctx context.Context, userID string, days int) (domainAnalytics.Result, error) {
	end := s.now()
	start := end.Add(-time.Duration(days) * day)

	var (
		active, archived       []domainChat.Message
		activeErr, archivedErr error
	)
	var g errgroup.Group
	g.Go(func() error {
		active, activeErr = s.fetchMessages(ctx, userID, activeChatsCollection, start, end)
		if activeErr != nil {
			logrus.WithError(activeErr).WithField("user_id", userID).Error("[ANALYTICS] Failed to fetch active messages")
		}
		return nil
	})
	g.Go(func() error {
		archived, archivedErr = s.fetchMessages(ctx, userID, archivedChatsCollection, start, end)
		if archivedErr != nil {
			logrus.WithError(archivedErr).WithField("user_id", userID).Error("[ANALYTICS] Failed to fetch archived messages")
		}
		return nil
	})
	_ = g.Wait()

	if activeErr != nil && archivedErr != nil {
		return domainAnalytics.Result{}, errors.Join(activeErr, archivedErr)
	}

	messages := make([]domainChat.Message, 0, len(active)+len(archived))
	messages = append(messages, active...)
	messages = append(messages, archived...)
	return s.project(messages, days, end), nil
}

// fetchMessages reads users/{uid}/{source}/*/messages within [start, end].
// Any failing chat fails the whole source.
func (s *analyticsService) fetchMessages(ctx context.Context, userID, source string, start, end time.Time) ([]domainChat.Message, error) {
	chats, err := s.store.Query(ctx, remote.Query{
		Collection: remote.UserCollection(userID, source),
		Limit:      analyticsBatchSize,
	})
	if err != nil {
		return nil, err
	}

	perChat := make([][]domainChat.Message, len(chats))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(analyticsChatFanout)
	for i, chat := range chats {
		g.Go(func() error {
			docs, err := s.store.Query(gctx, remote.Query{
				Collection: remote.UserCollection(userID, source, chat.ID, messagesCollection),
				Filters: []remote.Filter{
					{Field: "timestamp", Op: remote.OpGreaterEqual, Value: start},
					{Field: "timestamp", Op: remote.OpLessEqual, Value: end},
				},
				OrderBy:   "timestamp",
				Direction: remote.Desc,
				Limit:     analyticsBatchSize,
			})
			if err != nil {
				return err
			}
			msgs := make([]domainChat.Message, 0, len(docs))
			for _, doc := range docs {
				var m domainChat.Message
				if err := doc.Decode(&m); err != nil {
					logrus.WithField("doc_id", doc.ID).Debug("[ANALYTICS] Skipping message without a usable timestamp")
					continue
				}
				msgs = append(msgs, m)
			}
			perChat[i] = msgs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []domainChat.Message
	for _, msgs := range perChat {
		out = append(out, msgs...)
	}
	return out, nil
}

func emptyAnalytics(days int) domainAnalytics.Result {
	return domainAnalytics.Result{
		DailyActivity:       newHeatmap(days),
		SubjectDistribution: map[string]int{},
		CommonQueries:       map[string]int{},
	}
}

func newHeatmap(days int) [][]domainAnalytics.HeatmapCell {
	weeks := int(math.Ceil(float64(days) / 7))
	heatmap := make([][]domainAnalytics.HeatmapCell, weeks)
	for w := range heatmap {
		heatmap[w] = make([]domainAnalytics.HeatmapCell, 7)
	}
	return heatmap
}

func (s *analyticsService) project(messages []domainChat.Message, days int, now time.Time) domainAnalytics.Result {
	result := emptyAnalytics(days)
	acc := subjects.NewAccumulator()
	queries := map[string]int{}
	var responseChars, responses int

	for _, m := range messages {
		local := m.Timestamp.In(s.loc)

		dayDiff := int(math.Floor(float64(now.Sub(m.Timestamp)) / float64(day)))
		if dayDiff >= 0 && dayDiff < days {
			week := dayDiff / 7
			if week < len(result.DailyActivity) {
				result.DailyActivity[week][local.Weekday()].Count++
			}
		}

		switch hour := local.Hour(); {
		case hour >= 5 && hour < 12:
			result.TimeDistribution.Morning++
		case hour >= 12 && hour < 17:
			result.TimeDistribution.Afternoon++
		case hour >= 17 && hour < 22:
			result.TimeDistribution.Evening++
		default:
			result.TimeDistribution.Night++
		}

		if m.Text == "" {
			continue
		}
		acc.Add(m.Text)
		switch m.Sender {
		case domainChat.SenderAI:
			responseChars += utf8.RuneCountInString(m.Text)
			responses++
		case domainChat.SenderUser:
			for _, word := range strings.Fields(strings.ToLower(m.Text)) {
				if utf8.RuneCountInString(word) >= commonQueryMinLength {
					queries[word]++
				}
			}
		}
	}

	result.SubjectDistribution = acc.Distribution()
	result.TotalInteractions = len(messages)
	if responses > 0 {
		result.AverageResponseLength = int(math.Round(float64(responseChars) / float64(responses)))
	}
	result.CommonQueries = topQueries(queries, commonQueryTop)
	return result
}

func topQueries(counts map[string]int, n int) map[string]int {
	words := make([]string, 0, len(counts))
	for w := range counts {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if counts[words[i]] != counts[words[j]] {
			return counts[words[i]] > counts[words[j]]
		}
		return words[i] < words[j]
	})
	if len(words) > n {
		words = words[:n]
	}
	out := make(map[string]int, len(words))
	for _, w := range words {
		out[w] = counts[w]
	}
	return out
}

func (s *analyticsService) InitializeAnalytics(ctx context.Context, userID string) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	err := s.store.Set(ctx, remote.UserCollection(userID, "analytics"), "summary", map[string]any{
		"createdAt":         remote.ServerTimestamp(),
		"totalInteractions": 0,
	}, true)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("[ANALYTICS] Failed to initialize analytics")
	}
	return err
}

func (s *analyticsService) TrackInteraction(ctx context.Context, userID, userMessage, aiResponse string) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	_, err := s.store.Add(ctx, remote.UserCollection(userID, "interactions"), map[string]any{
		"userMessage": userMessage,
		"aiResponse":  aiResponse,
		"timestamp":   remote.ServerTimestamp(),
		"userId":      userID,
	})
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("[ANALYTICS] Failed to store interaction")
		return err
	}

	err = s.store.Set(ctx, remote.UserCollection(userID, "analytics"), "summary", map[string]any{
		"lastInteraction":   remote.ServerTimestamp(),
		"totalInteractions": remote.Increment(1),
	}, true)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("[ANALYTICS] Failed to update summary")
	}
	return err
}

func (s *analyticsService) GetSummary(ctx context.Context, userID string) (domainAnalytics.Summary, error) {
	if err := requireUser(userID); err != nil {
		return domainAnalytics.Summary{}, err
	}
	doc, found, err := s.store.Get(ctx, remote.UserCollection(userID, "analytics"), "summary")
	if err != nil || !found {
		return domainAnalytics.Summary{}, err
	}
	var summary domainAnalytics.Summary
	if err := doc.Decode(&summary); err != nil {
		return domainAnalytics.Summary{}, err
	}
	return summary, nil
}
