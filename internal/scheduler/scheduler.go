package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"CycleSentinel/internal/collector"
	"CycleSentinel/internal/model"
	"CycleSentinel/internal/notifier"
	"CycleSentinel/internal/recorder"
	"CycleSentinel/internal/strategy"
)

// Scheduler runs the periodic analysis cycle and answers chat commands.
type Scheduler struct {
	cron      *cron.Cron
	collector *collector.Collector
	notifier  *notifier.TelegramNotifier
	recorder  recorder.Recorder
	holdings  []model.Holding
	targets   model.Targets
	strategy  strategy.Config
	log       *logrus.Logger
	ctx       context.Context
}

// New creates a Scheduler. holdings carry no current prices; each cycle
// fills them from the fresh fetch.
func New(ctx context.Context, col *collector.Collector, tn *notifier.TelegramNotifier, rec recorder.Recorder,
	holdings []model.Holding, targets model.Targets, sc strategy.Config, log *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:      cron.New(cron.WithSeconds()),
		collector: col,
		notifier:  tn,
		recorder:  rec,
		holdings:  holdings,
		targets:   targets,
		strategy:  sc,
		log:       log,
		ctx:       ctx,
	}
}

// Register installs the analysis cycle on its cron expression.
func (s *Scheduler) Register(analysisCron string) error {
	if _, err := s.cron.AddFunc(analysisCron, s.analysisTask); err != nil {
		return fmt.Errorf("register analysis task: %w", err)
	}
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("scheduler started")
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.log.Info("scheduler stopped")
}

// RunNow executes the analysis cycle immediately (manual trigger or
// RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.analysisTask()
}

func (s *Scheduler) analysisTask() {
	s.log.Info("running analysis cycle")

	report, _, err := s.runCycle(s.ctx)
	if err != nil {
		s.log.WithError(err).Error("analysis cycle failed")
		s.trySend(fmt.Sprintf("⚠️ analysis cycle failed: %v", err))
		return
	}

	prevRisk := s.previousRisk()
	s.trySend(notifier.RenderReport(report, prevRisk))
}

// runCycle collects fresh data, builds the report and persists the cycle.
// Recording happens after the previous sentiment has been read, so the
// momentum baseline is always the prior cycle, never this one.
func (s *Scheduler) runCycle(ctx context.Context) (*model.AdvisoryReport, *collector.CycleData, error) {
	data, err := s.collector.Collect(ctx)
	if err != nil {
		return nil, nil, err
	}

	prev := s.previousSentiment()

	in := strategy.Input{
		Sentiment:     data.Sentiment,
		PrevSentiment: prev,
		BTC:           data.Snapshots["bitcoin"],
		ETH:           data.Snapshots["ethereum"],
		Snapshots:     data.Snapshots,
		Holdings:      s.pricedHoldings(data),
		Targets:       s.targets,
		Now:           time.Now(),
	}
	report := strategy.BuildReport(in, s.strategy)

	s.record(data, report, prev)
	return report, data, nil
}

func (s *Scheduler) previousSentiment() *model.MarketSentiment {
	rec, err := s.recorder.PreviousSentiment()
	if err != nil {
		s.log.WithError(err).Warn("previous sentiment unavailable")
		return nil
	}
	if rec == nil {
		return nil
	}
	return &model.MarketSentiment{
		FearGreed:    rec.FearGreed,
		BTCDominance: rec.BTCDominance,
		ETHBTCRatio:  rec.ETHBTCRatio,
	}
}

func (s *Scheduler) previousRisk() int {
	score, err := s.recorder.PreviousRisk()
	if err != nil {
		s.log.WithError(err).Warn("previous risk unavailable")
		return -1
	}
	return score
}

// pricedHoldings copies the configured holdings with this cycle's prices
// attached. A holding whose price is missing stays unpriced.
func (s *Scheduler) pricedHoldings(data *collector.CycleData) []model.Holding {
	out := make([]model.Holding, len(s.holdings))
	for i, h := range s.holdings {
		if p, ok := data.Prices[h.AssetID]; ok && p > 0 {
			h.CurrentPrice = model.Some(p)
		} else if snap, ok := data.Snapshots[h.AssetID]; ok && snap.CurrentPrice > 0 {
			h.CurrentPrice = model.Some(snap.CurrentPrice)
		}
		out[i] = h
	}
	return out
}

func (s *Scheduler) record(data *collector.CycleData, report *model.AdvisoryReport, prev *model.MarketSentiment) {
	alt, altOK := strategy.DetectAltseason(data.Sentiment, prev, s.strategy.Altseason)
	altScore := model.None()
	if altOK {
		altScore = model.Some(alt.Score)
	}

	rec := &recorder.CycleRecord{
		GeneratedAt:    report.GeneratedAt,
		RiskScore:      report.Risk.Score,
		RiskLevel:      report.Risk.Level,
		AltseasonScore: altScore,
		Factors:        report.Risk.Factors,
	}
	if btc, ok := data.Snapshots["bitcoin"]; ok {
		rec.BTCPrice = btc.CurrentPrice
		rec.RSI = btc.RSI
		rec.PiCycleRatio = btc.PiCycleRatio
	}
	if err := s.recorder.RecordCycle(rec); err != nil {
		s.log.WithError(err).Error("record cycle failed")
	}

	if err := s.recorder.RecordSentiment(&recorder.SentimentRecord{
		FetchedAt:    data.FetchedAt,
		FearGreed:    data.Sentiment.FearGreed,
		BTCDominance: data.Sentiment.BTCDominance,
		ETHBTCRatio:  data.Sentiment.ETHBTCRatio,
	}); err != nil {
		s.log.WithError(err).Error("record sentiment failed")
	}
}

// HandleCommand processes one chat command and returns the reply.
func (s *Scheduler) HandleCommand(ctx context.Context, command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return ""
	}
	cmd := fields[0]
	if at := strings.Index(cmd, "@"); at > 0 {
		cmd = cmd[:at]
	}

	switch cmd {
	case "/report":
		report, _, err := s.runCycle(ctx)
		if err != nil {
			return fmt.Sprintf("⚠️ report unavailable: %v", err)
		}
		return notifier.RenderReport(report, s.previousRisk())
	case "/portfolio":
		report, _, err := s.runCycle(ctx)
		if err != nil {
			return fmt.Sprintf("⚠️ portfolio unavailable: %v", err)
		}
		for _, sec := range report.Sections {
			if sec.Kind == model.SectionPortfolio {
				return notifier.RenderSection(sec)
			}
		}
		return ""
	case "/help":
		return notifier.RenderHelp()
	default:
		return notifier.RenderHelp()
	}
}

func (s *Scheduler) trySend(text string) {
	if err := s.notifier.SendWithRetry(s.ctx, text, 3); err != nil {
		s.log.WithError(err).Error("send notification failed")
	}
}
