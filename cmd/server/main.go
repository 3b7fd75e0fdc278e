package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"shifra-server/internal/assessment"
	"shifra-server/internal/chat"
	"shifra-server/internal/common/aws"
	"shifra-server/internal/common/config"
	"shifra-server/internal/common/database"
	"shifra-server/internal/common/logger"
	"shifra-server/internal/common/observability"
	"shifra-server/internal/gemini"
	"shifra-server/internal/models"
	"shifra-server/internal/qa"
	"shifra-server/internal/recommend"
	"shifra-server/internal/server"
	"shifra-server/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zapLog := logger.New("info", "console")
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	log.Info("starting server", map[string]interface{}{
		"name":        cfg.App.Name,
		"environment": cfg.App.Environment,
	})

	obs := observability.New(cfg.App.Name, cfg.Observability.JaegerEndpoint)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Infrastructure clients ---
	pg, err := database.NewPostgres(cfg.Database.Postgres)
	if err != nil {
		zapLog.Fatal("postgres init failed", zap.Error(err))
	}
	defer pg.Close()
	if err := pg.Ping(ctx); err != nil {
		zapLog.Fatal("postgres unreachable", zap.Error(err))
	}

	rd, err := database.NewRedis(cfg.Database.Redis)
	if err != nil {
		zapLog.Fatal("redis init failed", zap.Error(err))
	}
	defer rd.Close()
	if err := rd.Ping(ctx); err != nil {
		log.Warn("redis unreachable, suggestion cache disabled", map[string]interface{}{
			"error": err.Error(),
		})
		rd = nil
	}

	var searcher qa.Searcher
	if cfg.Database.Elasticsearch.Enabled {
		es, err := database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			log.Warn("elasticsearch init failed, using local similarity matching", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			searcher = qa.NewElasticSearcher(es.Client, cfg.Database.Elasticsearch.QAIndex)
		}
	}

	llm, err := gemini.NewClient(ctx, cfg.Gemini)
	if err != nil {
		zapLog.Fatal("gemini client init failed", zap.Error(err))
	}

	var notifier recommend.Notifier
	if cfg.Notifications.SNS.Enabled {
		snsClient, err := aws.NewSNSClient(ctx, cfg.Notifications.SNS.Region)
		if err != nil {
			log.Warn("sns init failed, fallback notices disabled", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			notifier = snsClient
		}
	}

	// --- Repositories ---
	userRepo := storage.NewUserRepo(pg.DB)
	chatRepo := storage.NewChatRepo(pg.DB)
	assessmentRepo := storage.NewAssessmentRepo(pg.DB)
	careerRepo := storage.NewCareerRepo(pg.DB)
	suggestionRepo := storage.NewSuggestionRepo(pg.DB)
	qaRepo := storage.NewQARepo(pg.DB)
	quickOptionRepo := storage.NewQuickOptionRepo(pg.DB)

	var cache *storage.SuggestionCache
	if rd != nil {
		cache = storage.NewSuggestionCache(rd.Client,
			time.Duration(cfg.Database.Redis.SuggestionTTL)*time.Second, log)
	}

	// --- Services ---
	scoring, err := assessment.LoadScoringConfig(cfg.Assessment.WeightsPath)
	if err != nil {
		zapLog.Fatal("scoring config load failed", zap.Error(err))
	}
	matrix := scoring.Matrix()

	geminiTimeout := time.Duration(cfg.Gemini.Timeout) * time.Millisecond

	fetcher := recommend.NewFetcher(
		llm, scoring.FallbackCareers, geminiTimeout, log, obs,
		notifier, cfg.Notifications.SNS.TopicARN,
	)
	recommender := recommend.NewService(
		userRepo, assessmentRepo, suggestionRepo, cacheOrNil(cache), fetcher,
		func(scores models.CategoryScores) models.FieldScores {
			return assessment.ComputeFieldScores(scores, matrix)
		},
		log,
	)
	chatSvc := chat.NewService(chatRepo, llm, geminiTimeout, log)
	qaSvc := qa.NewService(qaRepo, searcher, cfg.QA.MinOverlap, log)

	demoUserID := ensureDemoUser(ctx, cfg.DemoUser, userRepo, log)

	srv := server.New(
		log, chatSvc, qaSvc, recommender,
		userRepo, assessmentRepo, careerRepo, quickOptionRepo,
		assessment.DefaultQuestions(), demoUserID,
	)

	// --- HTTP servers ---
	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsSrv := &http.Server{Addr: cfg.Server.MetricsAddress, Handler: metricsMux}
	go func() {
		if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("metrics server failed", map[string]interface{}{"error": err.Error()})
		}
	}()

	apiSrv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      srv.Router(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Millisecond,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Millisecond,
	}
	go func() {
		log.Info("listening", map[string]interface{}{"address": cfg.Server.Address})
		if err := apiSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = apiSrv.Shutdown(shutdownCtx)
	_ = metricsSrv.Shutdown(shutdownCtx)
}

// cacheOrNil avoids handing the service a typed nil behind its interface.
func cacheOrNil(cache *storage.SuggestionCache) recommend.SuggestionCache {
	if cache == nil {
		return nil
	}
	return cache
}

// ensureDemoUser creates the configured demo account if it does not exist
// and returns its id, or 0 when the feature is disabled.
func ensureDemoUser(ctx context.Context, cfg config.DemoUserConfig, users *storage.UserRepo, log logger.Logger) int64 {
	if !cfg.Enabled {
		return 0
	}

	if existing, err := users.GetByEmail(ctx, cfg.Email); err == nil {
		return existing.ID
	}

	created, err := users.Create(ctx, &models.User{
		Name:           cfg.Name,
		Email:          cfg.Email,
		EducationLevel: cfg.EducationLevel,
		Interests:      cfg.Interests,
	})
	if err != nil {
		log.Warn("demo user bootstrap failed", map[string]interface{}{
			"error": err.Error(),
		})
		return 0
	}

	log.Info("demo user created", map[string]interface{}{
		"user_id": created.ID,
		"email":   created.Email,
	})
	return created.ID
}
