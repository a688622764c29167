package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/devhire/matchbox/internal/ai/namefinder"
	"github.com/devhire/matchbox/pkg/fsx"
	"github.com/devhire/matchbox/pkg/fsx/fsxs3"
	"github.com/devhire/matchbox/pkg/logx"
	"github.com/devhire/matchbox/recruitment/application/applicationapi"
	"github.com/devhire/matchbox/recruitment/application/applicationinfra"
	"github.com/devhire/matchbox/recruitment/application/applicationsrv"
	"github.com/devhire/matchbox/recruitment/job/jobapi"
	"github.com/devhire/matchbox/recruitment/job/jobinfra"
	"github.com/devhire/matchbox/recruitment/job/jobsrv"
	"github.com/devhire/matchbox/recruitment/matching/matchapi"
	"github.com/devhire/matchbox/recruitment/matching/matchsrv"
	"github.com/devhire/matchbox/recruitment/profile/profileapi"
	"github.com/devhire/matchbox/recruitment/profile/profileinfra"
	"github.com/devhire/matchbox/recruitment/profile/profilesrv"
	"github.com/devhire/matchbox/recruitment/resume/resumeapi"
	"github.com/devhire/matchbox/recruitment/resume/resumeinfra"
	"github.com/devhire/matchbox/recruitment/resume/resumeparse"
	"github.com/devhire/matchbox/recruitment/resume/resumesrv"
	"github.com/devhire/matchbox/recruitment/resume/worker"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

const parseQueueName = "resume:parse"

// Container holds all application dependencies
type Container struct {
	// Infrastructure
	DB         *sqlx.DB
	Redis      *redis.Client
	FileSystem fsx.FileSystem
	S3Client   *s3.Client

	// Domain Services
	JobService         *jobsrv.JobService
	ProfileService     *profilesrv.ProfileService
	ResumeService      *resumesrv.Service
	MatchService       *matchsrv.MatchService
	ApplicationService *applicationsrv.ApplicationService

	// API Handlers
	JobHandlers         *jobapi.Handlers
	ProfileHandlers     *profileapi.Handlers
	ResumeHandlers      *resumeapi.ResumeHandlers
	MatchHandlers       *matchapi.Handlers
	ApplicationHandlers *applicationapi.Handlers

	// Background processing
	ParseWorker *worker.ParseWorker
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	c := &Container{}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Database Connection
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASS")
	dbName := os.Getenv("DB_NAME")
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPass, dbName)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Redis Connection
	redisAddr := os.Getenv("REDIS_ADDR")
	redisPass := os.Getenv("REDIS_PASS")
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPass,
		DB:       0,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. AWS S3 Configuration
	awsRegion := os.Getenv("AWS_REGION")
	awsBucket := os.Getenv("AWS_BUCKET")
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(awsRegion))
	if err != nil {
		logx.Fatalf("unable to load SDK config, %v", err)
	}
	c.S3Client = s3.NewFromConfig(cfg)
	c.FileSystem = fsxs3.NewS3FileSystem(c.S3Client, awsBucket, "uploads")
}

func (c *Container) initServices() {
	// --- Repositories ---
	jobRepo := jobinfra.NewPostgresJobRepository(c.DB)
	profileRepo := profileinfra.NewPostgresProfileRepository(c.DB)
	resumeRepo := resumeinfra.NewPostgresResumeRepository(c.DB)
	parseJobRepo := resumeinfra.NewPostgresParseJobRepository(c.DB)
	applicationRepo := applicationinfra.NewPostgresApplicationRepository(c.DB)
	parseQueue := resumeinfra.NewRedisQueue(c.Redis, parseQueueName)

	// --- Resume Parser ---
	// The name finder is optional; without an API key the contact extractor
	// falls back to line heuristics.
	var finder resumeparse.EntityFinder
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		finder = namefinder.NewNameFinder(apiKey)
	} else {
		logx.Warn("OPENAI_API_KEY is not set, name extraction uses heuristics only")
	}
	parser := resumeparse.NewParser(resumeparse.DefaultTaxonomy(), finder)

	// --- Domain Services ---
	c.JobService = jobsrv.NewJobService(jobRepo)
	c.ProfileService = profilesrv.NewProfileService(profileRepo)
	c.ResumeService = resumesrv.NewService(
		resumeRepo,
		parseJobRepo,
		parser,
		c.FileSystem,
		parseQueue,
		c.ProfileService,
	)

	engine := matchsrv.NewEngine(matchsrv.DefaultTables())
	c.MatchService = matchsrv.NewMatchService(engine, profileRepo, jobRepo, matchWorkers())
	c.ApplicationService = applicationsrv.NewApplicationService(applicationRepo, jobRepo, profileRepo, engine)

	// --- Handlers ---
	c.JobHandlers = jobapi.NewHandlers(c.JobService)
	c.ProfileHandlers = profileapi.NewHandlers(c.ProfileService)
	c.ResumeHandlers = resumeapi.NewResumeHandlers(c.ResumeService, c.FileSystem)
	c.MatchHandlers = matchapi.NewHandlers(c.MatchService)
	c.ApplicationHandlers = applicationapi.NewHandlers(c.ApplicationService)

	// --- Background Workers ---
	c.ParseWorker = worker.NewParseWorker(c.ResumeService, parseQueue, parseWorkers())
}

func parseWorkers() int {
	return envInt("PARSE_WORKERS", 3)
}

func matchWorkers() int {
	return envInt("MATCH_WORKERS", 8)
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		logx.Warnf("Invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
