package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"blog-backend/internal/config"
	infraCache "blog-backend/internal/infrastructure/cache"
	"blog-backend/internal/infrastructure/database"
	"blog-backend/pkg/cache"

	"blog-backend/internal/domains/author"
	authorHandler "blog-backend/internal/domains/author/handler"
	authorRepo "blog-backend/internal/domains/author/repository"
	authorService "blog-backend/internal/domains/author/service"
	"blog-backend/internal/domains/post"
	postHandler "blog-backend/internal/domains/post/handler"
	postRepo "blog-backend/internal/domains/post/repository"
	postService "blog-backend/internal/domains/post/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton living for the whole process.
type Container struct {
	// Infrastructure
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	// Repositories
	AuthorRepo author.Repository
	PostRepo   post.Repository

	// Services
	AuthorService author.Service
	PostService   post.Service

	// Handlers
	AuthorHandler *authorHandler.AuthorHandler
	PostHandler   *postHandler.PostHandler
}

// NewContainer initializes the whole dependency graph in order:
// config -> database -> cache -> repositories -> services -> handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	if err := db.MigrationsUp(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Redis failure is non-critical: repositories tolerate cache errors.
	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if err := redisCache.Connect(context.Background()); err != nil {
		log.Warn().Err(err).Msg("redis connection failed, continuing without warm cache")
	}
	c.Cache = redisCache

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Str("env", cfg.App.Environment).Msg("container initialized")
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.AuthorRepo = authorRepo.NewPostgresRepository(pool, c.Cache)
	c.PostRepo = postRepo.NewPostgresRepository(pool, c.Cache)
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)

	// Post operations validate author references through the author
	// repository; this is the only cross-domain dependency.
	c.PostService = postService.NewPostService(c.PostRepo, c.AuthorRepo)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.PostHandler = postHandler.NewPostHandler(c.PostService)
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close redis client")
		}
	}
}
