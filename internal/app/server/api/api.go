package api

import (
	"fmt"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	authAPI "github.com/tpdoyle87/tomanddeb-sub001/internal/app/server/api/http/auth"
	commentAPI "github.com/tpdoyle87/tomanddeb-sub001/internal/app/server/api/http/comment"
	galleryAPI "github.com/tpdoyle87/tomanddeb-sub001/internal/app/server/api/http/gallery"
	healthAPI "github.com/tpdoyle87/tomanddeb-sub001/internal/app/server/api/http/health"
	journalAPI "github.com/tpdoyle87/tomanddeb-sub001/internal/app/server/api/http/journal"
	"github.com/tpdoyle87/tomanddeb-sub001/internal/app/server/api/http/middleware"
	authMW "github.com/tpdoyle87/tomanddeb-sub001/internal/app/server/api/http/middleware/auth"
	loggerMW "github.com/tpdoyle87/tomanddeb-sub001/internal/app/server/api/http/middleware/logger"
	newsletterAPI "github.com/tpdoyle87/tomanddeb-sub001/internal/app/server/api/http/newsletter"
	postAPI "github.com/tpdoyle87/tomanddeb-sub001/internal/app/server/api/http/post"
	userAPI "github.com/tpdoyle87/tomanddeb-sub001/internal/app/server/api/http/user"
	"github.com/tpdoyle87/tomanddeb-sub001/internal/app/server/config"
	"github.com/tpdoyle87/tomanddeb-sub001/internal/domain/comment"
	"github.com/tpdoyle87/tomanddeb-sub001/internal/domain/journal"
	"github.com/tpdoyle87/tomanddeb-sub001/internal/domain/photo"
	"github.com/tpdoyle87/tomanddeb-sub001/internal/domain/post"
	"github.com/tpdoyle87/tomanddeb-sub001/internal/domain/session"
	"github.com/tpdoyle87/tomanddeb-sub001/internal/domain/subscriber"
	"github.com/tpdoyle87/tomanddeb-sub001/internal/domain/user"
	"github.com/tpdoyle87/tomanddeb-sub001/internal/infrastructure/objectstore"
	"github.com/tpdoyle87/tomanddeb-sub001/internal/infrastructure/storage/postgres"
)

type Handlers struct {
	Health     *healthAPI.Handler
	Auth       *authAPI.Handler
	User       *userAPI.Handler
	Journal    *journalAPI.Handler
	Post       *postAPI.Handler
	Comment    *commentAPI.Handler
	Newsletter *newsletterAPI.Handler
	Gallery    *galleryAPI.Handler
}

// New builds the *chi.Mux with every operation registered through
// huma.Register.
func New(cfg *config.Config, storage *postgres.Storage, media objectstore.Store, log *slog.Logger) (*chi.Mux, error) {
	mux := chi.NewMux()

	humaConfig := huma.DefaultConfig("Wanderblog API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, humaConfig)

	h, err := handlers(cfg, storage, media, log)
	if err != nil {
		return nil, err
	}
	h.Health.SetupRoutes(API)
	h.Auth.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Journal.SetupRoutes(API)
	h.Post.SetupRoutes(API)
	h.Comment.SetupRoutes(API)
	h.Newsletter.SetupRoutes(API)
	h.Gallery.SetupRoutes(API)

	return mux, nil
}

func handlers(cfg *config.Config, storage *postgres.Storage, media objectstore.Store, log *slog.Logger) (*Handlers, error) {
	pool := storage.Pool()

	userRepo := postgres.NewUserRepository(pool, log)
	userService := user.NewService(userRepo, user.NewAccountValidator(), log)

	sessionRepo := postgres.NewSessionRepository(pool, log)
	sessionService := session.NewService(sessionRepo, userRepo, []byte(cfg.Session.Secret), log)

	codec, err := journal.NewCodec(cfg.Journal.MasterKey)
	if err != nil {
		return nil, fmt.Errorf("journal codec: %w", err)
	}
	journalRepo := postgres.NewJournalRepository(pool, log)
	journalService := journal.NewService(journalRepo, codec, log)

	postRepo := postgres.NewPostRepository(pool, log)
	postService := post.NewService(postRepo, log)

	commentRepo := postgres.NewCommentRepository(pool, log)
	commentService := comment.NewService(commentRepo, log)

	subscriberRepo := postgres.NewSubscriberRepository(pool, log)
	subscriberService := subscriber.NewService(subscriberRepo, log)

	photoRepo := postgres.NewPhotoRepository(pool, log)
	photoService := photo.NewService(photoRepo, media, log)

	auth := authMW.New(sessionService, log)
	reqLogger := loggerMW.New(log)
	middlewares := middleware.NewContainer()

	// The request logger goes first in every chain so rejected requests
	// still show up in the access log.
	middlewares.Add(reqLogger.Middleware())
	public := middlewares.GetAllAndClear()

	middlewares.Add(reqLogger.Middleware())
	middlewares.Add(auth.Middleware())
	authenticated := middlewares.GetAllAndClear()

	middlewares.Add(reqLogger.Middleware())
	middlewares.Add(auth.Middleware())
	middlewares.Add(auth.Require(user.RoleAuthor))
	authorOnly := middlewares.GetAllAndClear()

	middlewares.Add(reqLogger.Middleware())
	middlewares.Add(auth.Middleware())
	middlewares.Add(auth.Require(user.RoleEditor))
	editorOnly := middlewares.GetAllAndClear()

	middlewares.Add(reqLogger.Middleware())
	middlewares.Add(auth.Middleware())
	middlewares.Add(auth.Require(user.RoleAdmin))
	adminOnly := middlewares.GetAllAndClear()

	return &Handlers{
		Health:     healthAPI.NewHandler(log, public),
		Auth:       authAPI.NewHandler(userService, sessionService, log, public, authenticated),
		User:       userAPI.NewHandler(userService, log, adminOnly),
		Journal:    journalAPI.NewHandler(journalService, log, authenticated),
		Post:       postAPI.NewHandler(postService, log, public, authorOnly),
		Comment:    commentAPI.NewHandler(commentService, postService, log, public, editorOnly),
		Newsletter: newsletterAPI.NewHandler(subscriberService, log, public, editorOnly),
		Gallery:    galleryAPI.NewHandler(photoService, log, public, authorOnly),
	}, nil
}
