package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/docs"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/auth"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/queue"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/ratelimiter"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/service"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/store/mongo"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/uploader"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/worker"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config                config
	logger                *zap.SugaredLogger
	rateLimiter           ratelimiter.Limiter
	storage               *mongo.Storage
	broker                queue.Broker
	authenticator         *auth.JWTAuthenticator
	uploader              *uploader.S3Uploader
	authService           *service.AuthService
	categoryService       *service.CategoryService
	sectionService        *service.SectionService
	menuItemService       *service.MenuItemService
	temporaryPriceService *service.TemporaryPriceService
	publicService         *service.PublicService
	auditService          *service.AuditService
	auditWorker           *worker.MenuAuditWorker
}

type config struct {
	addr        string
	env         string
	apiURL      string
	rateLimiter ratelimiter.Config
	mongo       mongoConfig
	rabbitMQ    rabbitMQConfig
	jwt         jwtConfig
	s3          uploader.Config
}

type mongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type rabbitMQConfig struct {
	URL           string
	MaxRetries    int
	RetryDelay    time.Duration
	PrefetchCount int
}

type jwtConfig struct {
	Secret   string
	Issuer   string
	Audience string
	TTL      time.Duration
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.RateLimiterMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)

		r.Route("/public", func(r chi.Router) {
			r.Get("/categories", app.listPublicCategoriesHandler)
			r.Get("/categories/{category}", app.getPublicCategoryHandler)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", app.loginHandler)

			r.Group(func(r chi.Router) {
				r.Use(app.AuthTokenMiddleware)
				r.Get("/me", app.meHandler)
				r.Post("/logout", app.logoutHandler)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(app.AuthTokenMiddleware)
			r.Use(app.AdminOnlyMiddleware)

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", app.listCategoriesHandler)
				r.Post("/", app.createCategoryHandler)
				r.Post("/reorder", app.reorderCategoriesHandler)
				r.Get("/{category_id}", app.getCategoryHandler)
				r.Patch("/{category_id}", app.updateCategoryHandler)
				r.Delete("/{category_id}", app.deleteCategoryHandler)
				r.Patch("/{category_id}/enabled", app.setCategoryEnabledHandler)
			})

			r.Route("/sections", func(r chi.Router) {
				r.Get("/", app.listSectionsHandler)
				r.Post("/", app.createSectionHandler)
				r.Post("/reorder", app.reorderSectionsHandler)
				r.Get("/{section_id}", app.getSectionHandler)
				r.Patch("/{section_id}", app.updateSectionHandler)
				r.Delete("/{section_id}", app.deleteSectionHandler)
				r.Patch("/{section_id}/enabled", app.setSectionEnabledHandler)
			})

			r.Route("/menu-items", func(r chi.Router) {
				r.Get("/", app.listMenuItemsHandler)
				r.Post("/", app.createMenuItemHandler)
				r.Get("/{item_id}", app.getMenuItemHandler)
				r.Patch("/{item_id}", app.updateMenuItemHandler)
				r.Delete("/{item_id}", app.deleteMenuItemHandler)
				r.Patch("/{item_id}/availability", app.setMenuItemAvailableHandler)
				r.Patch("/{item_id}/enabled", app.setMenuItemEnabledHandler)

				r.Route("/{item_id}/temporary-prices", func(r chi.Router) {
					r.Get("/", app.listTemporaryPricesHandler)
					r.Post("/", app.createTemporaryPriceHandler)
					r.Patch("/{price_id}", app.updateTemporaryPriceHandler)
					r.Delete("/{price_id}", app.deleteTemporaryPriceHandler)
					r.Patch("/{price_id}/enabled", app.setTemporaryPriceEnabledHandler)
					r.Post("/{price_id}/duplicate", app.duplicateTemporaryPriceHandler)
				})
			})

			r.Post("/uploads/images", app.uploadImageHandler)
			r.Get("/audit/{entity_type}/{entity_id}", app.listAuditHandler)
		})

		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	// docs
	docs.SwaggerInfo.Title = "Pools & Pool Menu API"
	docs.SwaggerInfo.Description = "Menu management API for hospitality venues"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/api/v1"

	// workers
	if app.auditWorker != nil {
		if err := app.auditWorker.Start(); err != nil {
			return fmt.Errorf("failed to start audit worker: %w", err)
		}
	}

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		if app.auditWorker != nil {
			app.auditWorker.Stop()
		}

		if app.storage != nil {
			if err := app.storage.Close(ctx); err != nil {
				app.logger.Errorw("error closing MongoDB", "error", err)
			} else {
				app.logger.Info("MongoDB connection closed gracefully")
			}
		}

		if app.broker != nil {
			if err := app.broker.Close(); err != nil {
				app.logger.Errorw("error closing RabbitMQ", "error", err)
			} else {
				app.logger.Info("RabbitMQ connection closed gracefully")
			}
		}

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server have started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
