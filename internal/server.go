package internal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/mkovacevic/liftsync/internal/auth"
	"github.com/mkovacevic/liftsync/internal/config"
	"github.com/mkovacevic/liftsync/internal/middleware"
	"github.com/mkovacevic/liftsync/internal/remote"
	"github.com/mkovacevic/liftsync/internal/stats"
	"github.com/mkovacevic/liftsync/internal/store"
	"github.com/mkovacevic/liftsync/internal/syncer"
	"github.com/mkovacevic/liftsync/internal/telemetry/metrics"
	"github.com/mkovacevic/liftsync/internal/telemetry/tracing"
	"github.com/mkovacevic/liftsync/internal/workout"
	"github.com/mkovacevic/liftsync/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	localStore  *store.Store
	redisClient *redis.Client
	mirror      *remote.Mirror

	loginChecker *auth.LoginChecker
	authService  *auth.Service

	workoutService *workout.Service
	statsHandler   *stats.Handler

	monitor     *syncer.PingMonitor
	tracker     *syncer.Tracker
	syncEngine  *syncer.Engine
	syncHandler *syncer.Handler

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
}

type NewServerParams struct {
	Config            *config.Config
	VersionInfo       string
	AdminUsername     string
	AdminPasswordHash string
	RedisPassword     string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	localStore, err := store.Open(filepath.Join(params.Config.DataDirPath, "liftsync.db"))
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}

	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metricsManager := metrics.NewManager("liftsync", "main", promRegistry)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, strconv.Itoa(params.Config.RedisPort)),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		// not fatal: we start offline and reconcile once the mirror is back
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewAuthService(&auth.Admin{
		Username:     params.AdminUsername,
		PasswordHash: params.AdminPasswordHash,
	}, auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	mirror := remote.NewMirror(rdb)

	localSessions := store.NewCollection[workout.Session](localStore, workout.CollectionSessions)
	localPreferences := store.NewCollection[workout.Preferences](localStore, workout.CollectionPreferences)
	localDefaults := store.NewCollection[workout.ExerciseDefaults](localStore, workout.CollectionDefaults)
	localTemplates := store.NewCollection[workout.Template](localStore, workout.CollectionTemplates)
	localCustomizations := store.NewCollection[workout.Customization](localStore, workout.CollectionCustomizations)

	remoteSessions := remote.NewCollection[workout.Session](mirror, workout.CollectionSessions)
	remotePreferences := remote.NewCollection[workout.Preferences](mirror, workout.CollectionPreferences)
	remoteDefaults := remote.NewCollection[workout.ExerciseDefaults](mirror, workout.CollectionDefaults)
	remoteTemplates := remote.NewCollection[workout.Template](mirror, workout.CollectionTemplates)
	remoteCustomizations := remote.NewCollection[workout.Customization](mirror, workout.CollectionCustomizations)

	connCheckInterval := time.Duration(params.Config.ConnCheckIntervalSec) * time.Second
	if connCheckInterval <= 0 {
		connCheckInterval = 15 * time.Second
	}
	monitor := syncer.NewPingMonitor(mirror, connCheckInterval)
	tracker := syncer.NewTracker()

	syncEngine := syncer.NewEngine(
		tracker,
		monitor,
		metricsManager,
		syncer.NewPair[workout.Session](workout.CollectionSessions, localSessions, remoteSessions),
		syncer.NewPair[workout.Preferences](workout.CollectionPreferences, localPreferences, remotePreferences),
		syncer.NewPair[workout.ExerciseDefaults](workout.CollectionDefaults, localDefaults, remoteDefaults),
		syncer.NewPair[workout.Template](workout.CollectionTemplates, localTemplates, remoteTemplates),
		syncer.NewPair[workout.Customization](workout.CollectionCustomizations, localCustomizations, remoteCustomizations),
	)

	workoutService := workout.NewService(workout.NewServiceParams{
		Sessions:       localSessions,
		Preferences:    localPreferences,
		Defaults:       localDefaults,
		Templates:      localTemplates,
		Customizations: localCustomizations,
		Pusher:         syncEngine,
	})

	return &Server{
		config:         params.Config,
		versionInfo:    params.VersionInfo,
		localStore:     localStore,
		redisClient:    rdb,
		mirror:         mirror,
		authService:    authService,
		loginChecker:   auth.NewLoginChecker(auth.DefaultTTL, rdb),
		workoutService: workoutService,
		statsHandler:   stats.NewHandler(localSessions),
		monitor:        monitor,
		tracker:        tracker,
		syncEngine:     syncEngine,
		syncHandler:    syncer.NewHandler(syncEngine, tracker),
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("liftsync-router"))

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteResponse(w, "", "liftsync service")
	}).Methods("GET").Name("root")
	r.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteResponse(w, "", s.versionInfo)
	}).Methods("GET").Name("version")

	// login-logout, rate limited to prevent abuse
	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	loginSubrouter := r.PathPrefix("/a").Subrouter()
	loginSubrouter.HandleFunc("/login", s.handleLogin).Methods("POST", "OPTIONS").Name("login")
	loginSubrouter.HandleFunc("/logout", s.handleLogout).Methods("GET", "OPTIONS").Name("logout")
	loginSubrouter.Use(middleware.RateLimit(reqRateLimiter, "login", s.config.RateLimitPerMin))

	workoutHandler := workout.NewHandler(s.workoutService)
	r.HandleFunc("/workout/session", workoutHandler.HandleStartSession).Methods("POST", "OPTIONS").Name("start-session")
	r.HandleFunc("/workout/session/{id}", workoutHandler.HandleGetSession).Methods("GET", "OPTIONS").Name("get-session")
	r.HandleFunc("/workout/session/{id}", workoutHandler.HandleDiscardSession).Methods("DELETE", "OPTIONS").Name("discard-session")
	r.HandleFunc("/workout/session/{id}/finish", workoutHandler.HandleFinishSession).Methods("POST", "OPTIONS").Name("finish-session")
	r.HandleFunc("/workout/session/{id}/exercise", workoutHandler.HandleAddExercise).Methods("POST", "OPTIONS").Name("add-exercise")
	r.HandleFunc("/workout/session/{id}/exercise/{index}", workoutHandler.HandleRemoveExercise).Methods("DELETE", "OPTIONS").Name("remove-exercise")
	r.HandleFunc("/workout/session/{id}/exercise/{index}/set", workoutHandler.HandleAddSet).Methods("POST", "OPTIONS").Name("add-set")
	r.HandleFunc("/workout/session/{id}/exercise/{index}/set", workoutHandler.HandleUpdateSet).Methods("PUT", "OPTIONS").Name("update-set")
	r.HandleFunc("/workout/session/{id}/exercise/{index}/set/{setId}", workoutHandler.HandleRemoveSet).Methods("DELETE", "OPTIONS").Name("remove-set")
	r.HandleFunc("/workout/session/{id}/exercise/{index}/set/{setId}/complete", workoutHandler.HandleCompleteSet).Methods("POST", "OPTIONS").Name("complete-set")
	r.HandleFunc("/workout/sessions", workoutHandler.HandleListSessions).Methods("GET", "OPTIONS").Name("list-sessions")
	r.HandleFunc("/workout/preferences", workoutHandler.HandleGetPreferences).Methods("GET", "OPTIONS").Name("get-preferences")
	r.HandleFunc("/workout/preferences", workoutHandler.HandleUpdatePreferences).Methods("PUT", "OPTIONS").Name("update-preferences")
	r.HandleFunc("/workout/templates", workoutHandler.HandleListTemplates).Methods("GET", "OPTIONS").Name("list-templates")
	r.HandleFunc("/workout/template", workoutHandler.HandleSaveTemplate).Methods("POST", "OPTIONS").Name("save-template")
	r.HandleFunc("/workout/catalog", workoutHandler.HandleGetCatalog).Methods("GET", "OPTIONS").Name("get-catalog")
	r.HandleFunc("/workout/customization", workoutHandler.HandleSaveCustomization).Methods("POST", "OPTIONS").Name("save-customization")

	r.HandleFunc("/stats/session/{id}", s.statsHandler.HandleSessionSummary).Methods("GET", "OPTIONS").Name("session-summary")
	r.HandleFunc("/stats/summaries", s.statsHandler.HandleSummaries).Methods("GET", "OPTIONS").Name("summaries")
	r.HandleFunc("/stats/progress/{equipmentId}", s.statsHandler.HandleProgress).Methods("GET", "OPTIONS").Name("progress")

	r.HandleFunc("/sync/status", s.syncHandler.HandleStatus).Methods("GET", "OPTIONS").Name("sync-status")
	r.HandleFunc("/sync/full", s.syncHandler.HandleFullSync).Methods("POST", "OPTIONS").Name("sync-full")
	r.HandleFunc("/sync/auto/enable", s.syncHandler.HandleEnableAutoSync).Methods("POST", "OPTIONS").Name("sync-auto-enable")
	r.HandleFunc("/sync/auto/disable", s.syncHandler.HandleDisableAutoSync).Methods("POST", "OPTIONS").Name("sync-auto-disable")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "server.login")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	var credentials auth.Credentials
	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
			log.Errorf("login, unmarshal json params: %s", err)
			http.Error(w, "login failed", http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			log.Errorf("login failed, parse form error: %s", err)
			http.Error(w, "parse form error", http.StatusInternalServerError)
			return
		}
		credentials = auth.Credentials{
			Username: r.Form.Get("username"),
			Password: r.Form.Get("password"),
		}
	}

	if credentials.Username == "" || credentials.Password == "" {
		http.Error(w, "error, credentials empty", http.StatusBadRequest)
		return
	}

	token, err := s.authService.Login(ctx, credentials, time.Now())
	if err != nil {
		if errors.Is(err, auth.ErrWrongUsername) || errors.Is(err, auth.ErrWrongPassword) {
			log.Tracef("failed login attempt for user: %s", credentials.Username)
			http.Error(w, "error, wrong credentials", http.StatusBadRequest)
			return
		}
		log.Errorf("login failed, generate token error: %s", err)
		http.Error(w, "generate token error", http.StatusInternalServerError)
		return
	}

	log.Trace("new login success")
	pkg.WriteJSONResponse(w, http.StatusOK, map[string]string{"token": token})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "server.logout")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "GET, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	authToken := r.Header.Get(middleware.AuthTokenHeader)
	if authToken == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if loggedOut, err := s.authService.Logout(ctx, authToken); err != nil || !loggedOut {
		log.Tracef("failed logout attempt for token: %s", authToken)
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	// the logged out user no longer drives the sync
	s.syncEngine.DisableAutoSync()

	pkg.WriteJSONResponse(w, http.StatusOK, map[string]bool{"loggedOut": true})
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router := s.routerSetup()

	go s.monitor.Run(ctx)
	go s.syncEngine.Watch(ctx)

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(host, strconv.Itoa(s.config.MetricsPort))
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.localStore != nil {
		if err := s.localStore.Close(); err != nil {
			log.Errorf("failed to close local store: %s", err)
		}
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}
}
