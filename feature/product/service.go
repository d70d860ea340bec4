package product

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	"versync/core/install"
	"versync/core/reconcile"
	"versync/core/registry"
	"versync/core/storage"
	"versync/core/version"
)

// statusTTL bounds how long a computed status may be served from cache.
const statusTTL = 30 * time.Second

// States reported by Status and Reconcile.
const (
	StateInSync  = "in_sync"
	StateDrift   = "drift"
	StatePlanned = "planned"
	StateApplied = "applied"
	StatePartial = "partial"
)

// VersionInfo carries the discovered version in every shape callers need.
type VersionInfo struct {
	Product        string `json:"product"`
	RawVersion     string `json:"raw_version"`
	Encoded        int64  `json:"encoded"`
	EncodedHex     string `json:"encoded_hex"`
	DisplayVersion string `json:"display_version"`
}

// Status describes the installed product against the record store.
type Status struct {
	VersionInfo
	State string          `json:"state"`
	Plan  *reconcile.Plan `json:"plan"`
}

// RunResult describes one reconcile invocation.
type RunResult struct {
	VersionInfo
	State  string            `json:"state"`
	Plan   *reconcile.Plan   `json:"plan"`
	Report *reconcile.Report `json:"report,omitempty"`
}

// RecordView is the current contents of one record group as stored.
type RecordView struct {
	Group  string         `json:"group"`
	Record string         `json:"record"`
	Fields map[string]any `json:"fields"`
}

// Health reports reachability of the service's backings.
type Health struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type cachedStatus struct {
	status *Status
	built  time.Time
}

// Service wires version discovery and the reconcile engine together.
type Service struct {
	store   registry.Store
	source  install.Source
	product install.Config
	records reconcile.Config
	logger  *zap.Logger
	db      *gorm.DB
	client  storage.Client
	bucket  string

	mu     sync.RWMutex
	cached *cachedStatus
	group  singleflight.Group
}

// NewService creates a new product service. db and client may be nil when
// the deployment runs without the corresponding backing; Health then skips
// the check.
func NewService(store registry.Store, source install.Source, productCfg install.Config, recordsCfg reconcile.Config, logger *zap.Logger, db *gorm.DB, client storage.Client, bucket string) *Service {
	return &Service{
		store:   store,
		source:  source,
		product: productCfg,
		records: recordsCfg,
		logger:  logger,
		db:      db,
		client:  client,
		bucket:  bucket,
	}
}

// resolve reads the manifest and derives the desired record state from it.
func (s *Service) resolve(ctx context.Context) (VersionInfo, []reconcile.Group, error) {
	raw, err := install.DiscoverVersion(ctx, s.source, s.product.VersionField)
	if err != nil {
		return VersionInfo{}, nil, err
	}

	ver, err := version.Parse(raw)
	if err != nil {
		return VersionInfo{}, nil, err
	}
	encoded, err := ver.Encode()
	if err != nil {
		return VersionInfo{}, nil, err
	}

	info := VersionInfo{
		Product:        s.product.BaseName,
		RawVersion:     raw,
		Encoded:        int64(encoded),
		EncodedHex:     fmt.Sprintf("0x%08X", encoded),
		DisplayVersion: version.Decode(encoded),
	}
	groups := reconcile.DesiredGroups(s.records, s.product.Prefix(), s.product.DisplayName(raw), encoded)
	return info, groups, nil
}

// Status reports drift without writing. Results are cached for statusTTL
// and concurrent misses share a single computation.
func (s *Service) Status(ctx context.Context) (*Status, error) {
	if status := s.freshStatus(); status != nil {
		return status, nil
	}

	result, err, _ := s.group.Do("status", func() (any, error) {
		if status := s.freshStatus(); status != nil {
			return status, nil
		}
		status, err := s.computeStatus(ctx)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.cached = &cachedStatus{status: status, built: time.Now()}
		s.mu.Unlock()
		return status, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Status), nil
}

func (s *Service) freshStatus() *Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cached == nil || time.Since(s.cached.built) >= statusTTL {
		return nil
	}
	return s.cached.status
}

func (s *Service) invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

func (s *Service) computeStatus(ctx context.Context) (*Status, error) {
	info, groups, err := s.resolve(ctx)
	if err != nil {
		return nil, err
	}

	plan, err := reconcile.BuildPlan(ctx, s.store, groups)
	if err != nil {
		return nil, err
	}

	state := StateInSync
	if plan.Summary.Drifted > 0 {
		state = StateDrift
	}
	return &Status{VersionInfo: info, State: state, Plan: plan}, nil
}

// Reconcile discovers the version, plans and, unless dryRun is set,
// applies the plan. Rejected writes surface in the report rather than
// aborting the run.
func (s *Service) Reconcile(ctx context.Context, dryRun bool) (*RunResult, error) {
	info, groups, err := s.resolve(ctx)
	if err != nil {
		return nil, err
	}

	plan, report, err := reconcile.Run(ctx, s.store, groups, reconcile.Options{DryRun: dryRun})
	if err != nil {
		return nil, err
	}

	result := &RunResult{VersionInfo: info, Plan: plan, Report: report}
	switch {
	case dryRun && plan.Summary.Drifted == 0:
		result.State = StateInSync
	case dryRun:
		result.State = StatePlanned
	case report.Err() != nil:
		result.State = StatePartial
	case len(report.Written) == 0:
		result.State = StateInSync
	default:
		result.State = StateApplied
	}

	if !dryRun {
		s.invalidate()
		s.logger.Info("reconcile finished",
			zap.String("state", result.State),
			zap.String("version", info.RawVersion),
			zap.Int("written", len(report.Written)),
			zap.Int("failed", len(report.Failed)))
	}
	return result, nil
}

// Records returns the stored contents of both record groups. Fields the
// store does not hold are omitted from the view.
func (s *Service) Records(ctx context.Context) ([]RecordView, error) {
	groups := reconcile.DesiredGroups(s.records, s.product.Prefix(), "", 0)

	views := make([]RecordView, 0, len(groups))
	for _, group := range groups {
		rec, err := registry.Locate(ctx, s.store, group.Selector)
		if err != nil {
			return nil, err
		}

		fields := make(map[string]any, len(group.Fields))
		for _, field := range group.Fields {
			value, err := s.store.GetField(ctx, rec, field.Name, nil)
			if err != nil {
				return nil, err
			}
			if value != nil {
				fields[field.Name] = value
			}
		}
		views = append(views, RecordView{Group: group.Name, Record: rec.Path(), Fields: fields})
	}
	return views, nil
}

// CheckHealth pings the database and the release bucket concurrently.
// Backings the service was built without are skipped.
func (s *Service) CheckHealth(ctx context.Context) *Health {
	var (
		mu     sync.Mutex
		checks = make(map[string]string)
		g      errgroup.Group
	)
	record := func(name, state string) {
		mu.Lock()
		checks[name] = state
		mu.Unlock()
	}

	if s.db != nil {
		g.Go(func() error {
			sqlDB, err := s.db.DB()
			if err == nil {
				err = sqlDB.PingContext(ctx)
			}
			if err != nil {
				record("database", err.Error())
				return fmt.Errorf("database: %w", err)
			}
			record("database", "ok")
			return nil
		})
	}

	if s.client != nil {
		g.Go(func() error {
			exists, err := s.client.BucketExists(ctx, s.bucket)
			if err != nil {
				record("storage", err.Error())
				return fmt.Errorf("storage: %w", err)
			}
			if !exists {
				record("storage", "bucket missing")
				return fmt.Errorf("storage: bucket %q missing", s.bucket)
			}
			record("storage", "ok")
			return nil
		})
	}

	status := "ok"
	if err := g.Wait(); err != nil {
		status = "degraded"
		s.logger.Warn("health check failed", zap.Error(err))
	}
	return &Health{Status: status, Checks: checks}
}
