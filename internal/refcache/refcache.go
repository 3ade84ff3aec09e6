package refcache

import (
	"context"
	"sync"
	"time"

	"hrms-console/internal/config"
	"hrms-console/internal/upstream"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// RefCache keeps the slow-moving reference data the pickers read
// (permissions, document types, asset categories and tenant module limits)
// warm in memory. Entity lists themselves are never cached: screens refetch
// those from upstream after every write.
type RefCache struct {
	api    upstream.API
	logger *zap.Logger
	spec   string

	scheduler *cron.Cron

	mu              sync.RWMutex
	permissions     []upstream.Permission
	documentTypes   []upstream.DocumentType
	assetCategories []upstream.AssetCategory
	tenantModules   map[string][]string
	refreshedAt     time.Time
}

func NewRefCache(cfg *config.Config, api upstream.API, logger *zap.Logger) *RefCache {
	return &RefCache{
		api:           api,
		logger:        logger,
		spec:          cfg.RefCacheCron,
		tenantModules: make(map[string][]string),
	}
}

// Start performs the initial load and schedules periodic refreshes.
func (c *RefCache) Start(ctx context.Context) error {
	if err := c.Refresh(ctx); err != nil {
		// Not fatal: the console can come up before the HRMS API does.
		c.logger.Warn("initial reference-data load failed", zap.Error(err))
	}

	c.scheduler = cron.New()
	if _, err := c.scheduler.AddFunc(c.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := c.Refresh(ctx); err != nil {
			c.logger.Warn("reference-data refresh failed", zap.Error(err))
		}
	}); err != nil {
		return err
	}
	c.scheduler.Start()
	return nil
}

func (c *RefCache) Stop() error {
	if c.scheduler != nil {
		c.scheduler.Stop()
	}
	return nil
}

// Refresh reloads every cached kind. Partial failures keep the previous
// snapshot for the kinds that failed.
func (c *RefCache) Refresh(ctx context.Context) error {
	var firstErr error

	if perms, err := c.api.GetPermissions(ctx); err == nil {
		c.mu.Lock()
		c.permissions = perms
		c.mu.Unlock()
	} else {
		firstErr = err
	}

	if types, err := c.api.GetDocumentTypes(ctx); err == nil {
		c.mu.Lock()
		c.documentTypes = types
		c.mu.Unlock()
	} else if firstErr == nil {
		firstErr = err
	}

	if cats, err := c.api.GetAssetCategories(ctx); err == nil {
		c.mu.Lock()
		c.assetCategories = cats
		c.mu.Unlock()
	} else if firstErr == nil {
		firstErr = err
	}

	if tenants, err := c.api.GetAllTenants(ctx); err == nil {
		modules := make(map[string][]string, len(tenants))
		for _, t := range tenants {
			modules[t.ID] = t.Limits.EnabledModules
		}
		c.mu.Lock()
		c.tenantModules = modules
		c.mu.Unlock()
	} else if firstErr == nil {
		firstErr = err
	}

	c.mu.Lock()
	c.refreshedAt = time.Now()
	c.mu.Unlock()

	return firstErr
}

func (c *RefCache) Permissions() []upstream.Permission {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.permissions
}

func (c *RefCache) DocumentTypes() []upstream.DocumentType {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.documentTypes
}

func (c *RefCache) AssetCategories() []upstream.AssetCategory {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.assetCategories
}

// EnabledModules reports a tenant's module restriction. The second return is
// false when the tenant is unknown or carries no restriction.
func (c *RefCache) EnabledModules(tenantID string) ([]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	modules, ok := c.tenantModules[tenantID]
	if !ok || len(modules) == 0 {
		return nil, false
	}
	return modules, true
}

func (c *RefCache) RefreshedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.refreshedAt
}
