package usecases

import (
	"context"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"slotly/internal/domain/tenant"
	"slotly/internal/shared/errors"
	"slotly/internal/shared/logger"
)

// ResolveTenantCommand carries the two identification channels. ExplicitID
// wins over the hostname when both are present.
type ResolveTenantCommand struct {
	ExplicitID string // header or query value: numeric ID, UUID, or subdomain
	Hostname   string // request host, possibly with port
}

type ResolveTenantResult struct {
	Tenant *tenant.Tenant
}

type ResolveTenantUseCase struct {
	tenantRepo     tenant.Repository
	baseDomain     string
	reservedLabels map[string]bool
	logger         logger.Interface
}

func NewResolveTenantUseCase(
	tenantRepo tenant.Repository,
	baseDomain string,
	reservedLabels []string,
	logger logger.Interface,
) *ResolveTenantUseCase {
	reserved := make(map[string]bool, len(reservedLabels))
	for _, label := range reservedLabels {
		reserved[strings.ToLower(label)] = true
	}

	return &ResolveTenantUseCase{
		tenantRepo:     tenantRepo,
		baseDomain:     strings.ToLower(baseDomain),
		reservedLabels: reserved,
		logger:         logger,
	}
}

// ErrReservedHost marks hosts that identify the platform itself rather than
// a tenant (the bare base domain and reserved labels like www or admin).
var ErrReservedHost = errors.NewNotFoundError("host does not identify a tenant")

func (uc *ResolveTenantUseCase) Execute(ctx context.Context, cmd ResolveTenantCommand) (*ResolveTenantResult, error) {
	t, err := uc.resolve(ctx, cmd)
	if err != nil {
		return nil, err
	}

	if err := uc.checkActive(t); err != nil {
		return nil, err
	}

	return &ResolveTenantResult{Tenant: t}, nil
}

func (uc *ResolveTenantUseCase) resolve(ctx context.Context, cmd ResolveTenantCommand) (*tenant.Tenant, error) {
	if cmd.ExplicitID != "" {
		return uc.resolveExplicit(ctx, cmd.ExplicitID)
	}
	return uc.resolveHostname(ctx, cmd.Hostname)
}

func (uc *ResolveTenantUseCase) resolveExplicit(ctx context.Context, value string) (*tenant.Tenant, error) {
	value = strings.TrimSpace(value)

	if _, err := uuid.Parse(value); err == nil {
		return uc.tenantRepo.FindByPublicID(ctx, value)
	}

	if id, err := strconv.ParseUint(value, 10, 64); err == nil && id > 0 {
		return uc.tenantRepo.FindByID(ctx, uint(id))
	}

	subdomain := strings.ToLower(value)
	if !tenant.ValidSubdomain(subdomain) {
		return nil, errors.NewValidationError("invalid tenant identifier")
	}

	return uc.tenantRepo.FindBySubdomain(ctx, subdomain)
}

func (uc *ResolveTenantUseCase) resolveHostname(ctx context.Context, hostname string) (*tenant.Tenant, error) {
	host := normalizeHost(hostname)
	if host == "" {
		return nil, errors.NewValidationError("missing host")
	}

	// Bare localhost, loopback literals and the platform apex carry no
	// tenant label.
	if host == "localhost" || net.ParseIP(host) != nil || host == uc.baseDomain {
		return nil, ErrReservedHost
	}

	label, _, _ := strings.Cut(host, ".")
	if uc.reservedLabels[label] {
		return nil, ErrReservedHost
	}

	if tenant.ValidSubdomain(label) {
		t, err := uc.tenantRepo.FindBySubdomain(ctx, label)
		if err == nil {
			return t, nil
		}
		if !errors.IsNotFoundError(err) {
			return nil, err
		}
	}

	// x.localhost never reaches the custom-domain path; the suffix only
	// exists for development.
	if strings.HasSuffix(host, ".localhost") {
		return nil, errors.NewNotFoundError("tenant not found")
	}

	return uc.tenantRepo.FindByCustomDomain(ctx, host)
}

func (uc *ResolveTenantUseCase) checkActive(t *tenant.Tenant) error {
	if !t.Status().IsActive() && !t.Status().IsTrial() {
		uc.logger.Warnw("tenant is not active",
			"tenant_id", t.ID(),
			"subdomain", t.Subdomain(),
			"status", t.Status().String())
		return errors.NewForbiddenError("tenant is not active").
			WithMeta("status", t.Status().String())
	}

	if t.TrialExpired(time.Now()) {
		uc.logger.Warnw("tenant trial expired",
			"tenant_id", t.ID(),
			"subdomain", t.Subdomain())
		return errors.NewForbiddenError("trial period has expired").
			WithMeta("trial_ended_at", t.TrialEndsAt().UTC().Format(time.RFC3339))
	}

	return nil
}

// normalizeHost lowercases the host and strips any port suffix.
func normalizeHost(hostname string) string {
	host := strings.ToLower(strings.TrimSpace(hostname))
	if host == "" {
		return ""
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return strings.TrimSuffix(host, ".")
}
