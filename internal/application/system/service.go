package system

import (
	"context"

	"go.uber.org/zap"
)

// DemoResetter wipes the demo data back to its seed state.
// The persistence seeder implements it.
type DemoResetter interface {
	ResetDemoData(ctx context.Context) error
}

// SystemService handles storefront-wide operations
type SystemService struct {
	resetter DemoResetter
	logger   *zap.Logger
}

// NewSystemService creates a new SystemService
func NewSystemService(resetter DemoResetter, logger *zap.Logger) *SystemService {
	return &SystemService{
		resetter: resetter,
		logger:   logger,
	}
}

// ResetDemoData restores the seed menu and clears the cart, profile,
// and order ledger. Accounts and the active session survive.
func (s *SystemService) ResetDemoData(ctx context.Context) error {
	if err := s.resetter.ResetDemoData(ctx); err != nil {
		return err
	}
	s.logger.Info("demo data reset")
	return nil
}
