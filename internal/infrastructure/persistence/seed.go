package persistence

import (
	"context"

	"go.uber.org/zap"

	"github.com/foodiejunction/backend/internal/domain/identity"
	"github.com/foodiejunction/backend/internal/domain/menu"
	"github.com/foodiejunction/backend/internal/domain/shared/valueobject"
	"github.com/foodiejunction/backend/internal/infrastructure/store"
)

// Demo account credentials seeded on first start
const (
	SeedAdminEmail    = "admin@myfoodiejunction.com"
	seedAdminPassword = "adminpass"
	SeedDemoEmail     = "jane@demo.com"
	seedDemoPassword  = "demo"
)

type seedItem struct {
	name     string
	category string
	price    float64
	rating   float64
	emoji    string
	desc     string
	featured bool
}

var seedMenu = []seedItem{
	{"Classic Cheeseburger", "Burgers", 8.99, 4.6, "🍔", "Juicy beef patty, cheddar, lettuce, tomato, and house sauce.", true},
	{"Margherita Pizza", "Pizza", 11.50, 4.5, "🍕", "Tomato, mozzarella, basil. Simple and perfect.", true},
	{"Chicken Tikka Wrap", "Wraps", 9.25, 4.4, "🌯", "Spiced chicken, crunchy slaw, mint yogurt in a warm wrap.", false},
	{"Veggie Power Bowl", "Healthy", 10.00, 4.2, "🥗", "Quinoa, roasted veggies, chickpeas, and lemon tahini.", false},
	{"Spicy Ramen", "Noodles", 12.75, 4.7, "🍜", "Rich broth, noodles, egg, scallions, and chili oil.", true},
	{"Chocolate Brownie", "Dessert", 4.50, 4.8, "🍫", "Fudgy brownie with a crisp top. Best warm.", false},
}

// DefaultMenuItems builds the starter menu shown on a fresh install
func DefaultMenuItems() ([]menu.Item, error) {
	items := make([]menu.Item, 0, len(seedMenu))
	for _, s := range seedMenu {
		item, err := menu.NewItem(s.name, s.category, s.desc, s.emoji, valueobject.NewMoneyUSDFromFloat(s.price), s.rating, s.featured)
		if err != nil {
			return nil, err
		}
		item.ClearDomainEvents()
		items = append(items, *item)
	}
	return items, nil
}

// Seeder fills the store with demo data on first start
type Seeder struct {
	store    store.Store
	menus    menu.Repository
	users    identity.UserRepository
	profiles identity.ProfileRepository
	logger   *zap.Logger
}

// NewSeeder creates a seeder over the given repositories
func NewSeeder(s store.Store, menus menu.Repository, users identity.UserRepository, profiles identity.ProfileRepository, logger *zap.Logger) *Seeder {
	return &Seeder{store: s, menus: menus, users: users, profiles: profiles, logger: logger}
}

// EnsureSeedData seeds the menu, profile, and demo accounts when they
// are missing. Existing data is left untouched.
func (s *Seeder) EnsureSeedData(ctx context.Context) error {
	var raw []menuItemRecord
	found, err := s.store.Get(ctx, store.KeyMenu, &raw)
	if err != nil || !found || len(raw) == 0 {
		items, err := DefaultMenuItems()
		if err != nil {
			return err
		}
		if err := s.menus.Replace(ctx, items); err != nil {
			return err
		}
		s.logger.Info("seeded default menu", zap.Int("items", len(items)))
	}

	var profileRaw identity.Profile
	found, err = s.store.Get(ctx, store.KeyProfile, &profileRaw)
	if err != nil || !found {
		if err := s.profiles.Save(ctx, identity.DefaultProfile()); err != nil {
			return err
		}
	}

	return s.ensureDefaultUsers(ctx)
}

// ensureDefaultUsers seeds the admin and demo customer accounts
func (s *Seeder) ensureDefaultUsers(ctx context.Context) error {
	if _, err := s.users.FindByEmail(ctx, SeedAdminEmail); err != nil {
		admin, err := identity.NewUser("Admin", SeedAdminEmail, seedAdminPassword, identity.RoleAdmin)
		if err != nil {
			return err
		}
		admin.ClearDomainEvents()
		if err := s.users.Save(ctx, admin); err != nil {
			return err
		}
		s.logger.Info("seeded admin account", zap.String("email", SeedAdminEmail))
	}

	if _, err := s.users.FindByEmail(ctx, SeedDemoEmail); err != nil {
		demo, err := identity.NewUser("Jane Demo", SeedDemoEmail, seedDemoPassword, identity.RoleCustomer)
		if err != nil {
			return err
		}
		demo.ClearDomainEvents()
		if err := s.users.Save(ctx, demo); err != nil {
			return err
		}
		s.logger.Info("seeded demo account", zap.String("email", SeedDemoEmail))
	}

	return nil
}

// ResetDemoData restores the menu, cart, profile, and orders to their
// factory state. Accounts and the current session are kept.
func (s *Seeder) ResetDemoData(ctx context.Context) error {
	items, err := DefaultMenuItems()
	if err != nil {
		return err
	}
	if err := s.menus.Replace(ctx, items); err != nil {
		return err
	}
	if err := s.store.Put(ctx, store.KeyCart, []cartLineRecord{}); err != nil {
		return err
	}
	if err := s.profiles.Save(ctx, identity.DefaultProfile()); err != nil {
		return err
	}
	if err := s.store.Put(ctx, store.KeyOrders, []orderRecord{}); err != nil {
		return err
	}
	s.logger.Info("demo data reset")
	return nil
}
