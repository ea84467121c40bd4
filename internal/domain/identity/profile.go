package identity

import "strings"

// Profile holds the delivery details used to pre-fill checkout.
// The storefront keeps a single profile alongside the active session.
type Profile struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// DefaultProfile returns the profile used before anyone signs in
func DefaultProfile() Profile {
	return Profile{Name: "Guest User"}
}

// Update replaces the profile fields, keeping the guest fallback
// when the name is blanked out
func (p *Profile) Update(name, phone, address string) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Guest User"
	}
	p.Name = name
	p.Phone = strings.TrimSpace(phone)
	p.Address = strings.TrimSpace(address)
}
