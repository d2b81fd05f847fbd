package session

import "errors"

var ErrUnknownProvider = errors.New("unknown login provider")

// Provider is a third-party identity the login page offers.
type Provider struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

var providers = []Provider{
	{ID: "google", Name: "Google", Icon: "🔍", Color: "#db4437"},
	{ID: "microsoft", Name: "Microsoft", Icon: "Ⓜ️", Color: "#00a1f1"},
	{ID: "linkedin", Name: "LinkedIn", Icon: "💼", Color: "#0077b5"},
}

// Providers returns the supported providers in display order.
func Providers() []Provider {
	out := make([]Provider, len(providers))
	copy(out, providers)
	return out
}

func ProviderByID(id string) (Provider, bool) {
	for _, p := range providers {
		if p.ID == id {
			return p, true
		}
	}
	return Provider{}, false
}
