package auth

import "testing"

func TestIsStaff(t *testing.T) {
	cases := []struct {
		name     string
		email    string
		domain   string
		expected bool
	}{
		{"staff email", "chef@pizzapalace.com", "@pizzapalace.com", true},
		{"staff email mixed case", "Chef@PizzaPalace.com", "@pizzapalace.com", true},
		{"customer email", "alice@example.com", "@pizzapalace.com", false},
		{"lookalike domain", "alice@notpizzapalace.com.evil.com", "@pizzapalace.com", false},
		{"domain without at sign", "chef@pizzapalace.com", "pizzapalace.com", true},
		{"empty email", "", "@pizzapalace.com", false},
		{"empty domain", "chef@pizzapalace.com", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := IsStaff(Identity{UserID: "u1", Email: tc.email}, tc.domain)
			if got != tc.expected {
				t.Fatalf("IsStaff(%q, %q) = %v, expected %v", tc.email, tc.domain, got, tc.expected)
			}
		})
	}
}

func TestIdentityValid(t *testing.T) {
	if (Identity{}).Valid() {
		t.Fatalf("expected empty identity to be invalid")
	}
	if !(Identity{UserID: "u1"}).Valid() {
		t.Fatalf("expected identity with user id to be valid")
	}
}
