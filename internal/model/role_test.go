package model

import "testing"

func TestParseRole(t *testing.T) {
    cases := []struct {
        in   string
        want Role
        ok   bool
    }{
        {"user", RoleUser, true},
        {"vendor", RoleVendor, true},
        {"admin", RoleAdmin, true},
        {"", "", false},
        {"USER", "", false},
        {"customer", "", false},
        {"superadmin", "", false},
    }
    for _, c := range cases {
        got, ok := ParseRole(c.in)
        if ok != c.ok || got != c.want {
            t.Errorf("ParseRole(%q) = (%q, %v), want (%q, %v)", c.in, got, ok, c.want, c.ok)
        }
    }
}
