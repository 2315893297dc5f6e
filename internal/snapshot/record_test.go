package snapshot

import (
	"testing"

	"github.com/mj1618/a11ycheck/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestIsStale(t *testing.T) {
	tests := []struct {
		version string
		stale   bool
	}{
		{CurrentVersion(), false},
		{"1.0", true},
		{"0.1", true},
		{"0.9", true},
		{"1.2", false},
		{"2.0", false},
		{"", true},
		{"1", true},
		{"one.two", true},
		{"1.1.1", false},
		{"1.0.9", true},
		{"1.x.1", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.stale, IsStale(tt.version), tt.version)
	}
}

func TestFromElement(t *testing.T) {
	off := false
	el := model.FromRaw(model.RawElement{
		Type:    "AXButton",
		Label:   "Save",
		Traits:  []string{"link", "button"},
		Enabled: &off,
		Frame:   model.Rect{X: 1, Y: 2, Width: 3, Height: 4},
	})
	r := FromElement(el)
	assert.Equal(t, "button", r.Type)
	assert.Equal(t, []string{"button", "link"}, r.Traits)
	assert.False(t, r.Enabled)
	assert.Equal(t, model.Rect{X: 1, Y: 2, Width: 3, Height: 4}, r.Frame)

	unknown := FromElement(model.FromRaw(model.RawElement{Type: "image"}))
	assert.Nil(t, unknown.Traits)
	assert.True(t, unknown.Enabled)
}

func TestFileName(t *testing.T) {
	tests := []struct {
		id   Identity
		n    int
		want string
	}{
		{Identity{"LoginTests", "testLogin()"}, 1, "LoginTests-testLogin-1.json"},
		{Identity{"/src/ui/login_test.go", "TestLogin"}, 2, "login-test-TestLogin-2.json"},
		{Identity{"pkg", "TestScreens/settings_page"}, 3, "pkg-TestScreens-settings-page-3.json"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FileName(tt.id, tt.n))
	}
}

func TestTracker(t *testing.T) {
	var tr Tracker
	a := Identity{"S", "A"}
	b := Identity{"S", "B"}
	assert.Equal(t, 1, tr.Next(a))
	assert.Equal(t, 2, tr.Next(a))
	assert.Equal(t, 1, tr.Next(b))
	assert.Equal(t, 1, tr.Next(a))
}
