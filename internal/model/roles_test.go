package model

import "testing"

func TestParseKind_PlatformRoles(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
	}{
		{"AXButton", KindButton},
		{"AXStaticText", KindStaticText},
		{"AXLink", KindLink},
		{"AXImage", KindImage},
		{"AXTextField", KindTextField},
		{"AXTextArea", KindTextView},
		{"AXSlider", KindSlider},
		{"AXCell", KindCell},
		{"AXScrollArea", KindScrollView},
		{"AXWindow", KindWindow},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseKind(tt.input)
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseKind_CompactCodes(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
	}{
		{"btn", KindButton},
		{"txt", KindStaticText},
		{"img", KindImage},
		{"input", KindTextField},
		{"row", KindCell},
		{"scroll", KindScrollView},
	}
	for _, tt := range tests {
		if got := ParseKind(tt.input); got != tt.want {
			t.Errorf("ParseKind(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseKind_CanonicalNamesIgnoreCase(t *testing.T) {
	for k := range kinds {
		kind := Kind(k)
		if got := ParseKind(kind.String()); got != kind {
			t.Errorf("ParseKind(%q) = %v, want %v", kind.String(), got, kind)
		}
	}
	if got := ParseKind("StaticText"); got != KindStaticText {
		t.Errorf("ParseKind(StaticText) = %v", got)
	}
}

func TestParseKind_UnknownFallback(t *testing.T) {
	for _, raw := range []string{"AXSomethingNew", "SomethingElse", ""} {
		if got := ParseKind(raw); got != KindOther {
			t.Errorf("ParseKind(%q) = %v, want other", raw, got)
		}
	}
}

func TestKind_DisplayName(t *testing.T) {
	tests := map[Kind]string{
		KindStaticText:      "Label",
		KindTextField:       "Text Field",
		KindSecureTextField: "Secure Text Field",
		KindImage:           "Image",
		KindWindow:          "Other",
	}
	for k, want := range tests {
		if got := k.DisplayName(); got != want {
			t.Errorf("%v.DisplayName() = %q, want %q", k, got, want)
		}
	}
	if got := Kind(999).String(); got != "other" {
		t.Errorf("out of range kind = %q, want other", got)
	}
}
