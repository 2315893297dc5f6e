package model

import "testing"

func TestFlattenRaw_Basic(t *testing.T) {
	elements := []RawElement{
		{Type: "button", Label: "OK"},
		{Type: "staticText", Label: "Hello"},
	}
	result := FlattenRaw(elements)
	if len(result) != 2 {
		t.Fatalf("expected 2 flat elements, got %d", len(result))
	}
	if result[0].Label != "OK" || result[1].Label != "Hello" {
		t.Errorf("unexpected order: %q, %q", result[0].Label, result[1].Label)
	}
}

func TestFlattenRaw_DepthFirstOrder(t *testing.T) {
	elements := []RawElement{
		{
			Type: "window", Label: "Main",
			Children: []RawElement{
				{
					Type: "toolbar", Label: "Nav",
					Children: []RawElement{
						{Type: "button", Label: "Back"},
					},
				},
				{Type: "button", Label: "Next"},
			},
		},
	}
	result := FlattenRaw(elements)
	want := []string{"Main", "Nav", "Back", "Next"}
	if len(result) != len(want) {
		t.Fatalf("expected %d elements, got %d", len(want), len(result))
	}
	for i, label := range want {
		if result[i].Label != label {
			t.Errorf("result[%d] = %q, want %q", i, result[i].Label, label)
		}
		if result[i].Children != nil {
			t.Errorf("result[%d] should have children cleared", i)
		}
	}
}

func TestFlattenRaw_Empty(t *testing.T) {
	if result := FlattenRaw(nil); len(result) != 0 {
		t.Errorf("expected empty result, got %d", len(result))
	}
}
