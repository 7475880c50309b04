package entities

import "testing"

func TestCartSnapshot_VisibleItems(t *testing.T) {
	cart := CartSnapshot{
		Items: []LineItem{
			{Name: "widget", SKU: "W-1", Visible: true},
			{Name: "bundle child", SKU: "B-1-C", Visible: false},
			{Name: "gadget", SKU: "G-1", Visible: true},
		},
	}

	visible := cart.VisibleItems()
	if len(visible) != 2 {
		t.Fatalf("expected 2 visible items, got %d", len(visible))
	}
	if visible[0].SKU != "W-1" || visible[1].SKU != "G-1" {
		t.Fatalf("unexpected visible items: %+v", visible)
	}
}

func TestAddress_FullName(t *testing.T) {
	addr := Address{Firstname: "John", Lastname: "Doe"}
	if got := addr.FullName(); got != "John Doe" {
		t.Fatalf("FullName() = %q, want %q", got, "John Doe")
	}
}

func TestSplitStreetLines(t *testing.T) {
	t.Run("keeps at most max lines", func(t *testing.T) {
		lines := SplitStreetLines([]string{"Line 1", "Line 2", "Line 3"}, 2)
		if len(lines) != 2 || lines[0] != "Line 1" || lines[1] != "Line 2" {
			t.Fatalf("unexpected lines: %v", lines)
		}
	})

	t.Run("skips blank lines", func(t *testing.T) {
		lines := SplitStreetLines([]string{"  ", "Apt 4B", "", "Main St 10"}, 2)
		if len(lines) != 2 || lines[0] != "Apt 4B" || lines[1] != "Main St 10" {
			t.Fatalf("unexpected lines: %v", lines)
		}
	})

	t.Run("trims whitespace", func(t *testing.T) {
		lines := SplitStreetLines([]string{"  Main St 10  "}, 2)
		if len(lines) != 1 || lines[0] != "Main St 10" {
			t.Fatalf("unexpected lines: %v", lines)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if lines := SplitStreetLines(nil, 2); len(lines) != 0 {
			t.Fatalf("expected no lines, got %v", lines)
		}
	})
}
