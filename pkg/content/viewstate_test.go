package content

import "testing"

func TestSliderWraps(t *testing.T) {
	s := NewSlider(3)

	steps := []struct {
		op   string
		want int
	}{
		{"next", 1},
		{"next", 2},
		{"next", 0},
		{"prev", 2},
		{"prev", 1},
		{"prev", 0},
		{"prev", 2},
	}
	for i, st := range steps {
		var got int
		if st.op == "next" {
			got = s.Next()
		} else {
			got = s.Prev()
		}
		if got != st.want || s.Current() != st.want {
			t.Errorf("step %d (%s): got %d, want %d", i, st.op, got, st.want)
		}
	}
}

func TestSliderEmpty(t *testing.T) {
	s := NewSlider(0)
	if s.Next() != 0 || s.Prev() != 0 {
		t.Error("empty slider must stay at 0")
	}
}

func TestPopoverExclusive(t *testing.T) {
	var p Popover
	if p.Active() != "" {
		t.Fatalf("new popover should be closed, got %q", p.Active())
	}

	p.Open("FruitsMap")
	p.Open("WaterMap")
	if p.IsOpen("FruitsMap") {
		t.Error("opening a second card must close the first")
	}
	if !p.IsOpen("WaterMap") {
		t.Error("WaterMap should be open")
	}

	p.Close()
	if p.Active() != "" || p.IsOpen("WaterMap") {
		t.Errorf("Close() left %q open", p.Active())
	}
	if p.IsOpen("") {
		t.Error("empty id is never open")
	}
}

func TestTabs(t *testing.T) {
	tabs := NewTabs("water", "fat", "macro", "trace")
	if tabs.Active() != "water" {
		t.Errorf("default tab = %q, want water", tabs.Active())
	}

	if !tabs.Select(TabIDFromButton("btn-fat")) {
		t.Fatal("Select(fat) returned false")
	}
	if tabs.Active() != "fat" {
		t.Errorf("Active() = %q, want fat", tabs.Active())
	}

	if tabs.Select("unknown") {
		t.Error("Select(unknown) returned true")
	}
	if tabs.Active() != "fat" {
		t.Errorf("unknown id changed the tab to %q", tabs.Active())
	}
}

func TestTabButtonIDRoundTrip(t *testing.T) {
	tests := []struct {
		button string
		group  string
	}{
		{"btn-water", "water"},
		{"btn-trace", "trace"},
		{"water", "water"},
	}
	for _, tt := range tests {
		if got := TabIDFromButton(tt.button); got != tt.group {
			t.Errorf("TabIDFromButton(%q) = %q, want %q", tt.button, got, tt.group)
		}
	}
	if TabButtonID("macro") != "btn-macro" {
		t.Errorf("TabButtonID(macro) = %q", TabButtonID("macro"))
	}
}
