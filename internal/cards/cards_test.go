package cards

import "testing"

func TestRegistryOrderAndSize(t *testing.T) {
	want := []string{
		"My Turn", "Your Turn", "Wait", "I Don't Understand", "Too Loud", "Break",
		"Yes", "No", "Help", "Happy", "Sad", "Thank You",
	}
	all := All()
	if len(all) != len(want) || Len() != len(want) {
		t.Fatalf("registry has %d cards (Len=%d), want %d", len(all), Len(), len(want))
	}
	for i, name := range want {
		if all[i].Name != name {
			t.Errorf("card %d = %q, want %q", i, all[i].Name, name)
		}
		if all[i].Icon == "" || all[i].Description == "" {
			t.Errorf("card %q missing icon or description", name)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	all[0].Name = "mutated"

	if c, _ := At(0); c.Name != "My Turn" {
		t.Fatalf("registry was mutated through All(): %q", c.Name)
	}
}

func TestAtBounds(t *testing.T) {
	for _, i := range []int{-1, Len()} {
		if _, ok := At(i); ok {
			t.Errorf("At(%d) reported ok", i)
		}
	}
	if c, ok := At(8); !ok || c.Name != "Help" {
		t.Fatalf("At(8) = %+v, %v", c, ok)
	}
}

func TestLookup(t *testing.T) {
	c, ok := Lookup("Help")
	if !ok {
		t.Fatalf("Lookup(Help) failed")
	}
	if got := Headline(c.Icon, c.Name); got != "🆘 Help" {
		t.Errorf("headline = %q", got)
	}
	if c.Description != "I need help" {
		t.Errorf("description = %q", c.Description)
	}
	if _, ok := Lookup("Nope"); ok {
		t.Errorf("Lookup(Nope) reported ok")
	}
}
