package players

import (
	"reflect"
	"testing"

	"github.com/preston-bernstein/nba-viewer/internal/domain/teams"
)

func TestPlayerJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}
	playerType := reflect.TypeOf(Player{})
	fields := []fieldCheck{
		{"ID", "id"},
		{"FirstName", "firstName"},
		{"LastName", "lastName"},
		{"Position", "position"},
		{"HeightFeet", "heightFeet"},
		{"HeightInches", "heightInches"},
		{"WeightPounds", "weightPounds"},
		{"Team", "team"},
	}
	for _, fc := range fields {
		f, ok := playerType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if tag := f.Tag.Get("json"); tag != fc.tag {
			t.Fatalf("field %s expected tag %s, got %s", fc.name, fc.tag, tag)
		}
	}
}

func TestPlayerFullName(t *testing.T) {
	cases := []struct {
		player Player
		want   string
	}{
		{Player{FirstName: "Stephen", LastName: "Curry"}, "Stephen Curry"},
		{Player{FirstName: " Nene ", LastName: ""}, "Nene"},
		{Player{LastName: "Bol"}, "Bol"},
		{Player{}, ""},
	}
	for _, tc := range cases {
		if got := tc.player.FullName(); got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
	}
}

func TestPageHasNext(t *testing.T) {
	next := 3
	p := Page{Players: []Player{{ID: 1, Team: teams.Team{ID: 2}}}, Meta: PageMeta{CurrentPage: 2, NextPage: &next}}
	if !p.HasNext() {
		t.Fatal("expected page with next cursor to report HasNext")
	}
	if (Page{}).HasNext() {
		t.Fatal("expected terminal page to report no next")
	}
}
