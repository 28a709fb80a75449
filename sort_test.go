package quaero

import (
	"testing"

	"github.com/twpayne/go-geom"
)

func TestSortKey_ByField(t *testing.T) {
	tests := []struct {
		name string
		key  SortKey
		want string
	}{
		{"descending", ByField("Age", Descending), "Age desc"},
		{"ascending", ByField("Name", Ascending), "Name asc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.key.Compile(); got != tt.want {
				t.Errorf("Compile() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSortKey_ByDistance(t *testing.T) {
	key := ByDistance(geom.Coord{-0.127758, 51.507351}, Descending)
	want := "geo.distance(Geo, geography'POINT(-0.127758 51.507351)') desc"
	if got := key.Compile(); got != want {
		t.Errorf("Compile() = %q, want %q", got, want)
	}
}

func TestSortKey_ByDistanceField(t *testing.T) {
	key := ByDistanceField("HomeLocation", geom.Coord{32.4069, 34.7533}, Ascending)
	want := "geo.distance(HomeLocation, geography'POINT(32.406900 34.753300)') asc"
	if got := key.Compile(); got != want {
		t.Errorf("Compile() = %q, want %q", got, want)
	}
}

func TestCompileSortKeys_PreservesOrder(t *testing.T) {
	keys := []SortKey{
		ByField("Age", Descending),
		ByDistance(geom.Coord{0, 0}, Ascending),
		ByField("Name", Ascending),
	}
	got := compileSortKeys(keys)
	want := []string{
		"Age desc",
		"geo.distance(Geo, geography'POINT(0.000000 0.000000)') asc",
		"Name asc",
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("fragment[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCompileSortKeys_Empty(t *testing.T) {
	if got := compileSortKeys(nil); got != nil {
		t.Errorf("compileSortKeys(nil) = %v, want nil", got)
	}
}
